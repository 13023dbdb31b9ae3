package paginate

import (
	"fmt"
	"strings"
)

// BookendKind identifies one of the shortcut links placed around the page
// numbers.
type BookendKind int

const (
	Start BookendKind = iota
	Previous
	Next
	End
)

var bookendNames = [...]string{
	Start:    "start",
	Previous: "previous",
	Next:     "next",
	End:      "end",
}

func (k BookendKind) String() string {
	if k < Start || k > End {
		return fmt.Sprintf("BookendKind(%d)", int(k))
	}
	return bookendNames[k]
}

// BookendKinds lists every kind in render order.
func BookendKinds() []BookendKind {
	return []BookendKind{Start, Previous, Next, End}
}

// ParseBookendKind converts "start", "previous", "next" or "end" to a kind.
func ParseBookendKind(s string) (BookendKind, error) {
	for i, name := range bookendNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BookendKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bookend %q", s)
}

// Bookends maps each kind to its label. A kind without an entry is
// suppressed and renders nothing.
type Bookends map[BookendKind]string

// DefaultBookends returns the guillemet labels used when nothing is configured.
func DefaultBookends() Bookends {
	return Bookends{
		Start:    "&laquo;",
		Previous: "&lsaquo;",
		Next:     "&rsaquo;",
		End:      "&raquo;",
	}
}

// Label returns the label for kind and whether the bookend is enabled.
func (b Bookends) Label(kind BookendKind) (string, bool) {
	label, ok := b[kind]
	return label, ok
}

// Clone returns an independent copy.
func (b Bookends) Clone() Bookends {
	out := make(Bookends, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge applies a partial update. Only kinds present in update change; a
// nil label suppresses that bookend.
func (b Bookends) Merge(update map[BookendKind]*string) Bookends {
	out := b.Clone()
	for kind, label := range update {
		if label == nil {
			delete(out, kind)
			continue
		}
		out[kind] = *label
	}
	return out
}

// Label is a helper for building bookend updates:
//
//	p.SetBookends(map[paginate.BookendKind]*string{
//		paginate.Start: paginate.Label("<<"),
//		paginate.End:   nil,
//	})
func Label(s string) *string {
	return &s
}
