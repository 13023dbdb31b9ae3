package paginate

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// LinkKind tells page links, the current page and bookends apart.
type LinkKind int

const (
	LinkPage LinkKind = iota
	LinkCurrent
	LinkStart
	LinkPrevious
	LinkNext
	LinkEnd
)

func (k LinkKind) String() string {
	switch k {
	case LinkPage:
		return "page"
	case LinkCurrent:
		return "current"
	case LinkStart:
		return "start"
	case LinkPrevious:
		return "previous"
	case LinkNext:
		return "next"
	case LinkEnd:
		return "end"
	default:
		return "unknown"
	}
}

var bookendLinkKinds = map[BookendKind]LinkKind{
	Start:    LinkStart,
	Previous: LinkPrevious,
	Next:     LinkNext,
	End:      LinkEnd,
}

// Link is one rendered fragment of a link range.
type Link struct {
	Kind  LinkKind
	Page  int    // target page; the page itself for LinkCurrent
	Label string // inner markup, already HTML
	Href  string // empty for LinkCurrent
	Class string
}

// Current reports whether the fragment is the inert current-page marker.
func (l Link) Current() bool {
	return l.Kind == LinkCurrent
}

// String renders the fragment as markup.
func (l Link) String() string {
	var b strings.Builder
	if l.Current() {
		b.WriteString("<span")
		writeClass(&b, l.Class)
		b.WriteString(">")
		b.WriteString(l.Label)
		b.WriteString("</span>")
		return b.String()
	}

	b.WriteString("<a")
	writeClass(&b, l.Class)
	b.WriteString(` href="`)
	b.WriteString(templ.EscapeString(l.Href))
	b.WriteString(`">`)
	b.WriteString(l.Label)
	b.WriteString("</a>")
	return b.String()
}

func writeClass(b *strings.Builder, class string) {
	if class == "" {
		return
	}
	b.WriteString(` class="`)
	b.WriteString(templ.EscapeString(class))
	b.WriteString(`"`)
}

// RenderLinks lays out the fragments for w: the start and previous
// bookends, the page numbers Start..End, then the next and end bookends.
// Bookends appear only when the window allows them and their label is set.
// An empty window renders nothing.
func RenderLinks(w Window, cfg Config, rc RequestContext) []Link {
	if w.Empty() {
		return nil
	}

	links := make([]Link, 0, w.End-w.Start+5)
	bookend := func(kind BookendKind, page int) {
		label, ok := cfg.Bookends.Label(kind)
		if !ok {
			return
		}
		links = append(links, Link{
			Kind:  bookendLinkKinds[kind],
			Page:  page,
			Label: label,
			Href:  rc.PageURL(cfg.QueryKey, page),
			Class: cfg.ClassOn,
		})
	}

	if w.HasPrev {
		bookend(Start, 1)
		bookend(Previous, w.CurrentPage-1)
	}

	for i := w.Start; i <= w.End; i++ {
		if i == w.CurrentPage {
			links = append(links, Link{
				Kind:  LinkCurrent,
				Page:  i,
				Label: strconv.Itoa(i),
				Class: cfg.ClassOff,
			})
			continue
		}
		links = append(links, Link{
			Kind:  LinkPage,
			Page:  i,
			Label: strconv.Itoa(i),
			Href:  rc.PageURL(cfg.QueryKey, i),
			Class: cfg.ClassOn,
		})
	}

	if w.HasNext {
		bookend(Next, w.CurrentPage+1)
		bookend(End, w.NumberOfPages)
	}

	return links
}

// LinkStrings renders every fragment.
func LinkStrings(links []Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}
	return out
}

// WrapLinks wraps every fragment in tag. The current-page wrapper gets
// classOn and link wrappers get classOff; an empty class adds no attribute.
// It maps over the unwrapped fragments, so repeated calls return the same
// strings.
func WrapLinks(links []Link, tag, classOn, classOff string) []string {
	out := make([]string, len(links))
	for i, l := range links {
		class := classOff
		if l.Current() {
			class = classOn
		}
		var b strings.Builder
		b.WriteString("<")
		b.WriteString(tag)
		writeClass(&b, class)
		b.WriteString(">")
		b.WriteString(l.String())
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">")
		out[i] = b.String()
	}
	return out
}
