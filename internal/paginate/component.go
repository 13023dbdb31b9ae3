package paginate

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LinksComponent renders links joined by separator so they can be embedded
// in templ views and htmx partials.
func LinksComponent(links []Link, separator string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, l := range links {
			if i > 0 {
				if _, err := io.WriteString(w, separator); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, l.String()); err != nil {
				return err
			}
		}
		return nil
	})
}

// WrappedLinksComponent is LinksComponent with every fragment wrapped as by
// WrapLinks, for example in <li> elements.
func WrappedLinksComponent(links []Link, tag, classOn, classOff string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, s := range WrapLinks(links, tag, classOn, classOff) {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}
