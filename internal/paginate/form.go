package paginate

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// DefaultInputSeparator sits between the page input and the page count.
const DefaultInputSeparator = "of"

// FormClass is the class attribute of the rendered form.
const FormClass = "paginator-form"

// RenderForm renders a GET form with a numeric page input pre-filled with
// the current page, followed by the separator and the page count. Every
// request parameter except the page key is carried as a hidden input.
func RenderForm(w Window, cfg Config, rc RequestContext, separator string) string {
	var b strings.Builder

	b.WriteString(`<form class="`)
	b.WriteString(FormClass)
	b.WriteString(`" action="`)
	b.WriteString(templ.EscapeString(rc.Path))
	b.WriteString(`" method="get"><div><input type="number" name="`)
	b.WriteString(templ.EscapeString(cfg.QueryKey))
	b.WriteString(`" min="1"`)
	if w.NumberOfPages > 0 {
		b.WriteString(` max="`)
		b.WriteString(strconv.Itoa(w.NumberOfPages))
		b.WriteString(`"`)
	}
	b.WriteString(` size="2" value="`)
	b.WriteString(strconv.Itoa(w.CurrentPage))
	b.WriteString(`" /> `)
	b.WriteString(separator)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(w.NumberOfPages))
	b.WriteString("</div>")

	var hidden strings.Builder
	for _, p := range rc.Without(cfg.QueryKey) {
		for _, v := range p.Values {
			hidden.WriteString(`<input type="hidden" name="`)
			hidden.WriteString(templ.EscapeString(p.Key))
			hidden.WriteString(`" value="`)
			hidden.WriteString(templ.EscapeString(v))
			hidden.WriteString(`" />`)
		}
	}
	if hidden.Len() > 0 {
		b.WriteString("<div>")
		b.WriteString(hidden.String())
		b.WriteString("</div>")
	}

	b.WriteString("</form>")
	return b.String()
}

// Form renders a single page-jump form instead of a list of links.
type Form struct {
	paginator

	inputSeparator string

	form        string
	formVersion int
	computed    bool
}

// NewForm creates a form paginator. The page range is always 1.
func NewForm(total, perPage int) (*Form, error) {
	p, err := newPaginator("paginate.NewForm", total, perPage, 1)
	if err != nil {
		return nil, err
	}
	return &Form{paginator: p, inputSeparator: DefaultInputSeparator}, nil
}

// Kind returns KindForm.
func (f *Form) Kind() Kind {
	return KindForm
}

// SetInputSeparator sets the text between the page input and the page count.
func (f *Form) SetInputSeparator(sep string) {
	f.inputSeparator = sep
	f.version++
}

// InputSeparator returns the text between the page input and the page count.
func (f *Form) InputSeparator() string {
	return f.inputSeparator
}

// FormString calculates page and returns the form markup.
func (f *Form) FormString(page int) string {
	w := f.calculate(page)
	f.form = RenderForm(w, f.cfg, f.request, f.inputSeparator)
	f.formVersion = f.version
	f.computed = true
	return f.form
}

// RequestedFormString renders the page asked for by the bound request.
func (f *Form) RequestedFormString() string {
	return f.FormString(f.RequestedPage())
}

// Render is FormString.
func (f *Form) Render(page int) string {
	return f.FormString(page)
}

// String returns the last computed form, computing it for the current page
// if needed.
func (f *Form) String() string {
	if !f.computed || f.formVersion != f.version {
		return f.FormString(f.currentPage)
	}
	return f.form
}

// Component returns the form as a templ component.
func (f *Form) Component() templ.Component {
	return templ.Raw(f.String())
}
