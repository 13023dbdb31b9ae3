package handler

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execFunc(t *testing.T, text string, data any) string {
	t.Helper()
	tmpl, err := template.New("t").Funcs(TemplateFuncs()).Parse(text)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, tmpl.Execute(&b, data))
	return b.String()
}

func TestTemplateFuncs(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		data any
		want string
	}{
		{"add", `{{add 120 1}}`, nil, "121"},
		{"title", `{{title "catalog items"}}`, nil, "Catalog Items"},
		{"plural one", `{{plural 1 "item" "items"}}`, nil, "item"},
		{"plural many", `{{plural 0 "item" "items"}}`, nil, "items"},
		{"date time", `{{formatDateTime .}}`, ts, "Mar 5, 2024 2:07 PM"},
		{"iso", `{{formatDateISO .}}`, ts, "2024-03-05T14:07:00Z"},
		{"zero time", `{{formatDateTime .}}`, time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, execFunc(t, tt.text, tt.data))
		})
	}
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("items"))
}
