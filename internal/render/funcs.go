package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/Masterminds/sprig/v3"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var markdownEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))

func parseTemplates() (*template.Template, error) {
	return template.New("landing").Funcs(funcMap()).ParseFS(templateFS, "templates/*.tmpl")
}

func funcMap() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["text"] = textValue
	funcs["field"] = fieldAttr
	funcs["itemField"] = itemFieldAttr
	funcs["markdown"] = markdownHTML
	funcs["isItem"] = isItem
	funcs["count"] = countItems
	return funcs
}

// isItem reports whether a list position holds an object.
func isItem(item map[string]any) bool {
	return item != nil
}

func countItems(items []map[string]any) int {
	n := 0
	for _, item := range items {
		if item != nil {
			n++
		}
	}
	return n
}

// textValue reads data[key] as display text.
func textValue(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// fieldAttr emits the editor hook for a top-level field. View mode emits nothing.
func fieldAttr(edit bool, name string) template.HTMLAttr {
	if !edit {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-field="%s" contenteditable="true"`, template.HTMLEscapeString(name)))
}

func itemFieldAttr(edit bool, list string, index int, name string) template.HTMLAttr {
	if !edit {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-list="%s" data-item-index="%d" data-field="%s" contenteditable="true"`,
		template.HTMLEscapeString(list), index, template.HTMLEscapeString(name)))
}

// markdownHTML renders long-form text. Raw HTML in the source is dropped.
func markdownHTML(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}
