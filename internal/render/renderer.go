package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/util"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/yosssi/gohtml"
)

const defaultOrderEndpoint = "/api/order"

// Renderer dispatches sections to their variant by type key. Types without
// a variant render a visible placeholder instead of failing.
type Renderer struct {
	variants map[string]Variant
	aliases  map[string]string
	tmpl     *template.Template
	logger   interfaces.Logger
	pretty   bool
}

type options struct {
	orderEndpoint string
	pretty        bool
	logger        interfaces.Logger
	extra         []Variant
}

type Option func(*options)

// WithOrderEndpoint sets where embedded order forms post in view mode.
func WithOrderEndpoint(endpoint string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			o.orderEndpoint = trimmed
		}
	}
}

// WithPretty indents full page output.
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithVariant registers an additional variant, replacing a built-in one
// with the same key.
func WithVariant(variant Variant) Option {
	return func(o *options) {
		if variant != nil {
			o.extra = append(o.extra, variant)
		}
	}
}

// New builds a renderer with the built-in section variants.
func New(opts ...Option) (*Renderer, error) {
	cfg := options{
		orderEndpoint: defaultOrderEndpoint,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}

	r := &Renderer{
		variants: make(map[string]Variant),
		aliases:  builtinAliases(),
		tmpl:     tmpl,
		logger:   cfg.logger,
		pretty:   cfg.pretty,
	}
	for _, spec := range builtinSpecs() {
		r.variants[spec.key] = &templateVariant{spec: spec, tmpl: tmpl, orderEndpoint: cfg.orderEndpoint}
	}
	for _, variant := range cfg.extra {
		if err := r.register(variant); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is New for wiring code where the embedded templates are known good.
func MustNew(opts ...Option) *Renderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) register(variant Variant) error {
	key := normalizeKey(variant.Key())
	if key == "" {
		return ErrVariantKeyRequired
	}
	r.variants[key] = variant
	return nil
}

// Variant resolves the variant for a type key, following aliases.
func (r *Renderer) Variant(typeKey string) (Variant, bool) {
	variant, ok := r.variants[r.resolve(typeKey)]
	return variant, ok
}

// Variants lists registered variants ordered by key.
func (r *Renderer) Variants() []Variant {
	keys := make([]string, 0, len(r.variants))
	for key := range r.variants {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Variant, 0, len(keys))
	for _, key := range keys {
		out = append(out, r.variants[key])
	}
	return out
}

// Render renders one section. An unknown type yields a placeholder and no error.
// The section is never modified.
func (r *Renderer) Render(section document.Section, mode Mode) (Output, error) {
	if mode != ModeEdit {
		mode = ModeView
	}
	out := Output{SectionID: section.ID, Type: section.Type, Mode: mode}

	variant, ok := r.Variant(section.Type)
	if !ok {
		html, err := r.wrap("unknown", section, mode, "")
		if err != nil {
			return out, err
		}
		out.HTML = html
		out.Unknown = true
		return out, nil
	}

	body, err := variant.Render(util.DeepCloneMap(section.Data), mode)
	if err != nil {
		out.Failed = true
		return out, err
	}
	html, err := r.wrap("section", section, mode, body)
	if err != nil {
		out.Failed = true
		return out, err
	}
	out.HTML = html
	return out, nil
}

// RenderDocument renders every section in order. A section that fails is
// replaced by an error placeholder so the rest of the page still renders.
func (r *Renderer) RenderDocument(sections []document.Section, mode Mode) Page {
	page := Page{Sections: make([]Output, 0, len(sections))}
	var buf strings.Builder
	for _, section := range sections {
		out, err := r.Render(section, mode)
		if err != nil {
			logging.WithDocument(r.logger, "", section.ID).Warn("render.section.failed", "type", section.Type, "error", err)
			html, wrapErr := r.wrap("failed", section, out.Mode, "")
			if wrapErr != nil {
				html = template.HTML(template.HTMLEscapeString("Section could not be rendered: " + section.Type))
			}
			out.HTML = html
			out.Failed = true
		}
		if out.Unknown {
			r.logger.Debug("render.section.unknown", "type", section.Type, "instance_id", section.ID)
		}
		page.Sections = append(page.Sections, out)
		buf.WriteString(string(out.HTML))
		buf.WriteByte('\n')
	}

	html := buf.String()
	if r.pretty {
		html = gohtml.Format(html)
	}
	page.HTML = template.HTML(html)
	return page
}

type wrapperView struct {
	ID   string
	Type string
	Edit bool
	Body template.HTML
}

func (r *Renderer) wrap(name string, section document.Section, mode Mode, body template.HTML) (template.HTML, error) {
	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, name, wrapperView{
		ID:   section.ID,
		Type: section.Type,
		Edit: mode == ModeEdit,
		Body: body,
	})
	if err != nil {
		return "", fmt.Errorf("render: %s wrapper: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) resolve(typeKey string) string {
	key := normalizeKey(typeKey)
	if alias, ok := r.aliases[key]; ok {
		return alias
	}
	return key
}

func builtinAliases() map[string]string {
	return map[string]string{"slider": "swiper_slider"}
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
