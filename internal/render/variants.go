package render

import (
	"bytes"
	"fmt"
	"html/template"
)

type variantSpec struct {
	key      string
	caps     Capabilities
	fields   []Field
	lists    map[string][]map[string]any
	fallback map[string]string
}

func textField(name, label string) Field {
	return Field{Name: name, Label: label, Kind: FieldText}
}

func listField(list, name, label string, kind FieldKind) Field {
	return Field{Name: name, Label: label, Kind: kind, List: list}
}

func builtinSpecs() map[string]variantSpec {
	specs := []variantSpec{
		{
			key:  "hero",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasCallToAction: true},
			fields: []Field{
				textField("title", "Title"),
				{Name: "subtitle", Label: "Subtitle", Kind: FieldTextarea},
				textField("primaryButtonText", "Primary button"),
				textField("secondaryButtonText", "Secondary button"),
				{Name: "image", Label: "Image", Kind: FieldImage},
			},
			fallback: map[string]string{
				"image": "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
		},
		{
			key:  "product_showcase",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasMediaList: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				listField("products", "name", "Product name", FieldText),
				listField("products", "price", "Price", FieldText),
				listField("products", "description", "Description", FieldTextarea),
				listField("products", "image", "Image", FieldImage),
			},
			lists: map[string][]map[string]any{"products": defaultProducts},
		},
		{
			key:  "testimonial",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasMediaList: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				listField("testimonials", "name", "Name", FieldText),
				listField("testimonials", "role", "Role", FieldText),
				listField("testimonials", "content", "Quote", FieldTextarea),
				listField("testimonials", "avatar", "Avatar", FieldImage),
			},
			lists: map[string][]map[string]any{"testimonials": defaultTestimonials},
		},
		{
			key:  "newsletter",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasCallToAction: true, HasFormFields: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				textField("buttonText", "Button"),
			},
		},
		{
			key:  "image_text",
			caps: Capabilities{HasTitle: true, HasCallToAction: true},
			fields: []Field{
				textField("title", "Title"),
				{Name: "content", Label: "Content", Kind: FieldMarkdown},
				textField("buttonText", "Button"),
				{Name: "image", Label: "Image", Kind: FieldImage},
				{Name: "imagePosition", Label: "Image position", Kind: FieldSelect, Options: []string{"left", "right"}},
			},
			fallback: map[string]string{
				"image": "https://images.pexels.com/photos/3184360/pexels-photo-3184360.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
		},
		{
			key:  "feature_grid",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasMediaList: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				listField("features", "icon", "Icon", FieldText),
				listField("features", "title", "Feature", FieldText),
				listField("features", "description", "Description", FieldTextarea),
			},
			lists: map[string][]map[string]any{"features": defaultFeatures},
		},
		{
			key:  "cta",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasCallToAction: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				textField("primaryButtonText", "Primary button"),
				textField("secondaryButtonText", "Secondary button"),
			},
		},
		{
			key:  "product_details",
			caps: Capabilities{HasTitle: true, HasCallToAction: true, HasMediaList: true},
			fields: []Field{
				textField("title", "Product name"),
				textField("price", "Price"),
				{Name: "description", Label: "Description", Kind: FieldMarkdown},
				textField("buttonText", "Button"),
				{Name: "image", Label: "Image", Kind: FieldImage},
				listField("features", "label", "Feature", FieldText),
			},
			lists: map[string][]map[string]any{"features": defaultProductFeatures},
			fallback: map[string]string{
				"image": "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
		},
		{
			key:  "order_form",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasCallToAction: true, HasFormFields: true},
			fields: []Field{
				textField("title", "Title"),
				textField("subtitle", "Subtitle"),
				textField("buttonText", "Button"),
				textField("totalPrice", "Total price"),
			},
		},
		{
			key:  "swiper_slider",
			caps: Capabilities{HasTitle: true, HasSubtitle: true, HasMediaList: true, HasCallToAction: true},
			fields: []Field{
				listField("slides", "title", "Slide title", FieldText),
				listField("slides", "subtitle", "Slide subtitle", FieldText),
				listField("slides", "image", "Slide image", FieldImage),
				listField("slides", "buttonText", "Slide button", FieldText),
			},
			lists: map[string][]map[string]any{"slides": defaultSlides},
		},
	}

	out := make(map[string]variantSpec, len(specs))
	for _, spec := range specs {
		out[spec.key] = spec
	}
	return out
}

// templateVariant renders a built-in section type from the embedded templates.
type templateVariant struct {
	spec          variantSpec
	tmpl          *template.Template
	orderEndpoint string
}

type variantView struct {
	Edit          bool
	Data          map[string]any
	Items         map[string][]map[string]any
	Fallback      map[string]string
	OrderEndpoint string
}

func (v *templateVariant) Key() string { return v.spec.key }

func (v *templateVariant) Capabilities() Capabilities { return v.spec.caps }

func (v *templateVariant) Fields() []Field {
	out := make([]Field, len(v.spec.fields))
	copy(out, v.spec.fields)
	return out
}

func (v *templateVariant) Render(data map[string]any, mode Mode) (template.HTML, error) {
	if data == nil {
		data = map[string]any{}
	}
	items := make(map[string][]map[string]any, len(v.spec.lists))
	for list, fallback := range v.spec.lists {
		items[list] = itemsOrDefault(data, list, fallback)
	}
	fallback := v.spec.fallback
	if fallback == nil {
		fallback = map[string]string{}
	}

	view := variantView{
		Edit:          mode == ModeEdit,
		Data:          data,
		Items:         items,
		Fallback:      fallback,
		OrderEndpoint: v.orderEndpoint,
	}
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, v.spec.key, view); err != nil {
		return "", fmt.Errorf("render: %s: %w", v.spec.key, err)
	}
	return template.HTML(buf.String()), nil
}
