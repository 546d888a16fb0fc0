package pages

import (
	"context"

	"github.com/goliatone/go-landing/internal/builder"
	"github.com/goliatone/go-landing/internal/document"
	"github.com/google/uuid"
)

// GatewayAdapter exposes a page Service as the builder's load/save boundary.
type GatewayAdapter struct {
	service Service
}

var _ builder.Gateway = (*GatewayAdapter)(nil)

func NewGatewayAdapter(service Service) *GatewayAdapter {
	return &GatewayAdapter{service: service}
}

func (g *GatewayAdapter) Load(ctx context.Context, id uuid.UUID) (*builder.PageDocument, error) {
	page, err := g.service.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDocument(page), nil
}

func (g *GatewayAdapter) LoadBySlug(ctx context.Context, slug string) (*builder.PageDocument, error) {
	page, err := g.service.GetBySlug(ctx, slug, LookupOptions{})
	if err != nil {
		return nil, err
	}
	return ToDocument(page), nil
}

func (g *GatewayAdapter) Save(ctx context.Context, doc builder.PageDocument) (*builder.PageDocument, error) {
	page, err := g.service.Save(ctx, SaveRequestFromDocument(doc))
	if err != nil {
		return nil, err
	}
	return ToDocument(page), nil
}

// ToDocument converts a stored page to its wire shape.
func ToDocument(page *Page) *builder.PageDocument {
	if page == nil {
		return nil
	}
	sections := clonePage(page).Sections
	if sections == nil {
		sections = []document.Section{}
	}
	return &builder.PageDocument{
		ID:              page.ID,
		Title:           page.Title,
		Slug:            page.Slug,
		Status:          page.Status,
		Sections:        sections,
		MetaDescription: page.MetaDescription,
		MetaKeywords:    page.MetaKeywords,
	}
}

// SaveRequestFromDocument maps a wire document to a save request. A nil
// document id creates a page.
func SaveRequestFromDocument(doc builder.PageDocument) SaveRequest {
	req := SaveRequest{
		Title:           doc.Title,
		Slug:            doc.Slug,
		Status:          doc.Status,
		Sections:        doc.Sections,
		MetaDescription: doc.MetaDescription,
		MetaKeywords:    doc.MetaKeywords,
		KeepSlug:        doc.KeepSlug,
	}
	if !doc.IsNew() {
		id := doc.ID
		req.ID = &id
	}
	return req
}
