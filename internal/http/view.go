package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/render"
)

//go:embed templates/page.html
var shellFS embed.FS

var pageShell = template.Must(template.ParseFS(shellFS, "templates/page.html"))

type pageView struct {
	ID              string
	Title           string
	MetaDescription string
	MetaKeywords    string
	CanonicalURL    string
	Body            template.HTML
}

func (api *API) registerViewRoutes(mux *http.ServeMux) {
	if api.pages == nil || api.renderer == nil {
		return
	}
	mux.HandleFunc("GET /view/{slug}", api.handleViewPage)
}

// handleViewPage renders a published page as a standalone HTML document.
func (api *API) handleViewPage(w http.ResponseWriter, r *http.Request) {
	page, err := api.pages.GetBySlug(r.Context(), r.PathValue("slug"), pages.LookupOptions{PublishedOnly: true})
	if err != nil {
		status, _ := mapError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	rendered := api.renderer.RenderDocument(page.Sections, render.ModeView)
	view := pageView{
		ID:              page.ID.String(),
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		MetaKeywords:    page.MetaKeywords,
		Body:            rendered.HTML,
	}
	if api.urls != nil {
		view.CanonicalURL = api.urls.PublicURL(page)
	}

	var buf bytes.Buffer
	if err := pageShell.Execute(&buf, view); err != nil {
		api.logger.Error("view.render.failed", "page_id", page.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
