package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/pages"
)

type pagePayload struct {
	*pages.Page
	PublicURL string `json:"public_url,omitempty"`
}

func (api *API) pagePayload(page *pages.Page) pagePayload {
	payload := pagePayload{Page: page}
	if api.urls != nil {
		payload.PublicURL = api.urls.PublicURL(page)
	}
	return payload
}

func (api *API) registerBuilderRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "page-builder")

	if api.catalog != nil {
		mux.HandleFunc("GET "+joinPath(root, "sections"), api.handleBuilderSectionTypes)
	}
	if api.pages == nil {
		return
	}
	mux.HandleFunc("GET "+joinPath(root, "pages"), api.handleListPages)
	mux.HandleFunc("GET "+joinPath(root, "slug/{slug}"), api.handleGetPageBySlug)
	mux.HandleFunc("GET "+joinPath(root, "{id}"), api.handleGetPage)
	mux.HandleFunc("POST "+root, api.handleCreatePage)
	mux.HandleFunc("POST "+joinPath(root, "{id}"), api.handleUpdatePage)
	mux.HandleFunc("DELETE "+joinPath(root, "{id}"), api.handleDeletePage)
	mux.HandleFunc("POST "+joinPath(root, "{id}/duplicate"), api.handleDuplicatePage)
}

func (api *API) handleBuilderSectionTypes(w http.ResponseWriter, r *http.Request) {
	records, err := api.catalog.List(r.Context(), catalog.ListOptions{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", records)
}

func (api *API) handleListPages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := api.pages.List(r.Context(), pages.ListOptions{
		Status: strings.TrimSpace(query.Get("status")),
		Search: strings.TrimSpace(query.Get("search")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	payload := make([]pagePayload, 0, len(records))
	for _, record := range records {
		payload = append(payload, api.pagePayload(record))
	}
	paginate(w, r, payload)
}

func (api *API) handleGetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, err := api.pages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", api.pagePayload(page))
}

func (api *API) handleGetPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := api.pages.GetBySlug(r.Context(), r.PathValue("slug"), pages.LookupOptions{PublishedOnly: true})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", api.pagePayload(page))
}

func (api *API) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req pages.SaveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = nil
	page, err := api.pages.Save(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Page created successfully", api.pagePayload(page))
}

func (api *API) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req pages.SaveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = &id
	page, err := api.pages.Save(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Page updated successfully", api.pagePayload(page))
}

func (api *API) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := api.pages.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Page deleted successfully")
}

func (api *API) handleDuplicatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	page, err := api.pages.Duplicate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Page duplicated successfully", api.pagePayload(page))
}
