package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-landing/internal/sections"
	"github.com/google/uuid"
)

type reorderPayload struct {
	Sections []sections.OrderEntry `json:"sections"`
}

func (api *API) registerSectionRoutes(mux *http.ServeMux, base string) {
	if api.sections == nil {
		return
	}
	root := joinPath(base, "sections")

	mux.HandleFunc("GET "+root, api.handleListSections)
	mux.HandleFunc("POST "+root, api.handleCreateSection)
	mux.HandleFunc("GET "+joinPath(root, "statistics"), api.handleSectionStatistics)
	mux.HandleFunc("POST "+joinPath(root, "update-order"), api.handleReorderSections)
	mux.HandleFunc("GET "+joinPath(root, "type/{type}"), api.handleSectionsByType)
	mux.HandleFunc("GET "+joinPath(root, "page/{pageId}"), api.handleSectionsByPage)
	mux.HandleFunc("GET "+joinPath(root, "{id}"), api.handleGetSection)
	mux.HandleFunc("PUT "+joinPath(root, "{id}"), api.handleUpdateSection)
	mux.HandleFunc("DELETE "+joinPath(root, "{id}"), api.handleDeleteSection)
	mux.HandleFunc("POST "+joinPath(root, "{id}/duplicate"), api.handleDuplicateSection)
	mux.HandleFunc("POST "+joinPath(root, "{id}/toggle-status"), api.handleToggleSection)
}

func (api *API) handleListSections(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := sections.ListOptions{
		Type:   strings.TrimSpace(query.Get("type")),
		Active: parseBoolQuery(query.Get("is_active")),
	}
	if raw := strings.TrimSpace(query.Get("landing_page_id")); raw != "" {
		pageID, err := uuid.Parse(raw)
		if err != nil {
			writeBadRequest(w, "invalid landing_page_id")
			return
		}
		opts.PageID = &pageID
	}
	api.listSections(w, r, opts)
}

func (api *API) handleSectionsByType(w http.ResponseWriter, r *http.Request) {
	api.listSections(w, r, sections.ListOptions{Type: r.PathValue("type")})
}

func (api *API) handleSectionsByPage(w http.ResponseWriter, r *http.Request) {
	pageID, ok := pathUUID(w, r, "pageId")
	if !ok {
		return
	}
	api.listSections(w, r, sections.ListOptions{PageID: &pageID})
}

func (api *API) listSections(w http.ResponseWriter, r *http.Request, opts sections.ListOptions) {
	records, err := api.sections.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", records)
}

func (api *API) handleSectionStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := api.sections.Statistics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", stats)
}

func (api *API) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	record, err := api.sections.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", record)
}

func (api *API) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	var req sections.CreateSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	record, err := api.sections.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Section created successfully", record)
}

func (api *API) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req sections.UpdateSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = id
	record, err := api.sections.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Section updated successfully", record)
}

func (api *API) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := api.sections.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Section deleted successfully")
}

func (api *API) handleDuplicateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	record, err := api.sections.Duplicate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Section duplicated successfully", record)
}

func (api *API) handleToggleSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	record, err := api.sections.ToggleStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Section status updated successfully", record)
}

func (api *API) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var payload reorderPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := api.sections.UpdateOrder(r.Context(), payload.Sections); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Section order updated successfully")
}
