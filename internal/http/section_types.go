package http

import (
	"net/http"

	"github.com/goliatone/go-landing/internal/catalog"
)

func (api *API) registerSectionTypeRoutes(mux *http.ServeMux, base string) {
	if api.catalog == nil {
		return
	}
	root := joinPath(base, "section-types")

	mux.HandleFunc("GET "+root, api.handleListSectionTypes)
	mux.HandleFunc("POST "+root, api.handleCreateSectionType)
	mux.HandleFunc("GET "+joinPath(root, "{id}"), api.handleGetSectionType)
	mux.HandleFunc("PUT "+joinPath(root, "{id}"), api.handleUpdateSectionType)
	mux.HandleFunc("DELETE "+joinPath(root, "{id}"), api.handleDeleteSectionType)
}

func (api *API) handleListSectionTypes(w http.ResponseWriter, r *http.Request) {
	includeInactive := false
	if flag := parseBoolQuery(r.URL.Query().Get("include_inactive")); flag != nil {
		includeInactive = *flag
	}
	records, err := api.catalog.List(r.Context(), catalog.ListOptions{IncludeInactive: includeInactive})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", records)
}

func (api *API) handleCreateSectionType(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	record, err := api.catalog.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Section type created successfully", record)
}

func (api *API) handleGetSectionType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	record, err := api.catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", record)
}

func (api *API) handleUpdateSectionType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req catalog.UpdateTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = id
	record, err := api.catalog.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Section type updated successfully", record)
}

func (api *API) handleDeleteSectionType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := api.catalog.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Section type deleted successfully")
}
