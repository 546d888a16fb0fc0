package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-landing/internal/domains"
)

func (api *API) registerDomainRoutes(mux *http.ServeMux, base string) {
	if api.domains == nil {
		return
	}
	root := joinPath(base, "domains")

	mux.HandleFunc("GET "+root, api.handleListDomains)
	mux.HandleFunc("POST "+root, api.handleCreateDomain)
	mux.HandleFunc("GET "+joinPath(root, "{id}"), api.handleGetDomain)
	mux.HandleFunc("PUT "+joinPath(root, "{id}"), api.handleUpdateDomain)
	mux.HandleFunc("DELETE "+joinPath(root, "{id}"), api.handleDeleteDomain)
	mux.HandleFunc("GET "+joinPath(base, "domain-lookup"), api.handleDomainLookup)
}

func (api *API) handleListDomains(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := api.domains.List(r.Context(), domains.ListOptions{
		Active: parseBoolQuery(query.Get("is_active")),
		Search: strings.TrimSpace(query.Get("search")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", records)
}

func (api *API) handleCreateDomain(w http.ResponseWriter, r *http.Request) {
	var req domains.CreateDomainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	record, err := api.domains.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Custom domain created successfully", record)
}

func (api *API) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	record, err := api.domains.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", record)
}

func (api *API) handleUpdateDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req domains.UpdateDomainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = id
	record, err := api.domains.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Custom domain updated successfully", record)
}

func (api *API) handleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := api.domains.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Custom domain deleted successfully")
}

type domainLookupPayload struct {
	*domains.Domain
	LandingPage *pagePayload `json:"landing_page,omitempty"`
}

// handleDomainLookup resolves an active host to its domain record and,
// when pages are mounted, the landing page it serves.
func (api *API) handleDomainLookup(w http.ResponseWriter, r *http.Request) {
	host := strings.TrimSpace(r.URL.Query().Get("domain"))
	if host == "" {
		writeBadRequest(w, "domain parameter is required")
		return
	}
	record, err := api.domains.GetByDomain(r.Context(), host)
	if err != nil {
		writeError(w, err)
		return
	}
	payload := domainLookupPayload{Domain: record}
	if api.pages != nil {
		page, err := api.pages.Get(r.Context(), record.LandingPageID)
		if err != nil {
			writeError(w, err)
			return
		}
		landing := api.pagePayload(page)
		payload.LandingPage = &landing
	}
	writeData(w, http.StatusOK, "", payload)
}
