package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-landing/internal/orders"
)

const dateLayout = "2006-01-02"

func (api *API) registerOrderRoutes(mux *http.ServeMux, base string) {
	if api.orders == nil {
		return
	}
	root := joinPath(base, "orders")

	mux.HandleFunc("GET "+root, api.handleListOrders)
	mux.HandleFunc("POST "+root, api.handleSubmitOrder)
	mux.HandleFunc("GET "+joinPath(root, "statistics"), api.handleOrderStatistics)
	mux.HandleFunc("GET "+joinPath(root, "{id}"), api.handleGetOrder)
	mux.HandleFunc("PUT "+joinPath(root, "{id}"), api.handleUpdateOrder)
	mux.HandleFunc("DELETE "+joinPath(root, "{id}"), api.handleDeleteOrder)

	// order form sections post here
	mux.HandleFunc("POST "+joinPath(base, "order"), api.handleSubmitOrder)
}

func (api *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := orders.ListOptions{
		Status: strings.TrimSpace(query.Get("status")),
		Search: strings.TrimSpace(query.Get("search")),
	}
	for key, target := range map[string]**time.Time{"date_from": &opts.DateFrom, "date_to": &opts.DateTo} {
		raw := strings.TrimSpace(query.Get(key))
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeBadRequest(w, "invalid "+key)
			return
		}
		*target = &parsed
	}

	records, err := api.orders.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	paginate(w, r, records)
}

func (api *API) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	order, err := api.orders.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Order created successfully", order)
}

func (api *API) handleOrderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := api.orders.Statistics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", stats)
}

func (api *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	order, err := api.orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", order)
}

func (api *API) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req orders.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	req.ID = id
	order, err := api.orders.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Order updated successfully", order)
}

func (api *API) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := api.orders.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Order deleted successfully")
}
