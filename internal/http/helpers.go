package http

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/google/uuid"
)

const defaultPerPage = 15

// envelope is the response shape shared by every JSON endpoint.
type envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Meta    *pageMeta         `json:"meta,omitempty"`
}

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

var errBadRequest = errors.New("bad request")

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{Message: message})
}

func mapError(err error) (int, envelope) {
	if err == nil {
		return http.StatusInternalServerError, envelope{Message: "unknown error"}
	}

	if isNotFound(err) {
		return http.StatusNotFound, envelope{Message: err.Error()}
	}

	if errors.Is(err, pages.ErrSlugExists) ||
		errors.Is(err, sections.ErrSectionIDExists) ||
		errors.Is(err, domains.ErrDomainExists) ||
		errors.Is(err, catalog.ErrTypeExists) ||
		errors.Is(err, orders.ErrOrderNumberTaken) {
		return http.StatusConflict, envelope{Message: err.Error()}
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) ||
		goerrors.IsCategory(err, goerrors.CategoryValidation) ||
		errors.Is(err, pages.ErrInvalidPage) ||
		errors.Is(err, pages.ErrStatusInvalid) ||
		errors.Is(err, pages.ErrSlugInvalid) ||
		errors.Is(err, sections.ErrInvalidSection) ||
		errors.Is(err, sections.ErrInvalidOrder) ||
		errors.Is(err, orders.ErrInvalidOrder) ||
		errors.Is(err, orders.ErrStatusInvalid) ||
		errors.Is(err, domains.ErrInvalidDomain) ||
		errors.Is(err, domains.ErrPageNotPublished) ||
		errors.Is(err, catalog.ErrTypeRequired) ||
		errors.Is(err, catalog.ErrNameRequired) ||
		errors.Is(err, catalog.ErrDefaultsInvalid) ||
		errors.Is(err, catalog.ErrSchemaInvalid) {
		return http.StatusUnprocessableEntity, envelope{
			Message: "Validation failed",
			Errors:  pages.ValidationErrors(err),
		}
	}

	if errors.Is(err, errBadRequest) ||
		errors.Is(err, pages.ErrPageRequired) ||
		errors.Is(err, pages.ErrSlugRequired) ||
		errors.Is(err, sections.ErrSectionRequired) ||
		errors.Is(err, orders.ErrOrderRequired) ||
		errors.Is(err, domains.ErrDomainRequired) ||
		errors.Is(err, catalog.ErrIDRequired) {
		return http.StatusBadRequest, envelope{Message: err.Error()}
	}

	return http.StatusInternalServerError, envelope{Message: err.Error()}
}

func isNotFound(err error) bool {
	return pages.IsNotFound(err) ||
		sections.IsNotFound(err) ||
		orders.IsNotFound(err) ||
		domains.IsNotFound(err) ||
		catalog.IsNotFound(err)
}

// pathUUID parses the {name} path value, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(r.PathValue(name)))
	if err != nil || id == uuid.Nil {
		writeBadRequest(w, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseBoolQuery(value string) *bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil
	}
	return &parsed
}

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}

// paginate slices items by the page and per_page query values and writes
// the envelope with meta.
func paginate[T any](w http.ResponseWriter, r *http.Request, items []T) {
	query := r.URL.Query()
	perPage := parsePositiveInt(query.Get("per_page"), defaultPerPage)
	current := parsePositiveInt(query.Get("page"), 1)

	total := len(items)
	lastPage := int(math.Max(1, math.Ceil(float64(total)/float64(perPage))))
	start := (current - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	window := make([]T, end-start)
	copy(window, items[start:end])

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    window,
		Meta:    &pageMeta{CurrentPage: current, PerPage: perPage, Total: total, LastPage: lastPage},
	})
}

func unavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, envelope{Message: "service unavailable"})
}
