package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vantage-crm/vantage/pkg/listview"
	"github.com/vantage-crm/vantage/pkg/serrors"
)

// listPayload is the envelope every list endpoint returns.
type listPayload struct {
	Items      interface{} `json:"items"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
	Page       int         `json:"page"`
}

// bulkIDsRequest is the body of bulk endpoints operating on checked rows.
type bulkIDsRequest struct {
	IDs []string `json:"ids"`
}

// apiError is the error envelope every endpoint returns on failure. The meta
// block carries the request id so a client report can be matched to logs.
type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, &apiError{
		Code:    code,
		Message: message,
		Meta: map[string]string{
			"request_id": w.Header().Get("X-Request-Id"),
			"path":       r.URL.Path,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs serrors.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"code":   "VALIDATION_ERROR",
		"errors": errs,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func bulkUUIDs(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	var body bulkIDsRequest
	if !decodeBody(w, r, &body) {
		return nil, false
	}
	ids := make([]uuid.UUID, 0, len(body.IDs))
	for _, raw := range body.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "INVALID_ID", "ids must be valid UUIDs")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// listStateFromQuery maps the list query parameters onto pipeline state:
// q for search, one query parameter per named filter, sort and dir for
// ordering and page for pagination.
func listStateFromQuery(r *http.Request, pageSize int, filterKeys ...string) listview.State {
	q := r.URL.Query()
	state := listview.NewState(pageSize)
	state.Search = q.Get("q")
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			state.Filters[key] = v
		}
	}
	if column := q.Get("sort"); column != "" {
		state.SortColumn = column
		if q.Get("dir") == string(listview.SortDesc) {
			state.SortDir = listview.SortDesc
		}
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		state.Page = page
	}
	return state
}

func writeWorkbook(w http.ResponseWriter, filename string, workbook []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
