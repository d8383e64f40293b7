package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/source"
	"github.com/Alp4ka/pagetable/view"
)

// PageFunc returns the view of a 1-based page. Out of range pages are clamped.
type PageFunc func(ctx context.Context, page int) (pagetable.View[source.User], error)

// TablePages serves pages from an in-memory table. The table's own current
// page is not moved.
func TablePages(tbl *view.Table[source.User]) PageFunc {
	return func(_ context.Context, page int) (pagetable.View[source.User], error) {
		if err := tbl.Err(); err != nil {
			return pagetable.View[source.User]{}, err
		}

		return tbl.ViewAt(page), nil
	}
}

// GormPages serves pages straight from a SQL table, one LIMIT/OFFSET query per
// request.
func GormPages(src *source.Gorm[source.User], itemsPerPage int) PageFunc {
	return func(ctx context.Context, page int) (pagetable.View[source.User], error) {
		state := pagetable.PageState{
			CurrentPage:  page,
			ItemsPerPage: pagetable.NormalizeItemsPerPage(itemsPerPage),
		}

		return src.LoadPage(ctx, state)
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Health handles liveness probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListUsers handles page requests.
func ListUsers(pages PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if v := r.URL.Query().Get("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{
					Error:   "invalid_page",
					Message: "page must be an integer",
				})
				return
			}
			page = n
		}

		v, err := pages(r.Context(), page)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Int("page", page).Msg("failed to get page")

			var fetchErr *source.FetchError
			if errors.As(err, &fetchErr) {
				writeJSON(w, http.StatusBadGateway, ErrorResponse{
					Error:   "source_unavailable",
					Message: fetchErr.Error(),
				})
				return
			}

			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
				Error:   "unavailable",
				Message: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
