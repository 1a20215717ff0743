package book

import (
	"context"
	"errors"
	"net/http"

	"hobbiesapi/internal/httpx"
	"hobbiesapi/internal/logging"
	"hobbiesapi/internal/platform/goodreads"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /book/{id}
// @Summary Get book details
// @Description Fetches a GoodReads book and returns its normalized summary
// @Tags books
// @Produce json
// @Param id path string true "GoodReads book id"
// @Success 200 {object} map[string]goodreads.BookSummary
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /book/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "id is required", nil)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, map[string]goodreads.BookSummary{"book": b})
}

// Search handles GET /search/book/{title}
// @Summary Search books by title
// @Tags books
// @Produce json
// @Param title path string true "Title, at least 3 characters"
// @Success 200 {array} goodreads.SearchResultSummary
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /search/book/{title} [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.PathValue("title"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, results)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrQueryTooShort):
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest,
			"Title must be at least 3 characters", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Book not found", nil)
	case errors.Is(err, context.Canceled):
	case errors.Is(err, ErrUpstream):
		logging.Ctx(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("goodreads request failed")
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Upstream provider error", nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("book request")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
	}
}
