package media

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"hobbiesapi/internal/httpx"
	"hobbiesapi/internal/logging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Anime handles GET /anime/{id}
// @Summary Get anime details
// @Description Proxies the Jikan anime object
// @Tags media
// @Produce json
// @Param id path string true "MyAnimeList id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /anime/{id} [get]
func (h *HTTPHandler) Anime(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, KindAnime)
}

// Manga handles GET /manga/{id}
// @Summary Get manga details
// @Tags media
// @Produce json
// @Param id path string true "MyAnimeList id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /manga/{id} [get]
func (h *HTTPHandler) Manga(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, KindManga)
}

// Movie handles GET /movie/{id}
// @Summary Get movie details
// @Description Proxies the TMDB movie object
// @Tags media
// @Produce json
// @Param id path string true "TMDB id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /movie/{id} [get]
func (h *HTTPHandler) Movie(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, KindMovie)
}

// SearchAnime handles GET /search/anime/{title}
// @Summary Search anime by title
// @Tags media
// @Produce json
// @Param title path string true "Title, at least 3 characters"
// @Success 200 {array} map[string]any
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /search/anime/{title} [get]
func (h *HTTPHandler) SearchAnime(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, KindAnime)
}

// SearchManga handles GET /search/manga/{title}
// @Summary Search manga by title
// @Tags media
// @Produce json
// @Param title path string true "Title, at least 3 characters"
// @Success 200 {array} map[string]any
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /search/manga/{title} [get]
func (h *HTTPHandler) SearchManga(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, KindManga)
}

// SearchMovie handles GET /search/movie/{title}
// @Summary Search movies by title
// @Tags media
// @Produce json
// @Param title path string true "Title, at least 3 characters"
// @Success 200 {array} map[string]any
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /search/movie/{title} [get]
func (h *HTTPHandler) SearchMovie(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, KindMovie)
}

func (h *HTTPHandler) get(w http.ResponseWriter, r *http.Request, kind Kind) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "id is required", nil)
		return
	}

	raw, err := h.service.Get(r.Context(), kind, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, map[string]json.RawMessage{string(kind): raw})
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, kind Kind) {
	raw, err := h.service.Search(r.Context(), kind, r.PathValue("title"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, r, http.StatusOK, raw)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrQueryTooShort):
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest,
			"Title must be at least 3 characters", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Not found", nil)
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to write
	case errors.Is(err, ErrUpstream):
		logging.Ctx(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("upstream request failed")
		httpx.JSONError(w, r, http.StatusBadGateway, httpx.CodeUpstream, "Upstream provider error", nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("media request")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
	}
}
