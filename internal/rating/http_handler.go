package rating

import (
	"errors"
	"net/http"
	"strings"

	"hobbiesapi/internal/httpx"
	"hobbiesapi/internal/logging"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createRatingReq struct {
	MediaID  string `json:"media_id" validate:"required,max=64"`
	Title    string `json:"title" validate:"required,max=300"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=2048"`
	Score    int    `json:"score" validate:"gte=0,lte=10"`
	Status   string `json:"status" validate:"required,oneof=planned in_progress completed dropped on_hold"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type updateRatingReq struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=300"`
	ImageURL *string `json:"image_url" validate:"omitempty,url,max=2048"`
	Score    *int    `json:"score" validate:"omitempty,gte=0,lte=10"`
	Status   *string `json:"status" validate:"omitempty,oneof=planned in_progress completed dropped on_hold"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}

func (req updateRatingReq) patch() Patch {
	p := Patch{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Score:    req.Score,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		s := Status(*req.Status)
		p.Status = &s
	}
	return p
}

// mediaType writes a 400 and returns false for an unknown {media} segment.
func mediaType(w http.ResponseWriter, r *http.Request) (MediaType, bool) {
	mt, err := ParseMediaType(r.PathValue("media"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest,
			"Unknown media type, expected one of anime, manga, book, movie", nil)
		return "", false
	}
	return mt, true
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
}

// ListByUser handles GET /ratings/{media}/user/{uid}
// @Summary List a user's ratings
// @Description Public list of every rating a user made for one media type, oldest first
// @Tags ratings
// @Produce json
// @Param media path string true "Media type" Enums(anime, manga, book, movie)
// @Param uid path string true "User id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /ratings/{media}/user/{uid} [get]
func (h *HTTPHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	mt, ok := mediaType(w, r)
	if !ok {
		return
	}
	uid := r.PathValue("uid")
	if uid == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "uid is required", nil)
		return
	}

	ratings, err := h.service.ListByUser(r.Context(), mt, uid)
	if err != nil {
		h.internalError(w, r, err, "list ratings")
		return
	}

	httpx.JSONSuccess(w, r, ratings, map[string]any{"count": len(ratings)})
}

// Create handles POST /ratings/{media}
// @Summary Rate a title
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param media path string true "Media type" Enums(anime, manga, book, movie)
// @Param request body createRatingReq true "Rating"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /ratings/{media} [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid := httpx.UIDFrom(r)
	if uid == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	mt, ok := mediaType(w, r)
	if !ok {
		return
	}

	var req createRatingReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	req.MediaID = strings.TrimSpace(req.MediaID)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, "Invalid input", validationErrors)
		return
	}

	created, err := h.service.Create(r.Context(), mt, uid, Rating{
		MediaID:  req.MediaID,
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Score:    req.Score,
		Status:   Status(req.Status),
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, httpx.CodeAlreadyExists, "Rating already exists for this title", nil)
			return
		}
		h.internalError(w, r, err, "create rating")
		return
	}

	httpx.JSONSuccessCreated(w, r, created)
}

// Get handles GET /ratings/{media}/{mediaID}
// @Summary Get the caller's rating for a title
// @Tags ratings
// @Produce json
// @Security Bearer
// @Param media path string true "Media type" Enums(anime, manga, book, movie)
// @Param mediaID path string true "Provider id of the title"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /ratings/{media}/{mediaID} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid := httpx.UIDFrom(r)
	if uid == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	mt, ok := mediaType(w, r)
	if !ok {
		return
	}

	rt, err := h.service.Get(r.Context(), mt, uid, r.PathValue("mediaID"))
	if err != nil {
		h.writeLookupError(w, r, err, "get rating")
		return
	}
	httpx.JSONSuccess(w, r, rt, nil)
}

// Update handles PUT /ratings/{media}/{mediaID}
// @Summary Update the caller's rating for a title
// @Description Only the fields present in the body are changed
// @Tags ratings
// @Accept json
// @Produce json
// @Security Bearer
// @Param media path string true "Media type" Enums(anime, manga, book, movie)
// @Param mediaID path string true "Provider id of the title"
// @Param request body updateRatingReq true "Fields to change"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /ratings/{media}/{mediaID} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid := httpx.UIDFrom(r)
	if uid == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	mt, ok := mediaType(w, r)
	if !ok {
		return
	}

	var req updateRatingReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, "Invalid input", validationErrors)
		return
	}

	updated, err := h.service.Update(r.Context(), mt, uid, r.PathValue("mediaID"), req.patch())
	if err != nil {
		h.writeLookupError(w, r, err, "update rating")
		return
	}
	httpx.JSONSuccess(w, r, updated, nil)
}

// Delete handles DELETE /ratings/{media}/{mediaID}
// @Summary Delete the caller's rating for a title
// @Tags ratings
// @Security Bearer
// @Param media path string true "Media type" Enums(anime, manga, book, movie)
// @Param mediaID path string true "Provider id of the title"
// @Success 204 "No Content"
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /ratings/{media}/{mediaID} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid := httpx.UIDFrom(r)
	if uid == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}
	mt, ok := mediaType(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), mt, uid, r.PathValue("mediaID")); err != nil {
		h.writeLookupError(w, r, err, "delete rating")
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeLookupError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Rating not found", nil)
		return
	}
	h.internalError(w, r, err, msg)
}
