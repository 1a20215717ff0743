package user

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

type registerUser struct {
	UID       string `json:"uid" validate:"required,min=3,max=50"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password_strength"`
}

type registerReq struct {
	User registerUser `json:"user"`
}

// Register handles POST /user/register
// @Summary Register a new user
// @Description Create a new user account. The uid is the login username.
// @Tags users
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /user/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	req.User.UID = strings.TrimSpace(req.User.UID)
	req.User.Email = strings.TrimSpace(req.User.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, "Invalid input", validationErrors)
		return
	}

	_, err := h.service.Register(r.Context(), User{
		UID:       req.User.UID,
		FirstName: req.User.FirstName,
		LastName:  req.User.LastName,
		Email:     req.User.Email,
	}, req.User.Password)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeAlreadyExists, "User already exists", nil)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("uid", req.User.UID).Msg("register user")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}

	httpx.JSON(w, r, http.StatusOK, map[string]string{"message": "ok"})
}

// Get handles GET /user/{uid}
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param uid path string true "User id"
// @Success 200 {object} map[string]PublicUser
// @Failure 404 {object} httpx.ErrorResponse
// @Router /user/{uid} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	if uid == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "uid is required", nil)
		return
	}

	u, err := h.service.GetByUID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "User not found", nil)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("uid", uid).Msg("get user")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}

	httpx.JSON(w, r, http.StatusOK, map[string]PublicUser{"user": u.Public()})
}
