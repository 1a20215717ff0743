package auth

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

type authenticateReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authenticatedUser struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// Authenticate handles POST /user/authenticate
// @Summary Log in
// @Description Check credentials and return the user with a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body authenticateReq true "Credentials"
// @Success 200 {object} authenticatedUser
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /user/authenticate [post]
func (h *HTTPHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, httpx.CodeValidation, "Invalid input", validationErrors)
		return
	}

	session, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		// both answer 404 with the messages existing clients display
		switch {
		case errors.Is(err, ErrUserNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "No user found with this username", nil)
			return
		case errors.Is(err, ErrIncorrectPassword):
			httpx.JSONError(w, r, http.StatusNotFound, httpx.CodeNotFound, "Incorrect Password", nil)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("authenticate")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}

	httpx.JSON(w, r, http.StatusOK, authenticatedUser{
		UID:       session.User.UID,
		FirstName: session.User.FirstName,
		LastName:  session.User.LastName,
		Email:     session.User.Email,
		Token:     session.Token,
	})
}

// Logout handles POST /user/logout
// @Summary Log out
// @Description Revoke the bearer token used for this request
// @Tags auth
// @Security Bearer
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Router /user/logout [post]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := httpx.ClaimsFrom(r)
	if claims == nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, httpx.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("logout")
		httpx.JSONError(w, r, http.StatusInternalServerError, httpx.CodeInternal, "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
