package http

import (
	"net/http"
	"strings"

	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/pkg/httpx"
)

// TokenHeaders configures where issued tokens are placed on responses and
// where the refresh endpoint looks for a presented refresh token.
type TokenHeaders struct {
	Access  string // e.g. "Authorization"
	Refresh string // e.g. "Authorization-Refresh"
	Prefix  string // e.g. "Bearer "
}

// AuthHandler serves login, token refresh, and login id availability.
type AuthHandler struct {
	AuthService *service.AuthService
	Mode        service.PasswordMode
	Headers     TokenHeaders
}

type loginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Verifies credentials and issues an access/refresh token pair.
//	@Description	Tokens are returned in response headers, prefixed with "Bearer ".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	loginRequest	true	"login id and password"
//	@Success		200	{object}	messageResponse	"login success"
//	@Failure		400	{object}	messageResponse	"login id or password is incorrect"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	pair, _, err := h.AuthService.Login(ctx, req.LoginID, req.Password, h.Mode)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	w.Header().Set(h.Headers.Access, h.Headers.Prefix+pair.AccessToken)
	w.Header().Set(h.Headers.Refresh, h.Headers.Prefix+pair.RefreshToken)
	writeMessage(w, http.StatusOK, "login success")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleRefresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Rotates a refresh token. The token is read from the refresh
//	@Description	header (preferred) or from the JSON body. The previous token
//	@Description	stops working as soon as the new pair is issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]string	"accessToken, refreshToken"
//	@Failure		401	{object}	messageResponse		"invalid, expired, or superseded token"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := h.refreshTokenFrom(r)
	if token == "" {
		writeMessage(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	pair, err := h.AuthService.Refresh(ctx, token)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	w.Header().Set(h.Headers.Access, h.Headers.Prefix+pair.AccessToken)
	w.Header().Set(h.Headers.Refresh, h.Headers.Prefix+pair.RefreshToken)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// refreshTokenFrom pulls the presented refresh token from the refresh header
// (with or without prefix) or falls back to the JSON body.
func (h *AuthHandler) refreshTokenFrom(r *http.Request) string {
	if v := r.Header.Get(h.Headers.Refresh); v != "" {
		return strings.TrimSpace(strings.TrimPrefix(v, h.Headers.Prefix))
	}

	var req refreshRequest
	if err := decodeJSON(r, &req); err == nil {
		return strings.TrimSpace(req.RefreshToken)
	}
	return ""
}

// HandleCheckLoginID godoc
//
//	@Summary		Check login id availability
//	@Description	Reports whether a login id is free. Uniqueness spans every
//	@Description	role, so an id held by any account is unavailable.
//	@Tags			Auth
//	@Produce		json
//	@Param			loginId	query	string	true	"login id to check"
//	@Success		200	{object}	messageResponse	"login id is available"
//	@Failure		400	{object}	messageResponse	"login id is already in use"
//	@Router			/v1/auth/check-login-id [get].
func (h *AuthHandler) HandleCheckLoginID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	loginID := r.URL.Query().Get("loginId")
	if loginID == "" {
		writeMessage(w, http.StatusBadRequest, "loginId query parameter is required")
		return
	}

	if err := h.AuthService.CheckLoginID(ctx, loginID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeMessage(w, http.StatusOK, "login id is available")
}
