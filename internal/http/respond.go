package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/pkg/cryptox"
	"github.com/teamhaven/haven/pkg/httpx"
	"github.com/teamhaven/haven/pkg/slogx"
)

// messageResponse is the envelope every non-payload response uses.
type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, messageResponse{Message: msg})
}

// writeServiceError maps service errors onto HTTP responses. Unrecognised
// errors become a generic 500; the real cause goes to the log only so
// internals never leak to clients.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidCredentials):
		// One message for both so responses don't confirm which login ids exist.
		writeMessage(w, http.StatusBadRequest, "login id or password is incorrect")
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLoginIDDuplicate):
		writeMessage(w, http.StatusBadRequest, "login id is already in use")
	case errors.Is(err, service.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "token is invalid or expired")
	case errors.Is(err, service.ErrTokenMismatch):
		writeMessage(w, http.StatusUnauthorized, "token does not match the issued token")
	case errors.Is(err, service.ErrEntityNotFound):
		writeMessage(w, http.StatusNotFound, "requested entity does not exist")
	case errors.Is(err, service.ErrRecordTooLarge):
		writeMessage(w, http.StatusRequestEntityTooLarge, "upload exceeds the size limit")
	case errors.Is(err, cryptox.ErrRecordDecrypt):
		writeMessage(w, http.StatusBadRequest, "record password is incorrect")
	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses a JSON request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeBadJSON(w http.ResponseWriter) {
	writeMessage(w, http.StatusBadRequest, "request body is not valid JSON")
}
