// Package response writes travel backend result envelopes. It is used to stand up fake backends in tests.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/travelhub/travel-client/internal/apperrors"
)

type envelope struct {
	Code      apperrors.ResultCode `json:"code"`
	Message   string               `json:"message"`
	Data      any                  `json:"data,omitempty"`
	Timestamp int64                `json:"timestamp"`
}

// RespondWithEnvelope writes a 200 response with the given result code. Business errors are not HTTP errors on this
// backend: the status is always 200 and the code carries the outcome.
func RespondWithEnvelope(w http.ResponseWriter, code apperrors.ResultCode, message string, data any) {
	dat, err := json.Marshal(envelope{
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(dat)
}

func RespondWithData(w http.ResponseWriter, data any) {
	RespondWithEnvelope(w, apperrors.CodeSuccess, "success", data)
}

func RespondWithError(w http.ResponseWriter, code apperrors.ResultCode, message string) {
	RespondWithEnvelope(w, code, message, nil)
}

// BearerTokenFromHeader extracts the token from an "Authorization: Bearer <token>" header
func BearerTokenFromHeader(headers http.Header) (string, error) {
	authHeader := headers.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return "", errors.New(`authorization header format must be "Bearer {token}"`)
	}
	return token, nil
}

// RequireBearer rejects requests that do not carry one of the accepted tokens with CodeTokenInvalid, the signal
// clients treat as an expired session.
func RequireBearer(accepted ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerTokenFromHeader(r.Header)
			if err != nil {
				RespondWithError(w, apperrors.CodeTokenInvalid, err.Error())
				return
			}
			for _, a := range accepted {
				if token == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			RespondWithError(w, apperrors.CodeTokenInvalid, "Token invalid")
		})
	}
}
