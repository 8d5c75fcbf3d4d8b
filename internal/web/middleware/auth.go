package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JonMunkholm/elc/internal/config"
	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/logging"
)

var (
	errMissingKey = errors.New("missing api key")
	errInvalidKey = errors.New("invalid api key")
)

// APIKeyAuth returns middleware that validates the X-API-Key header against
// the configured keys. When RequireAPIKey is false every request passes; when
// it is true and no keys are configured every request is rejected.
func APIKeyAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			switch {
			case apiKey == "":
				reject(w, r, errMissingKey, http.StatusUnauthorized)
			case !isValidAPIKey(apiKey, cfg.APIKeys):
				reject(w, r, errInvalidKey, http.StatusForbidden)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, err error, status int) {
	msg := core.MapError(err)
	logging.FromContext(r.Context()).Warn("auth: "+err.Error(),
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   msg.Message,
		"message": msg.Message,
		"action":  msg.Action,
		"code":    msg.Code,
	})
}

// isValidAPIKey checks if the provided key matches any configured key.
// Uses constant-time comparison and checks ALL keys so the timing does not
// depend on which key matched.
func isValidAPIKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}
