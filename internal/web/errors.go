package web

// errors.go maps handler errors to JSON responses.
//
// The technical error is logged with the request ID. The client only sees
// the user-facing message and code from core.MapError.

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/elc/internal/core"
	"github.com/JonMunkholm/elc/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

var errRateLimited = errors.New("rate limit exceeded")

func newErrorResponse(msg core.UserMessage) ErrorResponse {
	return ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}
}

// respondError logs err and writes its user-facing form with statusCode.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	writeJSONStatus(w, statusCode, newErrorResponse(userMsg))
}
