package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorCode is the machine-readable code in a JSON error body.
type ErrorCode string

const (
	CodeNotFound          ErrorCode = "not_found"
	CodeJobNotFound       ErrorCode = "job_not_found"
	CodeMethodNotAllowed  ErrorCode = "method_not_allowed"
	CodeRateLimited       ErrorCode = "rate_limited"
	CodeInternal          ErrorCode = "internal_error"
	CodeRenderFailed      ErrorCode = "render_failed"
	CodeStreamUnsupported ErrorCode = "stream_unsupported"
)

// APIError is the body of every non-HTML error response. RequestID echoes
// X-Request-ID so a failed call can be found in the access log.
type APIError struct {
	Error struct {
		Code      ErrorCode `json:"code"`
		Message   string    `json:"message"`
		RequestID string    `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError answers with an APIError carrying the request's ID.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code ErrorCode, msg string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = msg
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
