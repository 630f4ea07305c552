package envelope

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	appErr "github.com/advising-studio/engine/pkg/errors"
	"github.com/advising-studio/engine/pkg/logger"
)

// ErrorBody is the only shape an error response ever has.
type ErrorBody struct {
	Error string `json:"error"`
}

// Message is the body mutation endpoints answer with.
type Message struct {
	Message string `json:"message"`
}

// Success writes data as the JSON body. Status 0 means 200; 204 writes no body.
func (p Policy) Success(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	if status == http.StatusNoContent {
		p.Apply(w, r)
		w.WriteHeader(status)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		logger.L().Error("encode response failed", zap.String("path", r.URL.Path), zap.Error(err))
		p.Failure(w, r, http.StatusInternalServerError, "failed to encode response")
		return
	}
	p.write(w, r, status, body)
}

// Failure writes {"error": message}. Statuses below 400 become 500 and an
// empty message becomes "Unknown error".
func (p Policy) Failure(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = appErr.UnknownMessage
	}
	body, _ := json.Marshal(ErrorBody{Error: message})
	p.write(w, r, status, body)
}

// Error classifies err and writes the matching failure. Server-side failures
// are logged with their cause; the body carries only the public message.
func (p Policy) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := appErr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	p.Failure(w, r, status, appErr.MessageOf(err))
}

func (p Policy) write(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	p.Apply(w, r)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Success responds with the policy in r's context.
func Success(w http.ResponseWriter, r *http.Request, status int, data any) {
	PolicyFrom(r.Context()).Success(w, r, status, data)
}

// Failure responds with the policy in r's context.
func Failure(w http.ResponseWriter, r *http.Request, status int, message string) {
	PolicyFrom(r.Context()).Failure(w, r, status, message)
}

// Error responds with the policy in r's context.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	PolicyFrom(r.Context()).Error(w, r, err)
}
