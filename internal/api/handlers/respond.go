package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/advising-studio/engine/internal/api/envelope"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	envelope.Success(w, r, status, v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	envelope.Error(w, r, err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return appErr.New(appErr.CodeInvalid, "request body is required")
		case errors.As(err, &tooLarge):
			return appErr.New(appErr.CodeInvalid, "request body too large")
		default:
			return appErr.Wrap(err, appErr.CodeInvalid, "invalid json")
		}
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, appErr.Newf(appErr.CodeInvalid, "invalid %s", name)
	}
	return id, nil
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, appErr.Newf(appErr.CodeInvalid, "%s must be a non-negative integer", key)
	}
	return n, nil
}
