// Package respond holds the response helpers shared by the feature handlers.
//
// Successful responses are JSON encodings of whatever the store returned.
// Failures take one path: log the cause, answer 500. The only other error
// statuses are 400 for a request body that is not JSON and 413 for one over
// the size limit.
package respond

import (
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/linguahub/internal/app/system/reqlog"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// JSON writes v as a 200 JSON response. A nil v encodes as null.
func JSON(w http.ResponseWriter, r *http.Request, v any) {
	render.JSON(w, r, v)
}

// Decode reads a JSON request body into v. An empty body leaves v unchanged
// and is not an error.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Fail logs err and writes a generic 500.
func Fail(w http.ResponseWriter, r *http.Request, log *zap.Logger, msg string, err error) {
	log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", reqlog.RequestID(r.Context())))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// BadBody logs a body decode failure and writes a 400, or a 413 when the
// body went over the limit set by http.MaxBytesReader.
func BadBody(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := http.StatusBadRequest
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		status = http.StatusRequestEntityTooLarge
	}
	log.Warn("malformed request body",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", r.URL.Path),
		zap.String("request_id", reqlog.RequestID(r.Context())))
	http.Error(w, http.StatusText(status), status)
}
