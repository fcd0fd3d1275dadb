package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

// CodedError attaches an HTTP status code to err.
func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

// Validationf reports a missing or malformed client field (400).
func Validationf(format string, args ...any) error {
	return CodedErrorf(http.StatusBadRequest, format, args...)
}

// Unauthorizedf reports bad credentials or a missing/invalid token (401).
func Unauthorizedf(format string, args ...any) error {
	return CodedErrorf(http.StatusUnauthorized, format, args...)
}

// StatusCode returns the status attached to err, or 500 for uncoded errors.
func StatusCode(err error) int {
	var cerr *codedError
	if errors.As(err, &cerr) {
		return cerr.code
	}
	return http.StatusInternalServerError
}

// ParseRequest decodes the JSON request body into a T.
func ParseRequest[T any](r *http.Request) (T, error) {
	var data T
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return data, CodedErrorf(http.StatusBadRequest, "invalid request body")
	}
	return data, nil
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status code.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// Handler is an endpoint that returns a status, a body and an error.
// A nil error writes body with status; otherwise the error's coded status
// is used and internal errors are logged and masked.
type Handler func(r *http.Request) (int, any, error)

// RestHandler adapts a Handler to http.HandlerFunc.
func RestHandler(log *zap.Logger, handler Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, res, err := handler(r)
		if err != nil {
			code := StatusCode(err)
			if code >= http.StatusInternalServerError {
				log.Error("internal error in endpoint",
					zap.String("path", r.URL.Path), zap.Error(err))
				WriteError(w, code, "internal server error")
				return
			}
			WriteError(w, code, err.Error())
			return
		}

		if res == nil {
			res = struct{}{}
		}
		if status == 0 {
			status = http.StatusOK
		}
		WriteJSON(w, status, res)
	}
}
