package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

const maxJSONBodyBytes = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []fieldErrorPayload `json:"fields,omitempty"`
}

type fieldErrorPayload struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", "httphandler.writeJSON", "err", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusOf maps a service error to the HTTP status of the response.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and answers with the message an admin can act on.
// Internal failures never leak their details.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusOf(err)

	resp := errorResponse{Error: publicMessage(status, err)}
	var v *domain.ValidationError
	if errors.As(err, &v) {
		resp.Error = v.Error()
		for _, f := range v.Fields {
			resp.Fields = append(resp.Fields, fieldErrorPayload(f))
		}
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "err", err)
	} else {
		log.Warn("request rejected", "status", status, "err", err)
	}
	writeJSON(w, status, resp)
}

func publicMessage(status int, err error) string {
	switch status {
	case http.StatusInternalServerError:
		return "internal error"
	case http.StatusServiceUnavailable:
		return "service unavailable, try again later"
	case http.StatusBadGateway:
		return "storefront backend failed, try again later"
	}
	return rootMessage(err)
}

// userMessager is implemented by errors carrying a message meant for admins.
type userMessager interface {
	UserMessage() string
}

// rootMessage drops the "op: " prefixes added while the error bubbled up.
func rootMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	for {
		next := errors.Unwrap(err)
		if next == nil || isSentinel(next) || statusOf(next) != statusOf(err) {
			return err.Error()
		}
		err = next
	}
}

func isSentinel(err error) bool {
	switch err {
	case domain.ErrInvalid, domain.ErrNotFound, domain.ErrConflict,
		domain.ErrUpstream, domain.ErrUnavailable:
		return true
	}
	return false
}

// decodeJSON decodes the request body into v. Numbers in untyped values
// are kept as [json.Number].
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("body", "is empty")
		}
		return domain.Invalid("body", fmt.Sprintf("is not valid JSON: %v", err))
	}
	return nil
}
