package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordoftheday-backend/internal/domain"
	"github.com/heartmarshall/wordoftheday-backend/pkg/ctxutil"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeWordNotFound     = "WORD_NOT_FOUND"
	CodeSlugNotFound     = "SLUG_NOT_FOUND"
	CodeFutureDate       = "FUTURE_DATE"
	CodeInvalidParams    = "INVALID_PARAMS"
	CodeInvalidSlug      = "INVALID_SLUG"
	CodeInternal         = "INTERNAL_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// errorCodes names the codes an endpoint uses for not-found and bad input.
type errorCodes struct {
	notFound    string
	notFoundMsg string
	invalid     string
}

var (
	dateCodes = errorCodes{notFound: CodeWordNotFound, notFoundMsg: "no word for this date", invalid: CodeInvalidParams}
	slugCodes = errorCodes{notFound: CodeSlugNotFound, notFoundMsg: "no word for this slug", invalid: CodeInvalidSlug}
	listCodes = errorCodes{notFound: CodeNotFound, notFoundMsg: "not found", invalid: CodeInvalidParams}
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError writes an error body. Error responses are never cached.
func writeError(w http.ResponseWriter, status int, code, msg string, details []domain.FieldError) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code, Details: details})
}

// handleError translates a service error into an HTTP response. Anything
// that is not a known domain error is logged and reported as a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, codes errorCodes) {
	ctx := r.Context()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codes.notFound, codes.notFoundMsg, nil)

	case errors.Is(err, domain.ErrFutureDate):
		writeError(w, http.StatusBadRequest, CodeFutureDate, "date is in the future", validationDetails(err))

	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codes.invalid, "invalid parameters", validationDetails(err))

	case errors.Is(err, domain.ErrDataIntegrity):
		attrs := []any{
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		}
		var ie *domain.IntegrityError
		if errors.As(err, &ie) {
			attrs = append(attrs, slog.String("key", ie.Key), slog.Any("violations", ie.Errors))
		}
		log.ErrorContext(ctx, "invalid word record", attrs...)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil)

	case errors.Is(err, context.Canceled):
		log.DebugContext(ctx, "request canceled", slog.String("path", r.URL.Path))
		writeError(w, http.StatusServiceUnavailable, CodeInternal, "request canceled", nil)

	default:
		log.ErrorContext(ctx, "request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
	}
}

func validationDetails(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, CodeNotFound, "not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil)
}
