package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordoftheday-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Middleware are applied in the order given: Chain(mw1, mw2)(handler)
// results in mw1(mw2(handler)), so mw1 executes first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the stack every API route runs behind: panic recovery
// outermost, then request ID, access log and CORS.
func Standard(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		Recovery(logger),
		RequestID,
		Logger(logger),
		CORS(cors),
	)
}
