package middleware

import (
	"net/http"

	"github.com/lanternfly/service/internal/response"
)

// MaxBodySize rejects requests whose declared Content-Length exceeds limit with 413
// before the next handler runs. Bodies without a declared length are capped with
// http.MaxBytesReader; reading past the cap returns *http.MaxBytesError.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				response.PayloadTooLarge(w, response.TooLargeMessage(limit))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
