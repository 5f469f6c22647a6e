package web

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// RequestLogger logs every request at debug level. Only mounted when
// debug mode is on; the metrics middleware covers production observability.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request served")
		})
	}
}
