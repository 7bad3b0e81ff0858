package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/logger"
)

// ChannelAuth rejects requests whose X-Channel-ID / X-Channel-Key
// headers do not match the configured channel credentials.
func ChannelAuth(channelID, channelKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if channelID == "" || channelKey == "" {
				logger.Error("channel auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			id := r.Header.Get("X-Channel-ID")
			key := r.Header.Get("X-Channel-Key")
			if !secureEqual(id, channelID) || !secureEqual(key, channelKey) {
				logger.Info("channel auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
