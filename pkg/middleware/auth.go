package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/grifun/direct-optimizer-api/pkg/apiErrors"
	"github.com/grifun/direct-optimizer-api/pkg/log"
)

// SecretAuth exige "Authorization: Bearer <secret>". Com segredo vazio a rota fica aberta.
func SecretAuth(secret string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(got, expected) != 1 {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path": r.URL.Path,
				}).Warn("Requisição sem segredo válido")
				apiErrors.WriteError(w, apiErrors.ErrUnauthorized, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCredentials responde 500 com a lista "required" enquanto houver credenciais ausentes
func RequireCredentials(missing []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(missing) > 0 {
				apiErrors.WriteMissingCredentials(w, "Yandex Direct credentials not configured", missing)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
