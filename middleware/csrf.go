package middleware

import (
	"crypto/sha256"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
)

const CSRFFieldName = "csrf_token"

// CSRFMiddleware guards the HTML form posts. The key is derived from secret
// so a single SESSION_SECRET covers both tokens and forms. When secure is
// false the requests are marked plaintext so local http:// logins pass the
// referer check.
func CSRFMiddleware(secret string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("csrf:" + secret))

	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	reason := csrf.FailureReason(r)
	log.Printf("CSRF: rejected %s %s: %v", r.Method, r.URL.Path, reason)
	authRejections.WithLabelValues("csrf").Inc()

	if WantsJSON(r) {
		respondWithError(w, http.StatusForbidden, "invalid CSRF token")
		return
	}
	http.Error(w, "요청이 만료되었습니다. 페이지를 새로고침한 뒤 다시 시도해주세요.", http.StatusForbidden)
}
