package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFMiddleware(t *testing.T) {
	var token string
	h := CSRFMiddleware("test-secret", false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			token = csrf.Token(r)
		}
		w.WriteHeader(http.StatusOK)
	}))

	// Setup
	get := httptest.NewRecorder()
	h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, get.Code)
	require.NotEmpty(t, token)
	cookies := get.Result().Cookies()
	require.NotEmpty(t, cookies)

	post := func(form url.Values, withCookie bool, accept string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		if withCookie {
			for _, c := range cookies {
				req.AddCookie(c)
			}
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid token", func(t *testing.T) {
		rr := post(url.Values{CSRFFieldName: {token}}, true, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		before := testutil.ToFloat64(authRejections.WithLabelValues("csrf"))

		rr := post(url.Values{}, true, "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, before+1, testutil.ToFloat64(authRejections.WithLabelValues("csrf")))
	})

	t.Run("missing cookie", func(t *testing.T) {
		rr := post(url.Values{CSRFFieldName: {token}}, false, "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("json client", func(t *testing.T) {
		rr := post(url.Values{}, true, "application/json")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"invalid CSRF token"}`, rr.Body.String())
	})
}
