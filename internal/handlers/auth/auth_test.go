package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/identity"
)

func newRouter(t *testing.T, resolver identity.Resolver, tokens *identity.JWT) *gin.Engine {
	t.Helper()
	creds, err := identity.NewCredentials(map[string]string{"alice_cooper": "alice-demo"}, 4)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(creds, tokens, resolver)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", h.Me)
	return r
}

func Test_Login(t *testing.T) {
	tokens := identity.NewJWT("test-secret", 15*time.Minute)
	router := newRouter(t, tokens, tokens)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{name: "should issue token for valid credentials", body: `{"username":"alice_cooper","password":"alice-demo"}`, expectedStatus: http.StatusOK},
		{name: "should reject wrong password", body: `{"username":"alice_cooper","password":"nope"}`, expectedStatus: http.StatusUnauthorized, expectedError: "invalid_grant"},
		{name: "should reject unknown user", body: `{"username":"mallory","password":"alice-demo"}`, expectedStatus: http.StatusUnauthorized, expectedError: "invalid_grant"},
		{name: "should reject missing fields", body: `{"username":"alice_cooper"}`, expectedStatus: http.StatusBadRequest, expectedError: "invalid_request"},
		{name: "should reject malformed json", body: `{`, expectedStatus: http.StatusBadRequest, expectedError: "invalid_request"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, test.expectedStatus, w.Code)
			var out map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
			if test.expectedError != "" {
				require.Equal(t, test.expectedError, out["error"])
				return
			}
			require.Equal(t, "Bearer", out["token_type"])
			require.EqualValues(t, 900, out["expires_in"])
			require.NotEmpty(t, out["access_token"])
		})
	}
}

func Test_LoginThenMe(t *testing.T) {
	tokens := identity.NewJWT("test-secret", time.Minute)
	router := newRouter(t, tokens, tokens)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice_cooper","password":"alice-demo"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":"alice_cooper"}`, w.Body.String())
}

func Test_Me_HeaderResolver(t *testing.T) {
	router := newRouter(t, identity.NewHeader(""), identity.NewJWT("test-secret", time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Missing X-Authenticated-User-ID header.", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set(identity.DefaultHeader, "bob_marley")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id":"bob_marley"}`, w.Body.String())
}
