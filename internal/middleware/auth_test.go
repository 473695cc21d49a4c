package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/config"
)

const testSecret = "test-secret"

func newAuthEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(cfg), func(c *gin.Context) {
		id, _ := AuthenticatedUserID(c)
		c.String(http.StatusOK, id)
	})
	r.GET("/admin", JWTAuth(cfg), RequireAdmin(cfg), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_Disabled(t *testing.T) {
	r := newAuthEngine(&config.Config{})
	if w := doGet(r, "/me", ""); w.Code != http.StatusOK || w.Body.String() != "" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
	if w := doGet(r, "/admin", ""); w.Code != http.StatusNoContent {
		t.Fatalf("admin route without auth: %d", w.Code)
	}
}

func TestJWTAuth_Enabled(t *testing.T) {
	cfg := &config.Config{Auth: config.Auth{JWTSecret: testSecret}}
	r := newAuthEngine(cfg)

	if w := doGet(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: %d", w.Code)
	}
	if w := doGet(r, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", w.Code)
	}

	expired, err := IssueToken([]byte(testSecret), "farmer-1", "", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doGet(r, "/me", expired); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: %d", w.Code)
	}

	forged, err := IssueToken([]byte("other-secret"), "farmer-1", "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doGet(r, "/me", forged); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: %d", w.Code)
	}

	token, err := IssueToken([]byte(testSecret), "farmer-1", "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doGet(r, "/me", token); w.Code != http.StatusOK || w.Body.String() != "farmer-1" {
		t.Fatalf("valid token: %d %q", w.Code, w.Body.String())
	}
	if w := doGet(r, "/admin", token); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin on admin route: %d", w.Code)
	}

	admin, err := IssueToken([]byte(testSecret), "ops", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if w := doGet(r, "/admin", admin); w.Code != http.StatusNoContent {
		t.Fatalf("admin token: %d", w.Code)
	}
}
