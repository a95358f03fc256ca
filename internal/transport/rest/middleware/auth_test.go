package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/service"
	"github.com/AntonioEdelinski/GamersChallengeBackend/internal/transport/rest/middleware"
)

func protected(t *testing.T) (http.Handler, *service.AuthService, *string) {
	t.Helper()
	authSvc := service.NewAuthService("test-secret")
	mw := middleware.NewAuthMiddleware(authSvc)

	var seenUserID string
	h := mw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = middleware.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, authSvc, &seenUserID
}

func TestMissingAuthorizationHeader(t *testing.T) {
	h, _, _ := protected(t)

	req := httptest.NewRequest("GET", "/user/profile", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"Access denied"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestInvalidToken(t *testing.T) {
	h, _, _ := protected(t)

	req := httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"Invalid token"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestMalformedAuthorizationHeaderIsForbidden(t *testing.T) {
	h, _, _ := protected(t)

	req := httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "just-a-token-no-scheme")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestValidTokenAttachesUserID(t *testing.T) {
	h, authSvc, seen := protected(t)

	token, err := authSvc.IssueToken("user-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if *seen != "user-42" {
		t.Fatalf("expected user-42 in context, got %q", *seen)
	}
}
