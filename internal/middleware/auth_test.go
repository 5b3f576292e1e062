package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/middleware"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

type fakeSessions struct {
	tokens map[string]domain.Identity
}

func (f *fakeSessions) Lookup(ctx context.Context, token string) (domain.Identity, error) {
	identity, ok := f.tokens[token]
	if !ok {
		return domain.Identity{}, fmt.Errorf("sessions: %w", e.ErrUnauthenticated)
	}
	return identity, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

var testIdentity = domain.Identity{
	UserID:   uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	FullName: "Asha Verma",
	Role:     domain.RoleTourist,
}

func TestAuthenticate_CookieToken(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{tokens: map[string]domain.Identity{"tok-1": testIdentity}}

	var got domain.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.IdentityFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "tok-1"})
	rr := httptest.NewRecorder()

	middleware.Authenticate(sessions, newTestLogger())(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got != testIdentity {
		t.Fatalf("identity = %+v, want %+v", got, testIdentity)
	}
}

func TestAuthenticate_BearerToken(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{tokens: map[string]domain.Identity{"tok-2": testIdentity}}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-2")
	rr := httptest.NewRecorder()

	middleware.Authenticate(sessions, newTestLogger())(next).ServeHTTP(rr, req)

	if !called {
		t.Fatalf("next handler not reached, status=%d", rr.Code)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{tokens: map[string]domain.Identity{}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	for _, setup := range []func(*http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: "bogus"}) },
		func(r *http.Request) { r.Header.Set("Authorization", "Bearer bogus") },
		func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcg==") },
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		setup(req)
		rr := httptest.NewRecorder()

		middleware.Authenticate(sessions, newTestLogger())(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
		}
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		role    domain.Role
		allowed []domain.Role
		want    int
	}{
		{"admin allowed", domain.RoleAdmin, []domain.Role{domain.RoleAdmin}, http.StatusOK},
		{"guide rejected", domain.RoleGuide, []domain.Role{domain.RoleAdmin}, http.StatusForbidden},
		{"either of two", domain.RoleGuide, []domain.Role{domain.RoleAdmin, domain.RoleGuide}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			identity := testIdentity
			identity.Role = tc.role

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
			rr := httptest.NewRecorder()

			middleware.RequireRole(tc.allowed...)(next).ServeHTTP(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	middleware.RequireRole(domain.RoleAdmin)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
