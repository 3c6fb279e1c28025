package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

type stubAuthGW struct {
	authenticated bool
	checkErr      error
	checks        int
}

func (g *stubAuthGW) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return nil, nil
}
func (g *stubAuthGW) Logout(context.Context) error { return nil }
func (g *stubAuthGW) CheckAuth(context.Context) (bool, error) {
	g.checks++
	return g.authenticated, g.checkErr
}

func TestSession_ActiveSessionReachesHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", ".AspNetCore.Session=abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(&stubAuthGW{authenticated: true})
	handler := mw(func(c echo.Context) error {
		called = true
		if id, _ := c.Get("session_id").(string); id == "" {
			t.Fatal("session_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gw := &stubAuthGW{authenticated: true}
	handler := Session(gw)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
	if gw.checks != 0 {
		t.Error("gateway probed despite missing cookie")
	}
}

func TestSession_InactiveSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", ".AspNetCore.Session=stale")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubAuthGW{authenticated: false})(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestSession_ProbeFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", ".AspNetCore.Session=abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(&stubAuthGW{checkErr: errors.New("gateway down")})(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestSessionID_StablePerCookie(t *testing.T) {
	a := sessionID("cookie=a")
	if a != sessionID("cookie=a") {
		t.Error("same cookie produced different ids")
	}
	if a == sessionID("cookie=b") {
		t.Error("different cookies produced the same id")
	}
}
