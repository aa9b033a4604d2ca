package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/api/middleware"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/service"
	"github.com/mitcampus/campus-companion/internal/core/session"
	"github.com/mitcampus/campus-companion/internal/infrastructure/db/memory"
)

type discardRouter struct{}

func (discardRouter) Enqueue(domain.Report) {}

type testExporter struct{}

func (testExporter) Export(w io.Writer, _ []domain.Report) error {
	_, err := w.Write([]byte("PK"))
	return err
}

// newTestRouter wires the real services over the in-memory stores.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	announcements := memory.NewAnnouncementRepository()
	posts := memory.NewPostRepository()
	reports := memory.NewReportRepository()
	if err := service.Seed(context.Background(), announcements, posts, log); err != nil {
		t.Fatalf("seed: %v", err)
	}

	announcementService := service.NewAnnouncementService(announcements, log)
	return NewRouter(Deps{
		Identity:      service.NewIdentityService("@mitmusaffarpur.edu.in", log),
		Announcements: announcementService,
		Community:     service.NewCommunityService(posts, memory.NewVoteStore(), log),
		Chat:          service.NewChatService(nil, 0, log),
		Reports:       service.NewReportService(reports, discardRouter{}, log),
		Admin:         service.NewAdminService(announcements, posts, reports, testExporter{}, log),
		Dashboard:     service.NewDashboardService(announcementService),
		Support:       service.SupportDirectory(),
		Tokens:        middleware.NewTokens("test-secret", time.Hour),
		Sessions:      session.NewManager(memory.NewSessionStore(), log),
		Registry:      prometheus.NewRegistry(),
		Log:           log,
	})
}

func do(t *testing.T, e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"anything"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatalf("login returned no token")
	}
	return resp.Token
}

type navResponse struct {
	Role  string `json:"role"`
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

func hasSection(nav navResponse, id string) bool {
	for _, it := range nav.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func TestRouter_AdminLoginShowsAdminNavigation(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "admin@mitmusaffarpur.edu.in")

	rec := do(t, e, http.MethodGet, "/v1/navigation", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var nav navResponse
	decodeBody(t, rec, &nav)
	if nav.Role != "admin" || !hasSection(nav, "admin") || len(nav.Items) != 7 {
		t.Fatalf("admin navigation incomplete: %+v", nav)
	}
}

func TestRouter_StudentNavigationHidesAdmin(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "asha@mitmusaffarpur.edu.in")

	var nav navResponse
	decodeBody(t, do(t, e, http.MethodGet, "/v1/navigation", token, ""), &nav)
	if nav.Role != "student" || hasSection(nav, "admin") {
		t.Fatalf("student must not see admin: %+v", nav)
	}
}

func TestRouter_ForeignDomainLoginRejected(t *testing.T) {
	e := newTestRouter(t)
	rec := do(t, e, http.MethodPost, "/auth/login", "", `{"email":"priya@college.edu.in","password":"x"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_LogoutEmptiesSessionForSameToken(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "asha@mitmusaffarpur.edu.in")

	var before struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, do(t, e, http.MethodGet, "/v1/session", token, ""), &before)
	if !before.Authenticated {
		t.Fatalf("expected an authenticated session after login")
	}

	if rec := do(t, e, http.MethodPost, "/auth/logout", token, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}

	rec := do(t, e, http.MethodGet, "/v1/session", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var after struct {
		Authenticated bool            `json:"authenticated"`
		User          json.RawMessage `json:"user"`
	}
	decodeBody(t, rec, &after)
	if after.Authenticated || string(after.User) != "null" {
		t.Fatalf("session must be empty after logout: %s", rec.Body.String())
	}

	if rec := do(t, e, http.MethodGet, "/v1/navigation", token, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("feature routes need a user after logout, got %d", rec.Code)
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newTestRouter(t)
	if rec := do(t, e, http.MethodGet, "/v1/session", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodGet, "/v1/session", "not-a-jwt", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}

func TestRouter_CommunityVoteToggles(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "asha@mitmusaffarpur.edu.in")

	type postView struct {
		ID       string `json:"id"`
		Score    int    `json:"score"`
		UserVote string `json:"userVote"`
	}

	var first postView
	rec := do(t, e, http.MethodPost, "/v1/community/posts/1/vote", token, `{"direction":"up"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &first)
	if first.ID != "1" || first.Score != 12 || first.UserVote != "up" {
		t.Fatalf("unexpected post after up: %+v", first)
	}

	var second postView
	decodeBody(t, do(t, e, http.MethodPost, "/v1/community/posts/1/vote", token, `{"direction":"up"}`), &second)
	if second.Score != 11 || second.UserVote != "none" {
		t.Fatalf("second up must restore the score: %+v", second)
	}

	if rec := do(t, e, http.MethodPost, "/v1/community/posts/404/vote", token, `{"direction":"up"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown post, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPost, "/v1/community/posts/1/vote", token, `{"direction":"sideways"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad direction, got %d", rec.Code)
	}
}

func TestRouter_ChatRejectsBlankMessage(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "asha@mitmusaffarpur.edu.in")

	if rec := do(t, e, http.MethodPost, "/v1/chat/messages", token, `{"message":"   "}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec := do(t, e, http.MethodPost, "/v1/chat/messages", token, `{"message":"Where is the library?"}`)
	var resp struct {
		Intent string `json:"intent"`
		Source string `json:"source"`
	}
	decodeBody(t, rec, &resp)
	if rec.Code != http.StatusOK || resp.Intent != "library" || resp.Source != "canned" {
		t.Fatalf("unexpected reply %d %+v", rec.Code, resp)
	}
}

func TestRouter_AdminRoutesForStudent(t *testing.T) {
	e := newTestRouter(t)
	token := login(t, e, "asha@mitmusaffarpur.edu.in")

	rec := do(t, e, http.MethodGet, "/v1/admin/dashboard", token, "")
	var ov struct {
		AccessDenied bool `json:"accessDenied"`
	}
	decodeBody(t, rec, &ov)
	if rec.Code != http.StatusOK || !ov.AccessDenied {
		t.Fatalf("expected the placeholder, got %d %s", rec.Code, rec.Body.String())
	}

	if rec := do(t, e, http.MethodPost, "/v1/admin/announcements", token, `{"title":"t","content":"c"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodGet, "/v1/admin/reports/export", token, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
