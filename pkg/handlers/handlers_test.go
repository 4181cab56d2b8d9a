package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/arnavshah/camp-scheduler-api/pkg/auth"
	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  *gin.Engine
	handler *Handler
	apiKey  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitDB("", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	svc := auth.NewService("jwt-secret", "master-secret")
	h := NewHandler(db, svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := gin.New()
	h.Register(r)

	return &testServer{router: r, handler: h, apiKey: svc.GenerateHMACKey("cabin-lead")}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func exampleRoster() *models.RosterInput {
	return &models.RosterInput{
		Groups: map[string][]models.SlotInput{
			"red":    {{Name: "A", SeniorCounselor: true}, {Name: "B"}},
			"blue":   {{Name: "C", SeniorCounselor: true}, {Name: "D"}},
			"orange": {{Name: "E"}},
		},
		OnBreak: "green",
	}
}

func TestAPIKeyRequired(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/roster", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/roster", "cabin-lead.bad", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRosterEditing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/roster/red/0", s.apiKey, models.SlotInput{Name: " Ana ", LifeguardCertified: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ana := decode[models.StaffMember](t, w)
	assert.Equal(t, "Ana", ana.Name)
	assert.NotEmpty(t, ana.ID)

	w = s.do(t, http.MethodPut, "/api/roster/blue/2", s.apiKey, models.SlotInput{Name: "Cam"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/roster/break", s.apiKey, gin.H{"group": "Blue"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/roster", s.apiKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.RosterView](t, w)
	assert.Equal(t, 2, view.StaffCount)
	assert.Equal(t, models.GroupBlue, view.OnBreak)
	assert.Equal(t, "1/6", view.Groups[0].Count)
	assert.Equal(t, "Ana", view.Groups[0].Slots[0].Name)

	w = s.do(t, http.MethodDelete, "/api/roster/blue/2", s.apiKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/roster/purple/0", s.apiKey, models.SlotInput{Name: "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, "/api/roster/red/9", s.apiKey, models.SlotInput{Name: "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/roster", s.apiKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/roster", s.apiKey, nil)
	view = decode[models.RosterView](t, w)
	assert.Equal(t, 0, view.StaffCount)
	assert.Equal(t, models.GroupID(""), view.OnBreak)
}

func TestScheduleDay_StoredRoster(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/roster", s.apiKey, exampleRoster())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/schedule", s.apiKey, models.ScheduleRequest{Seed: 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ScheduleResponse](t, w)

	assert.Equal(t, int64(5), resp.Seed)
	require.Len(t, resp.Periods, 4)
	require.Len(t, resp.Units, 2)
	for _, p := range resp.Periods {
		total := 0
		for _, u := range p.Units {
			total += len(u.Assignments)
		}
		assert.Equal(t, 5, total)
	}
	assert.Equal(t, models.RoleLifeguard, resp.Periods[0].Shortfalls[0].Role)
	assert.Equal(t, models.ReasonInsufficientCertifiedStaff, resp.Periods[0].Shortfalls[0].Reason)

	again := s.do(t, http.MethodPost, "/api/schedule", s.apiKey, models.ScheduleRequest{Seed: 5})
	assert.JSONEq(t, w.Body.String(), again.Body.String())
}

func TestScheduleDay_EmptyRoster(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/schedule", s.apiKey, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "add staff first")
}

func TestBuildChores_InlineRoster(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/chores", s.apiKey, models.ChoreRequest{
		GroupCount: 2,
		Roster: &models.RosterInput{Groups: map[string][]models.SlotInput{
			"red":    {{Name: "A", SeniorCounselor: true}},
			"blue":   {{Name: "B"}},
			"orange": {{Name: "C"}},
			"green":  {{Name: "D", SeniorCounselor: true}},
		}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ChoreResponse](t, w)

	require.Len(t, resp.Groups, 2)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, "A", resp.Groups[0].Members[0].Name)
	assert.Equal(t, "C", resp.Groups[0].Members[1].Name)
	assert.True(t, resp.Groups[1].HasSenior)

	w = s.do(t, http.MethodPost, "/api/chores", s.apiKey, models.ChoreRequest{GroupCount: -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuildChores_GroupCountAboveStaff(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/chores", s.apiKey, models.ChoreRequest{
		GroupCount: 5_000_000,
		Roster:     exampleRoster(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "more chore groups than staff")

	w = s.do(t, http.MethodGet, "/api/usage", s.apiKey, nil)
	totals := decode[map[string]any](t, w)["totals"].(map[string]any)
	assert.Equal(t, float64(0), totals["requests"])
}

func TestBuildChores_CoverageWarning(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/chores", s.apiKey, models.ChoreRequest{
		Roster: &models.RosterInput{Groups: map[string][]models.SlotInput{
			"red": {{Name: "A", SeniorCounselor: true}, {Name: "B"}},
		}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ChoreResponse](t, w)

	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, 2, resp.Warnings[0].GroupNumber)
	assert.True(t, resp.Groups[1].CoverageWarning)
}

func TestValidateRoster(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/validate", s.apiKey, exampleRoster())
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, true, resp["valid"])
	assert.Contains(t, resp["warnings"], models.ReasonInsufficientCertifiedStaff)
	stats := resp["stats"].(map[string]any)
	assert.Equal(t, float64(5), stats["active_staff"])
	assert.Equal(t, float64(2), stats["unit_count"])

	w = s.do(t, http.MethodPut, "/api/roster", s.apiKey, models.RosterInput{Groups: map[string][]models.SlotInput{
		"Red": {{Name: "Ana"}},
		"red": {{Name: "Ben"}},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/validate", s.apiKey, models.RosterInput{})
	resp = decode[map[string]any](t, w)
	assert.Equal(t, false, resp["valid"])
}

func TestUsageRecorded(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodPost, "/api/schedule", s.apiKey, models.ScheduleRequest{Roster: exampleRoster()})
	s.do(t, http.MethodPost, "/api/chores", s.apiKey, models.ChoreRequest{Roster: exampleRoster()})

	w := s.do(t, http.MethodGet, "/api/usage", s.apiKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	totals := resp["totals"].(map[string]any)
	assert.Equal(t, float64(2), totals["requests"])
	assert.Equal(t, float64(10), totals["staff"])
	assert.Equal(t, float64(4), totals["groups"])
	assert.Equal(t, float64(5), totals["avg_staff_per_run"])
	assert.Equal(t, float64(2), totals["today_requests"])
	assert.Equal(t, float64(defaultRateLimit-2), totals["remaining_today"])
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodPost, "/api/schedule", s.apiKey, models.ScheduleRequest{Roster: exampleRoster()})
	require.NoError(t, s.handler.DB.Model(&database.APIKey{}).Where("name = ?", "cabin-lead").Update("rate_limit", 1).Error)

	w := s.do(t, http.MethodPost, "/api/schedule", s.apiKey, models.ScheduleRequest{Roster: exampleRoster()})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
