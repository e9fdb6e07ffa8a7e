package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamcal/teamcal/internal/api"
	"github.com/teamcal/teamcal/internal/group"
	"github.com/teamcal/teamcal/internal/meeting"
)

type stubMeetingRepo struct{}

func (stubMeetingRepo) ListByGroup(ctx context.Context, groupID int64) ([]meeting.Meeting, error) {
	return []meeting.Meeting{}, nil
}
func (stubMeetingRepo) Create(ctx context.Context, m *meeting.Meeting) error { return nil }
func (stubMeetingRepo) Update(ctx context.Context, m *meeting.Meeting) error { return nil }
func (stubMeetingRepo) Delete(ctx context.Context, id int64) error           { return nil }

type stubGroupRepo struct{}

func (stubGroupRepo) Create(ctx context.Context, g *group.Group) error   { return nil }
func (stubGroupRepo) List(ctx context.Context) ([]group.Group, error)    { return []group.Group{}, nil }
func (stubGroupRepo) Exists(ctx context.Context, id int64) (bool, error) { return true, nil }

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

func newTestRouter() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Meetings:    stubMeetingRepo{},
		Groups:      stubGroupRepo{},
		DBPinger:    stubPinger{},
		Version:     "test",
		CORSOrigins: "*",
	})
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/meetings/1", http.StatusOK},
		{http.MethodGet, "/api/development-groups", http.StatusOK},
		{http.MethodDelete, "/api/meetings/1", http.StatusOK},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
		{http.MethodPatch, "/api/meetings/1", http.StatusMethodNotAllowed},
	}

	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_SetsRequestIDHeader(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/meetings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
