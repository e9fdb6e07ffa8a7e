package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamcal/teamcal/internal/api/handler"
	"github.com/teamcal/teamcal/internal/group"
)

// --- Mock Group Repository ---

type mockGroupRepo struct {
	createFn func(ctx context.Context, g *group.Group) error
	listFn   func(ctx context.Context) ([]group.Group, error)
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (r *mockGroupRepo) Create(ctx context.Context, g *group.Group) error {
	if r.createFn != nil {
		return r.createFn(ctx, g)
	}
	g.ID = 1
	return nil
}

func (r *mockGroupRepo) List(ctx context.Context) ([]group.Group, error) {
	if r.listFn != nil {
		return r.listFn(ctx)
	}
	return []group.Group{}, nil
}

func (r *mockGroupRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if r.existsFn != nil {
		return r.existsFn(ctx, id)
	}
	return false, nil
}

// ===== GET /api/development-groups =====

func TestGroupList_Success(t *testing.T) {
	repo := &mockGroupRepo{
		listFn: func(ctx context.Context) ([]group.Group, error) {
			return []group.Group{
				{ID: 1, Name: "backend"},
				{ID: 2, Name: "frontend"},
			}, nil
		},
	}
	h := handler.NewGroupHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/api/development-groups", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	items := parseArray(t, w)
	require.Len(t, items, 2)
	assert.Equal(t, float64(1), items[0]["id"])
	assert.Equal(t, "backend", items[0]["name"])
	assert.Equal(t, "frontend", items[1]["name"])
}

func TestGroupList_EmptyIsArray(t *testing.T) {
	h := handler.NewGroupHandler(&mockGroupRepo{})

	req, w := makeChiRequest(http.MethodGet, "/api/development-groups", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestGroupList_StoreError(t *testing.T) {
	repo := &mockGroupRepo{
		listFn: func(ctx context.Context) ([]group.Group, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := handler.NewGroupHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/api/development-groups", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", parseObject(t, w)["error"])
}

// ===== POST /api/development-groups =====

func TestGroupCreate_Success(t *testing.T) {
	repo := &mockGroupRepo{
		createFn: func(ctx context.Context, g *group.Group) error {
			g.ID = 5
			return nil
		},
	}
	h := handler.NewGroupHandler(repo)

	body, _ := json.Marshal(map[string]string{"name": "Backend"})
	req, w := makeChiRequest(http.MethodPost, "/api/development-groups", body, nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	obj := parseObject(t, w)
	assert.Equal(t, float64(5), obj["id"])
	assert.Equal(t, "Backend", obj["name"])
}

func TestGroupCreate_InvalidJSON(t *testing.T) {
	h := handler.NewGroupHandler(&mockGroupRepo{})

	req, w := makeChiRequest(http.MethodPost, "/api/development-groups", []byte("{"), nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", parseObject(t, w)["code"])
}

func TestGroupCreate_MissingName(t *testing.T) {
	created := false
	repo := &mockGroupRepo{
		createFn: func(ctx context.Context, g *group.Group) error {
			created = true
			return nil
		},
	}
	h := handler.NewGroupHandler(repo)

	body, _ := json.Marshal(map[string]string{"name": "   "})
	req, w := makeChiRequest(http.MethodPost, "/api/development-groups", body, nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, created)
	assert.Equal(t, "VALIDATION_ERROR", parseObject(t, w)["code"])
}

func TestGroupCreate_StoreError(t *testing.T) {
	repo := &mockGroupRepo{
		createFn: func(ctx context.Context, g *group.Group) error {
			return errors.New("connection reset")
		},
	}
	h := handler.NewGroupHandler(repo)

	body, _ := json.Marshal(map[string]string{"name": "Backend"})
	req, w := makeChiRequest(http.MethodPost, "/api/development-groups", body, nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
