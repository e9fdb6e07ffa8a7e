package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamcal/teamcal/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (p *mockPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealth_Healthy(t *testing.T) {
	h := handler.NewHealthHandler(&mockPinger{}, "1.2.3")

	req, w := makeChiRequest(http.MethodGet, "/health", nil, nil)
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	obj := parseObject(t, w)
	assert.Equal(t, "healthy", obj["status"])
	assert.Equal(t, "1.2.3", obj["version"])
	db := obj["database"].(map[string]interface{})
	assert.Equal(t, true, db["connected"])
}

func TestHealth_DegradedWhenDatabaseUnreachable(t *testing.T) {
	h := handler.NewHealthHandler(&mockPinger{err: errors.New("dial tcp: refused")}, "1.2.3")

	req, w := makeChiRequest(http.MethodGet, "/health", nil, nil)
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	obj := parseObject(t, w)
	assert.Equal(t, "degraded", obj["status"])
	db := obj["database"].(map[string]interface{})
	assert.Equal(t, false, db["connected"])
}
