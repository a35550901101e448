package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savthe/prediction-confidence/app"
	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/internal/config"
	"github.com/savthe/prediction-confidence/models"
)

type stubRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Distribution
}

func (r *stubRepo) Create(_ context.Context, d *models.Distribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[d.Name] = d
	return nil
}

func (r *stubRepo) GetByName(_ context.Context, name string) (*models.Distribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.rows[name]; ok {
		return d, nil
	}
	return nil, core.ErrDistributionNotFound
}

func (r *stubRepo) List(_ context.Context) ([]*models.Distribution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Distribution, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, d)
	}
	return out, nil
}

func (r *stubRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, name)
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc, err := app.NewConfidenceService(&stubRepo{rows: make(map[string]*models.Distribution)}, confidence.DefaultConfig())
	require.NoError(t, err)
	return NewServer(config.ServerConfig{Port: "0", GinMode: "test"}, svc)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	w := doJSON(t, newTestServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleEvaluate_Default(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/evaluate", map[string]interface{}{"x": 0.043})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp.Distribution)
	assert.InDelta(t, 1.0, resp.Confidence, 0.001)
}

func TestHandleEvaluate_OutsideSupport(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/evaluate", map[string]interface{}{"x": 99.0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Confidence)
}

func TestHandleEvaluate_MissingX(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/v1/evaluate", map[string]interface{}{"distribution": "default"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEvaluate_UnknownDistribution(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/v1/evaluate", map[string]interface{}{"distribution": "nope", "x": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRegisterDistribution(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/distributions", map[string]interface{}{
		"name":  "latency",
		"mean":  1.0,
		"stdev": 0.1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The new distribution should be queryable right away.
	w = doJSON(t, s, http.MethodPost, "/api/v1/evaluate", map[string]interface{}{"distribution": "latency", "x": 1.0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp.Confidence, 0.001)

	w = doJSON(t, s, http.MethodGet, "/api/v1/distributions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Distributions []*models.Distribution `json:"distributions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Distributions, 1)
}

func TestHandleRegisterDistribution_Invalid(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/distributions", map[string]interface{}{
		"name":  "bad",
		"mean":  1.0,
		"stdev": -0.1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/v1/distributions", map[string]interface{}{
		"name":  "default",
		"mean":  1.0,
		"stdev": 0.1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/v1/distributions", map[string]interface{}{
		"name": "no-params",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
