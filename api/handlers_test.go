package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospekt/leadrank/ai/mock"
	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/leads"
	"github.com/prospekt/leadrank/search"
	"github.com/prospekt/leadrank/storage/badger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1, 0, 0}
		}
		return vectors, nil
	}

	searcher, err := search.NewSearcher(repo, embedder)
	require.NoError(t, err)
	service, err := leads.NewService(searcher)
	require.NoError(t, err)

	_, err = repo.AddRecords(context.Background(), &core.EmbeddedRecord{
		Fields: map[string]string{
			"company":  "Mumbai Textiles Ltd",
			"country":  "India",
			"industry": "Textiles",
			"email":    "sales@mumbaitextiles.in",
		},
		Content: "Mumbai Textiles Ltd exports sari and garments across India",
		Vector:  []float32{1, 0, 0},
	})
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, service, slog.Default())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "healthy")
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestSearchLeads(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/leads/search", LeadSearchRequest{
		Product:  "Women garments",
		Industry: "Textiles",
		Region:   "India",
		Keywords: []string{"Sari"},
		MinScore: 55,
	})

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response LeadSearchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotEmpty(t, response.Leads)
	assert.Equal(t, "Mumbai Textiles Ltd", response.Leads[0].CompanyName)
	assert.GreaterOrEqual(t, response.Leads[0].FinalScore, 55)
	assert.NotEmpty(t, response.Leads[0].ScoreBreakdown)
}

func TestSearchLeadsMissingProduct(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/leads/search", map[string]any{
		"industry": "Textiles",
	})

	// Binding rejects the missing required field before the pipeline runs.
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchLeadsInvalidCriteria(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/leads/search", LeadSearchRequest{
		Product:  "Garments",
		Industry: "Textiles",
		MinScore: 150,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, ErrorCodeValidationFailed, apiErr.Code)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestSearchLeadsInvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/leads/search", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchSimilar(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/search/similar", SimilarSearchRequest{
		Query: "textile exporters in India",
		TopK:  3,
	})

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response struct {
		Matches []SimilarMatchResponse `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Greater(t, response.Matches[0].Score, 0.9)
	assert.Contains(t, response.Matches[0].Content, "Mumbai Textiles")
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "caller-supplied-id", recorder.Header().Get("X-Request-ID"))
}
