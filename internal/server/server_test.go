package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/hh-evaluator/internal/ai"
	"github.com/spigell/hh-evaluator/internal/cheating"
	"github.com/spigell/hh-evaluator/internal/evaluation"
)

type stubGateway struct {
	response string
	err      error
}

func (s *stubGateway) Chat(_ context.Context, _ []ai.Message, _ ai.ChatConfig) (string, error) {
	return s.response, s.err
}

func (s *stubGateway) Model() string { return "stub-model" }

func newTestServer(gateway ai.Gateway) http.Handler {
	analyzer := cheating.NewAnalyzer(gateway, zap.NewNop(), cheating.Config{})
	evaluator := evaluation.NewEvaluator(gateway, analyzer, zap.NewNop(), evaluation.Config{})
	return New(evaluator, analyzer, zap.NewNop(), Config{Model: gateway.Model()}).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestServer(&stubGateway{}), http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","model":"stub-model"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	h := newTestServer(&stubGateway{response: `{"score": 80, "hiringDecision": "Hire", "mustHaveAnalysis": {"disqualified": true}}`})
	rec := do(t, h, http.MethodPost, "/v1/evaluations",
		`{"resume": "Go dev", "jobDescription": "Go", "transcript": "Q: hi\nA: hello"}`,
		http.Header{RequestIDHeader: []string{"req-77"}})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "req-77", rec.Header().Get(RequestIDHeader))

	var result evaluation.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, evaluation.DecisionDisqualified, result.HiringDecision)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, []any{}, raw["strengths"])
	assert.NotContains(t, raw, "cheatingAnalysis")
}

func TestEvaluateValidation(t *testing.T) {
	t.Parallel()

	h := newTestServer(&stubGateway{response: "{}"})

	cases := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"transcript": `},
		{name: "unknown field", body: `{"transcript": "t", "extra": 1}`},
		{name: "missing transcript", body: `{"resume": "r"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, http.MethodPost, "/v1/evaluations", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := do(t, h, http.MethodPost, "/v1/evaluations", `{"resume": "r"}`, nil)
	var resp errResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "Transcript", resp.Fields[0].Field)
	assert.Equal(t, "required", resp.Fields[0].Rule)
}

func TestEvaluateModelCallFailure(t *testing.T) {
	t.Parallel()

	h := newTestServer(&stubGateway{err: errors.New("unauthenticated")})
	rec := do(t, h, http.MethodPost, "/v1/evaluations", `{"transcript": "t"}`, nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp errResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), resp.RequestID)
	assert.Contains(t, resp.Error, "model call failed")
}

func TestEvaluateTimeout(t *testing.T) {
	t.Parallel()

	h := newTestServer(&stubGateway{err: context.DeadlineExceeded})
	rec := do(t, h, http.MethodPost, "/v1/evaluations", `{"transcript": "t"}`, nil)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestAnalyzeCheating(t *testing.T) {
	t.Parallel()

	h := newTestServer(&stubGateway{response: "not json at all"})
	rec := do(t, h, http.MethodPost, "/v1/cheating-analyses", `{"transcript": "Q: hi\nA: hello"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis cheating.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, cheating.Fallback(), analysis)

	rec = do(t, h, http.MethodPost, "/v1/cheating-analyses", `{"jobDescription": "jd"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
