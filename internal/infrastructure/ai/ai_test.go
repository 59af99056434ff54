package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
)

func sampleInsights() *dto.InsightsDTO {
	return &dto.InsightsDTO{
		TotalCustomers: 5878,
		TotalRevenue:   decimal.NewFromInt(17_700_000),
		Concentration: dto.ConcentrationDTO{
			VIPCustomers: 24, VIPCustomerPct: 0.4, VIPRevenue: decimal.NewFromInt(3_200_000),
			VIPRevenuePct: 18, RegularEquivalent: 149,
		},
		ChurnRisk: dto.ChurnRiskDTO{ThresholdDays: 400, DormantPct: 38.8, WinBackRevenue: decimal.NewFromInt(1_200_000)},
		Comparison: []dto.ComparisonRowDTO{
			{Segment: "VIP Champions", CustomerCount: 24, AvgRecency: 12, AvgFrequency: 80.5, AvgMonetary: 133333.33,
				TotalRevenue: decimal.NewFromInt(3_200_000), RevenuePct: 18},
		},
	}
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]string{
		`{"summary":"ok"}`:                       `{"summary":"ok"}`,
		"```json\n{\"summary\":\"ok\"}\n```":     `{"summary":"ok"}`,
		"Aquí va:\n{\"summary\":\"ok\"} gracias": `{"summary":"ok"}`,
		"sin json":                               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, extractJSON(in), in)
	}
}

func TestParseSummary(t *testing.T) {
	s, err := parseSummary("```json\n{\"summary\":\"VIPs drive revenue.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "VIPs drive revenue.", s)

	s, err = parseSummary("Plain text answer.")
	require.NoError(t, err)
	assert.Equal(t, "Plain text answer.", s)

	_, err = parseSummary(`{"summary":""}`)
	assert.Error(t, err)

	_, err = parseSummary("   ")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(sampleInsights())

	assert.Contains(t, p, "Customers: 5,878. Total revenue: $17,700,000.")
	assert.Contains(t, p, "- VIP Champions: 24 | 12 | 80.5 | $133,333 | $3,200,000 | 18.0%")
	assert.Contains(t, p, "one VIP spends like 149 core customers")
	assert.Contains(t, p, "inactive for 400+ days")
}

func TestAnthropicService_Narrate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-test", req.Model)
		assert.Equal(t, systemPrompt, req.System)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "VIP concentration")

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"summary\":\"Protect the VIPs.\"}"}]}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("test-key", "claude-test")
	svc.endpoint = srv.URL

	got, err := svc.Narrate(context.Background(), sampleInsights())
	require.NoError(t, err)
	assert.Equal(t, "Protect the VIPs.", got)
	assert.Equal(t, "claude-test", svc.Model())
}

func TestAnthropicService_ErrorAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("bad", "claude-test")
	svc.endpoint = srv.URL

	_, err := svc.Narrate(context.Background(), sampleInsights())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropicService_SinKey(t *testing.T) {
	_, err := NewAnthropicService("", "m").Narrate(context.Background(), sampleInsights())
	assert.Error(t, err)
}

func TestGeminiService_Narrate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"summary\":\"Win back lost customers.\"}"}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("g-key", "gemini-test")
	svc.baseURL = srv.URL + "/%s?key=%s"

	got, err := svc.Narrate(context.Background(), sampleInsights())
	require.NoError(t, err)
	assert.Equal(t, "Win back lost customers.", got)
}

func TestNewNarrator(t *testing.T) {
	assert.Nil(t, NewNarrator(config.AIConfig{Provider: "anthropic"}))

	n := NewNarrator(config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k", AnthropicModel: "m"})
	require.NotNil(t, n)
	assert.IsType(t, &AnthropicService{}, n)

	n = NewNarrator(config.AIConfig{Provider: "gemini", GeminiAPIKey: "k", GeminiModel: "g"})
	assert.IsType(t, &GeminiService{}, n)
	assert.Equal(t, "g", n.Model())
}
