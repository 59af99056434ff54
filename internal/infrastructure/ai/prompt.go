package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/pkg/format"
)

// systemPrompt define el rol del modelo y el formato de salida, común a ambos proveedores.
const systemPrompt = `You are a retail analytics consultant. You receive the RFM segmentation of an e-commerce customer base.
Return ONLY a valid JSON object (no markdown) with this exact structure:
{
  "summary": "<executive summary in English, 3 to 5 sentences, max 600 characters>"
}

Rules:
- Mention revenue concentration in the VIP segment and the churn risk.
- Recommend one concrete action per segment.
- Use only the figures provided. Do not invent numbers.`

// narrativePayload JSON esperado del modelo.
type narrativePayload struct {
	Summary string `json:"summary"`
}

// buildPrompt resume los insights en texto compacto para el modelo.
func buildPrompt(in *dto.InsightsDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customers: %s. Total revenue: %s.\n", format.Int(in.TotalCustomers), format.Money(in.TotalRevenue))

	b.WriteString("Segments (count | avg recency days | avg frequency | avg monetary | total revenue | revenue %):\n")
	for _, r := range in.Comparison {
		fmt.Fprintf(&b, "- %s: %s | %s | %s | %s | %s | %s\n",
			r.Segment,
			format.Int(r.CustomerCount),
			format.Fixed(r.AvgRecency, 0),
			format.Fixed(r.AvgFrequency, 1),
			format.MoneyFloat(r.AvgMonetary),
			format.Money(r.TotalRevenue),
			format.Percent(r.RevenuePct, 1),
		)
	}

	c := in.Concentration
	fmt.Fprintf(&b, "VIP concentration: %s of customers (%d) hold %s of revenue (%s); one VIP spends like %d core customers.\n",
		format.Percent(c.VIPCustomerPct, 1), c.VIPCustomers, format.Percent(c.VIPRevenuePct, 1),
		format.Money(c.VIPRevenue), c.RegularEquivalent)

	r := in.ChurnRisk
	fmt.Fprintf(&b, "Churn risk: %s of customers inactive for %d+ days; lost segment revenue %s.\n",
		format.Percent(r.DormantPct, 1), r.ThresholdDays, format.Money(r.WinBackRevenue))
	return b.String()
}

// jsonBlockRe captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el objeto JSON de un texto libre aunque venga envuelto en markdown.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

// parseSummary interpreta la respuesta del modelo. Si no trae JSON se usa el texto tal cual.
func parseSummary(raw string) (string, error) {
	clean := extractJSON(raw)
	if clean == "" {
		if s := strings.TrimSpace(raw); s != "" {
			return s, nil
		}
		return "", fmt.Errorf("AI: respuesta vacía del modelo")
	}
	var p narrativePayload
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return "", fmt.Errorf("AI: parsear JSON de la narrativa: %w (JSON extraído: %s)", err, clean)
	}
	if strings.TrimSpace(p.Summary) == "" {
		return "", fmt.Errorf("AI: el modelo devolvió summary vacío")
	}
	return p.Summary, nil
}
