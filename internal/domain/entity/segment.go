package entity

// Nombres de segmento asignados a cada cluster por el pipeline upstream.
const (
	SegmentLost = "Lost Customers"
	SegmentCore = "Core Customers"
	SegmentVIP  = "VIP Champions"
)

// Segment describe una etiqueta fija del catálogo: cluster de origen, color en los
// gráficos y la estrategia comercial asociada.
type Segment struct {
	Cluster  int
	Name     string
	Color    string
	Icon     string
	Strategy []string
	// Headline indica qué métrica resume al segmento en la vista de insights:
	// "recency" | "frequency" | "monetary".
	Headline string
}

// segmentCatalog es el mapeo estático cluster → segmento, en el orden de presentación.
var segmentCatalog = []Segment{
	{
		Cluster:  0,
		Name:     SegmentLost,
		Color:    "red",
		Icon:     "🔴",
		Headline: "recency",
		Strategy: []string{
			"Win-back email campaign with 20% discount",
			"Survey to understand why they left",
			"Low priority - already churned",
		},
	},
	{
		Cluster:  1,
		Name:     SegmentCore,
		Color:    "green",
		Icon:     "🟢",
		Headline: "frequency",
		Strategy: []string{
			"Loyalty program to increase frequency",
			"Personalized product recommendations",
			"Early access to sales",
			"PROTECT THIS SEGMENT!",
		},
	},
	{
		Cluster:  2,
		Name:     SegmentVIP,
		Color:    "gold",
		Icon:     "💎",
		Headline: "monetary",
		Strategy: []string{
			"VIP account manager",
			"Exclusive previews & private sales",
			"Premium support",
			"Call if inactive >30 days!",
		},
	},
}

// Segments devuelve una copia del catálogo en orden de presentación.
func Segments() []Segment {
	out := make([]Segment, len(segmentCatalog))
	copy(out, segmentCatalog)
	return out
}

// SegmentNames devuelve los nombres del catálogo (selección por defecto del filtro).
func SegmentNames() []string {
	names := make([]string, 0, len(segmentCatalog))
	for _, s := range segmentCatalog {
		names = append(names, s.Name)
	}
	return names
}

// SegmentByName busca un segmento por su etiqueta.
func SegmentByName(name string) (Segment, bool) {
	for _, s := range segmentCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// LabelFor traduce un cluster a su etiqueta. ok=false si el cluster no está mapeado.
func LabelFor(cluster int) (string, bool) {
	for _, s := range segmentCatalog {
		if s.Cluster == cluster {
			return s.Name, true
		}
	}
	return "", false
}

// ColorFor devuelve el color del segmento o gris si no existe.
func ColorFor(name string) string {
	if s, ok := SegmentByName(name); ok {
		return s.Color
	}
	return "gray"
}
