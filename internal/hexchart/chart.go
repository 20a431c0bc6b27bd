package hexchart

import "coachassess/internal/model"

// Reference ring fractions drawn behind the score polygon
var ringFractions = []float64{0.2, 0.4, 0.6, 0.8, 1.0}

// AxisLabel positions one domain label just outside its vertex
type AxisLabel struct {
	Text       string  `json:"text"`
	Emoji      string  `json:"emoji"`
	Percentage float64 `json:"percentage"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Anchor     string  `json:"anchor"`
	Color      string  `json:"color"`
}

// Chart is the complete renderable description of the hex radar chart.
// Plain data only; safe to serialize across any boundary.
type Chart struct {
	Center    Point       `json:"center"`
	Radius    float64     `json:"radius"`
	Rings     [][]Point   `json:"rings"`
	Score     []Point     `json:"score"`
	ScorePath string      `json:"scorePath"`
	Labels    []AxisLabel `json:"labels"`
}

// labelOffset pushes labels past the hexagon edge so they don't collide with
// the outer ring
const labelOffset = 1.15

// Build lays out the chart for a set of domain scores. Axis order follows
// the input order, which CalculateDomainScores fixes to ascending domain ID.
func Build(center Point, radius float64, domainScores []model.DomainScore) Chart {
	rings := make([][]Point, len(ringFractions))
	for i, f := range ringFractions {
		rings[i] = ReferenceHexagon(center, radius, f)
	}

	percentages := make([]float64, len(domainScores))
	labels := make([]AxisLabel, len(domainScores))
	for i, ds := range domainScores {
		percentages[i] = ds.Percentage
		pos := Vertex(center, radius*labelOffset, i)
		labels[i] = AxisLabel{
			Text:       ds.DomainName,
			Emoji:      ds.Emoji,
			Percentage: ds.Percentage,
			X:          pos.X,
			Y:          pos.Y,
			Anchor:     TextAnchor(pos.X, center.X),
			Color:      ScoreColor(ds.Percentage),
		}
	}

	score := ScorePolygon(center, radius, percentages)

	return Chart{
		Center:    center,
		Radius:    radius,
		Rings:     rings,
		Score:     score,
		ScorePath: PolygonPath(score),
		Labels:    labels,
	}
}
