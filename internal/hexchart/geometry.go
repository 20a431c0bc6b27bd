// Package hexchart maps domain percentages onto the six-axis radar chart.
// Pure trigonometry; the presentation layer renders the output as SVG.
package hexchart

import (
	"fmt"
	"math"
	"strings"
)

// Point is a 2D coordinate in the chart's pixel space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vertex returns the hexagon vertex for an axis index in [0,5]. Index 0 sits
// directly above the center and indices progress clockwise at 60° steps.
func Vertex(center Point, radius float64, index int) Point {
	angle := (float64(index)*60 - 90) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// ScorePolygon returns one vertex per percentage, each scaled along its axis.
// Axis i belongs to the i-th domain in display order.
func ScorePolygon(center Point, radius float64, percentages []float64) []Point {
	points := make([]Point, len(percentages))
	for i, pct := range percentages {
		points[i] = Vertex(center, radius*pct/100, i)
	}
	return points
}

// ReferenceHexagon returns the six grid vertices at a radius fraction in
// [0,1]. Axis rings are typically drawn at 0.2, 0.4, 0.6, 0.8 and 1.0.
func ReferenceHexagon(center Point, radius, fraction float64) []Point {
	points := make([]Point, 6)
	for i := 0; i < 6; i++ {
		points[i] = Vertex(center, radius*fraction, i)
	}
	return points
}

// PolygonPath builds an SVG path string "M x0 y0 L x1 y1 ... Z"
func PolygonPath(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %g %g", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&sb, " L %g %g", p.X, p.Y)
	}
	sb.WriteString(" Z")
	return sb.String()
}

// ScoreColor maps a percentage to the chart's color scale. These breakpoints
// are a rendering concern and intentionally independent of the score-category
// tiers.
func ScoreColor(percentage float64) string {
	switch {
	case percentage >= 80:
		return "#22c55e" // green
	case percentage >= 60:
		return "#eab308" // yellow
	case percentage >= 40:
		return "#f97316" // orange
	default:
		return "#ef4444" // red
	}
}

// TextAnchor picks the SVG text-anchor for an axis label so labels on the
// right of the hexagon grow rightward and labels on the left grow leftward.
// A deadband of 10% of centerX around the vertical axis keeps top and bottom
// labels centered.
func TextAnchor(x, centerX float64) string {
	deadband := centerX * 0.1
	switch {
	case x < centerX-deadband:
		return "end"
	case x > centerX+deadband:
		return "start"
	default:
		return "middle"
	}
}
