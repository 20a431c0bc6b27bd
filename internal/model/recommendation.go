package model

// Priority classifies how a user should treat a domain going forward
type Priority string

const (
	PriorityMaintainStrength   Priority = "maintain_strength"
	PriorityBiggestOpportunity Priority = "biggest_opportunity"
	PriorityEasiestWin         Priority = "easiest_win"
	PriorityContinueGrowth     Priority = "continue_growth"
)

// CourseRecommendation points at a course relevant to a domain
type CourseRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DomainRecommendation is the per-domain guidance block
type DomainRecommendation struct {
	DomainID   int                    `json:"domainId"`
	DomainName string                 `json:"domainName"`
	Percentage float64                `json:"percentage"`
	Priority   Priority               `json:"priority"`
	Rationale  string                 `json:"rationale"`
	Practices  []string               `json:"practices"` // 1-3 items
	Courses    []CourseRecommendation `json:"courses"`   // 1-2 items
}

// RecommendationsResult is the full recommendation aggregate
type RecommendationsResult struct {
	Domains            []DomainRecommendation `json:"domains"`
	OverallGuidance    string                 `json:"overallGuidance"`
	EasiestWin         *DomainScore           `json:"easiestWin"`
	BiggestOpportunity *DomainScore           `json:"biggestOpportunity"`
}
