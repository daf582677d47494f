package entity

type CommonError struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// AnalyticsRecord is a per-skill performance summary. Records are currently
// static lookup data adjusted by level at read time; a real analytics store
// would replace the lookup, not this shape.
type AnalyticsRecord struct {
	AccuracyRate           float64       `json:"accuracy_rate"`
	AverageTimePerExercise int           `json:"average_time_per_exercise"`
	ImprovementRate        float64       `json:"improvement_rate"`
	ConsistencyScore       float64       `json:"consistency_score"`
	CommonErrors           []CommonError `json:"common_errors"`
	StrongAreas            []string      `json:"strong_areas"`
	WeakAreas              []string      `json:"weak_areas"`
}

type AnalyzePerformanceRequest struct {
	UserID        string        `json:"user_id" validate:"required"`
	SkillCategory SkillCategory `json:"skill_category"`
	Level         Level         `json:"level"`
}

type AnalyzePerformanceResponse struct {
	Success                bool            `json:"success"`
	Analytics              AnalyticsRecord `json:"analytics"`
	ImprovementSuggestions []string        `json:"improvement_suggestions,omitempty"`
}
