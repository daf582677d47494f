package entity

// ErrorType classifies one wrong answer.
type ErrorType string

const (
	ErrorCapitalization ErrorType = "capitalization"
	ErrorContent        ErrorType = "content"
	ErrorSpelling       ErrorType = "spelling"
	ErrorComprehension  ErrorType = "comprehension"
	ErrorMultipleChoice ErrorType = "multiple_choice"
)

type SaveAttemptRequest struct {
	UserID         string        `json:"user_id" validate:"required"`
	ExerciseID     string        `json:"exercise_id"`
	SkillCategory  SkillCategory `json:"skill_category"`
	UserAnswers    []Answer      `json:"user_answers"`
	CorrectAnswers []Answer      `json:"correct_answers"`
	TimeSpent      float64       `json:"time_spent"`
}

type SpecificError struct {
	QuestionIndex int       `json:"question_index"`
	UserAnswer    Answer    `json:"user_answer"`
	CorrectAnswer Answer    `json:"correct_answer"`
	ErrorType     ErrorType `json:"error_type"`
}

type ErrorAnalysis struct {
	ErrorTypes     []ErrorType       `json:"error_types"`
	ErrorCounts    map[ErrorType]int `json:"error_counts"`
	SpecificErrors []SpecificError   `json:"specific_errors"`
	TotalErrors    int               `json:"total_errors"`
}

type ScoreResult struct {
	AttemptID              string        `json:"attempt_id"`
	Score                  float64       `json:"score"`
	IsCorrect              bool          `json:"is_correct"`
	ErrorAnalysis          ErrorAnalysis `json:"error_analysis"`
	ImprovementSuggestions []string      `json:"improvement_suggestions"`
	SavedAt                string        `json:"saved_at"`
}

type SaveAttemptResponse struct {
	Success bool        `json:"success"`
	Result  ScoreResult `json:"result"`
}
