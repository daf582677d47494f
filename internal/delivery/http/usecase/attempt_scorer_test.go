package usecase

import (
	"strings"
	"testing"

	"github.com/francolab/franco-be/internal/delivery/http/entity"
)

func TestScoreAnswers(t *testing.T) {
	tests := []struct {
		name    string
		user    []entity.Answer
		correct []entity.Answer
		want    float64
	}{
		{
			name:    "all correct",
			user:    []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
			correct: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
			want:    100,
		},
		{
			name:    "two of three",
			user:    []entity.Answer{entity.IntAnswer(0), entity.BoolAnswer(true), entity.IntAnswer(1)},
			correct: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
			want:    66.67,
		},
		{
			name:    "one of three",
			user:    []entity.Answer{entity.IntAnswer(0), entity.BoolAnswer(false), entity.IntAnswer(1)},
			correct: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
			want:    33.33,
		},
		{
			name:    "length mismatch scores zero",
			user:    []entity.Answer{entity.IntAnswer(1)},
			correct: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true)},
			want:    0,
		},
		{
			name:    "empty answers score zero",
			user:    nil,
			correct: nil,
			want:    0,
		},
		{
			name:    "type mismatch is not a match",
			user:    []entity.Answer{entity.StringAnswer("1")},
			correct: []entity.Answer{entity.IntAnswer(1)},
			want:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreAnswers(tc.user, tc.correct); got != tc.want {
				t.Errorf("scoreAnswers() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name    string
		user    entity.Answer
		correct entity.Answer
		want    entity.ErrorType
	}{
		{"case difference only", entity.StringAnswer("paris"), entity.StringAnswer("Paris"), entity.ErrorCapitalization},
		{"different length strings", entity.StringAnswer("Pari"), entity.StringAnswer("Paris"), entity.ErrorContent},
		{"same length different letters", entity.StringAnswer("Parix"), entity.StringAnswer("Paris"), entity.ErrorSpelling},
		{"boolean pair", entity.BoolAnswer(true), entity.BoolAnswer(false), entity.ErrorComprehension},
		{"integer pair", entity.IntAnswer(2), entity.IntAnswer(1), entity.ErrorMultipleChoice},
		{"mixed types", entity.StringAnswer("vrai"), entity.BoolAnswer(true), entity.ErrorContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyError(tc.user, tc.correct); got != tc.want {
				t.Errorf("classifyError(%v, %v) = %q, want %q", tc.user, tc.correct, got, tc.want)
			}
		})
	}
}

func TestAnalyzeErrors(t *testing.T) {
	user := []entity.Answer{
		entity.StringAnswer("paris"),
		entity.BoolAnswer(false),
		entity.StringAnswer("lyon"),
		entity.IntAnswer(3),
	}
	correct := []entity.Answer{
		entity.StringAnswer("Paris"),
		entity.BoolAnswer(false),
		entity.StringAnswer("Lyon"),
		entity.IntAnswer(1),
	}

	analysis := analyzeErrors(user, correct)

	if analysis.TotalErrors != 3 {
		t.Fatalf("total_errors: got %d, want 3", analysis.TotalErrors)
	}
	if analysis.ErrorCounts[entity.ErrorCapitalization] != 2 {
		t.Errorf("capitalization count: got %d, want 2", analysis.ErrorCounts[entity.ErrorCapitalization])
	}
	if analysis.ErrorCounts[entity.ErrorMultipleChoice] != 1 {
		t.Errorf("multiple_choice count: got %d", analysis.ErrorCounts[entity.ErrorMultipleChoice])
	}

	// Types are listed in first-seen order, without duplicates.
	wantTypes := []entity.ErrorType{entity.ErrorCapitalization, entity.ErrorMultipleChoice}
	if len(analysis.ErrorTypes) != len(wantTypes) {
		t.Fatalf("error_types: got %v", analysis.ErrorTypes)
	}
	for i := range wantTypes {
		if analysis.ErrorTypes[i] != wantTypes[i] {
			t.Errorf("error_types[%d]: got %q, want %q", i, analysis.ErrorTypes[i], wantTypes[i])
		}
	}

	if analysis.SpecificErrors[2].QuestionIndex != 3 {
		t.Errorf("specific error should carry the question index, got %d", analysis.SpecificErrors[2].QuestionIndex)
	}
}

func TestAnalyzeErrors_EmptyInput(t *testing.T) {
	analysis := analyzeErrors(nil, nil)

	if analysis.ErrorTypes == nil || analysis.SpecificErrors == nil || analysis.ErrorCounts == nil {
		t.Error("empty analysis must keep empty slices, not nil")
	}
	if analysis.TotalErrors != 0 {
		t.Errorf("total_errors: got %d", analysis.TotalErrors)
	}
}

func TestAttemptSuggestions_CappedAtThree(t *testing.T) {
	analysis := entity.ErrorAnalysis{ErrorCounts: map[entity.ErrorType]int{
		entity.ErrorSpelling:      2,
		entity.ErrorComprehension: 2,
		"vocabulary":              1,
	}}

	suggestions := attemptSuggestions(analysis, entity.SkillReading)

	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3: %v", len(suggestions), suggestions)
	}
}

func TestAttemptSuggestions_CategoryTip(t *testing.T) {
	analysis := entity.ErrorAnalysis{ErrorCounts: map[entity.ErrorType]int{}}

	reading := attemptSuggestions(analysis, entity.SkillReading)
	writing := attemptSuggestions(analysis, entity.SkillWriting)
	speaking := attemptSuggestions(analysis, entity.SkillSpeaking)

	if len(reading) != 1 || !strings.Contains(reading[0], "קריאה") {
		t.Errorf("reading tip: %v", reading)
	}
	if len(writing) != 1 || !strings.Contains(writing[0], "כתיבה") {
		t.Errorf("writing tip: %v", writing)
	}
	if len(speaking) != 0 {
		t.Errorf("speaking has no category tip, got %v", speaking)
	}
}

func TestScoreAttempt(t *testing.T) {
	uc := newTestExerciseUsecase(&mockLLM{})

	result := uc.ScoreAttempt(entity.SaveAttemptRequest{
		UserID:         "user-1",
		ExerciseID:     "ex-1",
		SkillCategory:  entity.SkillReading,
		UserAnswers:    []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
		CorrectAnswers: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
		TimeSpent:      42,
	})

	if result.Score != 100 {
		t.Errorf("score: got %v, want 100", result.Score)
	}
	if !result.IsCorrect {
		t.Error("perfect score must be marked correct")
	}
	if !strings.HasPrefix(result.AttemptID, "attempt_") {
		t.Errorf("attempt id: got %q", result.AttemptID)
	}
	if result.SavedAt == "" {
		t.Error("saved_at must be set")
	}
	if result.ErrorAnalysis.TotalErrors != 0 {
		t.Errorf("total_errors: got %d", result.ErrorAnalysis.TotalErrors)
	}
}

func TestScoreAttempt_PartialScoreNotCorrect(t *testing.T) {
	uc := newTestExerciseUsecase(&mockLLM{})

	result := uc.ScoreAttempt(entity.SaveAttemptRequest{
		UserID:         "user-1",
		UserAnswers:    []entity.Answer{entity.IntAnswer(0), entity.BoolAnswer(true), entity.IntAnswer(1)},
		CorrectAnswers: []entity.Answer{entity.IntAnswer(1), entity.BoolAnswer(true), entity.IntAnswer(1)},
	})

	if result.Score != 66.67 {
		t.Errorf("score: got %v, want 66.67", result.Score)
	}
	if result.IsCorrect {
		t.Error("partial score must not be marked correct")
	}
	if result.ErrorAnalysis.TotalErrors != 1 {
		t.Errorf("total_errors: got %d", result.ErrorAnalysis.TotalErrors)
	}
}
