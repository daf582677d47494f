package usecase

import (
	"math"
	"strings"
	"time"

	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/sirupsen/logrus"
)

// ScoreAttempt computes the attempt score and error analysis. Nothing is
// persisted: the attempt is logged and the computed result returned.
func (u *exerciseUsecase) ScoreAttempt(req entity.SaveAttemptRequest) entity.ScoreResult {
	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":        req.UserID,
		"exercise_id":    req.ExerciseID,
		"skill_category": req.SkillCategory,
		"answers":        len(req.UserAnswers),
		"time_spent":     req.TimeSpent,
	}).Info("saving exercise attempt")

	score := scoreAnswers(req.UserAnswers, req.CorrectAnswers)
	analysis := analyzeErrors(req.UserAnswers, req.CorrectAnswers)
	suggestions := attemptSuggestions(analysis, req.SkillCategory)

	now := time.Now()
	result := entity.ScoreResult{
		AttemptID:              "attempt_" + now.Format("20060102_150405"),
		Score:                  score,
		IsCorrect:              score == 100,
		ErrorAnalysis:          analysis,
		ImprovementSuggestions: suggestions,
		SavedAt:                now.Format(time.RFC3339),
	}

	u.cfg.Log.WithField("score", result.Score).Info("attempt scored")
	return result
}

// scoreAnswers returns 100 × exact positional matches / total. A length
// mismatch scores 0 with no error raised.
func scoreAnswers(user, correct []entity.Answer) float64 {
	if len(user) != len(correct) || len(correct) == 0 {
		return 0
	}

	matches := 0
	for i := range correct {
		if user[i].Equal(correct[i]) {
			matches++
		}
	}

	score := float64(matches) / float64(len(correct)) * 100
	return math.Round(score*100) / 100
}

func analyzeErrors(user, correct []entity.Answer) entity.ErrorAnalysis {
	analysis := entity.ErrorAnalysis{
		ErrorTypes:     []entity.ErrorType{},
		ErrorCounts:    map[entity.ErrorType]int{},
		SpecificErrors: []entity.SpecificError{},
	}
	if len(user) == 0 || len(correct) == 0 {
		return analysis
	}

	n := len(user)
	if len(correct) < n {
		n = len(correct)
	}

	for i := 0; i < n; i++ {
		if user[i].Equal(correct[i]) {
			continue
		}

		errType := classifyError(user[i], correct[i])
		if analysis.ErrorCounts[errType] == 0 {
			analysis.ErrorTypes = append(analysis.ErrorTypes, errType)
		}
		analysis.ErrorCounts[errType]++
		analysis.SpecificErrors = append(analysis.SpecificErrors, entity.SpecificError{
			QuestionIndex: i,
			UserAnswer:    user[i],
			CorrectAnswer: correct[i],
			ErrorType:     errType,
		})
	}

	analysis.TotalErrors = len(analysis.SpecificErrors)
	return analysis
}

// classifyError is an ordered heuristic, not an exhaustive taxonomy: two
// equal-length, differently-spelled strings classify as spelling even when
// the real error is semantic.
func classifyError(user, correct entity.Answer) entity.ErrorType {
	if us, ok := user.Str(); ok {
		if cs, ok := correct.Str(); ok {
			switch {
			case strings.EqualFold(us, cs):
				return entity.ErrorCapitalization
			case len(us) != len(cs):
				return entity.ErrorContent
			default:
				return entity.ErrorSpelling
			}
		}
	}
	if _, ok := user.Bool(); ok {
		if _, ok := correct.Bool(); ok {
			return entity.ErrorComprehension
		}
	}
	if _, ok := user.Int(); ok {
		if _, ok := correct.Int(); ok {
			return entity.ErrorMultipleChoice
		}
	}
	return entity.ErrorContent
}

// attemptSuggestions maps the error tally onto at most 3 improvement tips,
// first matched first kept.
func attemptSuggestions(analysis entity.ErrorAnalysis, category entity.SkillCategory) []string {
	suggestions := []string{}
	counts := analysis.ErrorCounts

	if counts["grammar"] > 2 {
		suggestions = append(suggestions, "תרגל עוד דקדוק בסיסי - זמן הווה ותווי קביעה")
	}
	if counts[entity.ErrorSpelling] > 1 {
		suggestions = append(suggestions, "שים לב לכתיב המילים - תרגל כתיבה איטית יותר")
	}
	if counts["vocabulary"] > 0 {
		suggestions = append(suggestions, "הרחב את אוצר המילים בנושא זה")
	}
	if counts[entity.ErrorComprehension] > 1 {
		suggestions = append(suggestions, "קרא את הטקסט שוב לפני מענה על השאלות")
	}

	switch category {
	case entity.SkillReading:
		suggestions = append(suggestions, "תרגל קריאה יומית של טקסטים קצרים")
	case entity.SkillWriting:
		suggestions = append(suggestions, "תרגל כתיבה של משפטים פשוטים")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
