package usecase

import (
	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/sirupsen/logrus"
)

// mockAnalytics stands in for a real analytics store. Read-only after
// process start; AnalyzePerformance adjusts a copy, never these records.
var mockAnalytics = map[entity.SkillCategory]entity.AnalyticsRecord{
	entity.SkillReading: {
		AccuracyRate:           0.75,
		AverageTimePerExercise: 180,
		ImprovementRate:        0.15,
		ConsistencyScore:       0.8,
		CommonErrors: []entity.CommonError{
			{Type: "vocabulary", Count: 5},
			{Type: "grammar", Count: 3},
		},
		StrongAreas: []string{"basic_vocabulary", "simple_sentences"},
		WeakAreas:   []string{"complex_grammar", "long_texts"},
	},
	entity.SkillWriting: {
		AccuracyRate:           0.65,
		AverageTimePerExercise: 300,
		ImprovementRate:        0.1,
		ConsistencyScore:       0.6,
		CommonErrors: []entity.CommonError{
			{Type: "grammar", Count: 8},
			{Type: "spelling", Count: 4},
		},
		StrongAreas: []string{"basic_vocabulary"},
		WeakAreas:   []string{"verb_conjugation", "sentence_structure"},
	},
	entity.SkillListening: {
		AccuracyRate:           0.7,
		AverageTimePerExercise: 240,
		ImprovementRate:        0.2,
		ConsistencyScore:       0.7,
		CommonErrors: []entity.CommonError{
			{Type: "pronunciation", Count: 6},
			{Type: "speed", Count: 4},
		},
		StrongAreas: []string{"basic_words"},
		WeakAreas:   []string{"fast_speech", "accents"},
	},
	entity.SkillSpeaking: {
		AccuracyRate:           0.6,
		AverageTimePerExercise: 120,
		ImprovementRate:        0.05,
		ConsistencyScore:       0.5,
		CommonErrors: []entity.CommonError{
			{Type: "pronunciation", Count: 10},
			{Type: "fluency", Count: 7},
		},
		StrongAreas: []string{"basic_phrases"},
		WeakAreas:   []string{"pronunciation", "sentence_formation"},
	},
}

// AnalyzePerformance returns the per-skill analytics record adjusted by
// level, plus personalized improvement suggestions.
func (u *exerciseUsecase) AnalyzePerformance(userID string, category entity.SkillCategory, level entity.Level) (entity.AnalyticsRecord, []string) {
	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":        userID,
		"skill_category": category,
		"level":          level,
	}).Info("analyzing user performance")

	analytics, ok := mockAnalytics[category]
	if !ok {
		analytics = mockAnalytics[entity.SkillReading]
	}

	// Lower accuracy is expected at A1, slightly higher at A2.
	switch level {
	case entity.LevelA1:
		analytics.AccuracyRate = max(0.5, analytics.AccuracyRate-0.1)
	case entity.LevelA2:
		analytics.AccuracyRate = min(0.9, analytics.AccuracyRate+0.05)
	}

	return analytics, analyticsSuggestions(analytics, category)
}

// AdaptiveDifficulty moves the base difficulty by one step per signal
// (accuracy, consistency, improvement rate), clamped to [1,5].
func AdaptiveDifficulty(baseDifficulty int, analytics entity.AnalyticsRecord) int {
	adjusted := baseDifficulty

	if analytics.AccuracyRate < 0.6 {
		adjusted--
	} else if analytics.AccuracyRate > 0.85 {
		adjusted++
	}

	if analytics.ConsistencyScore < 0.5 {
		adjusted--
	}

	if analytics.ImprovementRate < 0 {
		adjusted--
	} else if analytics.ImprovementRate > 0.3 {
		adjusted++
	}

	if adjusted < 1 {
		return 1
	}
	if adjusted > 5 {
		return 5
	}
	return adjusted
}

func analyticsSuggestions(analytics entity.AnalyticsRecord, category entity.SkillCategory) []string {
	suggestions := []string{}

	if analytics.AccuracyRate < 0.6 {
		suggestions = append(suggestions,
			"מומלץ לחזור על החומר הבסיסי לפני מעבר לתרגילים מתקדמים",
			"תרגל תרגילים קלים יותר לחיזוק הביטחון")
	} else if analytics.AccuracyRate > 0.85 {
		suggestions = append(suggestions,
			"אתה מצטיין! בוא ננסה תרגילים מאתגרים יותר",
			"מוכן לעבור לרמה הבאה")
	}

	for _, area := range analytics.WeakAreas {
		switch area {
		case "complex_grammar":
			suggestions = append(suggestions, "תרגל עוד דקדוק - זמנים ותווי קביעה")
		case "vocabulary":
			suggestions = append(suggestions, "הרחב את אוצר המילים בנושאים יומיומיים")
		case "pronunciation":
			suggestions = append(suggestions, "תרגל הגייה עם הקראות איטיות")
		}
	}

	for _, commonErr := range analytics.CommonErrors {
		if commonErr.Type == "grammar" && commonErr.Count > 5 {
			suggestions = append(suggestions, "שים דגש מיוחד על תרגילי דקדוק")
		} else if commonErr.Type == "spelling" && commonErr.Count > 3 {
			suggestions = append(suggestions, "תרגל כתיבה איטית יותר ובדוק איות")
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
