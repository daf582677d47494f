package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/francolab/franco-be/internal/delivery/http/entity"
	"github.com/francolab/franco-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

type ExerciseUsecase interface {
	// Generate never fails: any provider, parse, or schema error degrades
	// to the hardcoded fallback exercise, marked by Source.
	Generate(ctx context.Context, req entity.GenerateExerciseRequest) entity.GeneratedExercise
	ScoreAttempt(req entity.SaveAttemptRequest) entity.ScoreResult
	AnalyzePerformance(userID string, category entity.SkillCategory, level entity.Level) (entity.AnalyticsRecord, []string)
}

// ChatCompleter is the LLM surface the exercise engine needs.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, system, prompt string) (llm.Completion, error)
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type ExerciseConfig struct {
	LLM ChatCompleter
	Log *logrus.Logger
}

type exerciseUsecase struct {
	cfg ExerciseConfig
}

func NewExerciseUsecase(cfg ExerciseConfig) ExerciseUsecase {
	return &exerciseUsecase{cfg: cfg}
}

// SchemaError reports generated content missing a required field. It is
// handled internally: the engine falls back instead of surfacing it.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("generated content missing %q", e.Field)
}

const exerciseSystemPrompt = "You are a French language teacher who creates CEFR A1-A2 level exercises " +
	"for DELF exam preparation. Always provide reading/writing/speaking **text in French only**, " +
	"but instructions/questions can be in Hebrew if required. Do not translate the French text to Hebrew."

type levelSpec struct {
	WordLimit         int
	SentenceStructure string
	Vocabulary        string
	Grammar           string
	Questions         int
}

var levelSpecs = map[entity.Level]levelSpec{
	entity.LevelA1: {
		WordLimit:         80,
		SentenceStructure: "short and simple sentences",
		Vocabulary:        "basic and common vocabulary",
		Grammar:           "present tense, basic sentence structures",
		Questions:         3,
	},
	entity.LevelA2: {
		WordLimit:         120,
		SentenceStructure: "medium-length sentences with clear structure",
		Vocabulary:        "expanded everyday vocabulary",
		Grammar:           "past tense, near future",
		Questions:         4,
	},
}

func withDefaults(req entity.GenerateExerciseRequest) entity.GenerateExerciseRequest {
	if req.Level == "" {
		req.Level = entity.LevelA1
	}
	if req.SkillCategory == "" {
		req.SkillCategory = entity.SkillReading
	}
	if req.Topic == "" {
		req.Topic = "général"
	}
	if req.Difficulty == 0 {
		req.Difficulty = 3
	}
	if req.TemplateType == "" {
		req.TemplateType = "reading_comprehension"
	}
	return req
}

func buildExercisePrompt(req entity.GenerateExerciseRequest) string {
	specs, ok := levelSpecs[req.Level]
	if !ok {
		specs = levelSpecs[entity.LevelA1]
	}

	var prompt string

	switch req.SkillCategory {
	case entity.SkillReading:
		prompt = fmt.Sprintf(`
Create a reading comprehension exercise for CEFR level %s on the topic of "%s".

Requirements:
1. A short text of approximately %d words, written **entirely in French**
2. %d multiple-choice or true/false questions in **Hebrew**
3. Use only vocabulary and grammar appropriate for level %s
4. Text should be interesting and culturally relevant
5. Difficulty: %d/5

Return the result as JSON in the following format:
{
  "text": "French text goes here",
  "questions": [
    {
      "type": "multiple_choice",
      "question": "שאלה בעברית",
      "options": ["אפשרות 1", "אפשרות 2", "אפשרות 3", "אפשרות 4"],
      "correct": 0
    }
  ],
  "correct_answers": [0, 1, true],
  "explanation": "Brief explanation in English"
}
`, req.Level, req.Topic, specs.WordLimit, specs.Questions, req.Level, req.Difficulty)

	case entity.SkillWriting:
		prompt = fmt.Sprintf(`
Create a writing exercise for CEFR level %s on the topic "%s".

Requirements:
1. Instructions in **Hebrew**
2. Suggested writing length: %d words
3. Provide helpful phrases in **French**
4. Include evaluation criteria
5. Writing should be in **French** only
6. Difficulty: %d/5

Return JSON:
{
  "instruction": "הוראות התרגיל בעברית",
  "word_limit": %d,
  "useful_phrases": ["Je pense que...", "À mon avis...", "Il me semble que..."],
  "evaluation_criteria": ["קריטריון 1", "קריטריון 2", ...],
  "correct_answers": ["sample_answer"],
  "explanation": "Short explanation in English"
}
`, req.Level, req.Topic, specs.WordLimit, req.Difficulty, specs.WordLimit)

	case entity.SkillSpeaking:
		prompt = fmt.Sprintf(`
Create a speaking prompt for CEFR level %s on the topic "%s".

Requirements:
1. Prompt instructions in Hebrew
2. Suggested talking points in French
3. Recommended speaking duration
4. Difficulty: %d/5

Return JSON:
{
  "speaking_prompt": "הוראות לדיבור בעברית",
  "key_points": ["Présentez-vous", "Parlez de votre famille", "Décrivez vos loisirs"],
  "duration": "1-2 דקות",
  "correct_answers": ["completed"],
  "explanation": "Short explanation in English"
}
`, req.Level, req.Topic, req.Difficulty)

	default:
		prompt = fmt.Sprintf(`
Create an exercise of type '%s' for CEFR level %s on the topic "%s".
Ensure all core content (text, answers) is in French. Questions can be in Hebrew.
Difficulty level: %d/5. Return result in JSON format.
`, req.SkillCategory, req.Level, req.Topic, req.Difficulty)
	}

	if req.Prompt != "" {
		prompt += fmt.Sprintf("\n\nAdditional Instructions:\n%s", req.Prompt)
	}

	return prompt
}

func (u *exerciseUsecase) Generate(ctx context.Context, req entity.GenerateExerciseRequest) entity.GeneratedExercise {
	req = withDefaults(req)

	u.cfg.Log.WithFields(logrus.Fields{
		"level":          req.Level,
		"skill_category": req.SkillCategory,
		"topic":          req.Topic,
	}).Info("generating exercise")

	prompt := buildExercisePrompt(req)

	completion, err := u.cfg.LLM.CompleteJSON(ctx, exerciseSystemPrompt, prompt)
	if err != nil {
		u.cfg.Log.WithError(err).Warn("exercise generation failed, using fallback")
		return fallbackExercise(req.Level, req.SkillCategory, req.Topic)
	}

	content, answers, explanation, err := validateContent([]byte(stripJSONFences(completion.Text)), req.SkillCategory)
	if err != nil {
		u.cfg.Log.WithError(err).Warn("generated content rejected, using fallback")
		return fallbackExercise(req.Level, req.SkillCategory, req.Topic)
	}

	return entity.GeneratedExercise{
		Content:        content,
		CorrectAnswers: answers,
		Explanation:    explanation,
		Usage: entity.TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
		Source: entity.SourceGenerated,
	}
}

// validateContent decodes the model output into the skill-specific variant,
// checks required fields, and derives correct_answers when absent.
func validateContent(data []byte, category entity.SkillCategory) (content any, answers []entity.Answer, explanation string, err error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, nil, "", fmt.Errorf("model output is not valid json: %w", err)
	}

	switch category {
	case entity.SkillReading:
		if _, ok := keys["text"]; !ok {
			return nil, nil, "", &SchemaError{Field: "text"}
		}
		if _, ok := keys["questions"]; !ok {
			return nil, nil, "", &SchemaError{Field: "questions"}
		}

		var rc entity.ReadingContent
		if err := json.Unmarshal(data, &rc); err != nil {
			return nil, nil, "", fmt.Errorf("model output is not valid json: %w", err)
		}
		if len(rc.CorrectAnswers) == 0 {
			rc.CorrectAnswers = deriveCorrectAnswers(rc.Questions)
		}
		return &rc, rc.CorrectAnswers, rc.Explanation, nil

	case entity.SkillWriting:
		if _, ok := keys["instruction"]; !ok {
			return nil, nil, "", &SchemaError{Field: "instruction"}
		}

		var wc entity.WritingContent
		if err := json.Unmarshal(data, &wc); err != nil {
			return nil, nil, "", fmt.Errorf("model output is not valid json: %w", err)
		}
		return &wc, wc.CorrectAnswers, wc.Explanation, nil

	case entity.SkillSpeaking:
		var sc entity.SpeakingContent
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, nil, "", fmt.Errorf("model output is not valid json: %w", err)
		}
		return &sc, sc.CorrectAnswers, sc.Explanation, nil

	default:
		// Unlisted categories pass through unvalidated.
		var generic map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, nil, "", fmt.Errorf("model output is not valid json: %w", err)
		}
		if raw, ok := keys["correct_answers"]; ok {
			_ = json.Unmarshal(raw, &answers)
		}
		if raw, ok := keys["explanation"]; ok {
			_ = json.Unmarshal(raw, &explanation)
		}
		return generic, answers, explanation, nil
	}
}

// deriveCorrectAnswers collects each question's correct field in question
// order: multiple_choice defaults to 0, true_false to true when missing.
func deriveCorrectAnswers(questions []entity.Question) []entity.Answer {
	answers := make([]entity.Answer, 0, len(questions))
	for _, q := range questions {
		switch q.Type {
		case entity.QuestionMultipleChoice:
			if q.Correct != nil {
				answers = append(answers, *q.Correct)
			} else {
				answers = append(answers, entity.IntAnswer(0))
			}
		case entity.QuestionTrueFalse:
			if q.Correct != nil {
				answers = append(answers, *q.Correct)
			} else {
				answers = append(answers, entity.BoolAnswer(true))
			}
		}
	}
	return answers
}

// fallbackExercise returns deterministic, schema-valid content when
// generation fails. Reading gets a fixed A1 passage; everything else gets a
// writing-task skeleton.
func fallbackExercise(level entity.Level, category entity.SkillCategory, topic string) entity.GeneratedExercise {
	if category == entity.SkillReading {
		correct := func(a entity.Answer) *entity.Answer { return &a }
		content := &entity.ReadingContent{
			Text: "Bonjour ! Je m'appelle Marie. J'ai 25 ans. Je suis française. " +
				"J'habite à Lyon avec ma famille. J'aime lire des livres et écouter de la musique. " +
				"Le matin, je prends le métro pour aller au travail. Le soir, j'aime cuisiner avec mes amis.",
			Questions: []entity.Question{
				{
					Type:     entity.QuestionMultipleChoice,
					Question: "איך קוראים לבחורה?",
					Options:  []string{"Sophie", "Marie", "Julie", "Anne"},
					Correct:  correct(entity.IntAnswer(1)),
				},
				{
					Type:     entity.QuestionTrueFalse,
					Question: "מארי גרה בליון",
					Correct:  correct(entity.BoolAnswer(true)),
				},
				{
					Type:     entity.QuestionMultipleChoice,
					Question: "מה מארי אוהבת לעשות?",
					Options:  []string{"לרקוד", "לקרוא ולהקשיב למוזיקה", "לשחק כדורגל", "לצייר"},
					Correct:  correct(entity.IntAnswer(1)),
				},
			},
			CorrectAnswers: []entity.Answer{
				entity.IntAnswer(1),
				entity.BoolAnswer(true),
				entity.IntAnswer(1),
			},
		}
		return entity.GeneratedExercise{
			Content:        content,
			CorrectAnswers: content.CorrectAnswers,
			Explanation:    "Basic A1 level reading comprehension exercise",
			Source:         entity.SourceFallback,
		}
	}

	wordLimit := 80
	if level == entity.LevelA1 {
		wordLimit = 50
	}
	content := &entity.WritingContent{
		Instruction:    fmt.Sprintf("כתוב על %s ברמה %s בצרפתית", topic, level),
		WordLimit:      wordLimit,
		UsefulPhrases:  []string{"Je pense que...", "À mon avis...", "Il me semble que..."},
		CorrectAnswers: []entity.Answer{entity.StringAnswer("sample_answer")},
	}
	return entity.GeneratedExercise{
		Content:        content,
		CorrectAnswers: content.CorrectAnswers,
		Explanation:    "Basic writing task",
		Source:         entity.SourceFallback,
	}
}

// stripJSONFences removes markdown code fences some models wrap around JSON.
func stripJSONFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
