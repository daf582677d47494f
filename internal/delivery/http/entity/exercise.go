package entity

type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
)

type SkillCategory string

const (
	SkillReading   SkillCategory = "comprehension_ecrite"
	SkillWriting   SkillCategory = "production_ecrite"
	SkillSpeaking  SkillCategory = "production_orale"
	SkillListening SkillCategory = "comprehension_orale"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
)

// ExerciseSource marks which path produced an exercise, so callers can tell
// a real generation apart from the hardcoded fallback.
type ExerciseSource string

const (
	SourceGenerated ExerciseSource = "generated"
	SourceFallback  ExerciseSource = "fallback"
)

type GenerateExerciseRequest struct {
	Level         Level         `json:"level"`
	SkillCategory SkillCategory `json:"skill_category"`
	Topic         string        `json:"topic"`
	Difficulty    int           `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
	TemplateType  string        `json:"template_type"`
	Prompt        string        `json:"prompt"`
}

// Question is one reading-comprehension question. Correct is a pointer so a
// missing value can be told apart from an explicit zero/false.
type Question struct {
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	Correct  *Answer      `json:"correct,omitempty"`
}

type ReadingContent struct {
	Text           string     `json:"text"`
	Questions      []Question `json:"questions"`
	CorrectAnswers []Answer   `json:"correct_answers,omitempty"`
	Explanation    string     `json:"explanation,omitempty"`
}

type WritingContent struct {
	Instruction        string   `json:"instruction"`
	WordLimit          int      `json:"word_limit,omitempty"`
	UsefulPhrases      []string `json:"useful_phrases,omitempty"`
	EvaluationCriteria []string `json:"evaluation_criteria,omitempty"`
	CorrectAnswers     []Answer `json:"correct_answers,omitempty"`
	Explanation        string   `json:"explanation,omitempty"`
}

type SpeakingContent struct {
	SpeakingPrompt string   `json:"speaking_prompt"`
	KeyPoints      []string `json:"key_points,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	CorrectAnswers []Answer `json:"correct_answers,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GeneratedExercise is the normalized output of the exercise engine.
// Content holds the skill-specific variant (ReadingContent, WritingContent,
// SpeakingContent, or a raw object for unlisted categories).
type GeneratedExercise struct {
	Content        any            `json:"content"`
	CorrectAnswers []Answer       `json:"correct_answers"`
	Explanation    string         `json:"explanation,omitempty"`
	Usage          TokenUsage     `json:"usage"`
	Source         ExerciseSource `json:"source"`
}

type GenerateExerciseResponse struct {
	Success        bool           `json:"success"`
	Content        any            `json:"content"`
	CorrectAnswers []Answer       `json:"correct_answers"`
	Explanation    string         `json:"explanation,omitempty"`
	Usage          TokenUsage     `json:"usage"`
	Source         ExerciseSource `json:"source"`
}
