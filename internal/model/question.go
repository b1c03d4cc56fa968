package model

// QuestionType identifies how an answer to a question is scored.
type QuestionType string

const (
	QuestionLikert         QuestionType = "likert"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionText           QuestionType = "text"
)

// Assessment dimensions, scored independently before weighting.
const (
	DimensionPersonality    = "Unternehmerische Persönlichkeit"
	DimensionCompetence     = "Fachkompetenz"
	DimensionMarket         = "Marktverständnis"
	DimensionFinance        = "Finanzplanung"
	DimensionImplementation = "Umsetzungsreife"
)

// Dimensions lists all dimensions in canonical order.
var Dimensions = []string{
	DimensionPersonality,
	DimensionCompetence,
	DimensionMarket,
	DimensionFinance,
	DimensionImplementation,
}

// Option is one selectable answer for a question. Likert options carry
// numeric values, choice options carry string keys.
type Option struct {
	Value AnswerValue `json:"value"`
	Label string      `json:"label"`
}

// Question is one immutable entry of the question bank. Scoring maps an
// option key to its 0-5 score and is nil for self-scoring likert questions.
type Question struct {
	ID        string
	Dimension string
	Type      QuestionType
	Text      string
	Options   []Option
	Scoring   map[string]float64
}
