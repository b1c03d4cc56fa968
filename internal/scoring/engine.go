package scoring

import (
	"math"
	"strconv"
	"strings"

	"gruenderai_backend/internal/model"
)

// weights balance the dimensions in the overall score, reflecting their
// importance for Gründungszuschuss approval.
var weights = map[string]float64{
	model.DimensionPersonality:    0.20,
	model.DimensionCompetence:     0.25,
	model.DimensionMarket:         0.25,
	model.DimensionFinance:        0.20,
	model.DimensionImplementation: 0.10,
}

// DimensionScore is the derived score of one dimension.
type DimensionScore struct {
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Interpretation string  `json:"interpretation"`
}

// Result bundles everything derived from a session's answers. Dimensions
// holds an entry only for dimensions with at least one answered question.
type Result struct {
	OverallScore    float64                   `json:"overall_score"`
	ReadinessLevel  string                    `json:"readiness_level"`
	Dimensions      map[string]DimensionScore `json:"dimensions"`
	Recommendations []string                  `json:"recommendations"`
	NextSteps       []string                  `json:"next_steps"`
}

// Engine computes assessment results from raw answers. It is pure: no
// side effects, the same answers always produce the same result.
type Engine struct {
	questions []model.Question
}

func NewEngine(questions []model.Question) *Engine {
	return &Engine{questions: questions}
}

// Results aggregates the answered questions into per-dimension scores, a
// weighted overall score and the derived textual feedback. Unanswered
// questions contribute nothing; a dimension without answers is omitted
// rather than scored zero.
func (e *Engine) Results(answers map[string]model.Answer) Result {
	type accum struct {
		raw   float64
		count int
	}
	acc := make(map[string]*accum, len(model.Dimensions))
	for _, dim := range model.Dimensions {
		acc[dim] = &accum{}
	}

	for i := range e.questions {
		q := &e.questions[i]
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		a := acc[q.Dimension]
		a.raw += e.ScoreAnswer(q, ans.Value)
		a.count++
	}

	dims := make(map[string]DimensionScore)
	for _, dim := range model.Dimensions {
		a := acc[dim]
		if a.count == 0 {
			continue
		}
		avg := a.raw / float64(a.count)
		level := levelFor(avg)
		dims[dim] = DimensionScore{
			Score:          round1(avg * 20),
			Level:          level,
			Interpretation: interpretationFor(dim, level),
		}
	}

	overall := overallScore(dims)
	readiness := readinessLevelFor(overall)

	return Result{
		OverallScore:    overall,
		ReadinessLevel:  readiness,
		Dimensions:      dims,
		Recommendations: recommendationsFor(dims, overall),
		NextSteps:       nextStepsFor(readiness, dims),
	}
}

// ScoreAnswer maps one raw answer to the 0-5 scale. Likert values count
// as-is, choice answers go through the question's scoring table with 0
// for unknown keys, yes/no answers are matched case-insensitively, and
// free text scores 3.0 when non-empty.
func (e *Engine) ScoreAnswer(q *model.Question, v model.AnswerValue) float64 {
	switch q.Type {
	case model.QuestionLikert:
		return v.Number
	case model.QuestionMultipleChoice:
		return q.Scoring[choiceKey(v)]
	case model.QuestionYesNo:
		scoring := q.Scoring
		if scoring == nil {
			scoring = map[string]float64{"yes": 5, "no": 0}
		}
		return scoring[strings.ToLower(v.Text)]
	case model.QuestionText:
		if strings.TrimSpace(v.Text) != "" {
			return 3.0
		}
		return 0
	}
	return 0
}

func choiceKey(v model.AnswerValue) string {
	if v.Kind == model.AnswerNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

func levelFor(avg float64) string {
	switch {
	case avg >= 4.0:
		return LevelHigh
	case avg >= 2.5:
		return LevelMedium
	default:
		return LevelLow
	}
}

func interpretationFor(dimension, level string) string {
	return interpretations[dimension][level]
}

// overallScore computes the weighted average over the present dimensions.
// Weights of absent dimensions drop out of the denominator, so partial
// sessions are normalized over the answered dimensions only.
func overallScore(dims map[string]DimensionScore) float64 {
	var weightedSum, totalWeight float64
	for _, dim := range model.Dimensions {
		ds, ok := dims[dim]
		if !ok {
			continue
		}
		weightedSum += ds.Score * weights[dim]
		totalWeight += weights[dim]
	}
	if totalWeight == 0 {
		return 0
	}
	return round1(weightedSum / totalWeight)
}

func readinessLevelFor(overall float64) string {
	switch {
	case overall >= 75:
		return ReadinessHigh
	case overall >= 55:
		return ReadinessMedium
	case overall >= 35:
		return ReadinessDeveloping
	default:
		return ReadinessLow
	}
}

// recommendationsFor assembles at most five recommendations: praise when
// the overall score clears the top tier, one message per weak dimension
// (normalized score below 60) in fixed order, and a closing referral to
// the Agentur für Arbeit. Truncation keeps the first five in that order.
func recommendationsFor(dims map[string]DimensionScore, overall float64) []string {
	weak := make(map[string]bool, len(dims))
	for dim, ds := range dims {
		if ds.Score < 60 {
			weak[dim] = true
		}
	}

	recs := []string{}
	if overall >= 75 {
		recs = append(recs, recExcellent)
	}
	if weak[model.DimensionFinance] {
		recs = append(recs, recFinance)
	}
	if weak[model.DimensionMarket] {
		recs = append(recs, recMarket)
	}
	if weak[model.DimensionCompetence] {
		recs = append(recs, recCompetence)
	}
	if weak[model.DimensionImplementation] {
		recs = append(recs, recImplementation)
	}
	recs = append(recs, recClosing)

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// nextStepsFor picks the five-step plan for the matched readiness tier.
// The dimension scores are accepted for future personalization but do
// not influence the selection.
func nextStepsFor(readiness string, _ map[string]DimensionScore) []string {
	switch {
	case strings.Contains(readiness, LevelHigh):
		return nextStepsHigh
	case strings.Contains(readiness, LevelMedium):
		return nextStepsMedium
	default:
		return nextStepsLow
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
