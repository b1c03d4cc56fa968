package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gruenderai_backend/internal/model"
	"gruenderai_backend/internal/repository"
)

func newBankEngine() *Engine {
	return NewEngine(repository.NewQuestionRepository().All())
}

func answersFor(values map[string]model.AnswerValue) map[string]model.Answer {
	out := make(map[string]model.Answer, len(values))
	for id, v := range values {
		out[id] = model.Answer{Value: v}
	}
	return out
}

// topAnswers picks the best-scoring answer for every bank question.
func topAnswers() map[string]model.AnswerValue {
	return map[string]model.AnswerValue{
		"ENT_001":    model.NumberAnswer(5),
		"ENT_002":    model.NumberAnswer(5),
		"ENT_003":    model.NumberAnswer(5),
		"COMP_001":   model.StringAnswer("more_5_years"),
		"COMP_002":   model.StringAnswer("yes"),
		"COMP_003":   model.NumberAnswer(5),
		"MARKET_001": model.StringAnswer("yes"),
		"MARKET_002": model.StringAnswer("yes"),
		"MARKET_003": model.NumberAnswer(5),
		"FIN_001":    model.StringAnswer("yes"),
		"FIN_002":    model.StringAnswer("10_30k"),
		"FIN_003":    model.NumberAnswer(5),
		"IMPL_001":   model.StringAnswer("ready"),
		"IMPL_002":   model.StringAnswer("yes"),
		"IMPL_003":   model.NumberAnswer(5),
	}
}

func TestScoreAnswer(t *testing.T) {
	engine := newBankEngine()
	bank := repository.NewQuestionRepository()

	question := func(id string) *model.Question {
		q, ok := bank.ByID(id)
		require.True(t, ok, id)
		return q
	}

	tests := []struct {
		name   string
		q      *model.Question
		answer model.AnswerValue
		want   float64
	}{
		{"likert value counts as-is", question("ENT_001"), model.NumberAnswer(4), 4},
		{"choice key scored via table", question("COMP_001"), model.StringAnswer("3_5_years"), 4},
		{"unknown choice key scores zero", question("COMP_001"), model.StringAnswer("decades"), 0},
		{"yes_no uses question table", question("MARKET_001"), model.StringAnswer("partial"), 3},
		{"yes_no matching is case-insensitive", question("MARKET_001"), model.StringAnswer("YES"), 5},
		{"negative yes_no keeps table score", question("COMP_002"), model.StringAnswer("no"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ScoreAnswer(tt.q, tt.answer))
		})
	}
}

func TestScoreAnswerFallbacks(t *testing.T) {
	engine := newBankEngine()

	t.Run("yes_no without table uses builtin scores", func(t *testing.T) {
		q := &model.Question{ID: "X_001", Type: model.QuestionYesNo}
		assert.Equal(t, 5.0, engine.ScoreAnswer(q, model.StringAnswer("yes")))
		assert.Equal(t, 0.0, engine.ScoreAnswer(q, model.StringAnswer("no")))
		assert.Equal(t, 0.0, engine.ScoreAnswer(q, model.StringAnswer("maybe")))
	})

	t.Run("text scores flat when non-empty", func(t *testing.T) {
		q := &model.Question{ID: "X_002", Type: model.QuestionText}
		assert.Equal(t, 3.0, engine.ScoreAnswer(q, model.StringAnswer("Mein Konzept steht.")))
		assert.Equal(t, 0.0, engine.ScoreAnswer(q, model.StringAnswer("   ")))
		assert.Equal(t, 0.0, engine.ScoreAnswer(q, model.StringAnswer("")))
	})

	t.Run("numeric choice keys hit the table", func(t *testing.T) {
		q := &model.Question{
			ID:      "X_003",
			Type:    model.QuestionMultipleChoice,
			Scoring: map[string]float64{"3": 2.5},
		}
		assert.Equal(t, 2.5, engine.ScoreAnswer(q, model.NumberAnswer(3)))
	})

	t.Run("unknown question type scores zero", func(t *testing.T) {
		q := &model.Question{ID: "X_004", Type: "ranking"}
		assert.Equal(t, 0.0, engine.ScoreAnswer(q, model.StringAnswer("first")))
	})
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{5, LevelHigh},
		{4.0, LevelHigh},
		{3.99, LevelMedium},
		{2.5, LevelMedium},
		{2.49, LevelLow},
		{0, LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.avg), "avg %v", tt.avg)
	}
}

func TestReadinessBoundaries(t *testing.T) {
	tests := []struct {
		overall float64
		want    string
	}{
		{100, ReadinessHigh},
		{75, ReadinessHigh},
		{74.9, ReadinessMedium},
		{55, ReadinessMedium},
		{54.9, ReadinessDeveloping},
		{35, ReadinessDeveloping},
		{34.9, ReadinessLow},
		{0, ReadinessLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, readinessLevelFor(tt.overall), "overall %v", tt.overall)
	}
}

func TestResultsAllTop(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(answersFor(topAnswers()))

	assert.Equal(t, 100.0, res.OverallScore)
	assert.Equal(t, ReadinessHigh, res.ReadinessLevel)

	require.Len(t, res.Dimensions, 5)
	for dim, ds := range res.Dimensions {
		assert.Equal(t, 100.0, ds.Score, dim)
		assert.Equal(t, LevelHigh, ds.Level, dim)
		assert.Equal(t, interpretations[dim][LevelHigh], ds.Interpretation, dim)
	}

	assert.Equal(t, []string{recExcellent, recClosing}, res.Recommendations)
	assert.Equal(t, nextStepsHigh, res.NextSteps)
}

func TestResultsAllBottom(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(answersFor(map[string]model.AnswerValue{
		"ENT_001":    model.NumberAnswer(1),
		"ENT_002":    model.NumberAnswer(1),
		"ENT_003":    model.NumberAnswer(1),
		"COMP_001":   model.StringAnswer("no_experience"),
		"COMP_002":   model.StringAnswer("no"),
		"COMP_003":   model.NumberAnswer(1),
		"MARKET_001": model.StringAnswer("no"),
		"MARKET_002": model.StringAnswer("no"),
		"MARKET_003": model.NumberAnswer(1),
		"FIN_001":    model.StringAnswer("no"),
		"FIN_002":    model.StringAnswer("unclear"),
		"FIN_003":    model.NumberAnswer(1),
		"IMPL_001":   model.StringAnswer("idea"),
		"IMPL_002":   model.StringAnswer("no"),
		"IMPL_003":   model.NumberAnswer(1),
	}))

	assert.Equal(t, 20.7, res.OverallScore)
	assert.Equal(t, ReadinessLow, res.ReadinessLevel)

	assert.Equal(t, 20.0, res.Dimensions[model.DimensionPersonality].Score)
	// The cheapest implementation answer still scores 2 of 5.
	assert.Equal(t, 26.7, res.Dimensions[model.DimensionImplementation].Score)
	assert.Equal(t, LevelLow, res.Dimensions[model.DimensionFinance].Level)

	assert.Equal(t, []string{recFinance, recMarket, recCompetence, recImplementation, recClosing}, res.Recommendations)
	assert.Equal(t, nextStepsLow, res.NextSteps)
}

func TestResultsMediumTier(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(answersFor(map[string]model.AnswerValue{
		"ENT_001":    model.NumberAnswer(3),
		"ENT_002":    model.NumberAnswer(3),
		"ENT_003":    model.NumberAnswer(3),
		"COMP_001":   model.StringAnswer("1_3_years"),
		"COMP_002":   model.StringAnswer("yes"),
		"COMP_003":   model.NumberAnswer(3),
		"MARKET_001": model.StringAnswer("partial"),
		"MARKET_002": model.StringAnswer("partial"),
		"MARKET_003": model.NumberAnswer(3),
		"FIN_001":    model.StringAnswer("partial"),
		"FIN_002":    model.StringAnswer("over_50k"),
		"FIN_003":    model.NumberAnswer(3),
		"IMPL_001":   model.StringAnswer("concept"),
		"IMPL_002":   model.StringAnswer("some"),
		"IMPL_003":   model.NumberAnswer(3),
	}))

	assert.Equal(t, 63.3, res.OverallScore)
	assert.Equal(t, ReadinessMedium, res.ReadinessLevel)

	comp := res.Dimensions[model.DimensionCompetence]
	assert.Equal(t, 73.3, comp.Score)
	assert.Equal(t, LevelMedium, comp.Level)
	assert.Equal(t, interpretations[model.DimensionCompetence][LevelMedium], comp.Interpretation)

	// No dimension scored below 60, so only the referral remains.
	assert.Equal(t, []string{recClosing}, res.Recommendations)
	assert.Equal(t, nextStepsMedium, res.NextSteps)
}

func TestResultsPartialRenormalizes(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(answersFor(map[string]model.AnswerValue{
		"ENT_001": model.NumberAnswer(4),
		"ENT_002": model.NumberAnswer(4),
		"ENT_003": model.NumberAnswer(4),
	}))

	require.Len(t, res.Dimensions, 1)
	ds, ok := res.Dimensions[model.DimensionPersonality]
	require.True(t, ok)
	assert.Equal(t, 80.0, ds.Score)
	assert.Equal(t, LevelHigh, ds.Level)

	// The single answered dimension carries the full weight.
	assert.Equal(t, 80.0, res.OverallScore)
	assert.Equal(t, ReadinessHigh, res.ReadinessLevel)
}

func TestResultsRenormalizesOverAnsweredDimensions(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(answersFor(map[string]model.AnswerValue{
		"ENT_001": model.NumberAnswer(4),
		"ENT_002": model.NumberAnswer(4),
		"ENT_003": model.NumberAnswer(4),
		"FIN_001": model.StringAnswer("no"),
		"FIN_002": model.StringAnswer("unclear"),
		"FIN_003": model.NumberAnswer(1),
	}))

	// 80 and 20 with equal weights of 0.20 each.
	require.Len(t, res.Dimensions, 2)
	assert.Equal(t, 50.0, res.OverallScore)
	assert.Equal(t, ReadinessDeveloping, res.ReadinessLevel)

	assert.Equal(t, []string{recFinance, recClosing}, res.Recommendations)
	assert.Equal(t, nextStepsLow, res.NextSteps)
}

func TestResultsEmptyAnswers(t *testing.T) {
	engine := newBankEngine()

	res := engine.Results(map[string]model.Answer{})

	assert.Equal(t, 0.0, res.OverallScore)
	assert.Equal(t, ReadinessLow, res.ReadinessLevel)
	require.NotNil(t, res.Dimensions)
	assert.Empty(t, res.Dimensions)
	assert.Equal(t, []string{recClosing}, res.Recommendations)
	assert.Equal(t, nextStepsLow, res.NextSteps)
}

func TestRecommendationsTruncatedToFive(t *testing.T) {
	dims := map[string]DimensionScore{
		model.DimensionPersonality:    {Score: 90},
		model.DimensionCompetence:     {Score: 50},
		model.DimensionMarket:         {Score: 50},
		model.DimensionFinance:        {Score: 50},
		model.DimensionImplementation: {Score: 50},
	}

	recs := recommendationsFor(dims, 80)

	// Five entries max; the closing referral is the one that falls off.
	require.Len(t, recs, 5)
	assert.Equal(t, []string{recExcellent, recFinance, recMarket, recCompetence, recImplementation}, recs)
}

func TestResultsDeterministic(t *testing.T) {
	engine := newBankEngine()
	in := answersFor(topAnswers())

	assert.Equal(t, engine.Results(in), engine.Results(in))
}
