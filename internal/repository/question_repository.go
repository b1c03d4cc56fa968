package repository

import "gruenderai_backend/internal/model"

// QuestionRepository serves the fixed 15-question bank. The bank is
// compiled in, ordered, and immutable for the process lifetime.
type QuestionRepository struct {
	questions []model.Question
	byID      map[string]*model.Question
}

func NewQuestionRepository() *QuestionRepository {
	qs := questionBank()
	byID := make(map[string]*model.Question, len(qs))
	for i := range qs {
		byID[qs[i].ID] = &qs[i]
	}
	return &QuestionRepository{questions: qs, byID: byID}
}

// All returns the bank in presentation order.
func (r *QuestionRepository) All() []model.Question {
	return r.questions
}

// At returns the question at the given bank index.
func (r *QuestionRepository) At(index int) (*model.Question, bool) {
	if index < 0 || index >= len(r.questions) {
		return nil, false
	}
	return &r.questions[index], true
}

func (r *QuestionRepository) ByID(id string) (*model.Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}

func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

func likertOptions() []model.Option {
	return []model.Option{
		{Value: model.NumberAnswer(1), Label: "Stimme gar nicht zu"},
		{Value: model.NumberAnswer(2), Label: "Stimme eher nicht zu"},
		{Value: model.NumberAnswer(3), Label: "Neutral"},
		{Value: model.NumberAnswer(4), Label: "Stimme eher zu"},
		{Value: model.NumberAnswer(5), Label: "Stimme voll zu"},
	}
}

// questionBank builds the 15 questions covering the 5 dimensions, three
// per dimension. Question ids and texts are part of the API contract.
func questionBank() []model.Question {
	return []model.Question{
		{
			ID:        "ENT_001",
			Dimension: model.DimensionPersonality,
			Type:      model.QuestionLikert,
			Text:      "Ich bin bereit, kalkulierte Risiken einzugehen, um meine Geschäftsziele zu erreichen.",
			Options:   likertOptions(),
		},
		{
			ID:        "ENT_002",
			Dimension: model.DimensionPersonality,
			Type:      model.QuestionLikert,
			Text:      "Ich ergreife proaktiv Initiativen und warte nicht darauf, dass andere mir sagen, was zu tun ist.",
			Options:   likertOptions(),
		},
		{
			ID:        "ENT_003",
			Dimension: model.DimensionPersonality,
			Type:      model.QuestionLikert,
			Text:      "Ich kann gut mit Unsicherheit umgehen und bleibe auch bei Rückschlägen motiviert.",
			Options:   likertOptions(),
		},
		{
			ID:        "COMP_001",
			Dimension: model.DimensionCompetence,
			Type:      model.QuestionMultipleChoice,
			Text:      "Wie lange haben Sie bereits Erfahrung in der Branche Ihrer geplanten Selbstständigkeit?",
			Options: []model.Option{
				{Value: model.StringAnswer("no_experience"), Label: "Keine Erfahrung"},
				{Value: model.StringAnswer("less_1_year"), Label: "Weniger als 1 Jahr"},
				{Value: model.StringAnswer("1_3_years"), Label: "1-3 Jahre"},
				{Value: model.StringAnswer("3_5_years"), Label: "3-5 Jahre"},
				{Value: model.StringAnswer("more_5_years"), Label: "Mehr als 5 Jahre"},
			},
			Scoring: map[string]float64{
				"no_experience": 1,
				"less_1_year":   2,
				"1_3_years":     3,
				"3_5_years":     4,
				"more_5_years":  5,
			},
		},
		{
			ID:        "COMP_002",
			Dimension: model.DimensionCompetence,
			Type:      model.QuestionYesNo,
			Text:      "Haben Sie eine formale Ausbildung oder Qualifikation, die für Ihre Gründung relevant ist?",
			Options: []model.Option{
				{Value: model.StringAnswer("yes"), Label: "Ja"},
				{Value: model.StringAnswer("no"), Label: "Nein"},
			},
			Scoring: map[string]float64{"yes": 5, "no": 1},
		},
		{
			ID:        "COMP_003",
			Dimension: model.DimensionCompetence,
			Type:      model.QuestionLikert,
			Text:      "Ich verfüge über alle notwendigen fachlichen Fähigkeiten, um mein Geschäft erfolgreich zu führen.",
			Options:   likertOptions(),
		},
		{
			ID:        "MARKET_001",
			Dimension: model.DimensionMarket,
			Type:      model.QuestionYesNo,
			Text:      "Haben Sie eine detaillierte Zielgruppenanalyse durchgeführt und wissen genau, wer Ihre Kunden sein werden?",
			Options: []model.Option{
				{Value: model.StringAnswer("yes"), Label: "Ja, detailliert"},
				{Value: model.StringAnswer("partial"), Label: "Teilweise"},
				{Value: model.StringAnswer("no"), Label: "Nein, noch nicht"},
			},
			Scoring: map[string]float64{"yes": 5, "partial": 3, "no": 1},
		},
		{
			ID:        "MARKET_002",
			Dimension: model.DimensionMarket,
			Type:      model.QuestionYesNo,
			Text:      "Kennen Sie Ihre direkten Wettbewerber und können Sie klar beschreiben, was Ihr Angebot von ihnen unterscheidet?",
			Options: []model.Option{
				{Value: model.StringAnswer("yes"), Label: "Ja, genau"},
				{Value: model.StringAnswer("partial"), Label: "Teilweise"},
				{Value: model.StringAnswer("no"), Label: "Nein"},
			},
			Scoring: map[string]float64{"yes": 5, "partial": 3, "no": 1},
		},
		{
			ID:        "MARKET_003",
			Dimension: model.DimensionMarket,
			Type:      model.QuestionLikert,
			Text:      "Ich habe bereits potenzielle Kunden befragt oder Interesse an meinem Angebot validiert.",
			Options:   likertOptions(),
		},
		{
			ID:        "FIN_001",
			Dimension: model.DimensionFinance,
			Type:      model.QuestionYesNo,
			Text:      "Haben Sie eine detaillierte Finanzplanung für mindestens die ersten 3 Jahre erstellt?",
			Options: []model.Option{
				{Value: model.StringAnswer("yes"), Label: "Ja, vollständig"},
				{Value: model.StringAnswer("partial"), Label: "Teilweise"},
				{Value: model.StringAnswer("no"), Label: "Nein"},
			},
			Scoring: map[string]float64{"yes": 5, "partial": 3, "no": 1},
		},
		{
			ID:        "FIN_002",
			Dimension: model.DimensionFinance,
			Type:      model.QuestionMultipleChoice,
			Text:      "Wie hoch ist Ihr geschätzter Kapitalbedarf für die Gründung?",
			Options: []model.Option{
				{Value: model.StringAnswer("unclear"), Label: "Noch unklar"},
				{Value: model.StringAnswer("under_10k"), Label: "Unter 10.000€"},
				{Value: model.StringAnswer("10_30k"), Label: "10.000€ - 30.000€"},
				{Value: model.StringAnswer("30_50k"), Label: "30.000€ - 50.000€"},
				{Value: model.StringAnswer("over_50k"), Label: "Über 50.000€"},
			},
			Scoring: map[string]float64{
				"unclear":   1,
				"under_10k": 4,
				"10_30k":    5,
				"30_50k":    4,
				"over_50k":  3,
			},
		},
		{
			ID:        "FIN_003",
			Dimension: model.DimensionFinance,
			Type:      model.QuestionLikert,
			Text:      "Ich habe realistische Umsatzprognosen erstellt, die auf Marktdaten basieren.",
			Options:   likertOptions(),
		},
		{
			ID:        "IMPL_001",
			Dimension: model.DimensionImplementation,
			Type:      model.QuestionMultipleChoice,
			Text:      "In welchem Stadium befindet sich Ihre Gründungsvorbereitung?",
			Options: []model.Option{
				{Value: model.StringAnswer("idea"), Label: "Frühe Ideenphase"},
				{Value: model.StringAnswer("concept"), Label: "Konzeptentwicklung"},
				{Value: model.StringAnswer("planning"), Label: "Detailplanung"},
				{Value: model.StringAnswer("ready"), Label: "Startbereit"},
			},
			Scoring: map[string]float64{
				"idea":     2,
				"concept":  3,
				"planning": 4,
				"ready":    5,
			},
		},
		{
			ID:        "IMPL_002",
			Dimension: model.DimensionImplementation,
			Type:      model.QuestionYesNo,
			Text:      "Haben Sie bereits konkrete Schritte unternommen (z.B. Gewerbe angemeldet, Website erstellt, Kunden kontaktiert)?",
			Options: []model.Option{
				{Value: model.StringAnswer("yes"), Label: "Ja, mehrere"},
				{Value: model.StringAnswer("some"), Label: "Einige"},
				{Value: model.StringAnswer("no"), Label: "Noch keine"},
			},
			Scoring: map[string]float64{"yes": 5, "some": 3, "no": 1},
		},
		{
			ID:        "IMPL_003",
			Dimension: model.DimensionImplementation,
			Type:      model.QuestionLikert,
			Text:      "Ich könnte innerhalb der nächsten 4 Wochen mit meiner selbstständigen Tätigkeit starten.",
			Options:   likertOptions(),
		},
	}
}
