package scoring

import "gruenderai_backend/internal/model"

// Dimension levels on the 0-5 raw average.
const (
	LevelHigh   = "Hoch"
	LevelMedium = "Mittel"
	LevelLow    = "Niedrig"
)

// Readiness tiers on the 0-100 overall score.
const (
	ReadinessHigh       = "Hoch - Sehr gute Bewilligungschancen"
	ReadinessMedium     = "Mittel - Gute Chancen mit Optimierungen"
	ReadinessDeveloping = "Ausbaufähig - Verbesserungen erforderlich"
	ReadinessLow        = "Niedrig - Erhebliche Vorbereitung notwendig"
)

// interpretations maps (dimension, level) to the feedback text shown with
// a dimension score. A missing combination yields an empty string.
var interpretations = map[string]map[string]string{
	model.DimensionPersonality: {
		LevelHigh:   "Sie zeigen ausgeprägte unternehmerische Eigenschaften wie Risikobereitschaft und Proaktivität.",
		LevelMedium: "Ihre unternehmerischen Eigenschaften sind gut entwickelt, können aber noch gestärkt werden.",
		LevelLow:    "Es empfiehlt sich, an unternehmerischen Kompetenzen zu arbeiten.",
	},
	model.DimensionCompetence: {
		LevelHigh:   "Sie verfügen über starke fachliche Qualifikationen für Ihre Gründung.",
		LevelMedium: "Ihre fachlichen Kompetenzen sind solide, spezifische Weiterbildung könnte hilfreich sein.",
		LevelLow:    "Fachliche Weiterbildung wird empfohlen, um Ihre Erfolgschancen zu erhöhen.",
	},
	model.DimensionMarket: {
		LevelHigh:   "Sie haben ein klares Verständnis Ihres Zielmarktes und Ihrer Kunden.",
		LevelMedium: "Ihr Marktverständnis ist vorhanden, vertiefte Marktforschung wäre vorteilhaft.",
		LevelLow:    "Intensivere Auseinandersetzung mit dem Markt ist wichtig für Ihren Erfolg.",
	},
	model.DimensionFinance: {
		LevelHigh:   "Ihre Finanzplanung ist durchdacht und realistisch.",
		LevelMedium: "Grundlegende Finanzplanung vorhanden, Details sollten verfeinert werden.",
		LevelLow:    "Professionelle Unterstützung bei der Finanzplanung wird dringend empfohlen.",
	},
	model.DimensionImplementation: {
		LevelHigh:   "Sie sind gut vorbereitet und können mit der Umsetzung beginnen.",
		LevelMedium: "Einige Vorbereitungen sind noch zu treffen, bevor Sie starten können.",
		LevelLow:    "Erhebliche Vorarbeit ist noch erforderlich für einen erfolgreichen Start.",
	},
}

const (
	recExcellent      = "Ihre Vorbereitung ist ausgezeichnet. Fokussieren Sie jetzt auf die formale Antragstellung."
	recFinance        = "Erstellen Sie eine detaillierte 3-Jahres-Finanzplanung mit realistischen Annahmen."
	recMarket         = "Führen Sie eine gründliche Markt- und Wettbewerbsanalyse durch."
	recCompetence     = "Dokumentieren Sie Ihre fachlichen Qualifikationen und Branchenerfahrung detailliert."
	recImplementation = "Entwickeln Sie einen konkreten Zeitplan für Ihre ersten 6 Monate."
	recClosing        = "Nutzen Sie die Gründungszuschuss-Beratung Ihrer Agentur für Arbeit."
)

var nextStepsHigh = []string{
	"Terminvereinbarung mit Ihrer Agentur für Arbeit",
	"Businessplan finalisieren und formatieren",
	"Stellungnahme einer fachkundigen Stelle einholen",
	"Alle erforderlichen Unterlagen zusammenstellen",
	"Antrag einreichen",
}

var nextStepsMedium = []string{
	"Schwachstellen in Ihrem Konzept identifizieren und beheben",
	"Businessplan von Experten prüfen lassen",
	"Fehlende Qualifikationen nachweisen oder aufbauen",
	"Finanzplanung mit einem Berater durchgehen",
	"Dann Antrag bei der Agentur für Arbeit stellen",
}

var nextStepsLow = []string{
	"Gründungsberatung in Anspruch nehmen",
	"Businessplan-Workshop oder -Kurs besuchen",
	"Geschäftsidee schärfen und validieren",
	"Fachliche Kompetenzen gezielt ausbauen",
	"Assessment nach Vorbereitung wiederholen",
}
