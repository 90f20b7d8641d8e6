// Package translate normalizes language-dependent prose (position labels,
// preferred foot, nationality, club names) into English.
//
// A curated phrase table is checked first; it is more reliable than machine
// translation for football vocabulary. Only when no manual entry exists and
// the source language is not English does the external translation client
// get called, and a failed call degrades to returning the input unchanged.
// Translation is best-effort by design; it is never fatal.
package translate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/scoutdesk/scoutdesk-data/internal/position"
)

// Client is an external translation capability.
type Client interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Translator resolves text to English via the manual tables with an
// optional external fallback. It holds no per-call state and is safe for
// concurrent use.
type Translator struct {
	client Client // nil means manual tables only
	logger *slog.Logger
}

// New creates a Translator. client may be nil to disable the external
// fallback.
func New(client Client, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Translator{client: client, logger: logger}
}

// Position translates a position label to English. The positional-section
// prefix ("Difesa - ", "Mittelfeld - ", ...) is stripped first.
func (t *Translator) Position(ctx context.Context, text, sourceLang string) string {
	cleaned := position.StripSectionPrefix(text)
	if cleaned == "" {
		return ""
	}
	if en, ok := positionTranslations[cleaned]; ok {
		return en
	}
	return t.fallback(ctx, cleaned, sourceLang)
}

// Foot translates a preferred-foot label to lowercase English
// (left/right/both).
func (t *Translator) Foot(ctx context.Context, text, sourceLang string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	if en, ok := footTranslations[lower]; ok {
		return en
	}
	return strings.ToLower(t.fallback(ctx, lower, sourceLang))
}

// Text translates arbitrary prose (nationalities, club names) to English.
func (t *Translator) Text(ctx context.Context, text, sourceLang string) string {
	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" {
		return ""
	}
	return t.fallback(ctx, cleaned, sourceLang)
}

func (t *Translator) fallback(ctx context.Context, text, sourceLang string) string {
	if sourceLang == "en" || sourceLang == "" || t.client == nil {
		return text
	}
	translated, err := t.client.Translate(ctx, text, sourceLang, "en")
	if err != nil {
		t.logger.Warn("translation failed, keeping source text",
			"text", text, "source_lang", sourceLang, "error", err)
		return text
	}
	return translated
}

// positionTranslations is the curated phrase table for position labels in
// the five non-English source languages.
var positionTranslations = map[string]string{
	// Italian
	"Portiere":                    "Goalkeeper",
	"Difensore centrale":          "Centre-Back",
	"Difensore centrale sinistro": "Left Centre-Back",
	"Difensore centrale destro":   "Right Centre-Back",
	"Terzino sinistro":            "Left-Back",
	"Terzino destro":              "Right-Back",
	"Esterno sinistro":            "Left Wing-Back",
	"Esterno destro":              "Right Wing-Back",
	"Mediano":                     "Defensive Midfield",
	"Centrocampista":              "Central Midfield",
	"Centrocampista sinistro":     "Left Midfield",
	"Centrocampista destro":       "Right Midfield",
	"Trequartista":                "Attacking Midfield",
	"Ala sinistra":                "Left Winger",
	"Ala destra":                  "Right Winger",
	"Seconda punta":               "Second Striker",
	"Attaccante":                  "Centre-Forward",
	"Punta":                       "Centre-Forward",

	// Spanish
	"Portero":           "Goalkeeper",
	"Defensa central":   "Centre-Back",
	"Lateral izquierdo": "Left-Back",
	"Lateral derecho":   "Right-Back",
	"Pivote":            "Defensive Midfield",
	"Mediocentro":       "Central Midfield",
	"Mediapunta":        "Attacking Midfield",
	"Extremo izquierdo": "Left Winger",
	"Extremo derecho":   "Right Winger",
	"Delantero centro":  "Centre-Forward",

	// German
	"Torwart":               "Goalkeeper",
	"Innenverteidiger":      "Centre-Back",
	"Linker Verteidiger":    "Left-Back",
	"Rechter Verteidiger":   "Right-Back",
	"Linksverteidiger":      "Left-Back",
	"Rechtsverteidiger":     "Right-Back",
	"Defensives Mittelfeld": "Defensive Midfield",
	"Zentrales Mittelfeld":  "Central Midfield",
	"Offensives Mittelfeld": "Attacking Midfield",
	"Linksaußen":            "Left Winger",
	"Rechtsaußen":           "Right Winger",
	"Mittelstürmer":         "Centre-Forward",
	"Sturm":                 "Centre-Forward",

	// French
	"Gardien de but":    "Goalkeeper",
	"Défenseur central": "Centre-Back",
	"Arrière gauche":    "Left-Back",
	"Arrière droit":     "Right-Back",
	"Latéral gauche":    "Left-Back",
	"Latéral droit":     "Right-Back",
	"Milieu défensif":   "Defensive Midfield",
	"Milieu central":    "Central Midfield",
	"Milieu offensif":   "Attacking Midfield",
	"Ailier gauche":     "Left Winger",
	"Ailier droit":      "Right Winger",
	"Avant-centre":      "Centre-Forward",

	// Portuguese
	"Goleiro":          "Goalkeeper",
	"Zagueiro":         "Centre-Back",
	"Lateral esquerdo": "Left-Back",
	"Lateral direito":  "Right-Back",
	"Volante":          "Defensive Midfield",
	"Meia":             "Central Midfield",
	"Meia-atacante":    "Attacking Midfield",
	"Ponta esquerda":   "Left Winger",
	"Ponta direita":    "Right Winger",
	"Centroavante":     "Centre-Forward",
}

// footTranslations maps preferred-foot labels to lowercase English.
var footTranslations = map[string]string{
	"destro":      "right",
	"sinistro":    "left",
	"ambidestro":  "both",
	"derecho":     "right",
	"izquierdo":   "left",
	"ambidiestro": "both",
	"rechts":      "right",
	"links":       "left",
	"beidfüßig":   "both",
	"droit":       "right",
	"gauche":      "left",
	"ambidextre":  "both",
	"direito":     "right",
	"esquerdo":    "left",
}
