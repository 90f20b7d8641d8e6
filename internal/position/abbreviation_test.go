package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviation(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		// Goalkeepers
		{"Portiere", "GK"},
		{"Goalkeeper", "GK"},

		// Defenders
		{"Difesa - Difensore centrale", "CB"},
		{"Centre-Back", "CB"},
		{"Difesa - Terzino sinistro", "LB"},
		{"Difesa - Terzino destro", "RB"},
		{"Left-Back", "LB"},
		{"Right-Back", "RB"},

		// Wing-backs
		{"Difesa - Esterno sinistro", "LWB"},
		{"Difesa - Esterno destro", "RWB"},
		{"Esterno di sinistra", "LWB"},
		{"Left Wing-Back", "LWB"},

		// Midfielders
		{"Centrocampo - Mediano", "DM"},
		{"Centrocampo - Centrocampista", "CM"},
		{"Defensive Midfield", "DM"},
		{"Central Midfield", "CM"},
		{"Attacking Midfield", "AM"},
		{"Mezzala destra", "RCM"},

		// Wingers
		{"Attacco - Ala sinistra", "LW"},
		{"Attacco - Ala destra", "RW"},
		{"Left Winger", "LW"},
		{"Right Winger", "RW"},

		// Forwards
		{"Attacco - Attaccante", "ST"},
		{"Attacco - Seconda punta", "SS"},
		{"Centre-Forward", "ST"},
		{"Second Striker", "SS"},
		{"Striker", "ST"},

		// Fallback
		{"", "MF"},
		{"Libero", "MF"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Abbreviation(tc.text), "Abbreviation(%q)", tc.text)
	}
}

// The same position in different source languages must yield the same code.
func TestAbbreviationCrossLanguage(t *testing.T) {
	leftBacks := []string{
		"Terzino sinistro",
		"Left-Back",
		"Lateral izquierdo",
		"Linksverteidiger",
		"Latéral gauche",
		"Lateral esquerdo",
	}
	for _, text := range leftBacks {
		assert.Equal(t, "LB", Abbreviation(text), "Abbreviation(%q)", text)
	}

	strikers := []string{"Attaccante", "Centre-Forward", "Mittelstürmer", "Avant-centre", "Delantero centro"}
	for _, text := range strikers {
		assert.Equal(t, "ST", Abbreviation(text), "Abbreviation(%q)", text)
	}
}

// Repeated calls on ambiguous input must pick the same entry: the substring
// fallback walks the table longest-label-first.
func TestAbbreviationStable(t *testing.T) {
	first := Abbreviation("some unknown winger text")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Abbreviation("some unknown winger text"))
	}
}

func TestStripSectionPrefix(t *testing.T) {
	assert.Equal(t, "Terzino sinistro", StripSectionPrefix("Difesa - Terzino sinistro"))
	assert.Equal(t, "Zentrales Mittelfeld", StripSectionPrefix("Mittelfeld - Zentrales Mittelfeld"))
	assert.Equal(t, "Left Winger", StripSectionPrefix("Attack - Left Winger"))
	assert.Equal(t, "Left Winger", StripSectionPrefix("Left Winger"))
	assert.Equal(t, "", StripSectionPrefix(""))
}
