// Package position collapses free-text football position labels, in any of
// the six supported source languages, into a fixed taxonomy: six general
// roles and a small set of tactical-diagram abbreviations.
//
// Both classification functions are pure and total — they never fail, and
// unknown input falls back to the midfielder bucket rather than an error.
// The tables are package-level and read-only, safe for concurrent use.
package position

import "strings"

// GeneralRole is one of the six coarse roles used throughout the output
// schema.
type GeneralRole string

const (
	Goalkeeper GeneralRole = "Goalkeeper"
	Defender   GeneralRole = "Defender"
	FullBack   GeneralRole = "Full-Back"
	Midfielder GeneralRole = "Midfielder"
	Winger     GeneralRole = "Winger"
	Forward    GeneralRole = "Forward"
)

// roleRule matches a position text against a role. Codes are compared
// exactly (after lowercasing), keywords as substrings.
type roleRule struct {
	role     GeneralRole
	codes    []string
	keywords []string
}

// roleRules is evaluated top-down, first match wins. Order carries the
// precedence semantics: full-backs and wing-backs must be classified before
// the generic defender keywords ("back", "verteidiger") get a chance, and
// midfield labels before winger/forward ones so that attacking midfielders
// are not misread as attackers.
var roleRules = []roleRule{
	{
		role:  Goalkeeper,
		codes: []string{"gk", "por"},
		keywords: []string{
			"portiere", "goalkeeper", "porta", "torwart", "gardien", "portero", "goleiro",
		},
	},
	{
		role:  FullBack,
		codes: []string{"lb", "rb", "lwb", "rwb"},
		keywords: []string{
			"terzino", "left-back", "right-back", "esterno", "wing-back", "wingback",
			"außenverteidiger", "flügelverteidiger", "linksverteidiger",
			"rechtsverteidiger", "latéral", "lateral",
		},
	},
	{
		role:  Defender,
		codes: []string{"cb", "dc", "lcb", "rcb"},
		keywords: []string{
			"difensore", "difesa", "centre-back", "center-back", "defender",
			"innenverteidiger", "abwehr", "défenseur", "defensa", "zagueiro",
		},
	},
	{
		role:  Midfielder,
		codes: []string{"cm", "dm", "cdm", "cam", "am", "mf", "med", "lcm", "rcm"},
		keywords: []string{
			"centrocampo", "centrocampista", "mediano", "mezzala", "trequartista",
			"midfield", "mittelfeld", "milieu", "mediocampista", "mediocentro",
			"pivote", "mediapunta", "volante", "meia",
		},
	},
	{
		role:  Winger,
		codes: []string{"lw", "rw"},
		keywords: []string{
			"ala", "winger", "flügel", "ailier", "extremo", "ponta",
		},
	},
	{
		role:  Forward,
		codes: []string{"st", "cf", "ss", "att", "sp"},
		keywords: []string{
			"attaccante", "attacco", "punta", "striker", "forward", "stürmer",
			"sturm", "avant", "delantero", "atacante", "centroavante",
		},
	},
}

// Role maps an arbitrary position label to its general role. Empty or
// unrecognized input returns Midfielder.
func Role(text string) GeneralRole {
	cleaned := strings.ToLower(cleanText(text))
	if cleaned == "" {
		return Midfielder
	}

	for _, rule := range roleRules {
		for _, code := range rule.codes {
			if cleaned == code {
				return rule.role
			}
		}
		for _, kw := range rule.keywords {
			if strings.Contains(cleaned, kw) {
				return rule.role
			}
		}
	}

	return Midfielder
}

// cleanText collapses runs of whitespace and trims the result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
