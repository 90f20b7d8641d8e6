package position

import (
	"regexp"
	"sort"
	"strings"
)

// FallbackAbbreviation is returned when no table entry matches.
const FallbackAbbreviation = "MF"

// sectionPrefix strips the positional-section prefix the source site puts in
// front of some labels, e.g. "Difesa - Terzino sinistro" or
// "Mittelfeld - Zentrales Mittelfeld".
var sectionPrefix = regexp.MustCompile(`(?i)^(Difesa|Centrocampo|Attacco|Defense|Defence|Midfield|Attack|Defensa|Mediocampo|Ataque|Abwehr|Mittelfeld|Angriff|Sturm|Défense|Milieu|Attaque|Defesa|Meio-campo)\s*-\s*`)

// abbreviations maps canonical position labels in all supported languages to
// the short codes used by the tactical-diagram UI.
var abbreviations = map[string]string{
	// Goalkeepers → GK
	"Portiere":   "GK",
	"Porta":      "GK",
	"GK":         "GK",
	"Goalkeeper": "GK",
	"Torwart":    "GK",
	"Gardien":    "GK",
	"Portero":    "GK",
	"Goleiro":    "GK",

	// Centre-backs → CB
	"Difensore centrale":          "CB",
	"Difensore centrale sinistro": "LCB",
	"Difensore centrale destro":   "RCB",
	"CB":                          "CB",
	"CB-L":                        "LCB",
	"CB-R":                        "RCB",
	"Centre-Back":                 "CB",
	"Center-Back":                 "CB",
	"Innenverteidiger":            "CB",
	"Défenseur central":           "CB",
	"Defensa central":             "CB",
	"Zagueiro":                    "CB",

	// Full-backs → LB/RB
	"Terzino sinistro":  "LB",
	"Terzino destro":    "RB",
	"LB":                "LB",
	"RB":                "RB",
	"Left-Back":         "LB",
	"Right-Back":        "RB",
	"Linksverteidiger":  "LB",
	"Rechtsverteidiger": "RB",
	"Latéral gauche":    "LB",
	"Latéral droit":     "RB",
	"Lateral izquierdo": "LB",
	"Lateral derecho":   "RB",
	"Lateral esquerdo":  "LB",
	"Lateral direito":   "RB",

	// Wing-backs → LWB/RWB
	"Esterno sinistro":          "LWB",
	"Esterno destro":            "RWB",
	"Esterno di sinistra":       "LWB",
	"Esterno di destra":         "RWB",
	"LWB":                       "LWB",
	"RWB":                       "RWB",
	"Left Wing-Back":            "LWB",
	"Right Wing-Back":           "RWB",
	"Linker Flügelverteidiger":  "LWB",
	"Rechter Flügelverteidiger": "RWB",

	// Defensive midfielders → DM
	"Mediano":                 "DM",
	"Mediano sinistro":        "LDM",
	"Mediano destro":          "RDM",
	"CDM":                     "DM",
	"CDM-L":                   "LDM",
	"CDM-R":                   "RDM",
	"Defensive Midfield":      "DM",
	"Defensives Mittelfeld":   "DM",
	"Milieu défensif":         "DM",
	"Mediocampista defensivo": "DM",
	"Pivote":                  "DM",
	"Volante":                 "DM",

	// Central midfielders → CM
	"Centrocampista":          "CM",
	"Centrocampista centrale": "CM",
	"Centrocampista sinistro": "LCM",
	"Centrocampista destro":   "RCM",
	"CM":                      "CM",
	"CM-L":                    "LCM",
	"CM-R":                    "RCM",
	"Central Midfield":        "CM",
	"Zentrales Mittelfeld":    "CM",
	"Milieu central":          "CM",
	"Mediocampista central":   "CM",
	"Mediocentro":             "CM",
	"Meia":                    "CM",

	// Half-wingers → LCM/RCM
	"Mezzala sinistra": "LCM",
	"Mezzala destra":   "RCM",
	"LCM":              "LCM",
	"RCM":              "RCM",

	// Attacking midfielders → AM
	"Trequartista":           "AM",
	"Trequartista sinistro":  "LAM",
	"Trequartista destro":    "RAM",
	"CAM":                    "AM",
	"CAM-L":                  "LAM",
	"CAM-R":                  "RAM",
	"Attacking Midfield":     "AM",
	"Offensives Mittelfeld":  "AM",
	"Milieu offensif":        "AM",
	"Mediocampista ofensivo": "AM",
	"Mediapunta":             "AM",
	"Meia-atacante":          "AM",

	// Wingers → LW/RW
	"Ala sinistra":     "LW",
	"Ala destra":       "RW",
	"LW":               "LW",
	"RW":               "RW",
	"Left Winger":      "LW",
	"Right Winger":     "RW",
	"Linksaußen":       "LW",
	"Rechtsaußen":      "RW",
	"Ailier gauche":    "LW",
	"Ailier droit":     "RW",
	"Extremo izquierdo": "LW",
	"Extremo derecho":   "RW",
	"Ponta esquerda":    "LW",
	"Ponta direita":     "RW",

	// Second strikers → SS
	"Seconda punta":          "SS",
	"Seconda punta sinistra": "LSS",
	"Seconda punta destra":   "RSS",
	"SS":                     "SS",
	"SS-L":                   "LSS",
	"SS-R":                   "RSS",
	"Second Striker":         "SS",
	"Hängende Spitze":        "SS",
	"Deuxième attaquant":     "SS",
	"Segundo delantero":      "SS",

	// Strikers → ST
	"Attaccante":          "ST",
	"Attaccante sinistro": "LST",
	"Attaccante destro":   "RST",
	"Punta":               "ST",
	"ST":                  "ST",
	"ST-L":                "LST",
	"ST-R":                "RST",
	"Centre-Forward":      "ST",
	"Center-Forward":      "ST",
	"Striker":             "ST",
	"Mittelstürmer":       "ST",
	"Avant-centre":        "ST",
	"Delantero centro":    "ST",
	"Centroavante":        "ST",
}

// orderedLabels holds the table keys longest-first so the substring fallback
// is deterministic and prefers the most specific label.
var orderedLabels = func() []string {
	labels := make([]string, 0, len(abbreviations))
	for label := range abbreviations {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if len(labels[i]) != len(labels[j]) {
			return len(labels[i]) > len(labels[j])
		}
		return labels[i] < labels[j]
	})
	return labels
}()

// StripSectionPrefix removes a leading "<Section> - " marker from a position
// label, if present.
func StripSectionPrefix(text string) string {
	return cleanText(sectionPrefix.ReplaceAllString(cleanText(text), ""))
}

// Abbreviation maps a position label to its tactical-diagram code. Lookup
// order: exact match on the prefix-stripped label, exact match on the raw
// label, then case-insensitive substring match in either direction. Falls
// back to "MF".
func Abbreviation(text string) string {
	cleaned := StripSectionPrefix(text)
	if cleaned == "" {
		return FallbackAbbreviation
	}

	if abbr, ok := abbreviations[cleaned]; ok {
		return abbr
	}
	if abbr, ok := abbreviations[cleanText(text)]; ok {
		return abbr
	}

	lower := strings.ToLower(cleaned)
	for _, label := range orderedLabels {
		labelLower := strings.ToLower(label)
		if strings.Contains(lower, labelLower) || strings.Contains(labelLower, lower) {
			return abbreviations[label]
		}
	}

	return FallbackAbbreviation
}
