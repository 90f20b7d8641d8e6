package player

import (
	"strings"

	"github.com/scoutdesk/scoutdesk-data/internal/position"
)

// DatabaseRecord is the fixed output shape consumed by the scouting
// database and UI. Position fields hold tactical-diagram abbreviations; the
// full source labels are kept alongside for audit.
type DatabaseRecord struct {
	Name        string `json:"name"`
	BirthYear   *int   `json:"birth_year"`
	BirthPlace  string `json:"birth_place"`
	Team        string `json:"team"`
	Nationality string `json:"nationality"`
	HeightCM    *int   `json:"height_cm"`
	WeightKG    *int   `json:"weight_kg"`
	ShirtNumber *int   `json:"shirt_number"`

	GeneralRole      position.GeneralRole `json:"general_role"`
	SpecificPosition string               `json:"specific_position"`
	NaturalPosition  *string              `json:"natural_position"`
	OtherPositions   []string             `json:"other_positions"`
	PreferredFoot    string               `json:"preferred_foot"`

	MarketValue        *float64 `json:"market_value"`
	MarketValueUpdated string   `json:"market_value_updated"`
	ContractExpiry     string   `json:"contract_expiry"`
	CurrentValue       int      `json:"current_value"`
	PotentialValue     int      `json:"potential_value"`

	TransfermarktLink string `json:"transfermarkt_link"`
	ProfileImage      string `json:"profile_image"`

	FieldPositionX *float64 `json:"field_position_x"`
	FieldPositionY *float64 `json:"field_position_y"`

	// Scout-entered fields. Always null out of the mapper; the scout fills
	// them in by hand.
	Priority         *string `json:"priority"`
	DirectorFeedback *string `json:"director_feedback"`
	CheckType        *string `json:"check_type"`
	Notes            *string `json:"notes"`

	// Full labels kept for audit
	PositionFullName        string   `json:"position_full_name"`
	NaturalPositionFullName string   `json:"natural_position_full_name"`
	OtherPositionsFullName  []string `json:"other_positions_full_name"`
}

// defaultValueRating is used for current/potential value when the market
// value is unknown.
const defaultValueRating = 3

// MapToDatabase reshapes a canonical record into the database format. Pure
// and deterministic: no I/O, input is not modified.
func MapToDatabase(rec *Record) DatabaseRecord {
	db := DatabaseRecord{
		Name:        rec.Name,
		BirthYear:   rec.BirthYear,
		BirthPlace:  rec.BirthPlace,
		Team:        rec.CurrentClub,
		Nationality: rec.Nationality,
		HeightCM:    rec.HeightCM,
		WeightKG:    rec.WeightKG,
		ShirtNumber: rec.ShirtNumber,

		GeneralRole:      position.Role(rec.Position),
		SpecificPosition: position.Abbreviation(rec.Position),
		PreferredFoot:    MapFoot(rec.PreferredFoot),

		MarketValue:        rec.MarketValue,
		MarketValueUpdated: rec.MarketValueUpdated,
		ContractExpiry:     rec.ContractExpiry,
		CurrentValue:       defaultValueRating,
		PotentialValue:     defaultValueRating,

		TransfermarktLink: rec.URL,
		ProfileImage:      rec.ProfileImage,

		FieldPositionX: rec.FieldPositionX,
		FieldPositionY: rec.FieldPositionY,

		PositionFullName:        rec.Position,
		NaturalPositionFullName: rec.NaturalPosition,
		OtherPositionsFullName:  rec.OtherPositions,
	}

	if rec.NaturalPosition != "" {
		abbr := position.Abbreviation(rec.NaturalPosition)
		db.NaturalPosition = &abbr
	}

	db.OtherPositions = make([]string, 0, len(rec.OtherPositions))
	for _, p := range rec.OtherPositions {
		db.OtherPositions = append(db.OtherPositions, position.Abbreviation(p))
	}

	if rec.MarketValue != nil {
		db.CurrentValue = int(*rec.MarketValue)
		db.PotentialValue = int(*rec.MarketValue)
	}

	return db
}

// footMapping canonicalizes the preferred foot across all source languages.
var footMapping = map[string]string{
	// English
	"right": "Right",
	"left":  "Left",
	"both":  "Both",
	// Italian
	"destro":     "Right",
	"sinistro":   "Left",
	"entrambi":   "Both",
	"ambidestro": "Both",
	// German
	"rechts":     "Right",
	"links":      "Left",
	"beidfüßig":  "Both",
	// French
	"droit":      "Right",
	"gauche":     "Left",
	"les deux":   "Both",
	"ambidextre": "Both",
	// Spanish
	"derecho":     "Right",
	"izquierdo":   "Left",
	"ambos":       "Both",
	"ambidiestro": "Both",
	// Portuguese
	"direito":  "Right",
	"esquerdo": "Left",
}

// MapFoot maps a preferred-foot label to one of Left, Right, Both. Unknown
// or empty input defaults to Right.
func MapFoot(foot string) string {
	if mapped, ok := footMapping[strings.ToLower(strings.TrimSpace(foot))]; ok {
		return mapped
	}
	return "Right"
}
