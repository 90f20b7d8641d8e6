// Package player defines the canonical player record produced by one
// extraction run and its mapping into the fixed database shape consumed by
// the scouting UI.
//
// A Record is assembled once by the scraper, read once by MapToDatabase, and
// never mutated in between. Optional numeric fields are pointers and text
// fields are plain strings: nil or "" means the source page did not carry
// the field or it failed to parse; the two cases are deliberately
// indistinguishable downstream.
package player

// Record is the canonical player profile shape produced by one extraction.
type Record struct {
	// Identity
	ID             string `json:"player_id"`
	URL            string `json:"url"`
	SourceLanguage string `json:"source_language"`

	// Biographical
	Name        string  `json:"name,omitempty"`
	BirthYear   *int    `json:"birth_year,omitempty"`
	Age         *int    `json:"age,omitempty"`
	BirthPlace  string  `json:"birth_place,omitempty"`
	Nationality string  `json:"nationality_primary,omitempty"`

	// Physical
	HeightCM *int `json:"height_cm,omitempty"`
	WeightKG *int `json:"weight_kg,omitempty"`

	// Football attributes
	Position        string   `json:"position,omitempty"`
	NaturalPosition string   `json:"natural_position,omitempty"`
	OtherPositions  []string `json:"other_positions,omitempty"`
	PreferredFoot   string   `json:"preferred_foot,omitempty"`
	ShirtNumber     *int     `json:"shirt_number,omitempty"`

	// Club / contract
	CurrentClub        string   `json:"current_club,omitempty"`
	MarketValue        *float64 `json:"market_value,omitempty"` // millions
	MarketValueUpdated string   `json:"market_value_updated,omitempty"`
	ContractExpiry     string   `json:"contract_expiry,omitempty"`
	Agent              string   `json:"agent,omitempty"`

	// Media
	ProfileImage string `json:"profile_image,omitempty"`

	// Tactical diagram: both set or both nil
	FieldPositionX *float64 `json:"field_position_x,omitempty"`
	FieldPositionY *float64 `json:"field_position_y,omitempty"`
}
