package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scoutdesk/scoutdesk-data/internal/config"
	"github.com/scoutdesk/scoutdesk-data/internal/player"
)

// UpsertPlayer writes a mapped player record to the players table, keyed by
// transfermarkt id. Extracted fields only overwrite when the new extraction
// carries them; scout-entered fields (priority, director feedback, check
// type, notes) are never touched by an import.
func UpsertPlayer(ctx context.Context, pool *pgxpool.Pool, transfermarktID string, rec player.DatabaseRecord) error {
	otherPositions, err := json.Marshal(nonNilSlice(rec.OtherPositions))
	if err != nil {
		return fmt.Errorf("marshal other positions: %w", err)
	}
	otherPositionsFull, err := json.Marshal(nonNilSlice(rec.OtherPositionsFullName))
	if err != nil {
		return fmt.Errorf("marshal other position labels: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO `+config.PlayersTable+` (
			transfermarkt_id, name, birth_year, birth_place, team, nationality,
			height_cm, weight_kg, shirt_number,
			general_role, specific_position, natural_position, other_positions,
			preferred_foot, market_value, market_value_updated, contract_expiry,
			current_value, potential_value,
			transfermarkt_link, profile_image,
			field_position_x, field_position_y,
			position_full_name, natural_position_full_name, other_positions_full_name
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
		ON CONFLICT (transfermarkt_id) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, `+config.PlayersTable+`.name),
			birth_year = COALESCE(EXCLUDED.birth_year, `+config.PlayersTable+`.birth_year),
			birth_place = COALESCE(EXCLUDED.birth_place, `+config.PlayersTable+`.birth_place),
			team = COALESCE(EXCLUDED.team, `+config.PlayersTable+`.team),
			nationality = COALESCE(EXCLUDED.nationality, `+config.PlayersTable+`.nationality),
			height_cm = COALESCE(EXCLUDED.height_cm, `+config.PlayersTable+`.height_cm),
			weight_kg = COALESCE(EXCLUDED.weight_kg, `+config.PlayersTable+`.weight_kg),
			shirt_number = COALESCE(EXCLUDED.shirt_number, `+config.PlayersTable+`.shirt_number),
			general_role = EXCLUDED.general_role,
			specific_position = EXCLUDED.specific_position,
			natural_position = COALESCE(EXCLUDED.natural_position, `+config.PlayersTable+`.natural_position),
			other_positions = EXCLUDED.other_positions,
			preferred_foot = EXCLUDED.preferred_foot,
			market_value = COALESCE(EXCLUDED.market_value, `+config.PlayersTable+`.market_value),
			market_value_updated = COALESCE(EXCLUDED.market_value_updated, `+config.PlayersTable+`.market_value_updated),
			contract_expiry = COALESCE(EXCLUDED.contract_expiry, `+config.PlayersTable+`.contract_expiry),
			current_value = EXCLUDED.current_value,
			potential_value = EXCLUDED.potential_value,
			transfermarkt_link = EXCLUDED.transfermarkt_link,
			profile_image = COALESCE(EXCLUDED.profile_image, `+config.PlayersTable+`.profile_image),
			field_position_x = COALESCE(EXCLUDED.field_position_x, `+config.PlayersTable+`.field_position_x),
			field_position_y = COALESCE(EXCLUDED.field_position_y, `+config.PlayersTable+`.field_position_y),
			position_full_name = COALESCE(EXCLUDED.position_full_name, `+config.PlayersTable+`.position_full_name),
			natural_position_full_name = COALESCE(EXCLUDED.natural_position_full_name, `+config.PlayersTable+`.natural_position_full_name),
			other_positions_full_name = EXCLUDED.other_positions_full_name,
			updated_at = NOW()`,
		transfermarktID, nilEmpty(rec.Name), rec.BirthYear, nilEmpty(rec.BirthPlace),
		nilEmpty(rec.Team), nilEmpty(rec.Nationality),
		rec.HeightCM, rec.WeightKG, rec.ShirtNumber,
		string(rec.GeneralRole), rec.SpecificPosition, rec.NaturalPosition, otherPositions,
		rec.PreferredFoot, rec.MarketValue, nilEmpty(rec.MarketValueUpdated), nilEmpty(rec.ContractExpiry),
		rec.CurrentValue, rec.PotentialValue,
		nilEmpty(rec.TransfermarktLink), nilEmpty(rec.ProfileImage),
		rec.FieldPositionX, rec.FieldPositionY,
		nilEmpty(rec.PositionFullName), nilEmpty(rec.NaturalPositionFullName), otherPositionsFull,
	)
	if err != nil {
		return fmt.Errorf("upsert player %s: %w", transfermarktID, err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// nilEmpty returns nil for empty strings (maps to SQL NULL).
func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nonNilSlice ensures a nil slice marshals as [] rather than null.
func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
