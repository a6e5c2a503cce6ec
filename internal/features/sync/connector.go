package sync

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// RosterSource reads camper rows out of the legacy registration database.
type RosterSource interface {
	FetchCampers(ctx context.Context) ([]LegacyCamper, error)
}

// PostgresRosterSource queries the legacy Postgres schema directly. The
// legacy system is read-only from our side.
type PostgresRosterSource struct {
	DSN string
}

func NewPostgresRosterSource(dsn string) *PostgresRosterSource {
	return &PostgresRosterSource{DSN: dsn}
}

func (s *PostgresRosterSource) FetchCampers(ctx context.Context) ([]LegacyCamper, error) {
	db, err := sql.Open("postgres", s.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to legacy database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("legacy database unreachable: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT c.external_id, c.first_name, c.last_name, c.email, COALESCE(u.unit_name, '')
		FROM campers c
		LEFT JOIN units u ON u.id = c.unit_id
		WHERE c.active = true
		ORDER BY c.external_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query campers: %w", err)
	}
	defer rows.Close()

	var campers []LegacyCamper
	for rows.Next() {
		var c LegacyCamper
		if err := rows.Scan(&c.ExternalID, &c.FirstName, &c.LastName, &c.Email, &c.FactionName); err != nil {
			return nil, fmt.Errorf("failed to scan camper row: %w", err)
		}
		campers = append(campers, c)
	}
	return campers, rows.Err()
}
