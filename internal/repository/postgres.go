package repository

import (
	"context"
	"errors"
	"fmt"

	"geocoder/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repository uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Repository implements address storage on PostgreSQL with PostGIS.
type Repository struct {
	db DBTX
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

const schemaSQL = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		street_number TEXT,
		street_name TEXT,
		postal_code TEXT,
		locality TEXT,
		sub_locality TEXT,
		location_type TEXT,
		admin_levels JSONB NOT NULL DEFAULT '[]'::jsonb,
		country TEXT,
		country_code TEXT,
		timezone TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		south DOUBLE PRECISION,
		west DOUBLE PRECISION,
		north DOUBLE PRECISION,
		east DOUBLE PRECISION,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			CASE WHEN latitude IS NULL OR longitude IS NULL THEN NULL
			ELSE ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography END
		) STORED,
		search_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple',
				coalesce(street_number, '') || ' ' ||
				coalesce(street_name, '') || ' ' ||
				coalesce(postal_code, '') || ' ' ||
				coalesce(sub_locality, '') || ' ' ||
				coalesce(locality, '') || ' ' ||
				coalesce(country, ''))
		) STORED
	);
	CREATE INDEX IF NOT EXISTS addresses_geom_idx ON addresses USING GIST (geom);
	CREATE INDEX IF NOT EXISTS addresses_search_tsvector_idx ON addresses USING GIN (search_tsvector);
`

const selectColumns = `
	street_number,
	street_name,
	postal_code,
	locality,
	sub_locality,
	location_type,
	admin_levels,
	country,
	country_code,
	timezone,
	latitude,
	longitude,
	south,
	west,
	north,
	east
`

var insertColumns = []string{
	"street_number",
	"street_name",
	"postal_code",
	"locality",
	"sub_locality",
	"location_type",
	"admin_levels",
	"country",
	"country_code",
	"timezone",
	"latitude",
	"longitude",
	"south",
	"west",
	"north",
	"east",
}

// EnsureSchema creates the addresses table and its indexes if missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// SearchAddressesByText performs a full-text search on the addresses table
func (r *Repository) SearchAddressesByText(ctx context.Context, query string, limit int) ([]models.Address, error) {
	sql := `
		SELECT` + selectColumns + `
		FROM addresses
		WHERE search_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(search_tsvector, plainto_tsquery('simple', $1)) DESC, id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var row addressRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		addr, err := row.toAddress()
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return addresses, nil
}

// FindNearestAddress returns the closest address within radiusMeters of the
// coordinates, or nil when there is none.
func (r *Repository) FindNearestAddress(ctx context.Context, lat, lon float64, radiusMeters int) (*models.Address, error) {
	sql := `
		SELECT` + selectColumns + `
		FROM addresses
		WHERE geom IS NOT NULL
			AND ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var row addressRow
	err := r.db.QueryRow(ctx, sql, lat, lon, radiusMeters).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	addr, err := row.toAddress()
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// InsertAddresses bulk loads addresses with COPY and returns the number of rows written.
func (r *Repository) InsertAddresses(ctx context.Context, addresses []models.Address) (int64, error) {
	if len(addresses) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(addresses))
	for i, a := range addresses {
		values, err := insertValues(a)
		if err != nil {
			return 0, fmt.Errorf("repository: address %d: %w", i, err)
		}
		rows = append(rows, values)
	}

	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"addresses"}, insertColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy addresses: %w", err)
	}
	return n, nil
}

// CountAddresses returns the number of stored addresses.
func (r *Repository) CountAddresses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM addresses").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count addresses: %w", err)
	}
	return count, nil
}
