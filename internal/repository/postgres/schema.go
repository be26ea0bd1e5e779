package postgres

import "context"

// Rows are keyed by (place_id, region, genre): the same place observed
// under two different queries occupies two rows, so one query's refresh
// never moves another query's tags out from under it.
const spotCacheSchema = `
CREATE TABLE IF NOT EXISTS spot_cache (
	place_id    TEXT             NOT NULL,
	region      TEXT             NOT NULL,
	genre       TEXT             NOT NULL,
	name        TEXT             NOT NULL,
	address     TEXT             NOT NULL DEFAULT '',
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	rating      DOUBLE PRECISION,
	photo_url   TEXT,
	created_at  TIMESTAMPTZ      NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ      NOT NULL DEFAULT now(),
	expires_at  TIMESTAMPTZ      NOT NULL,
	fetch_count INTEGER          NOT NULL DEFAULT 1,
	PRIMARY KEY (place_id, region, genre)
);

CREATE INDEX IF NOT EXISTS idx_spot_cache_query
	ON spot_cache (region, genre, expires_at, updated_at DESC);
`

// EnsureSchema creates the spot cache table and index if missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, spotCacheSchema)
	return err
}
