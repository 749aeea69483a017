package cache

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lights (
	position   INTEGER NOT NULL,
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	is_on      INTEGER NOT NULL,
	bri        INTEGER NOT NULL,
	hue        INTEGER NOT NULL,
	sat        INTEGER NOT NULL,
	x          REAL NOT NULL,
	y          REAL NOT NULL,
	effect     TEXT NOT NULL DEFAULT '',
	reachable  INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lights_position ON lights(position);
`
