package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    name                 TEXT NOT NULL DEFAULT '',
    description          TEXT NOT NULL DEFAULT '',
    mission              TEXT NOT NULL DEFAULT '',
    vision               TEXT NOT NULL DEFAULT ''
);

INSERT OR IGNORE INTO profile (id) VALUES (1);

CREATE TABLE IF NOT EXISTS projections (
    seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
    period               TEXT NOT NULL,
    revenue              REAL NOT NULL CHECK (revenue >= 0),
    expenses             REAL NOT NULL CHECK (expenses >= 0)
);

CREATE TABLE IF NOT EXISTS competitors (
    seq                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                 TEXT NOT NULL,
    strengths            TEXT NOT NULL,
    weaknesses           TEXT NOT NULL
);
`
