package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS waste_log (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    logged_on     TEXT NOT NULL,
    recycling_kg  REAL NOT NULL,
    compost_kg    REAL NOT NULL,
    landfill_kg   REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_waste_log_date ON waste_log(logged_on);
`
