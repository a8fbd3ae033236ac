package data

const SQLCreate = `
PRAGMA foreign_keys = ON;
PRAGMA encoding = 'UTF-8';

CREATE TABLE IF NOT EXISTS calculation
(
    calculation_id INTEGER PRIMARY KEY NOT NULL,
    created_at     DATETIME            NOT NULL,
    source         TEXT                NOT NULL DEFAULT '',
    temperature    REAL                NOT NULL CHECK ( temperature > 0 ),
    pressure       REAL                NOT NULL CHECK ( pressure > 0 ),
    pressure_unit  TEXT                NOT NULL,
    pressure_kpa   REAL                NOT NULL CHECK ( pressure_kpa > 0 ),
    tr             REAL                NOT NULL,
    pr             REAL                NOT NULL,
    h_ig           REAL                NOT NULL,
    s_ig           REAL                NOT NULL,
    h_r            REAL                NOT NULL,
    s_r            REAL                NOT NULL,
    h              REAL                NOT NULL,
    s              REAL                NOT NULL,
    warnings       TEXT                NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_calculation_created_at ON calculation (created_at);
`
