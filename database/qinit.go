// /home/krylon/go/src/github.com/blicero/prowler/database/qinit.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-24 17:10:36 krylon>

package database

// This file contains the SQL queries to initialize a fresh database.
// Having that defined inside the application is both convenient for
// reference and for testing.

var qinit = []string{
	`
CREATE TABLE network (
    id		INTEGER PRIMARY KEY,
    addr	TEXT UNIQUE NOT NULL,
    desc	TEXT NOT NULL DEFAULT '',
    last_scan	INTEGER NOT NULL DEFAULT 0
) STRICT
`,
	`
CREATE TABLE device (
    id		INTEGER PRIMARY KEY,
    net_id	INTEGER NOT NULL,
    name	TEXT UNIQUE NOT NULL,
    addr        TEXT NOT NULL DEFAULT '[]',
    os          TEXT NOT NULL DEFAULT '',
    live        INTEGER NOT NULL DEFAULT 0,
    last_seen   INTEGER NOT NULL DEFAULT 0,
    CHECK (json_valid(addr)),
    FOREIGN KEY (net_id) REFERENCES network (id)
        ON UPDATE RESTRICT
        ON DELETE CASCADE
) STRICT
`,
	"CREATE INDEX dev_live_idx ON device (live <> 0)",
	"CREATE INDEX dev_last_idx ON device (last_seen)",
	`
CREATE TABLE scan (
    id          TEXT PRIMARY KEY,
    net_id      INTEGER NOT NULL,
    start       INTEGER NOT NULL,
    finish      INTEGER NOT NULL DEFAULT 0,
    dev_cnt     INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (net_id) REFERENCES network (id)
        ON UPDATE RESTRICT
        ON DELETE CASCADE,
    CHECK (finish = 0 OR finish >= start),
    CHECK (dev_cnt >= 0)
) STRICT, WITHOUT ROWID
`,
	"CREATE INDEX scan_net_idx ON scan (net_id)",
	"CREATE INDEX scan_start_idx ON scan (start)",
	`
CREATE TRIGGER scan_net_stamp_tr
AFTER UPDATE OF finish ON scan
BEGIN
    UPDATE network
    SET last_scan = NEW.finish
    WHERE id = NEW.net_id;
END
`,
}
