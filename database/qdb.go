// /home/krylon/go/src/github.com/blicero/prowler/database/qdb.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-24 17:28:50 krylon>

package database

import (
	"github.com/blicero/prowler/database/query"
)

var qdb = map[query.ID]string{
	query.NetworkAdd:             "INSERT INTO network (addr, desc) VALUES (?, ?) RETURNING id",
	query.NetworkUpdateScanStamp: "UPDATE network SET last_scan = ? WHERE id = ?",
	query.NetworkGetAll: `
SELECT
    id,
    addr,
    desc,
    last_scan
FROM network
`,
	query.NetworkGetByID: `
SELECT
    addr,
    desc,
    last_scan
FROM network
WHERE id = ?
`,
	query.NetworkGetByAddr: `
SELECT
    id,
    desc,
    last_scan
FROM network
WHERE addr = ?
`,
	query.DeviceAdd: `
INSERT INTO device (name, net_id, addr, live, last_seen)
            VALUES (   ?,      ?,    ?,    ?,         ?)
RETURNING id
`,
	query.DeviceUpdateLastSeen: "UPDATE device SET last_seen = ?, live = 1 WHERE id = ?",
	query.DeviceUpdateOS:       "UPDATE device SET os = ? WHERE id = ?",
	query.DeviceGetAll: `
SELECT
    id,
    net_id,
    name,
    addr,
    os,
    live,
    last_seen
FROM device
ORDER BY name
`,
	query.DeviceGetByID: `
SELECT
    net_id,
    name,
    addr,
    os,
    live,
    last_seen
FROM device
WHERE id = ?
`,
	query.DeviceGetByNetwork: `
SELECT
    id,
    name,
    addr,
    os,
    live,
    last_seen
FROM device
WHERE net_id = ?
ORDER BY name
`,
	query.ScanAdd:    "INSERT INTO scan (id, net_id, start) VALUES (?, ?, ?)",
	query.ScanFinish: "UPDATE scan SET finish = ?, dev_cnt = ? WHERE id = ?",
	query.ScanGetRecent: `
SELECT
    id,
    net_id,
    start,
    finish,
    dev_cnt
FROM scan
ORDER BY start DESC
LIMIT ?
`,
}
