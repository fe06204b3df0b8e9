// /home/krylon/go/src/github.com/blicero/prowler/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-24 16:48:11 krylon>

// Package query provides symbolic constants to identify database queries.
package query

//go:generate stringer -type=ID

// ID represents a database query.
type ID uint8

const (
	NetworkAdd ID = iota
	NetworkGetAll
	NetworkGetByID
	NetworkGetByAddr
	NetworkUpdateScanStamp
	DeviceAdd
	DeviceGetAll
	DeviceGetByID
	DeviceGetByNetwork
	DeviceUpdateLastSeen
	DeviceUpdateOS
	ScanAdd
	ScanFinish
	ScanGetRecent
)
