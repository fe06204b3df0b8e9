// /home/krylon/go/src/github.com/blicero/prowler/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-07-04 19:08:55 krylon>

// Package logdomain provides symbolic constants to identify the various
// parts of the application that want to do logging.
package logdomain

// ID represents the various pieces of the application that may want to log messages.
type ID uint8

//go:generate stringer -type=ID

const (
	Common ID = iota
	Database
	DBPool
	Parser
	Shell
	Scanner
	Ping
	Probe
	Web
)

// AllDomains returns a slice of all valid values for logdomain.ID
func AllDomains() []ID {
	return []ID{
		Common,
		Database,
		DBPool,
		Parser,
		Shell,
		Scanner,
		Ping,
		Probe,
		Web,
	}
} // func AllDomains() []ID
