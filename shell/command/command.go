// /home/krylon/go/src/github.com/blicero/prowler/shell/command/command.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-21 18:33:02 krylon>

// Package command implements the grammar of the interactive shell.
//
// The surface is deliberately tiny: six literal keywords, two of which
// take a single unsigned integer argument.
//
//	scan <N>      scan the configured networks for N seconds
//	exit          leave the shell
//	quit          same as exit
//	help          display the available commands
//	list          list the Devices we know about
//	test <N>      probe the Device at index N of the most recent listing
//
// Parsing a line yields a Command value or a *ParseError, nothing else.
// Executing Commands is the shell's job, not ours.
package command

import (
	"fmt"
	"math"
	"time"
)

//go:generate stringer -type=Kind

// Kind identifies which of the recognized commands a line contained.
type Kind uint8

const (
	Scan Kind = iota
	Exit
	Help
	List
	Test
)

// Command is the parsed, structured representation of one line of input.
// It is a plain value, immutable once constructed.
//
// Arg is the number of seconds for Scan and the Device index for Test;
// for the other Kinds it is zero. Note that "exit" and "quit" produce the
// identical Command, the spelling is not recorded.
type Command struct {
	Kind Kind
	Arg  uint64
}

// String returns the canonical textual form of the Command, i.e. a string
// that parses back to an equal Command.
func (c Command) String() string {
	switch c.Kind {
	case Scan:
		return fmt.Sprintf("scan %d", c.Arg)
	case Exit:
		return "exit"
	case Help:
		return "help"
	case List:
		return "list"
	case Test:
		return fmt.Sprintf("test %d", c.Arg)
	default:
		return fmt.Sprintf("Kind(%d)", c.Kind)
	}
} // func (c Command) String() string

// Duration returns the scan duration of a Scan Command.
// Arguments too large for time.Duration saturate at the maximum; a scan
// capped at roughly 292 years is as good as an unbounded one.
func (c Command) Duration() time.Duration {
	const limit = uint64(math.MaxInt64 / int64(time.Second))

	if c.Arg > limit {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(c.Arg) * time.Second
} // func (c Command) Duration() time.Duration

// Keywords returns all keywords the grammar recognizes, mainly for the
// shell's tab completion and help text.
func Keywords() []string {
	return []string{
		"exit",
		"help",
		"list",
		"quit",
		"scan",
		"test",
	}
} // func Keywords() []string
