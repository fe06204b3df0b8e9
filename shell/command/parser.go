// /home/krylon/go/src/github.com/blicero/prowler/shell/command/parser.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-22 14:05:47 krylon>

package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode"
)

//go:generate stringer -type=ErrKind

// ErrKind classifies the ways a line of input can be rejected.
type ErrKind uint8

const (
	// UnrecognizedCommand means the leading token is not one of the
	// keywords the grammar knows.
	UnrecognizedCommand ErrKind = iota
	// MalformedArgument means scan/test did not get exactly one digit-run
	// as their argument.
	MalformedArgument
	// ArgumentOverflow means the argument is a valid digit-run whose value
	// does not fit into 64 bits.
	ArgumentOverflow
	// TrailingInput means a complete zero-argument command was followed by
	// additional tokens.
	TrailingInput
)

// ParseError describes why a line of input was rejected. Token and Pos
// identify the offending token and its byte offset within the line.
type ParseError struct {
	Kind  ErrKind
	Token string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q (offset %d)",
		e.Kind,
		e.Token,
		e.Pos)
} // func (e *ParseError) Error() string

// The argument to scan and test is one run of ASCII digits, nothing else.
// strconv.ParseUint would also accept, say, a leading "+", so we check
// the lexical form separately.
var digitPat = regexp.MustCompile("^[0-9]+$")

type token struct {
	text string
	pos  int
}

func tokenize(line string) []token {
	var (
		toks  []token
		start = -1
	)

	for idx, c := range line {
		if unicode.IsSpace(c) {
			if start >= 0 {
				toks = append(toks, token{text: line[start:idx], pos: start})
				start = -1
			}
		} else if start < 0 {
			start = idx
		}
	}

	if start >= 0 {
		toks = append(toks, token{text: line[start:], pos: start})
	}

	return toks
} // func tokenize(line string) []token

// Parse matches one line of input against the grammar and returns the
// resulting Command.
//
// Parse is a pure function, it performs no I/O and keeps no state across
// calls; the error, if non-nil, is always a *ParseError. A line either
// parses completely to one Command or fails as a whole, there is no
// partial success.
func Parse(line string) (Command, error) {
	var (
		cmd  Command
		toks = tokenize(line)
	)

	if len(toks) == 0 {
		return cmd, &ParseError{Kind: UnrecognizedCommand}
	}

	var kw = toks[0]

	switch kw.text {
	case "scan":
		cmd.Kind = Scan
	case "exit", "quit":
		cmd.Kind = Exit
	case "help":
		cmd.Kind = Help
	case "list":
		cmd.Kind = List
	case "test":
		cmd.Kind = Test
	default:
		return cmd, &ParseError{
			Kind:  UnrecognizedCommand,
			Token: kw.text,
			Pos:   kw.pos,
		}
	}

	switch cmd.Kind {
	case Scan, Test:
		// Exactly one argument token, a digit-run.
		if len(toks) != 2 {
			var bad = kw
			if len(toks) > 2 {
				bad = toks[2]
			}
			return Command{}, &ParseError{
				Kind:  MalformedArgument,
				Token: bad.text,
				Pos:   bad.pos,
			}
		}

		var (
			err error
			arg = toks[1]
		)

		if !digitPat.MatchString(arg.text) {
			return Command{}, &ParseError{
				Kind:  MalformedArgument,
				Token: arg.text,
				Pos:   arg.pos,
			}
		} else if cmd.Arg, err = strconv.ParseUint(arg.text, 10, 64); err != nil {
			// The lexical check above leaves overflow as the only
			// way ParseUint can fail here.
			var kind = MalformedArgument
			if errors.Is(err, strconv.ErrRange) {
				kind = ArgumentOverflow
			}
			return Command{}, &ParseError{
				Kind:  kind,
				Token: arg.text,
				Pos:   arg.pos,
			}
		}
	default:
		if len(toks) > 1 {
			return Command{}, &ParseError{
				Kind:  TrailingInput,
				Token: toks[1].text,
				Pos:   toks[1].pos,
			}
		}
	}

	return cmd, nil
} // func Parse(line string) (Command, error)
