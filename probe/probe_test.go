// /home/krylon/go/src/github.com/blicero/prowler/probe/probe_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 21:27:12 krylon>

package probe

import (
	"strconv"
	"strings"
	"testing"
)

func TestUptimePattern(t *testing.T) {
	type testCase struct {
		output         string
		expectErr      bool
		expectedResult [3]float64
	}

	var cases = []testCase{
		{
			output: "18:01:18  2 Tage  0:22 an,  2 Benutzer,  Durchschnittslast: 1,08, 0,98, 0,94",
			expectedResult: [3]float64{
				1.08,
				0.98,
				0.94,
			},
		},
		{
			output: "6:02PM  up 56 days,  5:16, 4 users, load averages: 0.00, 0.01, 0.00",
			expectedResult: [3]float64{
				0.0,
				0.01,
				0.0,
			},
		},
		{
			output:    "this is not the output of uptime(1)",
			expectErr: true,
		},
	}

	for _, c := range cases {
		var match = uptimePat.FindStringSubmatch(c.output)

		if match == nil {
			if !c.expectErr {
				t.Errorf("Failed to match sample output of uptime(1):\n\t%q",
					c.output)
			}
		} else {
			var load [3]float64

			for i, x := range match[1:] {
				var (
					err error
					s   string
				)

				s = strings.Replace(x, ",", ".", 1)

				if load[i], err = strconv.ParseFloat(s, 64); err != nil {
					t.Errorf("Cannot parse float %q: %s",
						s,
						err.Error())
				} else if load[i] != c.expectedResult[i] {
					t.Errorf("ParseFloat returned unexpected result: %f (expected %f)",
						load[i],
						c.expectedResult[i])
				}
			}
		}
	}
} // func TestUptimePattern(t *testing.T)

func TestPrettyNamePattern(t *testing.T) {
	type testCase struct {
		output   string
		expected string
	}

	var cases = []testCase{
		{
			output:   "NAME=\"Debian GNU/Linux\"\nPRETTY_NAME=\"Debian GNU/Linux 13 (trixie)\"\nID=debian",
			expected: "Debian GNU/Linux 13 (trixie)",
		},
		{
			output:   "PRETTY_NAME=openSUSE Tumbleweed\nID=opensuse-tumbleweed",
			expected: "openSUSE Tumbleweed",
		},
		// An unquoted value must not bleed into the following lines.
		{
			output:   "PRETTY_NAME=Arch Linux\nHOME_URL=\"https://archlinux.org/\"\nID=arch",
			expected: "Arch Linux",
		},
	}

	for _, c := range cases {
		var match = prettyNamePat.FindStringSubmatch(c.output)

		if match == nil {
			t.Errorf("Failed to match sample os-release output:\n\t%q",
				c.output)
		} else if match[1] != c.expected {
			t.Errorf("Unexpected PRETTY_NAME %q (expected %q)",
				match[1],
				c.expected)
		}
	}
} // func TestPrettyNamePattern(t *testing.T)
