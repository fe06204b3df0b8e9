// /home/krylon/go/src/github.com/blicero/prowler/model/model.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-25 19:21:44 krylon>

// Package model provides the data types used throughout the application.
package model

import (
	"net"
	"strings"
	"time"

	"github.com/korylprince/ipnetgen"
)

// Network is a range of IP addresses where Devices may reside.
type Network struct {
	ID          int64
	Addr        *net.IPNet
	Description string
	LastScan    time.Time
}

// NewNetwork creates a fresh Network from the given CIDR address and
// description.
func NewNetwork(addr, desc string) (*Network, error) {
	var (
		err error
		n   = &Network{Description: desc}
	)

	if _, n.Addr, err = net.ParseCIDR(addr); err != nil {
		return nil, err
	}

	return n, nil
} // func NewNetwork(addr, desc string) (*Network, error)

// Enumerate generates all addresses of the Network and feeds them into the
// channel passed in as its argument. The channel is closed when the
// Network is exhausted.
func (n *Network) Enumerate(q chan<- net.IP) error {
	var (
		err error
		gen *ipnetgen.IPNetGenerator
	)

	if gen, err = ipnetgen.New(n.Addr.String()); err != nil {
		return err
	}

	go func() {
		for ip := gen.Next(); ip != nil; ip = gen.Next() {
			q <- ip
		}
		close(q)
	}()

	return nil
} // func (n *Network) Enumerate(q chan<- net.IP) error

// Device is a computer - in the most inclusive sense of the word - that
// was seen on one of our Networks. It has one or more IP addresses, a
// name, and possibly an operating system we found out about by asking it.
type Device struct {
	ID       int64
	NetID    int64
	Name     string
	OS       string
	Addr     []net.Addr
	Live     bool
	LastSeen time.Time
}

// DefaultAddr returns the address used to contact the Device, i.e. the
// first one we learned.
func (d *Device) DefaultAddr() string {
	if len(d.Addr) == 0 {
		return ""
	}

	return d.Addr[0].String()
} // func (d *Device) DefaultAddr() string

// AddrStr returns a string representation of the receiver's addresses
// that is also valid JSON.
func (d *Device) AddrStr() string {
	var buf strings.Builder
	var max = len(d.Addr) - 1

	buf.WriteString("[")
	for idx, a := range d.Addr {
		buf.WriteString("\"")
		buf.WriteString(a.String())
		buf.WriteString("\"")
		if idx < max {
			buf.WriteString(", ")
		}
	}

	buf.WriteString("]")
	return buf.String()
} // func (d *Device) AddrStr() string

// IsAlive returns true if the Device has been seen within the given
// timeout.
func (d *Device) IsAlive(timeout time.Duration) bool {
	return time.Since(d.LastSeen) < timeout
} // func (d *Device) IsAlive(timeout time.Duration) bool

// ScanRun describes one invocation of the Scanner: which Network was
// scanned, when it started and finished, and how many Devices answered.
type ScanRun struct {
	ID     string
	NetID  int64
	Start  time.Time
	End    time.Time
	DevCnt int64
}

// IsFinished returns true once the ScanRun has an end timestamp.
func (s *ScanRun) IsFinished() bool {
	return !s.End.IsZero()
} // func (s *ScanRun) IsFinished() bool

// Elapsed returns the duration of the ScanRun. For an unfinished run,
// it is the time since its start.
func (s *ScanRun) Elapsed() time.Duration {
	if !s.IsFinished() {
		return time.Since(s.Start)
	}

	return s.End.Sub(s.Start)
} // func (s *ScanRun) Elapsed() time.Duration
