// /home/krylon/go/src/github.com/blicero/prowler/ping/ping.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-26 18:30:54 krylon>

// Package ping provides a simple API to ping Devices, mostly so that I can
// control its log level separately.
package ping

import (
	"log"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	"github.com/blicero/prowler/settings"
	probing "github.com/prometheus-community/pro-bing"
)

// Pinger wraps the pinging of Devices.
type Pinger struct {
	log *log.Logger
}

// Create creates a new Pinger.
//
// Didn't see that coming, now, did you?
func Create() (*Pinger, error) {
	var (
		err error
		p   = new(Pinger)
	)

	if p.log, err = common.GetLogger(logdomain.Ping); err != nil {
		return nil, err
	}

	return p, nil
} // func Create() (*Pinger, error)

// Ping pings the Device at its default address and returns true if it
// answered.
func (p *Pinger) Ping(d *model.Device) bool {
	var alive = p.PingAddr(d.DefaultAddr())

	if alive {
		p.log.Printf("[DEBUG] Device %s is alive\n",
			d.Name)
	} else {
		p.log.Printf("[TRACE] Device %s is offline\n",
			d.Name)
	}

	return alive
} // func (p *Pinger) Ping(d *model.Device) bool

// PingAddr pings the given address and returns true if it answered.
func (p *Pinger) PingAddr(addr string) bool {
	var (
		err   error
		alive bool
		pp    *probing.Pinger
		stats *probing.Statistics
	)

	if pp, err = probing.NewPinger(addr); err != nil {
		p.log.Printf("[ERROR] Failed to create Pinger for %s: %s\n",
			addr,
			err.Error())
		goto END
	}

	pp.Interval = settings.Settings.PingInterval
	pp.Timeout = settings.Settings.PingTimeout
	pp.Count = int(settings.Settings.PingCount)

	if err = pp.Run(); err != nil {
		p.log.Printf("[ERROR] Failed to run Pinger on %s: %s\n",
			addr,
			err.Error())
		goto END
	}

	stats = pp.Statistics()
	p.log.Printf("[TRACE] %s - Packet loss is %f%% (%d/%d)\n",
		addr,
		stats.PacketLoss,
		stats.PacketsRecv,
		stats.PacketsSent)

	alive = stats.PacketLoss < 100

END:
	return alive
} // func (p *Pinger) PingAddr(addr string) bool
