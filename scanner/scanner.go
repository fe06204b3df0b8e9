// /home/krylon/go/src/github.com/blicero/prowler/scanner/scanner.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 21:03:12 krylon>

// Package scanner traverses IP networks looking for Devices.
package scanner

import (
	"errors"
	"log"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/database"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	"github.com/blicero/prowler/ping"
)

const dbPoolSize = 2

// ErrBusy is returned when a scan is requested while one is already
// running.
var ErrBusy = errors.New("Scanner is already busy")

// NetworkScanner pings its way through the Networks stored in the
// database and records the Devices that answer.
type NetworkScanner struct {
	log     *log.Logger
	pool    *database.Pool
	pinger  *ping.Pinger
	workers int
	busy    atomic.Bool
}

// NewNetworkScanner creates a NetworkScanner that pings addresses with the
// given number of concurrent workers.
func NewNetworkScanner(workers int) (*NetworkScanner, error) {
	var (
		err error
		sc  = &NetworkScanner{workers: workers}
	)

	if sc.log, err = common.GetLogger(logdomain.Scanner); err != nil {
		return nil, err
	} else if sc.pool, err = database.NewPool(dbPoolSize); err != nil {
		return nil, err
	} else if sc.pinger, err = ping.Create(); err != nil {
		return nil, err
	}

	return sc, nil
} // func NewNetworkScanner(workers int) (*NetworkScanner, error)

// IsBusy returns true while a scan is running.
func (sc *NetworkScanner) IsBusy() bool {
	return sc.busy.Load()
} // func (sc *NetworkScanner) IsBusy() bool

// Run scans all Networks stored in the database, spending at most the
// given amount of time in total. It returns the ScanRuns it recorded.
func (sc *NetworkScanner) Run(timeout time.Duration) ([]*model.ScanRun, error) {
	if !sc.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	defer sc.busy.Store(false)

	var (
		err      error
		db       *database.Database
		networks []*model.Network
		runs     []*model.ScanRun
		deadline = time.Now().Add(timeout)
	)

	db = sc.pool.Get()
	defer sc.pool.Put(db)

	if networks, err = db.NetworkGetAll(); err != nil {
		sc.log.Printf("[ERROR] Failed to load Networks: %s\n",
			err.Error())
		return nil, err
	} else if len(networks) == 0 {
		sc.log.Println("[INFO] No Networks are configured, nothing to scan.")
		return nil, nil
	}

	runs = make([]*model.ScanRun, 0, len(networks))

	for _, n := range networks {
		if !time.Now().Before(deadline) {
			sc.log.Printf("[INFO] Scan deadline reached, skipping Network %s\n",
				n.Addr)
			continue
		}

		var run *model.ScanRun

		if run, err = sc.scanNetwork(db, n, deadline); err != nil {
			sc.log.Printf("[ERROR] Failed to scan Network %s: %s\n",
				n.Addr,
				err.Error())
			return runs, err
		}

		runs = append(runs, run)
	}

	return runs, nil
} // func (sc *NetworkScanner) Run(timeout time.Duration) ([]*model.ScanRun, error)

func (sc *NetworkScanner) scanNetwork(db *database.Database, n *model.Network, deadline time.Time) (*model.ScanRun, error) {
	var (
		err   error
		known map[string]*model.Device
		run   = &model.ScanRun{
			ID:    common.GetUUID(),
			NetID: n.ID,
			Start: time.Now(),
		}
	)

	sc.log.Printf("[INFO] Scan Network %s (until %s at the latest)\n",
		n.Addr,
		deadline.Format(common.TimestampFormat))

	if err = db.ScanAdd(run); err != nil {
		return nil, err
	} else if known, err = sc.knownDevices(db, n); err != nil {
		return nil, err
	}

	var (
		wg    sync.WaitGroup
		addrq = make(chan net.IP)
		resq  = make(chan net.IP, sc.workers)
	)

	if err = n.Enumerate(addrq); err != nil {
		sc.log.Printf("[ERROR] Cannot enumerate Network %s: %s\n",
			n.Addr,
			err.Error())
		return nil, err
	}

	for i := 0; i < sc.workers; i++ {
		wg.Add(1)
		go sc.worker(addrq, resq, deadline, &wg)
	}

	go func() {
		wg.Wait()
		close(resq)
	}()

	var cnt int64

	for ip := range resq {
		if err = sc.registerDevice(db, n, known, ip); err != nil {
			sc.log.Printf("[ERROR] Failed to register Device %s: %s\n",
				ip,
				err.Error())
			continue
		}
		cnt++
	}

	if err = db.ScanFinish(run, time.Now(), cnt); err != nil {
		return nil, err
	}

	sc.log.Printf("[INFO] Scan of %s finished after %s, %d Devices answered.\n",
		n.Addr,
		run.Elapsed(),
		cnt)

	return run, nil
} // func (sc *NetworkScanner) scanNetwork(db *database.Database, n *model.Network, deadline time.Time) (*model.ScanRun, error)

// worker pings addresses from addrq until the queue is exhausted. Past the
// deadline it keeps draining the queue without pinging, so the enumerator
// can finish.
func (sc *NetworkScanner) worker(addrq <-chan net.IP, resq chan<- net.IP, deadline time.Time, wg *sync.WaitGroup) {
	defer wg.Done()

	for addr := range addrq {
		if !time.Now().Before(deadline) {
			continue
		}

		if sc.pinger.PingAddr(addr.String()) {
			resq <- addr
		}
	}
} // func (sc *NetworkScanner) worker(...)

func (sc *NetworkScanner) knownDevices(db *database.Database, n *model.Network) (map[string]*model.Device, error) {
	var (
		err     error
		devices []*model.Device
	)

	if devices, err = db.DeviceGetByNetwork(n); err != nil {
		return nil, err
	}

	var known = make(map[string]*model.Device, len(devices))

	for _, dev := range devices {
		known[dev.DefaultAddr()] = dev
	}

	return known, nil
} // func (sc *NetworkScanner) knownDevices(db *database.Database, n *model.Network) (map[string]*model.Device, error)

func (sc *NetworkScanner) registerDevice(db *database.Database, n *model.Network, known map[string]*model.Device, ip net.IP) error {
	var (
		err error
		now = time.Now()
	)

	if dev, ok := known[ip.String()]; ok {
		return db.DeviceUpdateLastSeen(dev, now)
	}

	var dev = &model.Device{
		NetID:    n.ID,
		Name:     deviceName(ip),
		Addr:     []net.Addr{&net.IPAddr{IP: ip}},
		Live:     true,
		LastSeen: now,
	}

	if err = db.DeviceAdd(dev); err != nil {
		return err
	}

	known[ip.String()] = dev
	sc.log.Printf("[DEBUG] New Device %s (%s) on Network %s\n",
		dev.Name,
		ip,
		n.Addr)

	return nil
} // func (sc *NetworkScanner) registerDevice(...)

// deviceName tries to find a name for the given address via reverse DNS,
// falling back to the address itself.
func deviceName(ip net.IP) string {
	var (
		err   error
		names []string
	)

	if names, err = net.LookupAddr(ip.String()); err != nil || len(names) == 0 {
		return ip.String()
	}

	return strings.TrimSuffix(names[0], ".")
} // func deviceName(ip net.IP) string
