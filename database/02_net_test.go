// /home/krylon/go/src/github.com/blicero/prowler/database/02_net_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 20:14:30 krylon>

package database

import (
	"testing"
	"time"

	"github.com/blicero/prowler/model"
)

const tnetAddr = "192.168.0.0/24"

var tnet *model.Network

func TestNetworkAdd(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
	)

	if tnet, err = model.NewNetwork(tnetAddr, "Sample network"); err != nil {
		t.Fatalf("Creating a Network failed: %s", err.Error())
	} else if err = tdb.NetworkAdd(tnet); err != nil {
		t.Fatalf("Adding network to database failed: %s", err.Error())
	} else if tnet.ID == 0 {
		t.Fatal("NetworkAdd did not set the Network's ID")
	}
} // func TestNetworkAdd(t *testing.T)

func TestNetworkGetAll(t *testing.T) {
	if tdb == nil || tnet == nil {
		t.SkipNow()
	}

	var (
		err  error
		nets []*model.Network
	)

	if nets, err = tdb.NetworkGetAll(); err != nil {
		t.Fatalf("Failed to load all Networks: %s",
			err.Error())
	} else if len(nets) != 1 {
		t.Fatalf("NetworkGetAll returned %d Networks, expected 1",
			len(nets))
	} else if nets[0].Addr.String() != tnetAddr {
		t.Errorf("Unexpected Network address %s (expected %s)",
			nets[0].Addr,
			tnetAddr)
	}
} // func TestNetworkGetAll(t *testing.T)

func TestNetworkGetByID(t *testing.T) {
	if tdb == nil || tnet == nil {
		t.SkipNow()
	}

	var (
		err error
		n   *model.Network
	)

	if n, err = tdb.NetworkGetByID(tnet.ID); err != nil {
		t.Fatalf("NetworkGetByID failed: %s", err.Error())
	} else if n == nil {
		t.Fatalf("NetworkGetByID returned nil for Network %d",
			tnet.ID)
	} else if n.Addr.String() != tnetAddr {
		t.Errorf("Unexpected Network address %s (expected %s)",
			n.Addr,
			tnetAddr)
	}

	if n, err = tdb.NetworkGetByID(4242); err != nil {
		t.Fatalf("NetworkGetByID failed for non-existing ID: %s",
			err.Error())
	} else if n != nil {
		t.Errorf("Looking up Network 4242 should not have returned a value: %#v",
			n)
	}
} // func TestNetworkGetByID(t *testing.T)

func TestNetworkGetByAddr(t *testing.T) {
	if tdb == nil || tnet == nil {
		t.SkipNow()
	}

	var (
		err error
		n   *model.Network
	)

	if n, err = tdb.NetworkGetByAddr(tnetAddr); err != nil {
		t.Fatalf("NetworkGetByAddr failed: %s", err.Error())
	} else if n == nil {
		t.Fatalf("NetworkGetByAddr returned nil for %s",
			tnetAddr)
	} else if n.ID != tnet.ID {
		t.Errorf("Unexpected Network ID %d (expected %d)",
			n.ID,
			tnet.ID)
	}
} // func TestNetworkGetByAddr(t *testing.T)

func TestNetworkUpdateScanStamp(t *testing.T) {
	if tdb == nil || tnet == nil {
		t.SkipNow()
	}

	var (
		err   error
		n     *model.Network
		stamp = time.Now().Truncate(time.Second)
	)

	if err = tdb.NetworkUpdateScanStamp(tnet, stamp); err != nil {
		t.Fatalf("NetworkUpdateScanStamp failed: %s",
			err.Error())
	} else if !tnet.LastScan.Equal(stamp) {
		t.Errorf("LastScan timestamp was not updated on the Network: %s (expected %s)",
			tnet.LastScan,
			stamp)
	} else if n, err = tdb.NetworkGetByID(tnet.ID); err != nil {
		t.Fatalf("NetworkGetByID failed: %s", err.Error())
	} else if !n.LastScan.Equal(stamp) {
		t.Errorf("LastScan timestamp was not updated in the database: %s (expected %s)",
			n.LastScan,
			stamp)
	}
} // func TestNetworkUpdateScanStamp(t *testing.T)
