// /home/krylon/go/src/github.com/blicero/prowler/database/03_device_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 20:17:08 krylon>

package database

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/blicero/prowler/model"
)

const (
	devCnt = 16
)

var tdev []*model.Device

func TestDeviceAdd(t *testing.T) {
	if tdb == nil || tnet == nil || tnet.ID == 0 {
		t.SkipNow()
	}

	var (
		err    error
		status = false
		n      int
	)

	tdev = make([]*model.Device, devCnt)

	tdb.Begin() // nolint: errcheck
	defer func() {
		if status {
			tdb.Commit() // nolint: errcheck
		} else {
			t.Log("Rolling back database transaction.")
			tdb.Rollback() // nolint: errcheck
		}
	}()

	for n = 1; n <= devCnt; n++ {
		var dev = &model.Device{
			Name:  fmt.Sprintf("dev%02d", n),
			NetID: tnet.ID,
			Addr: []net.Addr{
				&net.IPAddr{
					IP: net.IPv4(192, 168, 0, byte(n)),
				},
			},
		}

		if err = tdb.DeviceAdd(dev); err != nil {
			t.Fatalf("Cannot add Device %s: %s",
				dev.Name,
				err.Error())
		} else {
			tdev[n-1] = dev
		}
	}

	status = true
} // func TestDeviceAdd(t *testing.T)

func TestDeviceAddInvalid(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var dev = &model.Device{NetID: tnet.ID} // no name

	if err := tdb.DeviceAdd(dev); err == nil {
		t.Error("Adding a nameless Device should have failed")
	}
} // func TestDeviceAddInvalid(t *testing.T)

func TestDeviceGetall(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		xdev []*model.Device
	)

	if xdev, err = tdb.DeviceGetAll(); err != nil {
		t.Fatalf("Failed to load all Devices: %s",
			err.Error())
	} else if xdev == nil {
		t.Fatal("DeviceGetAll returned nil")
	} else if len(xdev) != devCnt {
		t.Fatalf("DeviceGetAll returned %d Devices, we expected to get %d",
			len(xdev),
			devCnt)
	}
} // func TestDeviceGetall(t *testing.T)

func TestDeviceGetByID(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err  error
		xdev *model.Device
	)

	for _, dev := range tdev {
		if xdev, err = tdb.DeviceGetByID(dev.ID); err != nil {
			t.Fatalf("DeviceGetByID failed: %s", err.Error())
		} else if xdev == nil {
			t.Fatalf("DeviceGetByID returned nil for Device with ID %d (%s)",
				dev.ID,
				dev.Name)
		}

		var addr01, addr02 string

		addr01 = dev.AddrStr()
		addr02 = xdev.AddrStr()

		if addr01 != addr02 {
			t.Fatalf("Unexpected address(es) for Device %d (%s):\nExpected:\t%s\nGot:\t%s\n",
				dev.ID,
				dev.Name,
				addr01,
				addr02)
		}
	}

	var i int64

	for i = 1000; i < 2000; i++ {
		var dev *model.Device

		if dev, err = tdb.DeviceGetByID(i); err != nil {
			t.Fatalf("Failed to look up Device %d: %s",
				i,
				err.Error())
		} else if dev != nil {
			t.Fatalf("Looking for Device %d should not have returned a value: %#v",
				i,
				dev)
		}
	}
} // func TestDeviceGetByID(t *testing.T)

func TestDeviceGetByNetwork(t *testing.T) {
	if tdb == nil || tnet == nil {
		t.SkipNow()
	}

	var (
		err  error
		xdev []*model.Device
	)

	if xdev, err = tdb.DeviceGetByNetwork(tnet); err != nil {
		t.Fatalf("DeviceGetByNetwork failed: %s",
			err.Error())
	} else if len(xdev) != devCnt {
		t.Fatalf("DeviceGetByNetwork returned %d Devices, we expected %d",
			len(xdev),
			devCnt)
	}

	for _, dev := range xdev {
		if dev.NetID != tnet.ID {
			t.Errorf("Device %s belongs to Network %d, not %d",
				dev.Name,
				dev.NetID,
				tnet.ID)
		}
	}
} // func TestDeviceGetByNetwork(t *testing.T)

func TestDeviceUpdateLastSeen(t *testing.T) {
	if tdb == nil || len(tdev) == 0 {
		t.SkipNow()
	}

	var (
		err   error
		dev   = tdev[0]
		xdev  *model.Device
		stamp = time.Now().Truncate(time.Second)
	)

	if err = tdb.DeviceUpdateLastSeen(dev, stamp); err != nil {
		t.Fatalf("DeviceUpdateLastSeen failed: %s",
			err.Error())
	} else if !dev.Live {
		t.Error("Device should be marked live after being seen")
	} else if xdev, err = tdb.DeviceGetByID(dev.ID); err != nil {
		t.Fatalf("DeviceGetByID failed: %s", err.Error())
	} else if !xdev.LastSeen.Equal(stamp) {
		t.Errorf("LastSeen timestamp was not updated in the database: %s (expected %s)",
			xdev.LastSeen,
			stamp)
	} else if !xdev.Live {
		t.Error("Device is not marked live in the database")
	}
} // func TestDeviceUpdateLastSeen(t *testing.T)

func TestDeviceUpdateOS(t *testing.T) {
	if tdb == nil || len(tdev) == 0 {
		t.SkipNow()
	}

	const osname = "Debian GNU/Linux 13 (trixie)"

	var (
		err  error
		dev  = tdev[1]
		xdev *model.Device
	)

	if err = tdb.DeviceUpdateOS(dev, osname); err != nil {
		t.Fatalf("DeviceUpdateOS failed: %s",
			err.Error())
	} else if dev.OS != osname {
		t.Errorf("OS was not updated on the Device: %q",
			dev.OS)
	} else if xdev, err = tdb.DeviceGetByID(dev.ID); err != nil {
		t.Fatalf("DeviceGetByID failed: %s", err.Error())
	} else if xdev.OS != osname {
		t.Errorf("OS was not updated in the database: %q (expected %q)",
			xdev.OS,
			osname)
	}
} // func TestDeviceUpdateOS(t *testing.T)
