// /home/krylon/go/src/github.com/blicero/prowler/web/01_server_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 17:44:21 krylon>

package web

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/prowler/common"
)

var tsrv *Server

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/prowler_web_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	}

	result = m.Run()

	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

func TestServerCreate(t *testing.T) {
	var err error

	// Port 0 lets the kernel pick a free one.
	if tsrv, err = Create("127.0.0.1:0"); err != nil {
		tsrv = nil
		t.Fatalf("Cannot create Server: %s",
			err.Error())
	}
} // func TestServerCreate(t *testing.T)

func TestServerMessages(t *testing.T) {
	if tsrv == nil {
		t.SkipNow()
	}

	const msg = "All your base are belong to us"

	tsrv.SendMessage(msg)

	if cnt := tsrv.mbuf.count(); cnt != 1 {
		t.Errorf("Message buffer should hold 1 message, not %d",
			cnt)
	} else if all := tsrv.mbuf.getAll(); all[0].Message != msg {
		t.Errorf("Unexpected message %q (expected %q)",
			all[0].Message,
			msg)
	}
} // func TestServerMessages(t *testing.T)

// Stop must terminate the serving loop, not just clear the flag.
func TestServerStop(t *testing.T) {
	if tsrv == nil {
		t.SkipNow()
	}

	var done = make(chan struct{})

	go func() {
		tsrv.Run()
		close(done)
	}()

	var deadline = time.Now().Add(time.Second * 5)
	for !tsrv.IsActive() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if !tsrv.IsActive() {
		t.Fatal("Server did not come online")
	}

	tsrv.Stop()

	select {
	case <-done:
		// Run has returned, the server really is down.
	case <-time.After(time.Second * 10):
		t.Error("Run did not return after Stop")
	}

	if tsrv.IsActive() {
		t.Error("Server is still marked active after Stop")
	}
} // func TestServerStop(t *testing.T)
