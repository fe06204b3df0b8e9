// /home/krylon/go/src/github.com/blicero/prowler/settings/01_read_default_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-26 18:05:21 krylon>

package settings

import (
	"os"
	"testing"
	"time"
)

func TestReadDefault(t *testing.T) {
	var (
		err  error
		path string
		cfg  *Options
	)

	const (
		webPort      = 3931
		workers      = 32
		pingCount    = 3
		pingInterval = time.Millisecond * 250
		pingTimeout  = time.Millisecond * 5000
		liveTimeout  = time.Second * 300
		histSize     = 1000
	)

	path = time.Now().Format("/tmp/prowler_test_cfg_20060102_150405.toml")

	defer os.Remove(path) // nolint: errcheck

	if cfg, err = Parse(path); err != nil {
		t.Fatalf("Error Parsing configuration file: %s",
			err.Error())
	} else if cfg == nil {
		t.Fatalf("Parse did not return an error, but no Settings, either")
	} else if Settings != cfg {
		t.Error("Parse did not set the global Settings")
	}

	if cfg.WebPort != webPort {
		t.Errorf("Unexpected WebPort %d (expect %d)",
			cfg.WebPort,
			webPort)
	}

	if cfg.ScanWorkerCount != workers {
		t.Errorf("Unexpected ScanWorkerCount %d (expect %d)",
			cfg.ScanWorkerCount,
			workers)
	}

	if cfg.PingCount != pingCount {
		t.Errorf("Unexpected PingCount %d (expect %d)",
			cfg.PingCount,
			pingCount)
	}

	if cfg.PingInterval != pingInterval {
		t.Errorf("Unexpected PingInterval %s (expect %s)",
			cfg.PingInterval,
			pingInterval)
	}

	if cfg.PingTimeout != pingTimeout {
		t.Errorf("Unexpected PingTimeout %s (expect %s)",
			cfg.PingTimeout,
			pingTimeout)
	}

	if cfg.LiveTimeout != liveTimeout {
		t.Errorf("Unexpected LiveTimeout: %s (expect %s)",
			cfg.LiveTimeout,
			liveTimeout)
	}

	if cfg.HistorySize != histSize {
		t.Errorf("Unexpected HistorySize %d (expect %d)",
			cfg.HistorySize,
			histSize)
	}
} // func TestReadDefault(t *testing.T)
