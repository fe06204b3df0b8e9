// /home/krylon/go/src/github.com/blicero/prowler/settings/settings.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-26 18:02:33 krylon>

// Package settings deals with the configuration file. Duh.
package settings

import (
	"fmt"
	"os"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/prowler/common"
	"github.com/pelletier/go-toml"
)

const defaultConfig = `
# Time-stamp: <>
[Global]
Debug = true

[Web]
Port = 3931

[Scanner]
Workers = 32

[Ping]
Count = 3
Interval = 250
Timeout = 5000

[Device]
LiveTimeout = 300

[Shell]
HistorySize = 1000
`

// Options defines several configurable parameters used throughout the
// application.
type Options struct {
	Debug           bool
	WebPort         int64
	ScanWorkerCount int64
	PingCount       int64
	PingInterval    time.Duration
	PingTimeout     time.Duration
	LiveTimeout     time.Duration
	HistorySize     int64
}

// Settings is the one parsed configuration the rest of the application
// refers to. It is filled in by Parse.
var Settings *Options

// Parse reads the configuration file at the given path.
// If path is an empty string, it uses the global default path. If no file
// exists at the path, one with the default values is created first.
func Parse(path string) (*Options, error) {
	if path == "" {
		path = common.CfgPath()
	}

	var (
		err  error
		ok   bool
		cfg  *Options
		tree *toml.Tree
	)

	if ok, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if !ok {
		if err = createDefaultConfig(path); err != nil {
			return nil, err
		}
	}

	if tree, err = toml.LoadFile(path); err != nil {
		return nil, err
	}

	cfg = new(Options)

	cfg.Debug = tree.Get("Global.Debug").(bool)
	cfg.WebPort = tree.Get("Web.Port").(int64)
	cfg.ScanWorkerCount = tree.Get("Scanner.Workers").(int64)
	cfg.PingCount = tree.Get("Ping.Count").(int64)
	cfg.PingInterval = time.Duration(tree.Get("Ping.Interval").(int64)) * time.Millisecond
	cfg.PingTimeout = time.Duration(tree.Get("Ping.Timeout").(int64)) * time.Millisecond
	cfg.LiveTimeout = time.Duration(tree.Get("Device.LiveTimeout").(int64)) * time.Second
	cfg.HistorySize = tree.Get("Shell.HistorySize").(int64)

	Settings = cfg

	return cfg, nil
} // func Parse(path string) (*Options, error)

func createDefaultConfig(path string) error {
	var (
		err     error
		written int
		fh      *os.File
	)

	if fh, err = os.Create(path); err != nil {
		return err
	}

	defer fh.Close()

	if written, err = fh.WriteString(defaultConfig); err != nil {
		return err
	} else if written != len(defaultConfig) {
		err = fmt.Errorf("Unexpected number of bytes written to config file: %d (expected %d)",
			written,
			len(defaultConfig))
		return err
	}

	return nil
} // func createDefaultConfig(path string) error
