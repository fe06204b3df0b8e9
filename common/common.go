// /home/krylon/go/src/github.com/blicero/prowler/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 17:42:19 krylon>

// Package common provides constants and shared values used throughout
// the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/prowler/logdomain"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug indicates whether additional log messages are emitted and
// additional sanity checks are performed.
const Debug = true

// AppName is the name the application identifies itself by.
const AppName = "prowler"

// Version is the version number. Twiddle with care.
const Version = "0.2.1"

// TimestampFormat is the format used to render datetime values.
const TimestampFormat = "2006-01-02 15:04:05"

// DefaultPort is the port the web frontend listens on unless told otherwise.
const DefaultPort = 3931

// BuildStamp is the time the running binary was built. Filled in by the
// build script, the zero value just means a developer build.
var BuildStamp = time.Unix(0, 0)

// LogLevels are the valid log levels, in ascending order of severity.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = func() map[logdomain.ID]logutils.LogLevel {
	var m = make(map[logdomain.ID]logutils.LogLevel, len(logdomain.AllDomains()))

	for _, dom := range logdomain.AllDomains() {
		if Debug {
			m[dom] = "TRACE"
		} else {
			m[dom] = "INFO"
		}
	}

	return m
}()

// BaseDir is the directory where the application keeps its files.
var BaseDir = filepath.Join(
	os.Getenv("HOME"),
	fmt.Sprintf(".%s.d", AppName))

// DbPath returns the path of the database.
func DbPath() string {
	return filepath.Join(BaseDir, AppName+".db")
} // func DbPath() string

// CfgPath returns the path of the configuration file.
func CfgPath() string {
	return filepath.Join(BaseDir, AppName+".toml")
} // func CfgPath() string

// LogPath returns the path of the log file.
func LogPath() string {
	return filepath.Join(BaseDir, AppName+".log")
} // func LogPath() string

// HistPath returns the path of the shell's history file.
func HistPath() string {
	return filepath.Join(BaseDir, "history")
} // func HistPath() string

// SetBaseDir sets the BaseDir and creates it, if necessary.
// Mainly useful for testing.
func SetBaseDir(path string) error {
	BaseDir = path
	return InitApp()
} // func SetBaseDir(path string) error

// InitApp creates the BaseDir, if it does not exist already.
func InitApp() error {
	var (
		err error
		ok  bool
	)

	if ok, err = krylib.Fexists(BaseDir); err != nil {
		return fmt.Errorf("Cannot check if BaseDir %s exists: %w",
			BaseDir,
			err)
	} else if !ok {
		if err = os.MkdirAll(BaseDir, 0700); err != nil {
			return fmt.Errorf("Cannot create BaseDir %s: %w",
				BaseDir,
				err)
		}
	}

	return nil
} // func InitApp() error

// GetUUID returns a fresh random UUID in string form.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string

// GetLogger returns a Logger for the given logdomain, tagged with the
// application and package name, filtered through the level defined in
// PackageLevels.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err    error
		fh     *os.File
		writer io.Writer
		name   = fmt.Sprintf("%s.%s ", AppName, dom)
	)

	if fh, err = os.OpenFile(LogPath(), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600); err != nil {
		return nil, fmt.Errorf("Cannot open log file %s: %w",
			LogPath(),
			err)
	}

	writer = io.MultiWriter(os.Stderr, fh)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: PackageLevels[dom],
		Writer:   writer,
	}

	var logger = log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile)

	return logger, nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)
