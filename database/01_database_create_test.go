// /home/krylon/go/src/github.com/blicero/prowler/database/01_database_create_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 20:12:45 krylon>

package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/prowler/common"
)

var tdb *Database

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/prowler_db_test_20060102_150405")
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

func TestDBCreate(t *testing.T) {
	var err error

	if tdb, err = Open(common.DbPath()); err != nil {
		tdb = nil
		t.Fatalf("Cannot create database: %s",
			err.Error())
	}
} // func TestDBCreate(t *testing.T)

func TestDBQueryPrepare(t *testing.T) {
	var (
		err error
		q   *sql.Stmt
	)

	if tdb == nil {
		t.SkipNow()
	}

	for k, s := range qdb {
		if q, err = tdb.getQuery(k); err != nil {
			t.Errorf("Error preparing query %s: %s\n%s\n",
				k,
				err.Error(),
				s)
		} else if q == nil {
			t.Errorf("Query handle %s is nil!", k)
		}
	}
} // func TestDBQueryPrepare(t *testing.T)
