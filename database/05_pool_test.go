// /home/krylon/go/src/github.com/blicero/prowler/database/05_pool_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 17:33:02 krylon>

package database

import "testing"

func TestPoolGetNoWait(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err        error
		pool       *Pool
		d1, d2, d3 *Database
	)

	if pool, err = NewPool(2); err != nil {
		t.Fatalf("Cannot create Pool: %s", err.Error())
	}

	defer pool.Close() // nolint: errcheck

	if d1 = pool.Get(); d1 == nil {
		t.Fatal("Get returned nil")
	} else if d2, err = pool.GetNoWait(); err != nil {
		t.Fatalf("GetNoWait failed on a non-empty Pool: %s",
			err.Error())
	} else if d2 == nil {
		t.Fatal("GetNoWait returned nil for a non-empty Pool")
	} else if !pool.IsEmpty() {
		t.Error("Pool should be empty after both connections were taken")
	}

	// The Pool is drained now, GetNoWait must open a fresh connection
	// instead of blocking.
	if d3, err = pool.GetNoWait(); err != nil {
		t.Fatalf("GetNoWait failed on an empty Pool: %s",
			err.Error())
	} else if d3 == nil {
		t.Fatal("GetNoWait returned nil for an empty Pool")
	}

	pool.Put(d1)
	pool.Put(d2)
	pool.Put(d3)

	if pool.IsEmpty() {
		t.Error("Pool should not be empty after the connections were returned")
	}
} // func TestPoolGetNoWait(t *testing.T)
