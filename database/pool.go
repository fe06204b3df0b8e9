// /home/krylon/go/src/github.com/blicero/prowler/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 20:01:40 krylon>

package database

import (
	"log"
	"sync"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/logdomain"
)

// Pool is a fixed-size pool of database connections, so that the web
// frontend and the shell do not have to share a single handle.
type Pool struct {
	log  *log.Logger
	lock sync.Mutex
	cond *sync.Cond
	pool []*Database
}

// NewPool opens cnt connections to the Database and returns them as a Pool.
func NewPool(cnt int) (*Pool, error) {
	var (
		err  error
		pool = &Pool{
			pool: make([]*Database, 0, cnt),
		}
	)

	pool.cond = sync.NewCond(&pool.lock)

	if pool.log, err = common.GetLogger(logdomain.DBPool); err != nil {
		return nil, err
	}

	for i := 0; i < cnt; i++ {
		var db *Database

		if db, err = Open(common.DbPath()); err != nil {
			pool.log.Printf("[ERROR] Failed to open database connection: %s\n",
				err.Error())
			pool.Close() // nolint: errcheck
			return nil, err
		}

		pool.pool = append(pool.pool, db)
	}

	return pool, nil
} // func NewPool(cnt int) (*Pool, error)

// Get returns a database connection from the Pool.
// If the Pool is empty, it blocks until a connection is returned.
func (p *Pool) Get() *Database {
	p.lock.Lock()
	defer p.lock.Unlock()

	for len(p.pool) == 0 {
		p.cond.Wait()
	}

	var db = p.pool[len(p.pool)-1]
	p.pool = p.pool[:len(p.pool)-1]

	return db
} // func (p *Pool) Get() *Database

// GetNoWait returns a database connection from the Pool.
// If the Pool is empty, a fresh connection is opened instead of waiting.
func (p *Pool) GetNoWait() (*Database, error) {
	p.lock.Lock()

	if len(p.pool) > 0 {
		var db = p.pool[len(p.pool)-1]
		p.pool = p.pool[:len(p.pool)-1]
		p.lock.Unlock()
		return db, nil
	}

	p.lock.Unlock()
	return Open(common.DbPath())
} // func (p *Pool) GetNoWait() (*Database, error)

// Put returns a database connection to the Pool.
func (p *Pool) Put(db *Database) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.pool = append(p.pool, db)
	p.cond.Signal()
} // func (p *Pool) Put(db *Database)

// IsEmpty returns true if the Pool currently holds no idle connections.
func (p *Pool) IsEmpty() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.pool) == 0
} // func (p *Pool) IsEmpty() bool

// Close closes all connections in the Pool.
func (p *Pool) Close() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	var err error

	for _, db := range p.pool {
		if e := db.Close(); e != nil {
			p.log.Printf("[ERROR] Failed to close database connection: %s\n",
				e.Error())
			err = e
		}
	}

	p.pool = p.pool[:0]
	return err
} // func (p *Pool) Close() error
