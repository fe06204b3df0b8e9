// /home/krylon/go/src/github.com/blicero/prowler/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 19:55:03 krylon>

// Package database provides the persistence layer, backed by SQLite.
package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/database/query"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrInvalidValue indicates that one or more parameters passed to a method
// had values that are invalid for that operation.
var ErrInvalidValue = errors.New("Invalid value for parameter")

// ErrObjectNotFound indicates that an Object was not found in the database.
var ErrObjectNotFound = errors.New("object was not found in database")

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is the storage backend.
//
// It is not safe to share a Database instance between goroutines, however
// opening multiple connections to the same Database is safe.
type Database struct {
	id      int64
	db      *sql.DB
	tx      *sql.Tx
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range qinit {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	var err error

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = qdb[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(qdb[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			qdb[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var mQueries = []string{
		"PRAGMA wal_checkpoint(TRUNCATE)",
		"VACUUM",
		"REINDEX",
		"ANALYZE",
	}
	var err error

	if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil

	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// NetworkAdd adds a Network to the Database.
func (db *Database) NetworkAdd(n *model.Network) error {
	const qid query.ID = query.NetworkAdd
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(n.Addr.String(), n.Description); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Network %s to database: %w",
				n.Addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	} else {
		var id int64

		defer rows.Close()

		if !rows.Next() {
			// CANTHAPPEN
			db.log.Printf("[ERROR] Query %s did not return a value\n",
				qid)
			return fmt.Errorf("Query %s did not return a value", qid)
		} else if err = rows.Scan(&id); err != nil {
			var ex = fmt.Errorf("Failed to get ID for newly added Network %s: %w",
				n.Addr,
				err)
			db.log.Printf("[ERROR] %s\n", ex.Error())
			return ex
		}

		n.ID = id
		return nil
	}
} // func (db *Database) NetworkAdd(n *model.Network) error

// NetworkUpdateScanStamp sets a Network's LastScan timestamp in the Database.
func (db *Database) NetworkUpdateScanStamp(n *model.Network, t time.Time) error {
	const qid query.ID = query.NetworkUpdateScanStamp
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var (
		res         sql.Result
		numAffected int64
	)

EXEC_QUERY:
	if res, err = stmt.Exec(t.Unix(), n.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot update LastScan timestamp of Network %s (%d): %w",
				n.Addr,
				n.ID,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	} else if numAffected, err = res.RowsAffected(); err != nil {
		err = fmt.Errorf("Failed to query result for number of affected rows: %w",
			err)
		db.log.Printf("[ERROR] %s\n", err.Error())
		return err
	} else if numAffected != 1 {
		db.log.Printf("[ERROR] Update LastScan timestamp of Network %s (%d) affected 0 rows\n",
			n.Addr,
			n.ID)
	} else {
		n.LastScan = t
	}

	return nil
} // func (db *Database) NetworkUpdateScanStamp(n *model.Network, t time.Time) error

// NetworkGetAll loads all Networks stored in the Database.
func (db *Database) NetworkGetAll() ([]*model.Network, error) {
	const qid query.ID = query.NetworkGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load all Networks: %w",
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	var networks = make([]*model.Network, 0, 8)

	for rows.Next() {
		var (
			addr  string
			stamp int64
			n     = new(model.Network)
		)

		if err = rows.Scan(&n.ID, &addr, &n.Description, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if _, n.Addr, err = net.ParseCIDR(addr); err != nil {
			err = fmt.Errorf("Cannot parse network address %q: %w",
				addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		n.LastScan = time.Unix(stamp, 0)
		networks = append(networks, n)
	}

	return networks, nil
} // func (db *Database) NetworkGetAll() ([]*model.Network, error)

// NetworkGetByID loads the Network with the given ID.
// If no such Network exists, it returns nil, but no error.
func (db *Database) NetworkGetByID(id int64) (*model.Network, error) {
	const qid query.ID = query.NetworkGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load Network %d: %w",
				id,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	if rows.Next() {
		var (
			addr  string
			stamp int64
			n     = &model.Network{ID: id}
		)

		if err = rows.Scan(&addr, &n.Description, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if _, n.Addr, err = net.ParseCIDR(addr); err != nil {
			err = fmt.Errorf("Cannot parse network address %q: %w",
				addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		n.LastScan = time.Unix(stamp, 0)
		return n, nil
	}

	return nil, nil
} // func (db *Database) NetworkGetByID(id int64) (*model.Network, error)

// NetworkGetByAddr loads the Network with the given CIDR address.
// If no such Network exists, it returns nil, but no error.
func (db *Database) NetworkGetByAddr(addr string) (*model.Network, error) {
	const qid query.ID = query.NetworkGetByAddr
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(addr); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load Network %s: %w",
				addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	if rows.Next() {
		var (
			stamp int64
			n     = new(model.Network)
		)

		if err = rows.Scan(&n.ID, &n.Description, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if _, n.Addr, err = net.ParseCIDR(addr); err != nil {
			err = fmt.Errorf("Cannot parse network address %q: %w",
				addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		n.LastScan = time.Unix(stamp, 0)
		return n, nil
	}

	return nil, nil
} // func (db *Database) NetworkGetByAddr(addr string) (*model.Network, error)

// DeviceAdd adds a Device to the Database.
func (db *Database) DeviceAdd(dev *model.Device) error {
	const qid query.ID = query.DeviceAdd
	var (
		err  error
		stmt *sql.Stmt
	)

	if dev.Name == "" || dev.NetID == 0 {
		return ErrInvalidValue
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(dev.Name, dev.NetID, dev.AddrStr(), dev.Live, dev.LastSeen.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add Device %s to database: %w",
				dev.Name,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	} else {
		var id int64

		defer rows.Close()

		if !rows.Next() {
			// CANTHAPPEN
			db.log.Printf("[ERROR] Query %s did not return a value\n",
				qid)
			return fmt.Errorf("Query %s did not return a value", qid)
		} else if err = rows.Scan(&id); err != nil {
			var ex = fmt.Errorf("Failed to get ID for newly added Device %s: %w",
				dev.Name,
				err)
			db.log.Printf("[ERROR] %s\n", ex.Error())
			return ex
		}

		dev.ID = id
		return nil
	}
} // func (db *Database) DeviceAdd(dev *model.Device) error

// DeviceUpdateLastSeen sets a Device's LastSeen timestamp and marks it live.
func (db *Database) DeviceUpdateLastSeen(dev *model.Device, t time.Time) error {
	const qid query.ID = query.DeviceUpdateLastSeen
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(t.Unix(), dev.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot update LastSeen timestamp of Device %s (%d): %w",
				dev.Name,
				dev.ID,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	dev.LastSeen = t
	dev.Live = true
	return nil
} // func (db *Database) DeviceUpdateLastSeen(dev *model.Device, t time.Time) error

// DeviceUpdateOS sets a Device's OS in the Database.
func (db *Database) DeviceUpdateOS(dev *model.Device, osname string) error {
	const qid query.ID = query.DeviceUpdateOS
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(osname, dev.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot set OS of Device %s (%d) to %s: %w",
				dev.Name,
				dev.ID,
				osname,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	dev.OS = osname
	return nil
} // func (db *Database) DeviceUpdateOS(dev *model.Device, osname string) error

func scanAddrList(raw string) ([]net.Addr, error) {
	var (
		err   error
		addrs []string
	)

	if err = json.Unmarshal([]byte(raw), &addrs); err != nil {
		return nil, err
	}

	var list = make([]net.Addr, len(addrs))

	for idx, a := range addrs {
		var ip = net.ParseIP(a)
		if ip == nil {
			return nil, fmt.Errorf("Cannot parse IP address %q", a)
		}
		list[idx] = &net.IPAddr{IP: ip}
	}

	return list, nil
} // func scanAddrList(raw string) ([]net.Addr, error)

// DeviceGetAll loads all Devices stored in the Database, ordered by name.
func (db *Database) DeviceGetAll() ([]*model.Device, error) {
	const qid query.ID = query.DeviceGetAll
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load all Devices: %w",
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	var devices = make([]*model.Device, 0, 16)

	for rows.Next() {
		var (
			addr  string
			stamp int64
			dev   = new(model.Device)
		)

		if err = rows.Scan(&dev.ID, &dev.NetID, &dev.Name, &addr, &dev.OS, &dev.Live, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if dev.Addr, err = scanAddrList(addr); err != nil {
			err = fmt.Errorf("Cannot parse address list of Device %s: %w",
				dev.Name,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		dev.LastSeen = time.Unix(stamp, 0)
		devices = append(devices, dev)
	}

	return devices, nil
} // func (db *Database) DeviceGetAll() ([]*model.Device, error)

// DeviceGetByID loads the Device with the given ID.
// If no such Device exists, it returns nil, but no error.
func (db *Database) DeviceGetByID(id int64) (*model.Device, error) {
	const qid query.ID = query.DeviceGetByID
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(id); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load Device %d: %w",
				id,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	if rows.Next() {
		var (
			addr  string
			stamp int64
			dev   = &model.Device{ID: id}
		)

		if err = rows.Scan(&dev.NetID, &dev.Name, &addr, &dev.OS, &dev.Live, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if dev.Addr, err = scanAddrList(addr); err != nil {
			err = fmt.Errorf("Cannot parse address list of Device %s: %w",
				dev.Name,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		dev.LastSeen = time.Unix(stamp, 0)
		return dev, nil
	}

	return nil, nil
} // func (db *Database) DeviceGetByID(id int64) (*model.Device, error)

// DeviceGetByNetwork loads all Devices that belong to the given Network.
func (db *Database) DeviceGetByNetwork(n *model.Network) ([]*model.Device, error) {
	const qid query.ID = query.DeviceGetByNetwork
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(n.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load Devices of Network %s: %w",
				n.Addr,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	var devices = make([]*model.Device, 0, 16)

	for rows.Next() {
		var (
			addr  string
			stamp int64
			dev   = &model.Device{NetID: n.ID}
		)

		if err = rows.Scan(&dev.ID, &dev.Name, &addr, &dev.OS, &dev.Live, &stamp); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		} else if dev.Addr, err = scanAddrList(addr); err != nil {
			err = fmt.Errorf("Cannot parse address list of Device %s: %w",
				dev.Name,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		dev.LastSeen = time.Unix(stamp, 0)
		devices = append(devices, dev)
	}

	return devices, nil
} // func (db *Database) DeviceGetByNetwork(n *model.Network) ([]*model.Device, error)

// ScanAdd registers a freshly started ScanRun in the Database.
func (db *Database) ScanAdd(run *model.ScanRun) error {
	const qid query.ID = query.ScanAdd
	var (
		err  error
		stmt *sql.Stmt
	)

	if run.ID == "" || run.NetID == 0 {
		return ErrInvalidValue
	}

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(run.ID, run.NetID, run.Start.Unix()); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot add ScanRun %s to database: %w",
				run.ID,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	return nil
} // func (db *Database) ScanAdd(run *model.ScanRun) error

// ScanFinish marks a ScanRun as finished and records the number of Devices
// that answered.
func (db *Database) ScanFinish(run *model.ScanRun, t time.Time, devCnt int64) error {
	const qid query.ID = query.ScanFinish
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if _, err = stmt.Exec(t.Unix(), devCnt, run.ID); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot finish ScanRun %s: %w",
				run.ID,
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return err
		}
	}

	run.End = t
	run.DevCnt = devCnt
	return nil
} // func (db *Database) ScanFinish(run *model.ScanRun, t time.Time, devCnt int64) error

// ScanGetRecent loads the max most recent ScanRuns, newest first.
func (db *Database) ScanGetRecent(max int64) ([]*model.ScanRun, error) {
	const qid query.ID = query.ScanGetRecent
	var (
		err  error
		stmt *sql.Stmt
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Failed to prepare query %s: %s\n",
			qid,
			err.Error())
		panic(err)
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

	var rows *sql.Rows

EXEC_QUERY:
	if rows, err = stmt.Query(max); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		} else {
			err = fmt.Errorf("Cannot load recent ScanRuns: %w",
				err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}
	}

	defer rows.Close()

	var runs = make([]*model.ScanRun, 0, max)

	for rows.Next() {
		var (
			start, finish int64
			run           = new(model.ScanRun)
		)

		if err = rows.Scan(&run.ID, &run.NetID, &start, &finish, &run.DevCnt); err != nil {
			err = fmt.Errorf("Failed to scan row: %w", err)
			db.log.Printf("[ERROR] %s\n", err.Error())
			return nil, err
		}

		run.Start = time.Unix(start, 0)
		if finish != 0 {
			run.End = time.Unix(finish, 0)
		}

		runs = append(runs, run)
	}

	return runs, nil
} // func (db *Database) ScanGetRecent(max int64) ([]*model.ScanRun, error)
