// /home/krylon/go/src/github.com/blicero/prowler/web/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 19:24:40 krylon>

// Package web provides a read-only JSON interface to peek at the
// application's state from a browser or script while the shell is busy.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/database"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	"github.com/gorilla/mux"
)

const (
	poolSize        = 4
	noCache         = "no-store, max-age=0"
	shutdownTimeout = 5 * time.Second
)

// Server wraps the state required for the web interface
type Server struct {
	addr   string
	log    *log.Logger
	pool   *database.Pool
	active atomic.Bool
	router *mux.Router
	mbuf   *msgBuf
	web    http.Server
}

// Create creates and returns a new Server.
func Create(addr string) (*Server, error) {
	var (
		err error
		srv = &Server{
			addr: addr,
			mbuf: newMsgBuf(),
		}
	)

	if srv.log, err = common.GetLogger(logdomain.Web); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error creating Logger: %s\n",
			err.Error())
		return nil, err
	} else if srv.pool, err = database.NewPool(poolSize); err != nil {
		srv.log.Printf("[ERROR] Cannot allocate database connection pool: %s\n",
			err.Error())
		return nil, err
	}

	srv.router = mux.NewRouter()
	srv.web.Addr = addr
	srv.web.ErrorLog = srv.log
	srv.web.Handler = srv.router

	srv.router.HandleFunc("/network/all", srv.handleNetworkAll)
	srv.router.HandleFunc("/device/all", srv.handleDeviceAll)
	srv.router.HandleFunc("/scan/recent", srv.handleScanRecent)

	// AJAX handlers
	srv.router.HandleFunc("/ajax/beacon", srv.handleBeacon)
	srv.router.HandleFunc("/ajax/messages", srv.handleMessages)

	return srv, nil
} // func Create(addr string) (*Server, error)

// IsActive returns the Server's active flag.
func (srv *Server) IsActive() bool {
	return srv.active.Load()
} // func (srv *Server) IsActive() bool

// Stop takes the Server offline and shuts down the underlying HTTP server,
// waiting for pending requests to finish.
func (srv *Server) Stop() {
	srv.active.Store(false)

	var ctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.web.Shutdown(ctx); err != nil {
		srv.log.Printf("[ERROR] Failed to shut down web server: %s\n",
			err.Error())
	}
} // func (srv *Server) Stop()

// SendMessage puts a message in the Server's message buffer.
func (srv *Server) SendMessage(msg string) {
	var m = &message{
		Timestamp: time.Now(),
		Level:     "DEBUG",
		Message:   msg,
	}
	srv.mbuf.put(m)
} // func (srv *Server) SendMessage(msg string)

// Run executes the Server's loop, waiting for new connections and starting
// goroutines to handle them.
func (srv *Server) Run() {
	defer srv.log.Println("[INFO] Web server is shutting down")

	srv.active.Store(true)
	srv.log.Printf("[INFO] Web frontend is going online at %s\n", srv.addr)

	if err := srv.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			srv.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		}
	}
} // func (srv *Server) Run()

func (srv *Server) sendJSON(w http.ResponseWriter, payload any) {
	var (
		err error
		buf []byte
	)

	if buf, err = json.Marshal(payload); err != nil {
		srv.log.Printf("[ERROR] Cannot serialize response: %s\n",
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", noCache)
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck,gosec
} // func (srv *Server) sendJSON(w http.ResponseWriter, payload any)

func (srv *Server) handleBeacon(w http.ResponseWriter, r *http.Request) {
	var payload = struct {
		Status       bool
		Message      string
		Timestamp    string
		Hostname     string
		MessageCount int
	}{
		Status:       true,
		Message:      common.AppName + " " + common.Version,
		Timestamp:    time.Now().Format(common.TimestampFormat),
		Hostname:     hostname(),
		MessageCount: srv.mbuf.count(),
	}

	srv.sendJSON(w, &payload)
} // func (srv *Server) handleBeacon(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	type msg struct {
		Timestamp string
		Level     string
		Message   string
	}

	var (
		all  = srv.mbuf.getAll()
		list = make([]msg, len(all))
	)

	for idx, m := range all {
		list[idx] = msg{
			Timestamp: m.TimeString(),
			Level:     string(m.Level),
			Message:   m.Message,
		}
	}

	srv.sendJSON(w, list)
} // func (srv *Server) handleMessages(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleNetworkAll(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	type network struct {
		ID          int64
		Addr        string
		Description string
		LastScan    string
	}

	var (
		err  error
		db   *database.Database
		nets []*model.Network
	)

	if db, err = srv.pool.GetNoWait(); err != nil {
		srv.log.Printf("[ERROR] Cannot get database connection: %s\n",
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer srv.pool.Put(db)

	if nets, err = db.NetworkGetAll(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var list = make([]network, len(nets))

	for idx, n := range nets {
		list[idx] = network{
			ID:          n.ID,
			Addr:        n.Addr.String(),
			Description: n.Description,
			LastScan:    n.LastScan.Format(common.TimestampFormat),
		}
	}

	srv.sendJSON(w, list)
} // func (srv *Server) handleNetworkAll(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleDeviceAll(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	type device struct {
		ID       int64
		NetID    int64
		Name     string
		Addr     []string
		OS       string
		Live     bool
		LastSeen string
	}

	var (
		err  error
		db   *database.Database
		devs []*model.Device
	)

	if db, err = srv.pool.GetNoWait(); err != nil {
		srv.log.Printf("[ERROR] Cannot get database connection: %s\n",
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer srv.pool.Put(db)

	if devs, err = db.DeviceGetAll(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var list = make([]device, len(devs))

	for idx, d := range devs {
		var addrs = make([]string, len(d.Addr))
		for i, a := range d.Addr {
			addrs[i] = a.String()
		}

		list[idx] = device{
			ID:       d.ID,
			NetID:    d.NetID,
			Name:     d.Name,
			Addr:     addrs,
			OS:       d.OS,
			Live:     d.Live,
			LastSeen: d.LastSeen.Format(common.TimestampFormat),
		}
	}

	srv.sendJSON(w, list)
} // func (srv *Server) handleDeviceAll(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleScanRecent(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	const maxRuns = 25

	type scan struct {
		ID     string
		NetID  int64
		Start  string
		End    string
		DevCnt int64
	}

	var (
		err  error
		db   *database.Database
		runs []*model.ScanRun
	)

	if db, err = srv.pool.GetNoWait(); err != nil {
		srv.log.Printf("[ERROR] Cannot get database connection: %s\n",
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer srv.pool.Put(db)

	if runs, err = db.ScanGetRecent(maxRuns); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var list = make([]scan, len(runs))

	for idx, run := range runs {
		list[idx] = scan{
			ID:     run.ID,
			NetID:  run.NetID,
			Start:  run.Start.Format(common.TimestampFormat),
			DevCnt: run.DevCnt,
		}
		if run.IsFinished() {
			list[idx].End = run.End.Format(common.TimestampFormat)
		}
	}

	srv.sendJSON(w, list)
} // func (srv *Server) handleScanRecent(w http.ResponseWriter, r *http.Request)

func hostname() string {
	var (
		err  error
		name string
	)

	if name, err = os.Hostname(); err != nil {
		return "(unknown)"
	}

	return name
} // func hostname() string
