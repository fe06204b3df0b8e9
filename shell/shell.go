// /home/krylon/go/src/github.com/blicero/prowler/shell/shell.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 18:36:40 krylon>

// Package shell implements the interactive shell: it reads one line at a
// time, feeds it to the command parser and executes the result.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/database"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	"github.com/blicero/prowler/ping"
	"github.com/blicero/prowler/probe"
	"github.com/blicero/prowler/scanner"
	"github.com/blicero/prowler/settings"
	"github.com/blicero/prowler/shell/command"
	"github.com/chzyer/readline"
)

const (
	dbPoolSize = 2
	sshPort    = 22
)

// Shell is the interactive frontend. It owns the readline instance, the
// scanner, and the cache of Devices the test command indexes into.
type Shell struct {
	log     *log.Logger
	rl      *readline.Instance
	pool    *database.Pool
	sc      *scanner.NetworkScanner
	pinger  *ping.Pinger
	pr      *probe.Probe
	devices []*model.Device
	// Notify, if set, receives one-line status messages, e.g. for the
	// web frontend's message buffer.
	Notify func(string)
}

// Create sets up a Shell, including the scanner and, if the key can be
// loaded, the SSH probe.
func Create(userName, keyPath string) (*Shell, error) {
	var (
		err error
		s   = new(Shell)
	)

	if s.log, err = common.GetLogger(logdomain.Shell); err != nil {
		return nil, err
	} else if s.pool, err = database.NewPool(dbPoolSize); err != nil {
		return nil, err
	} else if s.sc, err = scanner.NewNetworkScanner(int(settings.Settings.ScanWorkerCount)); err != nil {
		return nil, err
	} else if s.pinger, err = ping.Create(); err != nil {
		return nil, err
	}

	if s.pr, err = probe.New(userName, keyPath); err != nil {
		// We can still ping, so this is not fatal.
		s.log.Printf("[WARN] SSH probing is not available: %s\n",
			err.Error())
		s.pr = nil
	}

	var completions = make([]readline.PrefixCompleterInterface, 0, 8)
	for _, kw := range command.Keywords() {
		completions = append(completions, readline.PcItem(kw))
	}

	if s.rl, err = readline.NewEx(&readline.Config{
		Prompt:          common.AppName + "> ",
		HistoryFile:     common.HistPath(),
		HistoryLimit:    int(settings.Settings.HistorySize),
		AutoComplete:    readline.NewPrefixCompleter(completions...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}); err != nil {
		return nil, err
	}

	return s, nil
} // func Create(userName, keyPath string) (*Shell, error)

// Run executes the Shell's read-parse-dispatch loop until the user leaves
// via exit/quit or end-of-input.
func (s *Shell) Run() error {
	defer s.rl.Close() // nolint: errcheck

	for {
		var (
			err  error
			line string
		)

		if line, err = s.rl.Readline(); err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var cmd command.Command

		if cmd, err = command.Parse(line); err != nil {
			s.log.Printf("[DEBUG] Cannot parse input %q: %s\n",
				line,
				err.Error())
			s.complain(err)
			continue
		} else if cmd.Kind == command.Exit {
			return nil
		}

		if err = s.dispatch(cmd); err != nil {
			s.complain(err)
		}
	}
} // func (s *Shell) Run() error

func (s *Shell) dispatch(cmd command.Command) error {
	s.log.Printf("[TRACE] Execute %s\n", cmd)

	switch cmd.Kind {
	case command.Scan:
		return s.cmdScan(cmd)
	case command.Help:
		s.printHelp()
		return nil
	case command.List:
		return s.cmdList()
	case command.Test:
		return s.cmdTest(cmd.Arg)
	default:
		// Exit is handled by the loop, so this really cannot happen.
		return fmt.Errorf("Unexpected command %s", cmd)
	}
} // func (s *Shell) dispatch(cmd command.Command) error

// complain tells the user what went wrong, followed by the help text.
func (s *Shell) complain(err error) {
	fmt.Printf("ERR: %s\n\n", err.Error())
	s.printHelp()
} // func (s *Shell) complain(err error)

func (s *Shell) printHelp() {
	fmt.Printf("Available commands: %s\n",
		strings.Join(command.Keywords(), ", "))
	fmt.Println("Some specific syntaxes: ")
	fmt.Println("   scan <number_of_seconds> ")
	fmt.Println("   test <list_device_index> ")
} // func (s *Shell) printHelp()

func (s *Shell) notify(msg string) {
	if s.Notify != nil {
		s.Notify(msg)
	}
} // func (s *Shell) notify(msg string)

func (s *Shell) cmdScan(cmd command.Command) error {
	var (
		err  error
		runs []*model.ScanRun
	)

	fmt.Println("Starting scan ... ")

	if runs, err = s.sc.Run(cmd.Duration()); err != nil {
		return err
	}

	var total int64
	for _, run := range runs {
		total += run.DevCnt
	}

	fmt.Printf("Scan done, %d Devices answered on %d Networks.\n",
		total,
		len(runs))
	s.notify(fmt.Sprintf("Scan finished: %d Devices on %d Networks",
		total,
		len(runs)))

	// The Device cache is most likely stale now.
	return s.cmdList()
} // func (s *Shell) cmdScan(cmd command.Command) error

func (s *Shell) cmdList() error {
	var (
		err error
		db  *database.Database
	)

	db = s.pool.Get()
	defer s.pool.Put(db)

	if s.devices, err = db.DeviceGetAll(); err != nil {
		return err
	}

	fmt.Printf("Found %d Devices\n", len(s.devices))

	for idx, dev := range s.devices {
		var alive = " "
		if dev.IsAlive(settings.Settings.LiveTimeout) {
			alive = "*"
		}

		fmt.Printf("%3d %s %-24s %-18s %-32s %s\n",
			idx,
			alive,
			dev.Name,
			dev.DefaultAddr(),
			dev.OS,
			dev.LastSeen.Format(common.TimestampFormat))
	}

	return nil
} // func (s *Shell) cmdList() error

func (s *Shell) cmdTest(idx uint64) error {
	if idx >= uint64(len(s.devices)) {
		return fmt.Errorf("No Device with index %d. Cached %d Devices. Run 'list' to refresh.",
			idx,
			len(s.devices))
	}

	var (
		err error
		dev = s.devices[idx]
	)

	fmt.Printf("Testing Device %s (%s)\n",
		dev.Name,
		dev.DefaultAddr())

	if !s.pinger.Ping(dev) {
		return fmt.Errorf("Device %s did not answer our ping",
			dev.Name)
	}

	fmt.Printf("%s is alive.\n", dev.Name)

	var db = s.pool.Get()
	defer s.pool.Put(db)

	if err = db.DeviceUpdateLastSeen(dev, time.Now()); err != nil {
		s.log.Printf("[ERROR] Cannot update LastSeen of %s: %s\n",
			dev.Name,
			err.Error())
	}

	if s.pr == nil {
		fmt.Println("SSH probing is not available, skipping OS and load query.")
		return nil
	}

	if dev.OS == "" {
		var osname string
		if osname, err = s.pr.QueryOS(dev, sshPort); err != nil {
			return err
		} else if err = db.DeviceUpdateOS(dev, osname); err != nil {
			return err
		}
	}

	fmt.Printf("%s is running %s\n",
		dev.Name,
		dev.OS)

	var load [3]float64
	if load, err = s.pr.QueryLoadAvg(dev, sshPort); err != nil {
		return err
	}

	fmt.Printf("Load average on %s: %.2f / %.2f / %.2f\n",
		dev.Name,
		load[0],
		load[1],
		load[2])

	return nil
} // func (s *Shell) cmdTest(idx uint64) error
