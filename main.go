// /home/krylon/go/src/github.com/blicero/prowler/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 19:48:33 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/database"
	"github.com/blicero/prowler/model"
	"github.com/blicero/prowler/settings"
	"github.com/blicero/prowler/shell"
	"github.com/blicero/prowler/web"
)

func main() {
	fmt.Printf("%s %s - %s\n",
		common.AppName,
		common.Version,
		common.BuildStamp.Format(common.TimestampFormat))

	var (
		err      error
		baseDir  string
		addr     string
		netAddr  string
		username string
		keyfile  string
		www      bool
		srv      *web.Server
		sh       *shell.Shell
	)

	flag.StringVar(&baseDir, "base", "", "Base directory for the application's files")
	flag.StringVar(&addr, "addr", "", "Address of the web interface")
	flag.BoolVar(&www, "www", false, "Run the web interface alongside the shell")
	flag.StringVar(
		&netAddr,
		"net",
		"",
		"A network (in CIDR notation) to add before starting the shell")
	flag.StringVar(
		&username,
		"user",
		os.Getenv("USER"),
		"The username for probing a remote host")
	flag.StringVar(
		&keyfile,
		"key",
		filepath.Join(os.Getenv("HOME"), ".ssh", "id_ed25519"),
		"Private SSH key to use for probing")

	flag.Parse()

	if baseDir != "" {
		err = common.SetBaseDir(baseDir)
	} else {
		err = common.InitApp()
	}

	if err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		os.Exit(1)
	}

	if _, err = settings.Parse(""); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error reading configuration file: %s\n",
			err.Error())
		os.Exit(1)
	}

	if netAddr != "" {
		if err = addNetwork(netAddr); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Error adding network %s: %s\n",
				netAddr,
				err.Error())
			os.Exit(1)
		}
	}

	if sh, err = shell.Create(username, keyfile); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error creating shell: %s\n",
			err.Error())
		os.Exit(1)
	}

	if www {
		if addr == "" {
			addr = fmt.Sprintf("[::1]:%d", settings.Settings.WebPort)
		}

		if srv, err = web.Create(addr); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Error creating web interface on %s: %s\n",
				addr,
				err.Error())
			os.Exit(1)
		}

		sh.Notify = srv.SendMessage
		go srv.Run()
	}

	if err = sh.Run(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Shell exited with an error: %s\n",
			err.Error())
		os.Exit(1)
	}

	if srv != nil {
		srv.Stop()
	}
} // func main()

// addNetwork registers a Network in the database unless it is known
// already.
func addNetwork(addr string) error {
	var (
		err error
		db  *database.Database
		n   *model.Network
	)

	if db, err = database.Open(common.DbPath()); err != nil {
		return err
	}

	defer db.Close() // nolint: errcheck

	if n, err = db.NetworkGetByAddr(addr); err != nil {
		return err
	} else if n != nil {
		fmt.Printf("Network %s is already known (ID %d)\n",
			addr,
			n.ID)
		return nil
	} else if n, err = model.NewNetwork(addr, ""); err != nil {
		return err
	} else if err = db.NetworkAdd(n); err != nil {
		return err
	}

	fmt.Printf("Network %s was added with ID %d\n",
		addr,
		n.ID)

	return nil
} // func addNetwork(addr string)
