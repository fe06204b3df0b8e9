// /home/krylon/go/src/github.com/blicero/prowler/probe/probe.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-27 21:20:09 krylon>

// Package probe implements asking Devices over SSH what OS they run and
// how they are doing.
package probe

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/blicero/prowler/common"
	"github.com/blicero/prowler/logdomain"
	"github.com/blicero/prowler/model"
	"golang.org/x/crypto/ssh"
)

const (
	osReleaseCmd = "/bin/cat /etc/os-release"
	unameCmd     = "/usr/bin/uname -s"
)

// Probe attempts to query Devices for the OS they are running and for
// their current state.
type Probe struct {
	log *log.Logger
	cfg *ssh.ClientConfig
}

// New creates a new Probe that authenticates with the given user name and
// private key.
func New(userName, keyPath string) (*Probe, error) {
	var (
		err error
		p   = new(Probe)
	)

	if p.log, err = common.GetLogger(logdomain.Probe); err != nil {
		return nil, err
	} else if err = p.initConfig(userName, keyPath); err != nil {
		return nil, err
	}

	return p, nil
} // func New(userName, keyPath string) (*Probe, error)

func (p *Probe) initConfig(userName, keyPath string) error {
	var (
		err    error
		keyRaw []byte
		signer ssh.Signer
	)

	if keyRaw, err = os.ReadFile(keyPath); err != nil {
		var ex = fmt.Errorf("Failed to read SSH key from %s: %w",
			keyPath,
			err)
		p.log.Printf("[ERROR] %s\n", ex.Error())
		return ex
	} else if signer, err = ssh.ParsePrivateKey(keyRaw); err != nil {
		var ex = fmt.Errorf("Failed to parse SSH key from %s: %w",
			keyPath,
			err)
		p.log.Printf("[ERROR] %s\n", ex.Error())
		return ex
	}

	p.cfg = &ssh.ClientConfig{
		User: userName,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		// We roam the local network, we have no known_hosts to check
		// against.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // nolint: gosec
	}

	return nil
} // func (p *Probe) initConfig(userName, keyPath string) error

func (p *Probe) connect(d *model.Device, port int) (*ssh.Client, error) {
	var (
		err    error
		client *ssh.Client
		addr   = fmt.Sprintf("%s:%d",
			d.DefaultAddr(),
			port)
	)

	if client, err = ssh.Dial("tcp", addr, p.cfg); err != nil {
		var ex = fmt.Errorf("Failed to connect to %s (%s): %w",
			d.Name,
			addr,
			err)
		p.log.Printf("[ERROR] %s\n", ex.Error())
		return nil, ex
	}

	return client, nil
} // func (p *Probe) connect(d *model.Device, port int) (*ssh.Client, error)

var prettyNamePat = regexp.MustCompile(`(?m)^PRETTY_NAME="?([^"\n]+?)"?\s*$`)

// QueryOS asks the given Device what operating system it is running.
func (p *Probe) QueryOS(d *model.Device, port int) (string, error) {
	var (
		err   error
		lines []string
	)

	if lines, err = p.executeCommand(d, port, osReleaseCmd); err == nil {
		var match = prettyNamePat.FindStringSubmatch(strings.Join(lines, "\n"))
		if match != nil {
			return match[1], nil
		}
	}

	// No os-release? Settle for the kernel name.
	if lines, err = p.executeCommand(d, port, unameCmd); err != nil {
		var ex = fmt.Errorf("Failed to query OS of %s: %w",
			d.Name,
			err)
		p.log.Printf("[ERROR] %s\n", ex.Error())
		return "", ex
	} else if len(lines) == 0 || lines[0] == "" {
		return "", fmt.Errorf("uname(1) on %s produced no output",
			d.Name)
	}

	return strings.TrimSpace(lines[0]), nil
} // func (p *Probe) QueryOS(d *model.Device, port int) (string, error)
