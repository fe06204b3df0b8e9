// /home/krylon/go/src/github.com/blicero/prowler/web/msgbuf.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-28 19:02:17 krylon>

package web

import (
	"sync"
	"time"

	"github.com/blicero/prowler/common"
	"github.com/hashicorp/logutils"
)

// maxMessages is the number of messages the buffer holds on to before it
// starts discarding old ones.
const maxMessages = 100

type message struct {
	Timestamp time.Time
	Level     logutils.LogLevel
	Message   string
}

func (m *message) TimeString() string {
	return m.Timestamp.Format(common.TimestampFormat)
} // func (m *message) TimeString() string

// msgBuf is a bounded buffer of messages for display in the frontend,
// newest first.
type msgBuf struct {
	lock sync.RWMutex
	msgs []*message
}

func newMsgBuf() *msgBuf {
	return &msgBuf{
		msgs: make([]*message, 0, maxMessages),
	}
} // func newMsgBuf() *msgBuf

func (b *msgBuf) put(m *message) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.msgs = append(b.msgs, m)
	if len(b.msgs) > maxMessages {
		b.msgs = b.msgs[len(b.msgs)-maxMessages:]
	}
} // func (b *msgBuf) put(m *message)

func (b *msgBuf) getAll() []*message {
	b.lock.RLock()
	defer b.lock.RUnlock()

	var all = make([]*message, len(b.msgs))

	for idx, m := range b.msgs {
		all[len(b.msgs)-1-idx] = m
	}

	return all
} // func (b *msgBuf) getAll() []*message

func (b *msgBuf) count() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.msgs)
} // func (b *msgBuf) count() int
