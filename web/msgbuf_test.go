// /home/krylon/go/src/github.com/blicero/prowler/web/msgbuf_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 09. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2026-08-29 17:38:46 krylon>

package web

import (
	"fmt"
	"testing"
	"time"
)

func TestMsgBuf(t *testing.T) {
	var buf = newMsgBuf()

	if cnt := buf.count(); cnt != 0 {
		t.Errorf("A fresh buffer should hold 0 messages, not %d",
			cnt)
	}

	for i := 0; i < 10; i++ {
		buf.put(&message{
			Timestamp: time.Now(),
			Level:     "INFO",
			Message:   fmt.Sprintf("msg%02d", i),
		})
	}

	if cnt := buf.count(); cnt != 10 {
		t.Fatalf("Buffer should hold 10 messages, not %d",
			cnt)
	}

	var all = buf.getAll()

	if len(all) != 10 {
		t.Fatalf("getAll returned %d messages, expected 10",
			len(all))
	} else if all[0].Message != "msg09" {
		t.Errorf("The first message should be the newest (msg09), not %q",
			all[0].Message)
	} else if all[9].Message != "msg00" {
		t.Errorf("The last message should be the oldest (msg00), not %q",
			all[9].Message)
	}
} // func TestMsgBuf(t *testing.T)

func TestMsgBufTrim(t *testing.T) {
	var buf = newMsgBuf()

	for i := 0; i < maxMessages+10; i++ {
		buf.put(&message{
			Timestamp: time.Now(),
			Level:     "DEBUG",
			Message:   fmt.Sprintf("msg%04d", i),
		})
	}

	if cnt := buf.count(); cnt != maxMessages {
		t.Fatalf("Buffer should have been trimmed to %d messages, but holds %d",
			maxMessages,
			cnt)
	}

	var all = buf.getAll()
	var newest = fmt.Sprintf("msg%04d", maxMessages+9)
	var oldest = fmt.Sprintf("msg%04d", 10)

	if all[0].Message != newest {
		t.Errorf("Newest message should be %q, not %q",
			newest,
			all[0].Message)
	} else if all[len(all)-1].Message != oldest {
		t.Errorf("Oldest retained message should be %q, not %q",
			oldest,
			all[len(all)-1].Message)
	}
} // func TestMsgBufTrim(t *testing.T)
