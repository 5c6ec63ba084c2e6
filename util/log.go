/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

/*
LogLevel filters which messages a Logger emits.
*/
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelError
)

/*
Logger is the logging facade used throughout the module.
*/
type Logger interface {
	Debug(v ...interface{})
	Info(v ...interface{})
	Error(v ...interface{})
}

/*
levelFilterLogger wraps a Logger and drops messages below a configured
level.
*/
type levelFilterLogger struct {
	level LogLevel
	inner Logger
}

/*
NewLevelFilterLogger wraps inner so only messages at or above level are
emitted.
*/
func NewLevelFilterLogger(inner Logger, level LogLevel) Logger {
	return &levelFilterLogger{level: level, inner: inner}
}

func (l *levelFilterLogger) Debug(v ...interface{}) {
	if l.level <= LevelDebug {
		l.inner.Debug(v...)
	}
}

func (l *levelFilterLogger) Info(v ...interface{}) {
	if l.level <= LevelInfo {
		l.inner.Info(v...)
	}
}

func (l *levelFilterLogger) Error(v ...interface{}) {
	if l.level <= LevelError {
		l.inner.Error(v...)
	}
}

/*
StdOutLogger writes log messages through a logrus.Logger with text
formatting and timestamps.
*/
type StdOutLogger struct {
	entry *logrus.Logger
}

/*
NewStdOutLogger creates a StdOutLogger backed by a fresh logrus.Logger with
text formatting.
*/
func NewStdOutLogger() *StdOutLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &StdOutLogger{entry: l}
}

func (s *StdOutLogger) Debug(v ...interface{}) { s.entry.Debug(v...) }
func (s *StdOutLogger) Info(v ...interface{})  { s.entry.Info(v...) }
func (s *StdOutLogger) Error(v ...interface{}) { s.entry.Error(v...) }

/*
NullLogger discards all messages.
*/
type NullLogger struct{}

func (NullLogger) Debug(v ...interface{}) {}
func (NullLogger) Info(v ...interface{})  {}
func (NullLogger) Error(v ...interface{}) {}

/*
MemoryLogger retains the last N messages in a capacity-bounded slice.
*/
type MemoryLogger struct {
	mu       sync.Mutex
	capacity int
	messages []string
}

/*
NewMemoryLogger creates a MemoryLogger retaining at most capacity messages.
*/
func NewMemoryLogger(capacity int) *MemoryLogger {
	return &MemoryLogger{capacity: capacity}
}

func (m *MemoryLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, fmt.Sprintf("[%s] %s", level, msg))
	if len(m.messages) > m.capacity {
		m.messages = m.messages[len(m.messages)-m.capacity:]
	}
}

func (m *MemoryLogger) Debug(v ...interface{}) { m.record("DEBUG", fmt.Sprint(v...)) }
func (m *MemoryLogger) Info(v ...interface{})  { m.record("INFO", fmt.Sprint(v...)) }
func (m *MemoryLogger) Error(v ...interface{}) { m.record("ERROR", fmt.Sprint(v...)) }

/*
Messages returns a snapshot of the retained messages, oldest first.
*/
func (m *MemoryLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

/*
BufferLogger writes plain-text messages to an io.Writer.
*/
type BufferLogger struct {
	mu  sync.Mutex
	out io.Writer
}

/*
NewBufferLogger creates a BufferLogger writing to out.
*/
func NewBufferLogger(out io.Writer) *BufferLogger {
	return &BufferLogger{out: out}
}

func (b *BufferLogger) write(level, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.out, "[%s] %s\n", level, msg)
}

func (b *BufferLogger) Debug(v ...interface{}) { b.write("DEBUG", fmt.Sprint(v...)) }
func (b *BufferLogger) Info(v ...interface{})  { b.write("INFO", fmt.Sprint(v...)) }
func (b *BufferLogger) Error(v ...interface{}) { b.write("ERROR", fmt.Sprint(v...)) }
