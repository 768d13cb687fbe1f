// Copyright 2018 The go-klaytn Authors
// This file is part of the go-klaytn library.
//
// The go-klaytn library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-klaytn library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-klaytn library. If not, see <http://www.gnu.org/licenses/>.

// Package logging provides the contextual logger used throughout consensus/bba,
// in the same "logger.NewWith(...)" / "logger.Error(msg, k, v, ...)" shape as
// klaytn's consensus/istanbul, backed by zap instead of klaytn's own log package.
package logging

import (
	"go.uber.org/zap"
)

// Logger is a contextual logger: New/With attach key-value pairs that are
// carried by every subsequent call, mirroring klaytn's log.Logger interface.
type Logger struct {
	s *zap.SugaredLogger
}

var base = newBase()

func newBase() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Logging must never be able to take the process down; fall back to a
		// no-op core rather than propagate a construction error.
		l = zap.NewNop()
	}
	return l.Sugar()
}

// New returns the component root logger, e.g. logging.New("agreement").
func New(component string) *Logger {
	return &Logger{s: base.With("component", component)}
}

// With returns a derived logger carrying the given additional key-value pairs.
func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{s: l.s.With(kv...)}
}

func (l *Logger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
