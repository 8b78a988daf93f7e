// log.go - process-wide logging for guest-triggered conditions (§7).
//
// The CORE never treats a guest-caused condition as fatal; it logs and
// degrades. Several of those conditions ("unimplemented register") must
// only be logged once per address so a misbehaving guest doesn't flood
// the console.
package main

import (
	"log"
	"sync"
)

type coreLogger struct {
	mu   sync.Mutex
	once map[string]bool
}

var corelog = &coreLogger{once: make(map[string]bool)}

func (l *coreLogger) Errorf(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}

func (l *coreLogger) Warnf(format string, args ...any) {
	log.Printf("WARN "+format, args...)
}

func (l *coreLogger) Infof(format string, args ...any) {
	log.Printf("INFO "+format, args...)
}

// WarnOnce logs a warning exactly once for a given key, matching §7's
// "Logged once per address" requirement for unimplemented registers and
// unsupported SCSP source-control settings.
func (l *coreLogger) WarnOnce(key, format string, args ...any) {
	l.mu.Lock()
	already := l.once[key]
	l.once[key] = true
	l.mu.Unlock()
	if !already {
		log.Printf("WARN "+format, args...)
	}
}
