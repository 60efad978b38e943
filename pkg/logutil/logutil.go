// Package logutil provides logging utilities.
//
// All loggers returned by GetLogger share one output, which discards
// everything until SetOutput or SetOutputFile is called. The -log flag of dx
// calls SetOutputFile.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The logger writes to the
// shared output.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the given writer.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file, which is truncated first. If fname is empty, the output
// is discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	SetOutput(file)
	return nil
}
