// Package xlog provides the single structured logger used by
// cmd/lozenge-tiling. Library packages (vector, heightfield,
// candidateset, tiling) never log — per spec, the engine performs no
// I/O — only the driver binary does.
package xlog

import "github.com/sirupsen/logrus"

// New returns a *logrus.Logger configured with a text formatter and
// full timestamps, matching the driver's "print the duration of each
// phase" requirement.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
