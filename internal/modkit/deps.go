// Package modkit provides module wiring and core deps
package modkit

import (
	"patrolstats/internal/platform/config"
	"patrolstats/internal/platform/logger"
	"patrolstats/internal/services/dataset"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Data dataset.Reader
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the optional dataset reader
func (d Deps) ZeroOK() bool { return true }
