// Package modkit builds gateway modules from shared dependencies
package modkit

import (
	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/platform/config"
	"internhasha/internal/platform/logger"
	"internhasha/internal/session"
)

// Deps are shared by every module mounted on one gateway
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	API     *internhasha.Client
	Session *session.Session
}

// Ready reports whether the upstream client and the session store are wired
func (d Deps) Ready() bool { return d.API != nil && d.Session != nil }
