package controllers

import "failfund/services/logger"

// appLogger records failures on paths that must not fail the request, such
// as cache writes and notification fan-out.
var appLogger logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// SetLogger installs the logger used by the controllers.
func SetLogger(l logger.Logger) {
	appLogger = l
}
