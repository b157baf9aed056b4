package app

import (
	"github.com/LeiffK/QAi/internal/pkg/logger"
)

// Shutdown gracefully shuts down all application components.
func (a *Application) Shutdown() {
	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	logger.Info("Application shut down")
}
