package gateway

import (
	"github.com/kiosk404/taskmind/internal/gateway/config"
)

// Run starts the gateway with the given configuration and blocks until it
// shuts down.
func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
