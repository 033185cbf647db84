package options

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/kiosk404/taskmind/internal/pkg/server"
)

// ServerRunOptions contains the options for running the HTTP API server.
type ServerRunOptions struct {
	// Mode is the gin run mode: debug, test or release.
	Mode string `json:"mode" mapstructure:"mode"`

	// BindAddress is the IP address to listen on.
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`

	// BindPort is the port to listen on.
	BindPort int `json:"bind-port" mapstructure:"bind-port"`

	// Healthz enables the /healthz endpoint.
	Healthz bool `json:"healthz" mapstructure:"healthz"`

	// EnableProfiling mounts the pprof endpoints under /debug/pprof.
	EnableProfiling bool `json:"profiling" mapstructure:"profiling"`
}

// NewServerRunOptions creates a ServerRunOptions with defaults.
func NewServerRunOptions() *ServerRunOptions {
	return &ServerRunOptions{
		Mode:        gin.ReleaseMode,
		BindAddress: "127.0.0.1",
		BindPort:    8080,
		Healthz:     true,
	}
}

// ApplyTo applies the run options to the given server config.
func (o *ServerRunOptions) ApplyTo(c *server.Config) error {
	c.Mode = o.Mode
	c.BindAddress = o.BindAddress
	c.BindPort = o.BindPort
	c.Healthz = o.Healthz
	c.EnableProfiling = o.EnableProfiling
	return nil
}

// Validate checks the ServerRunOptions for correctness.
func (o *ServerRunOptions) Validate() []error {
	var errs []error

	if o.Mode != gin.DebugMode && o.Mode != gin.TestMode && o.Mode != gin.ReleaseMode {
		errs = append(errs, fmt.Errorf("invalid server mode %q, must be one of debug, test, release", o.Mode))
	}
	if o.BindPort < 1 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("bind port %d must be between 1 and 65535", o.BindPort))
	}

	return errs
}

// AddFlags adds the run options flags to the given flag set.
func (o *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Mode, "server.mode", o.Mode, "Server run mode: debug, test or release.")
	fs.StringVar(&o.BindAddress, "server.bind-address", o.BindAddress, "IP address the server listens on.")
	fs.IntVar(&o.BindPort, "server.bind-port", o.BindPort, "Port the server listens on.")
	fs.BoolVar(&o.Healthz, "server.healthz", o.Healthz, "Enable the /healthz endpoint.")
	fs.BoolVar(&o.EnableProfiling, "server.profiling", o.EnableProfiling, "Mount pprof endpoints under /debug/pprof.")
}
