package gateway

import (
	"github.com/kiosk404/taskmind/internal/gateway/config"
	"github.com/kiosk404/taskmind/internal/gateway/options"
	"github.com/kiosk404/taskmind/pkg/app"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// NewApp builds the taskmind gateway application with its full option
// surface.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("taskmind-gateway",
		basename,
		app.WithOptions(opts),
		app.WithDescription(`The taskmind gateway serves a conversational agent that manages per-user task lists through tool calls.`),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		if err := logger.InitLog(opts.LogOptions.Path); err != nil {
			return err
		}
		defer logger.FlushLog()
		logger.SetLevel(opts.LogOptions.Level)

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
