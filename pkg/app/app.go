package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kiosk404/taskmind/pkg/logger"
)

// CliOptions abstracts the options a command line application reads from
// flags and configuration files.
type CliOptions interface {
	AddFlags(fs *pflag.FlagSet)
	Validate() []error
}

// RunFunc defines the application's startup callback function.
type RunFunc func(basename string) error

// App is the main structure of a cli application.
// It is recommended that an app be created with the app.NewApp() function.
type App struct {
	name        string
	basename    string
	description string
	options     CliOptions
	runFunc     RunFunc
	cmdArgs     cobra.PositionalArgs
	cmd         *cobra.Command
}

// Option defines optional parameters for initializing the application
// structure.
type Option func(*App)

// WithOptions opens the application's function to read from the command line
// or read parameters from the configuration file.
func WithOptions(opts CliOptions) Option {
	return func(a *App) {
		a.options = opts
	}
}

// WithDescription sets the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithRunFunc sets the application startup callback function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDefaultValidArgs rejects any positional arguments.
func WithDefaultValidArgs() Option {
	return func(a *App) {
		a.cmdArgs = func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) > 0 {
					return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
				}
			}
			return nil
		}
	}
}

// NewApp creates a new application instance based on the given application
// name, basename, and other options.
func NewApp(name, basename string, opts ...Option) *App {
	a := &App{
		name:     name,
		basename: basename,
	}

	for _, o := range opts {
		o(a)
	}

	a.buildCommand()

	return a
}

func (a *App) buildCommand() {
	cmd := &cobra.Command{
		Use:           a.basename,
		Short:         a.name,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          a.cmdArgs,
		RunE:          a.runCommand,
	}
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	if a.options != nil {
		a.options.AddFlags(cmd.Flags())
	}
	addConfigFlag(a.basename, cmd.Flags())

	a.cmd = cmd
}

func (a *App) runCommand(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd.Flags()); err != nil {
		return err
	}

	if a.options != nil {
		if err := viper.Unmarshal(a.options); err != nil {
			return fmt.Errorf("failed to unmarshal configuration: %w", err)
		}
		if errs := a.options.Validate(); len(errs) > 0 {
			return fmt.Errorf("invalid configuration: %v", errs)
		}
	}

	if a.runFunc != nil {
		return a.runFunc(a.basename)
	}

	return nil
}

// Run launches the application.
func (a *App) Run() {
	if err := a.cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Command returns the underlying cobra command, mainly for tests.
func (a *App) Command() *cobra.Command {
	return a.cmd
}

const configFlagName = "config"

func addConfigFlag(basename string, fs *pflag.FlagSet) {
	fs.StringP(configFlagName, "c", "", "Read configuration from the specified FILE.")

	viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(basename), "-", "_"))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

func loadConfig(fs *pflag.FlagSet) error {
	if err := viper.BindPFlags(fs); err != nil {
		return err
	}

	cfgFile, _ := fs.GetString(configFlagName)
	if cfgFile == "" {
		return nil
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", cfgFile, err)
	}
	logger.Info("[App] using configuration file %s", viper.ConfigFileUsed())

	return nil
}
