package options

import (
	"github.com/spf13/pflag"

	genericoptions "github.com/kiosk404/taskmind/internal/pkg/options"
	"github.com/kiosk404/taskmind/pkg/utils/json"
)

// Options is the full set of configuration for the taskmind gateway.
type Options struct {
	GenericServerRunOptions *genericoptions.ServerRunOptions `json:"server" mapstructure:"server"`
	AuthOptions             *AuthOptions                     `json:"auth"   mapstructure:"auth"`
	LLMOptions              *LLMOptions                      `json:"llm"    mapstructure:"llm"`
	StoreOptions            *StoreOptions                    `json:"store"  mapstructure:"store"`
	LogOptions              *LogOptions                      `json:"log"    mapstructure:"log"`
}

// NewOptions creates an Options with defaults.
func NewOptions() *Options {
	return &Options{
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		AuthOptions:             NewAuthOptions(),
		LLMOptions:              NewLLMOptions(),
		StoreOptions:            NewStoreOptions(),
		LogOptions:              NewLogOptions(),
	}
}

// AddFlags adds all gateway flags to the given flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.GenericServerRunOptions.AddFlags(fs)
	o.AuthOptions.AddFlags(fs)
	o.LLMOptions.AddFlags(fs)
	o.StoreOptions.AddFlags(fs)
	o.LogOptions.AddFlags(fs)
}

// Validate checks all sub-options for correctness.
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.AuthOptions.Validate()...)
	errs = append(errs, o.LLMOptions.Validate()...)
	errs = append(errs, o.StoreOptions.Validate()...)
	errs = append(errs, o.LogOptions.Validate()...)

	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
