package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// AuthOptions configures how callers are authenticated and mapped to a
// verified user identity.
type AuthOptions struct {
	// Tokens maps a Bearer token to the user ID it authenticates.
	// When empty, the gateway runs in development mode and every request
	// is attributed to DevUser.
	Tokens map[string]string `json:"tokens" mapstructure:"tokens"`

	// DevUser is the identity assigned to requests when no tokens are
	// configured. Ignored otherwise.
	DevUser string `json:"dev-user" mapstructure:"dev-user"`
}

// NewAuthOptions creates an AuthOptions with defaults.
func NewAuthOptions() *AuthOptions {
	return &AuthOptions{
		Tokens:  map[string]string{},
		DevUser: "local-dev",
	}
}

// Validate checks the AuthOptions for correctness.
func (o *AuthOptions) Validate() []error {
	var errs []error

	for token, userID := range o.Tokens {
		if token == "" {
			errs = append(errs, fmt.Errorf("auth token for user %q must not be empty", userID))
		}
		if userID == "" {
			errs = append(errs, fmt.Errorf("auth token %q maps to an empty user ID", token))
		}
	}
	if len(o.Tokens) == 0 && o.DevUser == "" {
		errs = append(errs, fmt.Errorf("either auth tokens or a dev user must be configured"))
	}

	return errs
}

// AddFlags adds the AuthOptions flags to the given flag set.
func (o *AuthOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringToStringVar(&o.Tokens, "auth.tokens", o.Tokens, "Bearer token to user ID mapping, e.g. tokenA=alice,tokenB=bob.")
	fs.StringVar(&o.DevUser, "auth.dev-user", o.DevUser, "User identity used when no tokens are configured.")
}
