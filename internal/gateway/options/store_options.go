package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// StoreOptions configures the persistence backends: SQLite for tasks,
// BoltDB for conversations. The "inmemory" type swaps both for volatile
// stores, mainly for local experiments.
type StoreOptions struct {
	// Type selects the backend family: "persistent" or "inmemory".
	Type string `json:"type" mapstructure:"type"`

	// SQLitePath is the task database file path.
	SQLitePath string `json:"sqlite-path" mapstructure:"sqlite-path"`

	// BoltDBPath is the conversation database file path.
	BoltDBPath string `json:"boltdb-path" mapstructure:"boltdb-path"`

	// HistoryLimit caps the conversation turns fed to the model per call.
	HistoryLimit int `json:"history-limit" mapstructure:"history-limit"`
}

// NewStoreOptions creates a StoreOptions with defaults.
func NewStoreOptions() *StoreOptions {
	return &StoreOptions{
		Type:         "persistent",
		SQLitePath:   "data/taskmind.db",
		BoltDBPath:   "data/conversations.db",
		HistoryLimit: 20,
	}
}

// Validate checks the StoreOptions for correctness.
func (o *StoreOptions) Validate() []error {
	var errs []error

	if o.Type != "persistent" && o.Type != "inmemory" {
		errs = append(errs, fmt.Errorf("invalid store type %q, must be 'persistent' or 'inmemory'", o.Type))
	}
	if o.Type == "persistent" {
		if o.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("sqlite path is required for the persistent store"))
		}
		if o.BoltDBPath == "" {
			errs = append(errs, fmt.Errorf("boltdb path is required for the persistent store"))
		}
	}
	if o.HistoryLimit < 1 {
		errs = append(errs, fmt.Errorf("history limit %d must be at least 1", o.HistoryLimit))
	}

	return errs
}

// AddFlags adds the StoreOptions flags to the given flag set.
func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Type, "store.type", o.Type, "Persistence backend family: 'persistent' or 'inmemory'.")
	fs.StringVar(&o.SQLitePath, "store.sqlite-path", o.SQLitePath, "Task database file path.")
	fs.StringVar(&o.BoltDBPath, "store.boltdb-path", o.BoltDBPath, "Conversation database file path.")
	fs.IntVar(&o.HistoryLimit, "store.history-limit", o.HistoryLimit, "Conversation turns fed to the model per call.")
}
