package commands

import (
	"os"
	"path/filepath"

	"github.com/sandeepkv93/rem/internal/app"
)

type Flags struct {
	DataDir  string
	LogLevel string

	// App is populated in the root command's Before hook, after the store
	// is open, the schema is ensured and reminder catch-up has run.
	App *app.App
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME,
// falling back to ~/.local/share.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "rem")
}
