// Package cli implements the cobra command surface for Caselens.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caselens/internal/adapters/driven/cache/memory"
	"github.com/custodia-labs/caselens/internal/adapters/driven/cache/noop"
	"github.com/custodia-labs/caselens/internal/adapters/driven/cache/sqlite"
	"github.com/custodia-labs/caselens/internal/adapters/driven/config/file"
	"github.com/custodia-labs/caselens/internal/core/ports/driven"
	"github.com/custodia-labs/caselens/internal/core/ports/driving"
	"github.com/custodia-labs/caselens/internal/core/services"
	"github.com/custodia-labs/caselens/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verboseFlag bool

// Package-level collaborators, initialised in Execute and swappable in tests.
var (
	configStore    driven.ConfigStore
	summaryService driving.SummaryService
)

// Supported cache backends for the summary pipeline.
const (
	cacheBackendNone   = "none"
	cacheBackendMemory = "memory"
	cacheBackendSQLite = "sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "caselens",
	Short: "Role-aware layered summaries for legal case bundles",
	Long: `Caselens turns a bundle of extracted case documents into a layered
summary: documents are classified into substantive domains (incident, medical,
police, disclosure, expert, damages) and the result is re-projected into one
prioritised lens per case-worker role.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute initialises the collaborators and runs the root command.
func Execute() {
	initConfigStore()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfigStore loads ~/.caselens/config.toml. A missing or unreadable
// config is not fatal; commands fall back to defaults.
func initConfigStore() {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Cannot resolve home directory: %v", err)
		return
	}

	store, err := file.NewConfigStore(filepath.Join(home, ".caselens"))
	if err != nil {
		logger.Warn("Config store unavailable: %v", err)
		return
	}
	configStore = store
}

// summaryServiceFor returns the injected summary service when one is set
// (tests do this), otherwise constructs one for the requested cache backend.
// An empty backend falls back to the configured default, then to none.
func summaryServiceFor(backend string) (driving.SummaryService, error) {
	if summaryService != nil {
		return summaryService, nil
	}

	if backend == "" && configStore != nil {
		backend = configStore.GetString("cache.backend")
	}

	var cache driven.SummaryCache
	switch backend {
	case "", cacheBackendNone:
		cache = noop.New()
	case cacheBackendMemory:
		cache = memory.New()
	case cacheBackendSQLite:
		cache = sqlite.New(dataDir())
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want none, memory or sqlite)", backend)
	}

	logger.Debug("Using cache backend: %s", backend)
	return services.NewSummaryService(cache), nil
}

// dataDir resolves the sqlite data directory from config. Empty means the
// adapter's own default (~/.caselens/data).
func dataDir() string {
	if configStore != nil {
		if dir := configStore.GetString("data.dir"); dir != "" {
			return dir
		}
	}
	return ""
}
