package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/caselens/internal/bundle"
	"github.com/custodia-labs/caselens/internal/logger"
)

var watchCache string

var watchCmd = &cobra.Command{
	Use:   "watch [bundle.json]",
	Short: "Rebuild the summary whenever the bundle file changes",
	Long: `Watches a case bundle file and rebuilds the layered summary on every
write. Saves that leave the bundle content unchanged are served from the
cache; the rebuild only happens when the content fingerprint moves.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchCache, "cache", cacheBackendMemory,
		"cache backend: none, memory or sqlite")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := summaryServiceFor(watchCache)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving bundle path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory, not the file: editors replace files on save,
	// which would silently drop a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching bundle directory: %w", err)
	}

	rebuild := func() {
		b, err := bundle.Load(path)
		if err != nil {
			cmd.PrintErrf("Skipping rebuild: %v\n", err)
			return
		}
		applyConfigDefaults(&b)

		summary, err := svc.GetOrBuild(cmd.Context(), b)
		if err != nil {
			cmd.PrintErrf("Build failed: %v\n", err)
			return
		}
		cmd.Print(renderSummary(summary))
	}

	cmd.Printf("Watching %s (ctrl-c to stop)\n", path)
	rebuild()

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Bundle changed (%s), rebuilding", event.Op)
			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
