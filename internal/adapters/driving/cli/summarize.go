package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caselens/internal/bundle"
	"github.com/custodia-labs/caselens/internal/core/domain"
)

var (
	summarizeCache string
	summarizeJSON  bool
	summarizeRole  string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [bundle.json]",
	Short: "Build a layered summary from a case bundle",
	Long: `Loads a case bundle JSON file, classifies its documents into domains
and builds one prioritised lens per role.

With --cache, an unchanged bundle is served from the selected cache backend
instead of being rebuilt. Cache failures never fail the command.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeCache, "cache", "",
		"cache backend: none, memory or sqlite (default from config)")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false,
		"output the full summary as JSON")
	summarizeCmd.Flags().StringVar(&summarizeRole, "role", "",
		"render a single role's lens (paralegal, solicitor, supervisor, counsel, costs, client_care)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	svc, err := summaryServiceFor(summarizeCache)
	if err != nil {
		return err
	}

	b, err := bundle.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}
	applyConfigDefaults(&b)

	summary, err := svc.GetOrBuild(cmd.Context(), b)
	if err != nil {
		return fmt.Errorf("building summary: %w", err)
	}

	if summarizeJSON {
		return outputSummaryJSON(cmd, summary)
	}

	if summarizeRole != "" {
		lens, ok := summary.RoleLenses[domain.Role(summarizeRole)]
		if !ok {
			return fmt.Errorf("unknown role %q", summarizeRole)
		}
		cmd.Print(renderRoleLens(lens))
		return nil
	}

	cmd.Print(renderSummary(summary))
	return nil
}

// applyConfigDefaults fills bundle fields the file left empty from config.
func applyConfigDefaults(b *domain.CaseBundle) {
	if configStore == nil {
		return
	}
	if b.PracticeArea == "" {
		if area := configStore.GetString("practice.area"); area != "" {
			b.PracticeArea = domain.PracticeArea(area)
		}
	}
	if b.OrgID == "" {
		b.OrgID = configStore.GetString("org.id")
	}
}

func outputSummaryJSON(cmd *cobra.Command, summary *domain.LayeredSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling summary: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
