package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caselens/internal/adapters/driven/cache/sqlite"
)

var cacheClearOrg string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persisted summary cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [case-id]",
	Short: "Drop the persisted summary for a case",
	Long: `Removes the layered summary from the case's persisted envelope.
Other envelope fields written by collaborators are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runCacheClear,
}

func init() {
	cacheClearCmd.Flags().StringVar(&cacheClearOrg, "org", "",
		"organisation id the case belongs to")
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	caseID := args[0]
	if caseID == "" {
		return errors.New("case id is required")
	}

	orgID := cacheClearOrg
	if orgID == "" && configStore != nil {
		orgID = configStore.GetString("org.id")
	}

	cache := sqlite.New(dataDir())
	if err := cache.Clear(cmd.Context(), caseID, orgID); err != nil {
		return fmt.Errorf("clearing cached summary: %w", err)
	}

	cmd.Printf("Cleared cached summary for case %s\n", caseID)
	return nil
}
