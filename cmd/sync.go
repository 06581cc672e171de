package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"manifest-sync/feature/manifest"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs the pipeline once.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the manifest and rewrite the artifacts if the version changed",
	Long: `Fetches the remote manifest index, compares its version with the stored one and,
when it differs (or --force is set), extracts weapons and their plugs into storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		shape, _ := cmd.Flags().GetString("shape")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.close()

		if shape != "" {
			env.cfg.Manifest.OutputShape = shape
		}

		svc, err := env.manifestService()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := svc.Run(ctx, manifest.RunOptions{Force: force})
		if err != nil {
			return fmt.Errorf("sync failed at %s stage: %w", manifest.FailedStage(err), err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if result.Skipped {
			env.logger.Info("Manifest is up to date", zap.String("version", result.RemoteVersion))
			return nil
		}
		env.logger.Info("Manifest sync finished",
			zap.String("version", result.RemoteVersion),
			zap.String("previous", result.PreviousVersion),
			zap.Int("entries", result.TableEntries),
			zap.Int("weapons", result.Weapons),
			zap.Int("plugs", result.Plugs),
			zap.String("execution_time", result.ExecutionTime))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().Bool("force", false, "Re-process even if the stored version matches")
	syncCmd.Flags().String("shape", "", "Output shape override: minimal, slim or full")
	syncCmd.Flags().Bool("json", false, "Print the run result as JSON")
}
