package cmd

import (
	"context"
	"fmt"
	"os"

	"manifest-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "manifest-sync",
	Short: "Weapon manifest extraction service",
	Long: `manifest-sync downloads the remote item definition manifest, keeps the weapons
and the plugs they reference, and stores the result in S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		// Console format with the development config gives ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
