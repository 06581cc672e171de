package cmd

import (
	"context"
	"errors"

	"manifest-sync/core/storage"
	"manifest-sync/feature/integrity"
	"manifest-sync/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and run history",
	Long:  `Checks the bucket structure, the stored artifacts and the run history schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket and artifact folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// artifactsCmd represents the integrity artifacts command
var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Check the stored weapon, plug and version objects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// historyCmd represents the integrity history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Check the run history table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, artifactsCmd, historyCmd)
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runArtifacts, runHistory bool) error {
	env, err := newEnvironment()
	if err != nil {
		return err
	}
	defer env.close()
	logg := env.logger

	svc := integrity.NewService(env.store, env.cfg.Storage, env.cfg.Manifest, env.db, logg)
	var failed bool

	if runStructure {
		logg.Info("Checking storage structure...", zap.String("bucket", env.cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		switch {
		case err != nil && !(fixFlag && errors.Is(err, storage.ErrBucketMissing)):
			return err
		case err != nil:
			missing = svc.Folders()
			logg.Warn("Bucket is missing", zap.String("bucket", env.cfg.Storage.Bucket))
		}

		if len(missing) == 0 && err == nil {
			logg.Info("Structure is intact.")
		} else if fixFlag {
			logg.Info("Fixing storage structure...", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return err
			}
			logg.Info("Structure fixed successfully.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run with --fix to create missing folders.")
			failed = true
		}
	}

	if runArtifacts {
		logg.Info("Checking artifacts...")
		missing, err := svc.CheckArtifacts(ctx)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			logg.Info("Artifacts are present.")
		} else {
			logg.Warn("Missing artifacts detected; run sync to create them", zap.Strings("missing", missing))
			failed = true
		}
	}

	if runHistory {
		logg.Info("Checking run history schema...")
		report, err := svc.CheckHistory()
		switch {
		case errors.Is(err, checks.ErrNoDatabase):
			logg.Info("Run history is disabled; skipping schema check.")
		case err != nil:
			return err
		case report.Matched:
			logg.Info("Run history schema matches.", zap.String("table", report.Table))
		default:
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", report.Table), zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", report.Table), zap.Strings("mismatches", report.TypeMismatches))
			}
			failed = true
		}
	}

	if failed {
		return errIntegrityFailed
	}
	return nil
}

var errIntegrityFailed = errors.New("integrity checks reported problems")
