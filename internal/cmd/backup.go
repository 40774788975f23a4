package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"pos/internal/errors"
	"pos/internal/usecase"
	"pos/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	backupOut     string
	backupArchive bool

	restoreIn      string
	restoreArchive string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export catalog, orders and settings as a backup document",
	Long: `Export writes the backup document to stdout, or to --out.
With --archive the document is also stored in the configured backup bucket.`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "List the backups stored in the backup bucket, newest first",
	Args:  cobra.NoArgs,
	RunE:  runArchives,
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace catalog, orders and settings from a backup",
	Long: `Restore reads a backup document from --in ("-" for stdin), or
restores an archived backup by name with --archive.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "", "write the backup to this file instead of stdout")
	backupCmd.Flags().BoolVar(&backupArchive, "archive", false, "also store the backup in the backup bucket")

	restoreCmd.Flags().StringVarP(&restoreIn, "in", "i", "", "backup file to restore, - for stdin")
	restoreCmd.Flags().StringVar(&restoreArchive, "archive", "", "name of an archived backup to restore")
	restoreCmd.MarkFlagsOneRequired("in", "archive")
	restoreCmd.MarkFlagsMutuallyExclusive("in", "archive")

	rootCmd.AddCommand(backupCmd, archivesCmd, restoreCmd)
}

// withBackupUsecase starts the core application, runs fn and stops it again.
func withBackupUsecase(ctx context.Context, fn func(usecase.BackupUsecase) error) error {
	var backupUC usecase.BackupUsecase
	app := fx.New(cliOptions(), fx.Populate(&backupUC))
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := fn(backupUC)
	stopErr := app.Stop(ctx)
	if runErr != nil {
		return runErr
	}

	return stopErr
}

func runBackup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withBackupUsecase(ctx, func(backupUC usecase.BackupUsecase) error {
		data, err := json.MarshalIndent(backupUC.Export(ctx), "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode backup")
		}

		if backupOut == "" {
			if _, err := cmd.OutOrStdout().Write(append(data, '\n')); err != nil {
				return errors.WithStack(err)
			}
		} else {
			if err := os.WriteFile(backupOut, data, 0o600); err != nil {
				return errors.Wrapf(err, "write %s", backupOut)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Backup written to %s (%s, sha256 %s)\n",
				backupOut, util.FormatBytes(int64(len(data))), util.Checksum(data))
		}

		if backupArchive {
			archive, err := backupUC.Archive(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Backup archived as %s\n", archive.Name)
		}

		return nil
	})
}

func runArchives(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withBackupUsecase(ctx, func(backupUC usecase.BackupUsecase) error {
		archives, err := backupUC.ListArchives(ctx)
		if err != nil {
			return err
		}
		if len(archives) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No archived backups")

			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSIZE\tAGE")
		for _, a := range archives {
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, util.FormatBytes(a.Size), util.FormatAge(time.Since(a.ModifiedAt)))
		}

		return errors.WithStack(w.Flush())
	})
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var data []byte
	if restoreIn != "" {
		var err error
		if data, err = readInput(cmd.InOrStdin(), restoreIn); err != nil {
			return err
		}
	}

	return withBackupUsecase(ctx, func(backupUC usecase.BackupUsecase) error {
		var (
			result *usecase.RestoreResult
			err    error
		)
		if restoreArchive != "" {
			result, err = backupUC.RestoreArchive(ctx, restoreArchive)
		} else {
			result, err = backupUC.Restore(ctx, data)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d products and %d orders (settings restored: %t)\n",
			result.Products, result.Orders, result.SettingsRestored)

		return nil
	})
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)

		return data, errors.WithStack(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return data, nil
}
