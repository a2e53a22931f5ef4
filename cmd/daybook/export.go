package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/export"
	"github.com/sandevgo/daybook/internal/service/memory"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportSort   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:          "export",
	Short:        "Write all answers as Markdown, HTML or plain text",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		order, err := core.ParseSortOrder(exportSort)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		db, store, err := initStorage(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		memLog := memory.NewLog(store)
		if err := memLog.Load(ctx); err != nil {
			if !errors.Is(err, core.ErrCorruptData) {
				return err
			}
			log.FromCtx(ctx).Warn().Err(err).Msg("stored memories are unreadable, exporting nothing")
		}

		out, err := export.Render(memLog.Records(), format, order, time.Local)
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = os.Stdout.Write(out)
			return err
		}
		if err := os.WriteFile(exportOutput, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		log.FromCtx(ctx).Info().Str("path", exportOutput).Int("memories", memLog.Len()).Msg("export written")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatMarkdown), "md, html or text")
	exportCmd.Flags().StringVar(&exportSort, "sort", string(core.SortAsc), "asc or desc")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write, stdout when empty")
	rootCmd.AddCommand(exportCmd)
}
