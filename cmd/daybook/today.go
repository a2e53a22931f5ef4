package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/memory"
	"github.com/sandevgo/daybook/internal/service/scheduler"
	"github.com/sandevgo/daybook/internal/service/ui"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:          "today",
	Short:        "Print today's question",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

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
		if err := memLog.Load(ctx); err != nil && !errors.Is(err, core.ErrCorruptData) {
			return err
		}
		number, err := memory.LoadCounter(ctx, store)
		if err != nil {
			return err
		}

		question, err := scheduler.New(store, initBank(cfg), memLog).EnsureTodayQuestion(ctx, time.Now())
		if err != nil {
			return err
		}
		log.FromCtx(ctx).Debug().Str("question", question).Msg("today's question")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.QuestionHeading(number))
		fmt.Fprintln(out, question)
		if question == core.AllAnsweredMessage || memLog.IsAnswered(question) {
			fmt.Fprintln(out, ui.AnsweredLabel)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
