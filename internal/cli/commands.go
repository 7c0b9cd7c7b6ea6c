package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/qotd/internal/model"
	"github.com/Makepad-fr/qotd/internal/share"
	"github.com/Makepad-fr/qotd/internal/ui"
)

const cardWidth = 72

func newTodayCommand(a *App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the quote of the day",
		Example: `  qotd today
  qotd today --date 2024-01-01`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := a.opt.Now()
			if date != "" {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				day = d
			}
			q := a.Store.TodayAt(day)
			a.Logger.Debug("today", "date", day.Format(time.DateOnly), "id", q.ID)
			printQuote(cmd, day, q)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "calendar date (YYYY-MM-DD) instead of today")
	return cmd
}

func newRandomCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random quote",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := a.Store.Random()
			a.Logger.Debug("random", "id", q.ID)
			printQuote(cmd, a.opt.Now(), q)
			return nil
		},
	}
}

func newListCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every quote in the catalog",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := ui.Current()
			quotes := a.Store.All()
			lines := make([]string, 0, len(quotes)+2)
			lines = append(lines, t.Title.Render(fmt.Sprintf("Quotes (%d)", len(quotes))), "")
			for _, q := range quotes {
				lines = append(lines, fmt.Sprintf("%s %s %s",
					t.Muted.Render(fmt.Sprintf("%2d.", q.ID)),
					q.Text,
					t.Accent.Render("— "+q.Author)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(t, lines))
			return nil
		},
	}
}

func newShareCommand(a *App) *cobra.Command {
	var (
		date     string
		random   bool
		toStdout bool
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share a quote (copies to the clipboard by default)",
		Example: `  qotd share
  qotd share --random
  qotd share --date 2024-01-01 --stdout`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if random && date != "" {
				return usagef("--random and --date are mutually exclusive")
			}
			var q model.Quote
			switch {
			case random:
				q = a.Store.Random()
			case date != "":
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				q = a.Store.TodayAt(d)
			default:
				q = a.Store.Today()
			}

			target := a.Config.Share.Target
			if toStdout {
				target = share.TargetStdout
			}
			s, err := a.sharer(target)
			if err != nil {
				return err
			}
			if err := s.Share(cmd.Context(), q); err != nil {
				a.Logger.Warn("share failed", "id", q.ID, "target", target, "err", err)
				return fmt.Errorf("share: %w", err)
			}
			a.Logger.Debug("shared", "id", q.ID, "target", target)
			if target != share.TargetStdout {
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("shared quote #%d by %s", q.ID, q.Author))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "share the quote of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&random, "random", false, "share a random quote")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the share text instead of copying it")
	return cmd
}

func printQuote(cmd *cobra.Command, day time.Time, q model.Quote) {
	t := ui.Current()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Muted.Render(ui.LongDate(day)))
	fmt.Fprintln(out, ui.Card(t, q, cardWidth))
}
