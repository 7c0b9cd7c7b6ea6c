package cli

import (
	"context"

	"github.com/Makepad-fr/qotd/internal/share"
	"github.com/Makepad-fr/qotd/internal/state"
	"github.com/Makepad-fr/qotd/internal/tui"
	"github.com/Makepad-fr/qotd/internal/ui"
)

func runTUI(ctx context.Context, a *App) error {
	// Printing to stdout would garble the screen, so the TUI always copies.
	s, err := a.sharer(share.TargetClipboard)
	if err != nil {
		return err
	}
	st := state.New(a.Store)
	a.Logger.Debug("tui start", "id", st.Current().ID)
	return tui.Run(ctx, st, tui.Options{
		Theme:       ui.Current(),
		Sharer:      s,
		Logger:      a.Logger,
		Now:         a.opt.Now,
		CatalogSize: a.Store.Len(),
		AltScreen:   a.Config.UI.AltScreen,
	})
}
