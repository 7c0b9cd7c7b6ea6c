package cli

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/qotd/internal/model"
	"github.com/Makepad-fr/qotd/internal/share"
)

var fixedNow = time.Date(2026, time.October, 19, 14, 0, 0, 0, time.Local)

type harness struct {
	stdout, stderr bytes.Buffer
	shared         []model.Quote
	tuiCalls       int
	tuiErr         error
	injectSharer   bool
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	opt := Options{
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		Now:    func() time.Time { return fixedNow },
		Rand:   rand.New(rand.NewPCG(7, 7)),
		TUI: func(_ context.Context, a *App) error {
			h.tuiCalls++
			require.NotNil(t, a.Store)
			return h.tuiErr
		},
	}
	if h.injectSharer {
		opt.Sharer = share.Func(func(_ context.Context, q model.Quote) error {
			h.shared = append(h.shared, q)
			return nil
		})
	}
	return Run(context.Background(), append([]string{"--theme", "mono"}, args...), opt)
}

func TestToday_Date(t *testing.T) {
	var h harness
	code := h.run(t, "today", "--date", "2024-01-01")
	require.Equal(t, ExitOK, code, h.stderr.String())
	assert.Contains(t, h.stdout.String(), "Don't be afraid to give up the good to go for the great.")
	assert.Contains(t, h.stdout.String(), "Monday, January 01, 2024")
}

func TestToday_UsesClock(t *testing.T) {
	var h harness
	require.Equal(t, ExitOK, h.run(t, "today"))
	assert.Contains(t, h.stdout.String(), "Innovation distinguishes between a leader and a follower.")
	assert.Contains(t, h.stdout.String(), "Monday, October 19, 2026")
}

func TestToday_BadDateIsUsageError(t *testing.T) {
	var h harness
	assert.Equal(t, ExitUsage, h.run(t, "today", "--date", "19/10/2026"))
	assert.Contains(t, h.stderr.String(), "invalid --date")
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{"today", "extra"},
		{"random", "--nope"},
		{"bogus"},
		{"share", "--random", "--date", "2024-01-01"},
		{"--theme", "rainbow", "list"},
	}
	for _, args := range cases {
		var h harness
		assert.Equal(t, ExitUsage, h.run(t, args...), "args %v", args)
	}
}

func TestRandom(t *testing.T) {
	var h harness
	require.Equal(t, ExitOK, h.run(t, "random"))
	assert.Contains(t, h.stdout.String(), "— ")
}

func TestList(t *testing.T) {
	var h harness
	require.Equal(t, ExitOK, h.run(t, "list"))
	out := h.stdout.String()
	assert.Contains(t, out, "Quotes (15)")
	assert.Contains(t, out, " 1.")
	assert.Contains(t, out, "15.")
	assert.Contains(t, out, "Chinese Proverb")
}

func TestShare_Injected(t *testing.T) {
	h := harness{injectSharer: true}
	require.Equal(t, ExitOK, h.run(t, "share"))
	require.Len(t, h.shared, 1)
	assert.Equal(t, 2, h.shared[0].ID)
	assert.Contains(t, h.stdout.String(), "shared quote #2 by Steve Jobs")
}

func TestShare_DateAndRandom(t *testing.T) {
	h := harness{injectSharer: true}
	require.Equal(t, ExitOK, h.run(t, "share", "--date", "1999-12-31"))
	require.Equal(t, ExitOK, h.run(t, "share", "--random"))
	require.Len(t, h.shared, 2)
	assert.Equal(t, 4, h.shared[0].ID)
	assert.Positive(t, h.shared[1].ID)
}

func TestShare_Stdout(t *testing.T) {
	var h harness
	require.Equal(t, ExitOK, h.run(t, "share", "--stdout"))
	assert.Equal(t,
		"Innovation distinguishes between a leader and a follower.\n\n- Steve Jobs\n",
		h.stdout.String())
}

func TestShare_StdoutFromConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "qotd.yaml")
	require.NoError(t, os.WriteFile(p, []byte("share:\n  target: stdout\n"), 0o644))

	var h harness
	require.Equal(t, ExitOK, h.run(t, "--config", p, "share", "--date", "2024-01-01"))
	assert.Contains(t, h.stdout.String(), "- John D. Rockefeller")
}

func TestRoot_LaunchesTUI(t *testing.T) {
	var h harness
	assert.Equal(t, ExitOK, h.run(t))
	assert.Equal(t, 1, h.tuiCalls)
}

func TestRoot_TUIErrorIsRuntimeFailure(t *testing.T) {
	h := harness{tuiErr: errors.New("no tty")}
	assert.Equal(t, ExitError, h.run(t))
	assert.Contains(t, h.stderr.String(), "no tty")
}

func TestDebugLogGoesToStderr(t *testing.T) {
	var h harness
	require.Equal(t, ExitOK, h.run(t, "--log-level", "debug", "today"))
	assert.Contains(t, h.stderr.String(), "today")
	assert.NotContains(t, h.stdout.String(), "config loaded")
}
