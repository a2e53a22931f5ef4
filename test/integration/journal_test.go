//go:build integration

package integration

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/export"
	"github.com/sandevgo/daybook/internal/service/journal"
	"github.com/sandevgo/daybook/internal/service/memory"
	"github.com/sandevgo/daybook/internal/service/questions"
	"github.com/sandevgo/daybook/internal/service/scheduler"
	"github.com/sandevgo/daybook/internal/storage/sqlite"
	"github.com/sandevgo/daybook/pkg/log"
	"github.com/sandevgo/daybook/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session struct {
	ctrl  *journal.Controller
	view  *test.Renderer
	close func()
}

// openSession wires a controller the way `daybook start` does, against the
// database at dbPath.
func openSession(ctx context.Context, t *testing.T, dbPath, bankPath string, clock *test.Clock) session {
	t.Helper()

	db, err := sqlite.NewDB(ctx, dbPath)
	require.NoError(t, err)

	store := sqlite.NewKVStore(db)
	memLog := memory.NewLog(store)
	sched := scheduler.New(store, questions.NewFileBank(bankPath), memLog).WithRand(rand.New(rand.NewSource(42)))
	view := &test.Renderer{}

	ctrl := journal.NewController(journal.Config{
		PageSize:      2,
		ToastDuration: 20 * time.Millisecond,
		Location:      time.Local,
	}, sched, memLog, store, view).WithClock(clock.Now)

	require.NoError(t, ctrl.Init(ctx))
	return session{ctrl: ctrl, view: view, close: func() { db.Close() }}
}

func TestJournal_ThreeDays(t *testing.T) {
	ctx, flush := log.NewContextWithLogger(context.Background(), os.Stderr, false)
	defer flush()

	bank := test.GetQuestionsFixturePath(t)
	dbPath := filepath.Join(t.TempDir(), "daybook.db")
	clock := test.NewClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local))

	asked := map[string]bool{}
	for day := 0; day < 3; day++ {
		clock.Set(time.Date(2024, 6, 1+day, 9, 0, 0, 0, time.Local))

		s := openSession(ctx, t, dbPath, bank, clock)
		_, question, answered := s.ctrl.Today()
		require.False(t, answered, "day %d", day)
		require.False(t, asked[question], "question %q asked twice", question)
		asked[question] = true

		ok, err := s.ctrl.SubmitAnswer(ctx, "answer for day")
		require.NoError(t, err)
		require.True(t, ok)
		s.close()

		// reopening on the same day keeps the answered state
		s = openSession(ctx, t, dbPath, bank, clock)
		_, again, answered := s.ctrl.Today()
		assert.Equal(t, question, again)
		assert.True(t, answered)
		s.close()
	}

	// every fixture question is used up
	clock.Set(time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local))
	s := openSession(ctx, t, dbPath, bank, clock)
	defer s.close()

	number, question, answered := s.ctrl.Today()
	assert.Equal(t, core.AllAnsweredMessage, question)
	assert.True(t, answered)
	assert.Equal(t, 4, number)

	frame := s.view.Snapshot()
	assert.Equal(t, 2, frame.Pages.Count)
	assert.Equal(t, []int{1, 2, 3}, s.view.MarkedDays())
	require.Len(t, frame.Items, 2)
	assert.Equal(t, 3, frame.Items[0].Number)
}

func TestJournal_ExportAfterAnswers(t *testing.T) {
	ctx := context.Background()
	bank := test.GetQuestionsFixturePath(t)
	dbPath := filepath.Join(t.TempDir(), "daybook.db")
	clock := test.NewClock(time.Date(2024, 6, 1, 21, 0, 0, 0, time.Local))

	s := openSession(ctx, t, dbPath, bank, clock)
	_, err := s.ctrl.SubmitAnswer(ctx, "**bold** evening")
	require.NoError(t, err)
	s.close()

	db, err := sqlite.NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	memLog := memory.NewLog(sqlite.NewKVStore(db))
	require.NoError(t, memLog.Load(ctx))

	out, err := export.Render(memLog.Records(), export.FormatHTML, core.SortDesc, time.Local)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>bold</strong> evening")
	assert.Contains(t, string(out), "2024.06.01")
}

func TestConfig_FromEnvFile(t *testing.T) {
	runtime := t.TempDir()
	envPath := filepath.Join(runtime, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DAYBOOK_PAGE_SIZE=7\nDAYBOOK_VIEW=cli\n"), 0600))

	t.Setenv("DAYBOOK_RUNTIME_PATH", runtime)
	t.Setenv("DAYBOOK_PAGE_SIZE", "")
	t.Setenv("DAYBOOK_VIEW", "")
	os.Unsetenv("DAYBOOK_PAGE_SIZE")
	os.Unsetenv("DAYBOOK_VIEW")
	require.NoError(t, godotenv.Load(envPath))

	cfg, err := config.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.PageSize)
	assert.Equal(t, config.ViewCLI, cfg.View)
	assert.Equal(t, runtime, cfg.GetRuntimePath())
}
