package installer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/daybook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) config.AppConfig {
	return config.AppConfig{
		RuntimePath:   t.TempDir(),
		View:          config.ViewTUI,
		PageSize:      5,
		ToastDuration: 2 * time.Second,
		ClockInterval: time.Second,
		RolloverSpec:  "0 0 * * *",
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// drive feeds msgs to the wizard and follows the commands that only signal
// the next step.
func drive(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(model)
		for cmd != nil {
			out := cmd()
			if _, ok := out.(nextMsg); !ok {
				break
			}
			next, cmd = m.Update(out)
			m = next.(model)
		}
	}
	return m
}

func TestWizard_FullRun(t *testing.T) {
	var initialized *config.AppConfig
	hooks := Hooks{
		CheckQuestions: func(path string) error { return nil },
		InitFiles: func(cfg *config.AppConfig) error {
			initialized = cfg
			return nil
		},
	}
	cfg := defaults(t)
	qpath := filepath.Join(cfg.RuntimePath, "q.json")

	m := initialModel(cfg, hooks)
	m = drive(t, m,
		runes("j"), enter, // console view
		runes("8"), enter, // page size
		runes(qpath), enter, // question file
	)

	require.Equal(t, len(m.steps), m.currentStep)
	require.NotNil(t, initialized)
	assert.Equal(t, config.ViewCLI, m.state.Config.View)
	assert.Equal(t, 8, m.state.Config.PageSize)
	assert.Equal(t, qpath, m.state.Config.QuestionsPath)

	vars, err := godotenv.Read(filepath.Join(cfg.RuntimePath, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "cli", vars["DAYBOOK_VIEW"])
	assert.Equal(t, "8", vars["DAYBOOK_PAGE_SIZE"])
	assert.Equal(t, qpath, vars["DAYBOOK_QUESTIONS_PATH"])
	assert.Equal(t, "0 0 * * *", vars["DAYBOOK_ROLLOVER_SPEC"])
}

func TestWizard_DefaultsOnEmptyInput(t *testing.T) {
	cfg := defaults(t)
	m := drive(t, initialModel(cfg, Hooks{}), enter, enter, enter)

	assert.Equal(t, config.ViewTUI, m.state.Config.View)
	assert.Equal(t, 5, m.state.Config.PageSize)
	assert.Empty(t, m.state.Config.QuestionsPath)
}

func TestPageSizeStep_RejectsInvalid(t *testing.T) {
	state := NewInstallState(defaults(t))
	step := NewPageSizeStep()

	for _, r := range "0" {
		step, _ = step.Update(runes(string(r)), state, 0, 0)
	}
	next, _ := step.Update(enter, state, 0, 0)
	require.NotNil(t, next)
	assert.Contains(t, next.View(state), "positive number")
	assert.Equal(t, 5, state.Config.PageSize)
}

func TestQuestionsStep_CheckFails(t *testing.T) {
	state := NewInstallState(defaults(t))
	step := NewQuestionsStep(func(path string) error { return errors.New("question bank unavailable") })

	step, _ = step.Update(runes("missing.json"), state, 0, 0)
	next, _ := step.Update(enter, state, 0, 0)
	require.NotNil(t, next)
	assert.Contains(t, next.View(state), "question bank unavailable")
	assert.Empty(t, state.Config.QuestionsPath)
}

func TestWizard_CtrlCQuits(t *testing.T) {
	m := drive(t, initialModel(defaults(t), Hooks{}), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestSaveEnv_RefusesOverwrite(t *testing.T) {
	cfg := defaults(t)

	require.NoError(t, SaveEnv(&cfg, false))
	err := SaveEnv(&cfg, false)
	assert.True(t, errors.Is(err, ErrEnvExists))

	cfg.PageSize = 9
	require.NoError(t, SaveEnv(&cfg, true))
	data, err := os.ReadFile(cfg.GetEnvPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "DAYBOOK_PAGE_SIZE=9")
}

func TestFinalize_AbsoluteQuestionsPath(t *testing.T) {
	state := NewInstallState(defaults(t))
	state.Config.QuestionsPath = "questions.json"

	Finalize(state)
	assert.True(t, filepath.IsAbs(state.Config.QuestionsPath))
}
