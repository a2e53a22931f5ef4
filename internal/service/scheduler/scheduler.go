package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/pkg/log"
)

const dayKeyLayout = "2006-01-02"

type bank interface {
	Load(ctx context.Context) ([]string, error)
}

type answeredSet interface {
	Questions() map[string]struct{}
}

// Scheduler fixes one question per local calendar day.
type Scheduler struct {
	store core.KVStore
	bank  bank
	log   answeredSet

	mu        sync.Mutex
	rnd       *rand.Rand
	questions []string
	loaded    bool
}

func New(store core.KVStore, bank bank, log answeredSet) *Scheduler {
	return &Scheduler{
		store: store,
		bank:  bank,
		log:   log,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the random source, for deterministic picks.
func (s *Scheduler) WithRand(rnd *rand.Rand) *Scheduler {
	s.rnd = rnd
	return s
}

// TodayKey is now's local calendar day as YYYY-MM-DD.
func TodayKey(now time.Time) string {
	return now.Format(dayKeyLayout)
}

// LoadBank reads the question bank once. Later calls reuse the first result.
func (s *Scheduler) LoadBank(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadBankLocked(ctx)
}

func (s *Scheduler) loadBankLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	questions, err := s.bank.Load(ctx)
	if err != nil {
		return err
	}
	s.questions = questions
	s.loaded = true
	return nil
}

// EnsureTodayQuestion returns the question stored for now's day, choosing and
// persisting a new one when the stored day differs or no question is stored.
// The returned question is trimmed.
func (s *Scheduler) EnsureTodayQuestion(ctx context.Context, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadBankLocked(ctx); err != nil {
		return "", err
	}

	todayKey := TodayKey(now)

	lastDate, _, err := s.store.Get(ctx, core.KeyLastQuestionDate)
	if err != nil {
		return "", fmt.Errorf("failed to read last question date: %w", err)
	}
	stored, ok, err := s.store.Get(ctx, core.KeyTodayQuestion)
	if err != nil {
		return "", fmt.Errorf("failed to read today's question: %w", err)
	}
	if lastDate == todayKey && ok && stored != "" {
		return strings.TrimSpace(stored), nil
	}

	question := s.pick()

	if err := s.store.Set(ctx, core.KeyTodayQuestion, question); err != nil {
		return "", fmt.Errorf("failed to save today's question: %w", err)
	}
	if err := s.store.Set(ctx, core.KeyLastQuestionDate, todayKey); err != nil {
		return "", fmt.Errorf("failed to save question date: %w", err)
	}

	log.FromCtx(ctx).Info().Str("day", todayKey).Msg("picked today's question")
	return strings.TrimSpace(question), nil
}

// Remaining lists bank questions with no answer yet, in bank order. Both
// sides are compared trimmed, the way answered questions are stored.
func (s *Scheduler) Remaining() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remainingLocked()
}

func (s *Scheduler) remainingLocked() []string {
	answered := make(map[string]struct{})
	for q := range s.log.Questions() {
		answered[strings.TrimSpace(q)] = struct{}{}
	}

	var remaining []string
	for _, q := range s.questions {
		if _, done := answered[strings.TrimSpace(q)]; !done {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

func (s *Scheduler) pick() string {
	remaining := s.remainingLocked()
	if len(remaining) == 0 {
		return core.AllAnsweredMessage
	}
	return remaining[s.rnd.Intn(len(remaining))]
}
