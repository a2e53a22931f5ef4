package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/pkg/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Log is the append-only list of answered questions. The whole list is
// rewritten to the store on every append.
type Log struct {
	mu      sync.RWMutex
	store   core.KVStore
	records []core.MemoryRecord
}

func NewLog(store core.KVStore) *Log {
	return &Log{store: store}
}

// Load replaces the in-memory records with the persisted ones. A payload that
// does not decode, or holds an invalid record, leaves the log empty and returns
// an error wrapping core.ErrCorruptData; the log is still usable afterwards.
func (l *Log) Load(ctx context.Context) error {
	raw, ok, err := l.store.Get(ctx, core.KeyMemories)
	if err != nil {
		return fmt.Errorf("failed to load memories: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil

	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	records, err := decode(raw)
	if err != nil {
		return err
	}
	l.records = records

	log.FromCtx(ctx).Debug().Int("count", len(records)).Msg("loaded memories")
	return nil
}

func decode(raw string) ([]core.MemoryRecord, error) {
	var records []core.MemoryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCorruptData, err)
	}
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", core.ErrCorruptData, i, err)
		}
	}
	return records, nil
}

// Append records an answer under the caller's running number and persists the
// list followed by the next counter value. The answer is trimmed; an empty one
// is rejected with core.ErrValidation and nothing is written.
func (l *Log) Append(ctx context.Context, number int, question, answer string, at time.Time) (core.MemoryRecord, error) {
	rec := core.MemoryRecord{
		Number:   number,
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
		Date:     at,
	}
	if err := validate.Struct(rec); err != nil {
		return core.MemoryRecord{}, fmt.Errorf("%w: %v", core.ErrValidation, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := append(append(make([]core.MemoryRecord, 0, len(l.records)+1), l.records...), rec)
	data, err := json.Marshal(next)
	if err != nil {
		return core.MemoryRecord{}, fmt.Errorf("failed to marshal memories: %w", err)
	}

	if err := l.store.Set(ctx, core.KeyMemories, string(data)); err != nil {
		return core.MemoryRecord{}, fmt.Errorf("failed to save memories: %w", err)
	}
	l.records = next

	if err := l.store.Set(ctx, core.KeyQuestionNumber, strconv.Itoa(number+1)); err != nil {
		return rec, fmt.Errorf("failed to save question number: %w", err)
	}

	log.FromCtx(ctx).Info().Int("number", number).Msg("memory saved")
	return rec, nil
}

// IsAnswered reports whether any record holds question, comparing trimmed text.
func (l *Log) IsAnswered(question string) bool {
	q := strings.TrimSpace(question)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, r := range l.records {
		if strings.TrimSpace(r.Question) == q {
			return true
		}
	}
	return false
}

// Questions returns the set of answered questions as stored.
func (l *Log) Questions() map[string]struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()

	set := make(map[string]struct{}, len(l.records))
	for _, r := range l.records {
		set[r.Question] = struct{}{}
	}
	return set
}

// Records returns a copy of the log in append order.
func (l *Log) Records() []core.MemoryRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]core.MemoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Reset wipes the persisted log and the question counter.
func (l *Log) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range []string{core.KeyMemories, core.KeyQuestionNumber} {
		if err := l.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	l.records = nil
	return nil
}

// LoadCounter returns the next question number. Missing, unparsable or
// non-positive values fall back to 1.
func LoadCounter(ctx context.Context, store core.KVStore) (int, error) {
	raw, ok, err := store.Get(ctx, core.KeyQuestionNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to load question number: %w", err)
	}
	if !ok {
		return 1, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		log.FromCtx(ctx).Warn().Str("value", raw).Msg("invalid question number, starting from 1")
		return 1, nil
	}
	return n, nil
}
