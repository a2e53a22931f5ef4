package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/storage/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*60*60)

func TestLog_AppendAndReload(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	l := NewLog(store)
	require.NoError(t, l.Load(ctx))

	at := time.Date(2024, 6, 1, 21, 30, 15, 123456789, seoul)
	rec, err := l.Append(ctx, 1, "  Q1 ", "  my answer\n", at)
	require.NoError(t, err)
	assert.Equal(t, core.MemoryRecord{Number: 1, Question: "Q1", Answer: "my answer", Date: at}, rec)

	_, err = l.Append(ctx, 2, "Q2", "second", at.Add(24*time.Hour))
	require.NoError(t, err)

	reloaded := NewLog(store)
	require.NoError(t, reloaded.Load(ctx))

	got := reloaded.Records()
	require.Len(t, got, 2)
	for i, want := range l.Records() {
		assert.Equal(t, want.Number, got[i].Number)
		assert.Equal(t, want.Question, got[i].Question)
		assert.Equal(t, want.Answer, got[i].Answer)
		assert.True(t, want.Date.Equal(got[i].Date), "date %v != %v", want.Date, got[i].Date)
	}

	n, err := LoadCounter(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLog_AppendRejectsBlankAnswer(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	l := NewLog(store)

	for _, answer := range []string{"", "   ", "\n\t"} {
		_, err := l.Append(ctx, 1, "Q1", answer, time.Now())
		assert.ErrorIs(t, err, core.ErrValidation)
	}
	assert.Zero(t, l.Len())
	assert.Zero(t, store.Writes(), "rejected answers must not touch the store")
}

func TestLog_AppendRejectsZeroNumber(t *testing.T) {
	l := NewLog(memstore.New())
	_, err := l.Append(context.Background(), 0, "Q1", "answer", time.Now())
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestLog_AppendStoreFailureKeepsMemoryUnchanged(t *testing.T) {
	store := memstore.New()
	store.FailWrites = errors.New("disk full")
	l := NewLog(store)

	_, err := l.Append(context.Background(), 1, "Q1", "answer", time.Now())
	require.Error(t, err)
	assert.Zero(t, l.Len())
}

func TestLog_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not_json", payload: "{{{"},
		{name: "object_instead_of_array", payload: `{"number": 1}`},
		{name: "missing_answer", payload: `[{"number": 1, "question": "Q1", "date": "2024-06-01T10:00:00+09:00"}]`},
		{name: "bad_date", payload: `[{"number": 1, "question": "Q1", "answer": "a", "date": "yesterday"}]`},
		{name: "zero_number", payload: `[{"number": 0, "question": "Q1", "answer": "a", "date": "2024-06-01T10:00:00+09:00"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memstore.NewWith(map[string]string{core.KeyMemories: tt.payload})
			l := NewLog(store)

			err := l.Load(ctx)
			assert.ErrorIs(t, err, core.ErrCorruptData)
			assert.Zero(t, l.Len())

			// the log stays usable and overwrites the corrupt payload on the next append
			_, err = l.Append(ctx, 1, "Q1", "fresh", time.Now())
			require.NoError(t, err)

			reloaded := NewLog(store)
			require.NoError(t, reloaded.Load(ctx))
			assert.Equal(t, 1, reloaded.Len())
		})
	}
}

func TestLog_LoadEmptyAndMissing(t *testing.T) {
	for name, values := range map[string]map[string]string{
		"missing":    {},
		"blank":      {core.KeyMemories: "  "},
		"json_null":  {core.KeyMemories: "null"},
		"empty_list": {core.KeyMemories: "[]"},
	} {
		t.Run(name, func(t *testing.T) {
			l := NewLog(memstore.NewWith(values))
			require.NoError(t, l.Load(context.Background()))
			assert.Zero(t, l.Len())
		})
	}
}

func TestLog_IsAnswered(t *testing.T) {
	ctx := context.Background()
	l := NewLog(memstore.New())
	_, err := l.Append(ctx, 1, "What made you smile?", "coffee", time.Now())
	require.NoError(t, err)

	assert.True(t, l.IsAnswered("What made you smile?"))
	assert.True(t, l.IsAnswered("  What made you smile?\n"))
	assert.False(t, l.IsAnswered("what made you smile?"))
	assert.False(t, l.IsAnswered("Something else"))
}

func TestLog_RecordsIsCopy(t *testing.T) {
	ctx := context.Background()
	l := NewLog(memstore.New())
	_, err := l.Append(ctx, 1, "Q1", "a", time.Now())
	require.NoError(t, err)

	recs := l.Records()
	recs[0].Answer = "mutated"
	assert.Equal(t, "a", l.Records()[0].Answer)
}

func TestLog_Reset(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	l := NewLog(store)
	_, err := l.Append(ctx, 7, "Q1", "a", time.Now())
	require.NoError(t, err)

	require.NoError(t, l.Reset(ctx))
	assert.Zero(t, l.Len())

	_, ok, _ := store.Get(ctx, core.KeyMemories)
	assert.False(t, ok)
	n, err := LoadCounter(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadCounter(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{name: "missing", value: nil, want: 1},
		{name: "valid", value: ptr("12"), want: 12},
		{name: "padded", value: ptr(" 4 "), want: 4},
		{name: "garbage", value: ptr("abc"), want: 1},
		{name: "zero", value: ptr("0"), want: 1},
		{name: "negative", value: ptr("-3"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			if tt.value != nil {
				require.NoError(t, store.Set(context.Background(), core.KeyQuestionNumber, *tt.value))
			}
			n, err := LoadCounter(context.Background(), store)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func ptr(s string) *string { return &s }
