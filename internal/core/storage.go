package core

import "context"

// Keys of the persisted key/value namespace.
const (
	KeyQuestionNumber   = "currentQuestionNumber"
	KeyMemories         = "memories"
	KeyLastQuestionDate = "lastQuestionDate"
	KeyTodayQuestion    = "todayQuestion"
)

// KVStore is the persistence capability shared by the scheduler and the memory log.
// Get reports ok=false for a missing key. Writers in different processes are not
// coordinated: the last write of a key wins.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
