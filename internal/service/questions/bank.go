package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/sandevgo/daybook/configs"
	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/pkg/log"
)

// Bank reads the ordered question list from a JSON array of strings.
type Bank struct {
	fsys fs.FS
	name string
}

// NewBank reads questions from name inside fsys.
func NewBank(fsys fs.FS, name string) *Bank {
	return &Bank{fsys: fsys, name: name}
}

// NewEmbeddedBank uses the question list bundled into the binary.
func NewEmbeddedBank() *Bank {
	return NewBank(configs.FS, configs.QuestionsFile)
}

// NewFileBank reads questions from a file on disk.
func NewFileBank(path string) *Bank {
	return &Bank{fsys: osFS{}, name: path}
}

// Load returns the questions in file order. Duplicates are kept. Any read or
// decode failure wraps core.ErrLoad.
func (b *Bank) Load(ctx context.Context) ([]string, error) {
	data, err := fs.ReadFile(b.fsys, b.name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", core.ErrLoad, b.name, err)
	}

	var questions []string
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", core.ErrLoad, b.name, err)
	}
	if questions == nil {
		return nil, fmt.Errorf("%w: %s is not a JSON array", core.ErrLoad, b.name)
	}

	log.FromCtx(ctx).Debug().Str("source", b.name).Int("count", len(questions)).Msg("loaded question bank")
	return questions, nil
}

// osFS opens paths as given, so absolute and relative paths both work.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
