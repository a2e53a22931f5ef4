package env

import (
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Path     string        `env:"SAMPLE_PATH" envDefault:"x"`
	Size     int           `env:"SAMPLE_SIZE,required"`
	Wait     time.Duration `env:"SAMPLE_WAIT"`
	Spec     string        `env:"SAMPLE_SPEC"`
	Enabled  bool          `env:"SAMPLE_ENABLED"`
	Skipped  string
	internal string `env:"SAMPLE_INTERNAL"`
}

func TestMarshalEnv(t *testing.T) {
	s := &sample{
		Path:     "/tmp/daybook",
		Size:     5,
		Wait:     2 * time.Second,
		Spec:     "0 0 * * *",
		Skipped:  "ignored",
		internal: "ignored",
	}

	out, err := MarshalEnv(s)
	require.NoError(t, err)

	assert.Equal(t,
		"SAMPLE_PATH=/tmp/daybook\nSAMPLE_SIZE=5\nSAMPLE_WAIT=2s\nSAMPLE_SPEC=\"0 0 * * *\"\n",
		out)

	parsed, err := godotenv.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, "0 0 * * *", parsed["SAMPLE_SPEC"])
	assert.Equal(t, "2s", parsed["SAMPLE_WAIT"])
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_RejectsNonPointer(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)
}
