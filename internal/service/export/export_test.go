package export

import (
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoul = time.FixedZone("KST", 9*3600)

var sample = []core.MemoryRecord{
	{Number: 1, Question: "첫 질문", Answer: "first answer", Date: time.Date(2024, 6, 1, 23, 30, 0, 0, seoul)},
	{Number: 2, Question: "Second question", Answer: "<script>x()</script>second", Date: time.Date(2024, 6, 2, 8, 0, 0, 0, seoul)},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "HTML", want: FormatHTML},
		{in: "text", want: FormatText},
		{in: "txt", want: FormatText},
		{in: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown_Order(t *testing.T) {
	desc := string(Markdown(sample, core.SortDesc, seoul))
	asc := string(Markdown(sample, core.SortAsc, seoul))

	assert.Less(t, strings.Index(desc, "#2 |"), strings.Index(desc, "#1 |"))
	assert.Less(t, strings.Index(asc, "#1 |"), strings.Index(asc, "#2 |"))
	assert.Contains(t, asc, "*2024.06.01*")
}

func TestMarkdown_DatesInLocation(t *testing.T) {
	out := string(Markdown(sample[:1], core.SortAsc, time.UTC))
	assert.Contains(t, out, "*2024.06.01*")

	out = string(Markdown(sample[:1], core.SortAsc, time.FixedZone("X", 12*3600)))
	assert.Contains(t, out, "*2024.06.02*")
}

func TestRender(t *testing.T) {
	htmlOut, err := Render(sample, FormatHTML, core.SortAsc, seoul)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(htmlOut), "<!DOCTYPE html>"))
	assert.Contains(t, string(htmlOut), "첫 질문")
	assert.NotContains(t, string(htmlOut), "<script>")

	textOut, err := Render(sample, FormatText, core.SortAsc, seoul)
	require.NoError(t, err)
	assert.Contains(t, string(textOut), "first answer")
	assert.NotContains(t, string(textOut), "<")

	mdOut, err := Render(nil, FormatMarkdown, core.SortAsc, seoul)
	require.NoError(t, err)
	assert.Equal(t, "# daybook\n\n", string(mdOut))

	_, err = Render(sample, Format("pdf"), core.SortAsc, seoul)
	assert.Error(t, err)
}
