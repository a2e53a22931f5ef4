// Package export renders the memory log as a standalone document.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sandevgo/daybook/internal/core"
	"github.com/sandevgo/daybook/internal/service/projector"
	"github.com/sandevgo/daybook/pkg/conv"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatText, "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown export format %q (md, html, text)", s)
}

// Markdown lists records in order, one section per memory. Dates are shown
// as calendar days in loc.
func Markdown(records []core.MemoryRecord, order core.SortOrder, loc *time.Location) []byte {
	if loc == nil {
		loc = time.Local
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", core.DaybookName)
	for _, r := range projector.SortedView(records, order) {
		fmt.Fprintf(&b, "## #%d | %s\n\n", r.Number, r.Question)
		fmt.Fprintf(&b, "*%s*\n\n", r.Date.In(loc).Format("2006.01.02"))
		b.WriteString(r.Answer)
		b.WriteString("\n\n")
	}
	return b.Bytes()
}

// Render produces the whole document in format.
func Render(records []core.MemoryRecord, format Format, order core.SortOrder, loc *time.Location) ([]byte, error) {
	md := Markdown(records, order, loc)

	switch format {
	case FormatMarkdown:
		return md, nil
	case FormatHTML:
		var b bytes.Buffer
		b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n</head>\n<body>\n", html.EscapeString(core.DaybookName))
		b.WriteString(conv.MarkdownToHTML(md))
		b.WriteString("</body>\n</html>\n")
		return b.Bytes(), nil
	case FormatText:
		text, err := conv.MarkdownToText(md)
		if err != nil {
			return nil, err
		}
		return []byte(text + "\n"), nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}
