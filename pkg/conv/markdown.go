package conv

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	// Answers are user text, so exported HTML only keeps user-content markup.
	ugcPolicy = bluemonday.UGCPolicy()
)

// MarkdownToHTML renders md as an HTML fragment and strips anything outside
// the user generated content policy, such as scripts and event handlers.
func MarkdownToHTML(md []byte) string {
	// 1. Render HTML
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	// 2. Sanitize tags
	sanitized := ugcPolicy.SanitizeBytes(unsafeHTML)

	return string(sanitized)
}

// HTMLToText flattens an HTML fragment into readable plain text.
func HTMLToText(fragment string) (string, error) {
	text, err := html2text.FromString(fragment, html2text.Options{OmitLinks: true})
	if err != nil {
		return "", fmt.Errorf("failed to convert html to text: %w", err)
	}
	return text, nil
}

// MarkdownToText renders md through HTML into plain text.
func MarkdownToText(md []byte) (string, error) {
	return HTMLToText(MarkdownToHTML(md))
}
