// Package markdown converts Confluence storage-format HTML to Markdown and
// assembles the per-page blocks written to the output file.
package markdown

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Convert turns a storage-format HTML fragment into Markdown with ATX
// headings. Document structure (headings, lists, links, emphasis, tables)
// is preserved by the conversion library.
func Convert(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}
	return markdown, nil
}
