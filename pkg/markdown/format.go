package markdown

import "strings"

// PageBlock is one page's contribution to the output file.
type PageBlock struct {
	Title       string
	URL         string
	SpaceName   string
	Author      string
	LastUpdated string
	Body        string
}

// Render assembles the block appended to the output file: a five-line
// preamble (title as H1, URL, space, author, last updated), a blank line,
// the converted body, and a trailing blank line. Downstream tooling depends
// on this exact layout, so the lines are built as a list and joined once.
func (b PageBlock) Render() string {
	lines := []string{
		"# " + b.Title,
		"URL: " + b.URL,
		"スペース: " + b.SpaceName,
		"作成者: " + b.Author,
		"最終更新日: " + b.LastUpdated,
		"",
		b.Body,
		"",
	}
	return strings.Join(lines, "\n") + "\n"
}
