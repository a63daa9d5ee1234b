package ingestion

import (
	"regexp"
	"strings"
)

var (
	runsOfSpace = regexp.MustCompile(`[ \t]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// bulletPrefixes are the list markers kept verbatim at the start of a line.
var bulletPrefixes = []string{"- ", "* ", "• ", "· "}

// CleanText normalizes free text such as a job description: CRLF and CR become LF,
// runs of spaces collapse, trailing whitespace is dropped and at most one blank line
// separates paragraphs. Markdown headings and bullet indentation survive.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := ""
	if n := len(line) - len(trimmed); n > 0 {
		indent = strings.Repeat(" ", n)
	}
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + runsOfSpace.ReplaceAllString(trimmed, " ")
}

func isBulletLine(trimmed string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
