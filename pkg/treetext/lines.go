package treetext

import "strings"

// SplitLines splits decoded listing content into lines.
// It handles both LF (\n) and CRLF (\r\n) line endings and strips
// trailing whitespace from each line; a trailing newline at the end of
// the content does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	var lines []string
	start := 0

	for idx := 0; idx < len(content); idx++ {
		if content[idx] == '\n' {
			lines = append(lines, trimLine(content[start:idx]))
			start = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if start < len(content) {
		lines = append(lines, trimLine(content[start:]))
	}

	return lines
}

func trimLine(line string) string {
	return strings.TrimRight(line, " \t\r")
}
