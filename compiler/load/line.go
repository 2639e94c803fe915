package load

import "strings"

// tabWidth is the indentation contributed by one literal tab. Tabs are
// expanded to a fixed width, not to tab stops, so mixed tabs and spaces
// stay deterministic.
const tabWidth = 4

// line is one normalized input line: its indentation width and the
// dot-separated path segments it declares.
type line struct {
	width    int
	segments []string
}

// normalize measures the leading whitespace of a raw input line and
// splits the remainder on dots. It reports false for blank lines and for
// lines that yield no segments, which callers skip entirely.
func normalize(raw string) (line, bool) {
	var width, i int
scan:
	for ; i < len(raw); i++ {
		switch raw[i] {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			break scan
		}
	}
	content := strings.TrimSpace(raw[i:])
	if content == "" {
		return line{}, false
	}
	var segments []string
	for _, seg := range strings.Split(content, ".") {
		// Stray delimiters such as a trailing dot produce empty segments.
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return line{}, false
	}
	return line{width: width, segments: segments}, true
}
