package canvas

import "strings"

// WrapLine splits s into lines no longer than width, breaking only at
// spaces. Each break consumes the space it happens at, so joining the
// result with single spaces gives back s. A trailing segment that is empty
// or only whitespace is dropped.
//
// A token longer than width is never cut: the line it starts on overflows
// until the next space.
func WrapLine(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	lines := make([]string, 0, len(s)/width+1)
	for len(s) > width {
		i := breakIndex(s, width)
		if i < 0 {
			break
		}
		lines = append(lines, s[:i])
		s = s[i+1:]
	}

	if len(lines) == 0 || strings.TrimSpace(s) != "" {
		lines = append(lines, s)
	}
	return lines
}

// breakIndex returns the index of the space to break s at, or -1 if s
// contains no space after its first byte. It walks left from s[width];
// if that finds nothing it allows overflow up to the next space.
// The caller guarantees len(s) > width.
func breakIndex(s string, width int) int {
	for i := width; i > 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	if j := strings.IndexByte(s[width+1:], ' '); j >= 0 {
		return width + 1 + j
	}
	return -1
}
