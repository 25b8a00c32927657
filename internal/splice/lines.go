package splice

import "strings"

// SplitLines splits source into lines, keeping each line's trailing newline,
// so that JoinLines(SplitLines(b)) reproduces b byte for byte.
func SplitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(source), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, ""))
}
