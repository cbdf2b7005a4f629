package utils

import "strings"

// SplitLines breaks a multi-line model field (budget, transport, tip) into its
// presentation lines, preserving order and dropping blanks. The budget contract
// is one line per expense category plus a trailing "총 1박 기준" total line, and
// consumers render exactly these lines.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
