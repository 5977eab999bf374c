package lxc

import (
	"fmt"
	"strings"
	"unicode"
)

// Info maps lxc-info attribute names to their values.
type Info map[string]string

// State returns the reported container state. Legacy lxc-info prints
// "state:", newer releases print "State:", so the key match ignores case.
func (i Info) State() string {
	if s, ok := i["state"]; ok {
		return s
	}
	for k, v := range i {
		if strings.EqualFold(k, "state") {
			return v
		}
	}
	return ""
}

// Process maps lxc-ps column headers to one row's field values.
type Process map[string]string

// ParseInfo parses "key: value" lines. Each line is split on its first
// colon; the value is trimmed, the key is kept verbatim. Blank lines are
// skipped and any other line without a colon is an error.
func ParseInfo(text string) (Info, error) {
	info := Info{}
	for i, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: info line %d has no colon: %q", ErrMalformedOutput, i+1, line)
		}
		info[key] = strings.TrimSpace(value)
	}
	return info, nil
}

// ParseProcesses parses tabular lxc-ps output. The first line supplies the
// column headers; each line is split into at most len(headers) fields so
// the last column keeps its embedded whitespace. When skipHeader is false
// the header line is also emitted as the first record.
func ParseProcesses(text string, skipHeader bool) ([]Process, error) {
	lines := splitLines(text)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("%w: process list has no header line", ErrMalformedOutput)
	}

	headers := strings.Fields(lines[0])
	rows := lines
	if skipHeader {
		rows = lines[1:]
	}

	records := make([]Process, 0, len(rows))
	for _, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFieldsN(line, len(headers))
		rec := make(Process, len(headers))
		for i := 0; i < len(headers) && i < len(fields); i++ {
			rec[headers[i]] = fields[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

// splitFieldsN splits s around runs of whitespace into at most n fields.
// The final field holds the unsplit remainder of the line.
func splitFieldsN(s string, n int) []string {
	var parts []string
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	for s != "" {
		if len(parts) == n-1 {
			return append(parts, s)
		}
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	return parts
}

// splitLines splits text into lines without their terminators. A trailing
// newline does not produce an empty final line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// isAlnum reports whether s is non-empty and made only of letters and digits.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
