package lxc

import (
	"regexp"
)

// badCharacters lists characters that could cause problems if an argument
// ever reached a command shell.
const badCharacters = `[/;:%^$#@!` + "`" + `'"*()\\]`

// Sanitizer rejects arguments containing shell metacharacters.
// Commands are never run through a shell; this is a best-effort guard only.
type Sanitizer struct {
	pattern *regexp.Regexp
}

// NewSanitizer compiles the denylist.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{pattern: regexp.MustCompile(badCharacters)}
}

// Check returns a KindValidation *Error naming the first argument that
// contains a denylisted character, or nil if every argument is clean.
func (s *Sanitizer) Check(args []string) error {
	for _, arg := range args {
		if s.pattern.MatchString(arg) {
			return validationError("", arg, ErrBadCharacters, "%s has unacceptable characters in it", arg)
		}
	}
	return nil
}
