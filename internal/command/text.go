package command

import (
	"strings"
	"unicode"
)

// ParseText splits a free-text message into a command name and its raw
// argument line. It reports false when content does not start with prefix
// or names no command. The prefix is matched case-insensitively.
func ParseText(prefix, content string) (name, rest string, ok bool) {
	if prefix == "" || len(content) < len(prefix) {
		return "", "", false
	}
	if fold(content[:len(prefix)]) != fold(prefix) {
		return "", "", false
	}

	body := content[len(prefix):]
	end := strings.IndexFunc(body, unicode.IsSpace)
	if end < 0 {
		end = len(body)
	}
	name = body[:end]
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(body[end:]), true
}
