package commands

import "strings"

// normalizeCommand lowercases the command and drops a @botname suffix.
func normalizeCommand(token string) string {
	if idx := strings.Index(token, "@"); idx >= 0 {
		token = token[:idx]
	}
	return strings.ToLower(token)
}
