package commands

import (
	"strings"
	"unicode/utf8"
)

// Telegram rejects messages longer than this many characters.
const maxMessageRunes = 4096

const maxQuestionRunes = 3000

// escapeMarkdownV2 escapes every character MarkdownV2 treats as markup.
// Apply it exactly once to each piece of free text.
func escapeMarkdownV2(text string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(text) + 8)
	for _, r := range text {
		switch r {
		case '\\', '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			out.WriteByte('\\')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// escapeMarkdownV2LinkURL escapes the URL part of an inline link, where only
// ')' and '\' are significant.
func escapeMarkdownV2LinkURL(url string) string {
	if url == "" {
		return ""
	}
	url = strings.ReplaceAll(url, "\\", "\\\\")
	url = strings.ReplaceAll(url, ")", "\\)")
	return url
}

func markdownLink(text, url string) string {
	if strings.TrimSpace(url) == "" {
		return escapeMarkdownV2(text)
	}
	return "[" + escapeMarkdownV2(text) + "](" + escapeMarkdownV2LinkURL(url) + ")"
}

func truncateRunes(in string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(in) <= max {
		return in
	}

	out := make([]rune, 0, max+1)
	for _, r := range in {
		if len(out) >= max {
			break
		}
		out = append(out, r)
	}
	return strings.TrimSpace(string(out)) + "\n\n[truncated]"
}

// packBlocks joins blocks with blank lines, starting a new message whenever the
// next block would push the current one past max runes. A single oversized
// block is kept whole.
func packBlocks(blocks []string, max int) []string {
	out := make([]string, 0, 1)
	var cur strings.Builder
	curRunes := 0

	for _, block := range blocks {
		n := utf8.RuneCountInString(block)
		if curRunes > 0 && curRunes+2+n > max {
			out = append(out, cur.String())
			cur.Reset()
			curRunes = 0
		}
		if curRunes > 0 {
			cur.WriteString("\n\n")
			curRunes += 2
		}
		cur.WriteString(block)
		curRunes += n
	}

	if curRunes > 0 {
		out = append(out, cur.String())
	}
	return out
}
