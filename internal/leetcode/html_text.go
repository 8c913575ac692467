package leetcode

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	reMultiSpace   = regexp.MustCompile(`[ \t]{2,}`)
	reManyNewlines = regexp.MustCompile(`\n{3,}`)

	// reMarkupTag matches a well-formed tag for an element that shows up in
	// problem statements. Bare comparisons such as "a<b and b>c" or C++ types
	// like "vector<int>" do not match.
	reMarkupTag = regexp.MustCompile(`(?i)</?(?:p|div|span|b|i|u|em|strong|code|pre|ul|ol|li|br|hr|sup|sub|a|img|font|table|thead|tbody|tr|td|th|h[1-6]|section|article|blockquote|script|style|head|title|html|body)(?:\s+[a-z][a-z0-9:-]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'<>]+))*\s*/?>`)
)

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "pre": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "tr": true, "table": true,
}

var skippedTags = map[string]bool{
	"script": true, "style": true, "head": true, "title": true,
}

// ExtractPlainText drops all tags and attributes from markup and returns the
// visible text in document order. Malformed markup yields whatever text was
// readable before the tokenizer gave up. Input without any element tag is
// already plain text: it is only whitespace-normalized, so entities and stray
// '<' in it are kept and ExtractPlainText(ExtractPlainText(x)) equals
// ExtractPlainText(x) for statement markup.
func ExtractPlainText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	if !reMarkupTag.MatchString(markup) {
		return normalizeText(markup)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer failure, either way keep what we have.
			return normalizeText(b.String())
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case skippedTags[tag]:
				if tt == html.StartTagToken {
					skipDepth++
				}
			case tag == "br":
				b.WriteByte('\n')
			case tag == "li":
				b.WriteString("\n- ")
			case tag == "sup":
				b.WriteByte('^')
			case blockTags[tag]:
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch {
			case skippedTags[tag]:
				if skipDepth > 0 {
					skipDepth--
				}
			case tag == "ul" || tag == "ol":
				b.WriteByte('\n')
			case blockTags[tag]:
				b.WriteString("\n\n")
			}
		}
	}
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = reMultiSpace.ReplaceAllString(line, " ")
		lines[i] = line
	}

	text = strings.Join(lines, "\n")
	text = reManyNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
