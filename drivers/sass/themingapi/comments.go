package themingapi

import (
	"strconv"
	"strings"
)

const (
	placeholderStart = "__<<themeshiftEscapedComment"
	placeholderEnd   = ">>__"
)

// commentPair is an opening delimiter and the delimiter that closes it.
// inclusive reports whether the closer belongs to the comment. A line comment
// ends before its newline so the line break stays in the content.
type commentPair struct {
	open      string
	close     string
	inclusive bool
}

// Block comments take priority over line comments regardless of position.
var commentPairs = []commentPair{
	{open: "/*", close: "*/", inclusive: true},
	{open: "//", close: "\n"},
}

// placeholders maps escape tokens to the comment text they replaced.
// Tokens are kept in insertion order.
type placeholders struct {
	tokens []string
	text   map[string]string
}

func newPlaceholders() *placeholders {
	return &placeholders{text: make(map[string]string)}
}

func (p *placeholders) add(comment string) string {
	token := placeholderStart + strconv.Itoa(len(p.tokens)) + placeholderEnd
	p.tokens = append(p.tokens, token)
	p.text[token] = comment
	return token
}

// lookup returns the comment a token stands for.
func (p *placeholders) lookup(token string) (string, bool) {
	text, ok := p.text[token]
	return text, ok
}

// count reports how many comments were escaped.
func (p *placeholders) count() int {
	return len(p.tokens)
}

// escapeComments replaces every comment in content with a unique placeholder
// token so that the rename patterns never see comment text.
//
// Scanning stops at the first opener that has no closer; anything after it
// stays unescaped.
func escapeComments(content string) (string, *placeholders) {
	ph := newPlaceholders()

	open, end := findComment(content)
	for open > -1 && end > -1 {
		token := ph.add(content[open:end])
		content = content[:open] + token + content[end:]
		open, end = findComment(content)
	}

	return content, ph
}

// findComment returns the span [open, end) of the first comment in content,
// or -1, -1 when there is none.
func findComment(content string) (int, int) {
	// The extra newline lets a line comment on the last line close.
	scan := content + "\n"

	for _, pair := range commentPairs {
		open := strings.Index(scan, pair.open)
		if open == -1 {
			continue
		}

		rel := strings.Index(scan[open+1:], pair.close)
		if rel == -1 {
			return -1, -1
		}

		end := open + 1 + rel
		if pair.inclusive {
			end += len(pair.close)
		}
		if end > len(content) {
			end = len(content)
		}
		return open, end
	}

	return -1, -1
}

// restoreComments swaps every placeholder back for its comment. Tokens are
// restored newest first: a later comment may have swallowed an earlier token,
// as in `// a /* b */`.
func restoreComments(content string, ph *placeholders) string {
	for i := len(ph.tokens) - 1; i >= 0; i-- {
		token := ph.tokens[i]
		content = strings.Replace(content, token, ph.text[token], 1)
	}
	return content
}
