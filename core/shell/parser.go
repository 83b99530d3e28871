package shell

import "strings"

// Delimiters separate tokens: space, tab, carriage return, newline and bell.
// There is no quoting or escaping.
const Delimiters = " \t\r\n\a"

// tokenBufferIncrement is the initial token capacity and the amount it grows
// by when full.
const tokenBufferIncrement = 64

// Tokenize splits line on Delimiters. Runs of delimiters collapse, so no
// token is ever empty and a line made only of delimiters yields no tokens.
//
// Tokens are substrings of line and share its storage.
func Tokenize(line string) []string {
	tokens := make([]string, 0, tokenBufferIncrement)

	start := -1
	for i := 0; i < len(line); i++ {
		if !isDelimiter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			tokens = appendToken(tokens, line[start:i])
			start = -1
		}
	}

	if start >= 0 {
		tokens = appendToken(tokens, line[start:])
	}

	return tokens
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(Delimiters, b) >= 0
}

func appendToken(tokens []string, token string) []string {
	if len(tokens) == cap(tokens) {
		grown := make([]string, len(tokens), cap(tokens)+tokenBufferIncrement)
		copy(grown, tokens)
		tokens = grown
	}

	return append(tokens, token)
}
