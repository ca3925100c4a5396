package tokenizer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewStatusLineTokenizer creates a tokenizer for an HTTP/1.x status line.
// The matchers are ordered so that structural tokens win over text:
// 1. CRLF (line endings)
// 2. SP (space separator)
// 3. HTTP version string
// 4. Status code digits
// 5. Reason phrase (everything else until the line ends)
//
// Spaces are significant in a status line, so the default whitespace
// skipper is not used.
func NewStatusLineTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		VersionMatcher(),
		StatusCodeMatcher(),
		ReasonMatcher(),
	)
}

// SplitStatusLine tokenizes "VERSION SP STATUS [SP REASON]" and returns its
// parts. The line must not include its line ending. A missing reason phrase
// is accepted. A line that is not valid UTF-8 is rejected, since the stream
// decodes runes and would replace the invalid bytes.
func SplitStatusLine(line string) (version string, code int, reason string, ok bool) {
	if !utf8.ValidString(line) {
		return "", 0, "", false
	}
	tok := NewStatusLineTokenizer()
	tok.Initialize(line)

	tokens, eos := tok.Tokenize()
	if !eos || len(tokens) < 3 {
		return "", 0, "", false
	}
	if tokens[0].Kind() != TokenVersion || tokens[1].Kind() != TokenSP || tokens[2].Kind() != TokenStatusCode {
		return "", 0, "", false
	}

	version = tokens[0].ValueString()
	if !validVersion(version) {
		return "", 0, "", false
	}

	code, err := strconv.Atoi(tokens[2].ValueString())
	if err != nil {
		return "", 0, "", false
	}

	rest := tokens[3:]
	if len(rest) == 0 {
		return version, code, "", true
	}
	if rest[0].Kind() != TokenSP {
		// "200OK": digits run straight into text
		return "", 0, "", false
	}

	var sb strings.Builder
	for _, t := range rest[1:] {
		if t.Kind() == TokenCRLF {
			return "", 0, "", false
		}
		sb.WriteString(t.ValueString())
	}
	return version, code, sb.String(), true
}

// validVersion accepts "HTTP/" DIGIT "." DIGIT.
func validVersion(v string) bool {
	if len(v) != len("HTTP/1.1") {
		return false
	}
	return isDigit(rune(v[5])) && v[6] == '.' && isDigit(rune(v[7]))
}

// CRLFMatcher matches \r\n or bare \n.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		if r == '\r' {
			value := []rune{'\r'}
			stream.NextChar()
			r2, ok := stream.PeekChar()
			if ok && r2 == '\n' {
				stream.NextChar()
				value = append(value, '\n')
			}
			return tokenizer.NewToken(TokenCRLF, value)
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == ' ' {
			stream.NextChar()
			return tokenizer.NewToken(TokenSP, []rune{' '})
		}
		return nil
	}
}

// VersionMatcher matches "HTTP/" followed by digits and dot.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		prefix := []rune("HTTP/")
		var value []rune

		for _, expected := range prefix {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if isDigit(r) || r == '.' {
				stream.NextChar()
				value = append(value, r)
			} else {
				break
			}
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// StatusCodeMatcher matches a run of ASCII digits.
func StatusCodeMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !isDigit(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenStatusCode, value)
	}
}

// ReasonMatcher matches everything until CR, LF, or EOS.
// Reason phrases may contain spaces.
func ReasonMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '\r' || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenReason, value)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
