package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

func TestTokenize_StatusLine(t *testing.T) {
	tok := NewStatusLineTokenizer()
	tok.Initialize("HTTP/1.1 404 Not Found\r\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}

	// Expect: Version, SP, StatusCode, SP, Reason("Not Found"), CRLF
	expected := []struct {
		kind  string
		value string
	}{
		{TokenVersion, "HTTP/1.1"},
		{TokenSP, " "},
		{TokenStatusCode, "404"},
		{TokenSP, " "},
		{TokenReason, "Not Found"},
		{TokenCRLF, "\r\n"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestTokenize_BareLF(t *testing.T) {
	tok := NewStatusLineTokenizer()
	tok.Initialize("HTTP/1.0 200 OK\n")

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	last := tokens[len(tokens)-1]
	if last.Kind() != TokenCRLF || last.ValueString() != "\n" {
		t.Errorf("last token = %v, want CRLF(\\n)", last)
	}
}

func TestSplitStatusLine(t *testing.T) {
	tests := []struct {
		line    string
		version string
		code    int
		reason  string
		ok      bool
	}{
		{line: "HTTP/1.1 200 OK", version: "HTTP/1.1", code: 200, reason: "OK", ok: true},
		{line: "HTTP/1.0 404 Not Found", version: "HTTP/1.0", code: 404, reason: "Not Found", ok: true},
		{line: "HTTP/1.1 200", version: "HTTP/1.1", code: 200, ok: true},
		{line: "HTTP/1.1 200 ", version: "HTTP/1.1", code: 200, ok: true},
		{line: "HTTP/1.1 500 Internal  Server Error", version: "HTTP/1.1", code: 500, reason: "Internal  Server Error", ok: true},
		{line: "HTTP/1.1 299 2 fast 2 furious", version: "HTTP/1.1", code: 299, reason: "2 fast 2 furious", ok: true},
		{line: "HTTP/1.1 099 X", version: "HTTP/1.1", code: 99, reason: "X", ok: true},
		{line: ""},
		{line: "HTTP/1.1"},
		{line: "HTTP/1.1 "},
		{line: "HTTP/1.1 abc OK"},
		{line: "HTTP/1.1 200OK"},
		{line: "HTTP/1.1  200 OK"},
		{line: "HTTP/11 200 OK"},
		{line: "HTTP/1.12 200 OK"},
		{line: "HTTP/a.b 200 OK"},
		{line: "GET / HTTP/1.1"},
		{line: "HTTP/1.1 200 OK\rX"},
		{line: "HTTP/1.1 200 O\xffK"},
		{line: "HTTP/1.1 200 caf\u00e9", version: "HTTP/1.1", code: 200, reason: "caf\u00e9", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			version, code, reason, ok := SplitStatusLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("SplitStatusLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if version != tt.version || code != tt.code || reason != tt.reason {
				t.Errorf("SplitStatusLine(%q) = (%q, %d, %q), want (%q, %d, %q)",
					tt.line, version, code, reason, tt.version, tt.code, tt.reason)
			}
		})
	}
}

func TestStatusCodeMatcher(t *testing.T) {
	matcher := StatusCodeMatcher()
	stream := coretok.NewStream("204 No Content")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token for digits, got nil")
	}
	if tok.Kind() != TokenStatusCode || tok.ValueString() != "204" {
		t.Errorf("token = %v, want StatusCode(204)", tok)
	}
}

func TestStatusCodeMatcher_NonDigit(t *testing.T) {
	// First char is not a digit: return nil
	matcher := StatusCodeMatcher()
	stream := coretok.NewStream("OK")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for non-digit, got %v", tok)
	}
}

func TestReasonMatcher_StopsAtLineEnd(t *testing.T) {
	matcher := ReasonMatcher()
	stream := coretok.NewStream("Moved Permanently\r\n")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token, got nil")
	}
	if tok.ValueString() != "Moved Permanently" {
		t.Errorf("Value = %q, want %q", tok.ValueString(), "Moved Permanently")
	}
}

func TestReasonMatcher_EOS(t *testing.T) {
	// Empty stream: len(value)==0 → return nil
	matcher := ReasonMatcher()
	stream := coretok.NewStream("")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestCRLFMatcher_EOS(t *testing.T) {
	// Stream at EOS: PeekChar returns false → return nil
	matcher := CRLFMatcher()
	stream := coretok.NewStream("")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestCRLFMatcher_NonCRLF(t *testing.T) {
	// First char is not \r or \n: return nil
	matcher := CRLFMatcher()
	stream := coretok.NewStream("GET /")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for non-CRLF char, got %v", tok)
	}
}

func TestCRLFMatcher_BareCR(t *testing.T) {
	// Bare CR (\r not followed by \n): returns token with just \r
	matcher := CRLFMatcher()
	stream := coretok.NewStream("\rGET")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token for bare CR, got nil")
	}
	if tok.Kind() != TokenCRLF {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenCRLF)
	}
}

func TestSPMatcher_EOS(t *testing.T) {
	// Stream at EOS: PeekChar returns false → return nil
	matcher := SPMatcher()
	stream := coretok.NewStream("")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestSPMatcher_NonSP(t *testing.T) {
	// First char is not a space: return nil
	matcher := SPMatcher()
	stream := coretok.NewStream("X")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for non-SP char, got %v", tok)
	}
}

func TestVersionMatcher_EOS(t *testing.T) {
	// Stream at EOS: PeekChar returns false → return nil
	matcher := VersionMatcher()
	stream := coretok.NewStream("")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func TestVersionMatcher_NonHTTP(t *testing.T) {
	// Doesn't start with HTTP/: return nil
	matcher := VersionMatcher()
	stream := coretok.NewStream("GET /")
	tok := matcher(stream)
	if tok != nil {
		t.Errorf("expected nil for non-HTTP/ prefix, got %v", tok)
	}
}

func TestVersionMatcher_VersionNumberEOS(t *testing.T) {
	// "HTTP/" followed by EOS: returns token with just "HTTP/"
	matcher := VersionMatcher()
	stream := coretok.NewStream("HTTP/")
	tok := matcher(stream)
	if tok == nil {
		t.Fatal("expected token for HTTP/ prefix, got nil")
	}
	if tok.Kind() != TokenVersion {
		t.Errorf("Kind = %q, want %q", tok.Kind(), TokenVersion)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
