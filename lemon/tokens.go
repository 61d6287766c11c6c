package lemon

import "strings"

const (
	helpKey  = "help"
	helpFlag = 'h'
)

// tokenStream is the raw argument vector plus its consumed markers.
// Index 0 is the program name and never takes part in matching.
type tokenStream struct {
	tokens   []string
	consumed []bool
}

func newTokenStream(args []string) *tokenStream {
	tokens := make([]string, len(args))
	copy(tokens, args)
	return &tokenStream{
		tokens:   tokens,
		consumed: make([]bool, len(tokens)),
	}
}

func (s *tokenStream) len() int { return len(s.tokens) }

func (s *tokenStream) at(i int) string { return s.tokens[i] }

func (s *tokenStream) isConsumed(i int) bool { return s.consumed[i] }

// consume marks a token as matched. Consumption is never undone.
func (s *tokenStream) consume(i int) { s.consumed[i] = true }

// isValueAt reports whether index i exists and holds a value-like token.
func (s *tokenStream) isValueAt(i int) bool {
	return i < len(s.tokens) && isValue(s.tokens[i])
}

// helpRequested scans the user tokens for --help or -h.
func (s *tokenStream) helpRequested() bool {
	for i := 1; i < len(s.tokens); i++ {
		if s.tokens[i] == keyToken(helpKey) || s.tokens[i] == flagToken(helpFlag) {
			return true
		}
	}
	return false
}

// firstUnconsumed returns the index of the first user token nobody matched.
func (s *tokenStream) firstUnconsumed() (int, bool) {
	for i := 1; i < len(s.tokens); i++ {
		if !s.consumed[i] {
			return i, true
		}
	}
	return 0, false
}

// programName is the base of token 0, or "" when the vector is empty.
func (s *tokenStream) programName() string {
	if len(s.tokens) == 0 {
		return ""
	}
	name := s.tokens[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// isValue reports whether a token looks like a value rather than a flag or key.
func isValue(token string) bool {
	return !strings.HasPrefix(token, "-")
}

func flagToken(flag rune) string { return "-" + string(flag) }

func keyToken(key string) string { return "--" + key }
