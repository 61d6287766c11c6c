package lemon

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(help bool, args ...string) (*lookupEngine, *[]string) {
	var warnings []string
	stream := newTokenStream(append([]string{"prog"}, args...))
	return &lookupEngine{
		stream: stream,
		unique: newUniqueRegistry(),
		help:   help,
		warn: func(format string, a ...any) {
			warnings = append(warnings, fmt.Sprintf(format, a...))
		},
	}, &warnings
}

func TestLookupCheckConsumesOnlyFirstMatch(t *testing.T) {
	l, _ := newTestEngine(false, "-t", "x", "-t")

	found, err := l.check(ident{flag: 't', key: "test"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []bool{false, true, false, false}, l.stream.consumed)
}

func TestLookupProgramNameNeverMatches(t *testing.T) {
	l, _ := newTestEngine(false)
	l.stream.tokens[0] = "--prog"

	found, err := l.check(ident{key: "prog"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLookupValueWarnsOnExtras(t *testing.T) {
	l, warnings := newTestEngine(false, "--dhoom", "5", "6", "7", "-x")

	raw, found, err := l.value(ident{flag: 'd', key: "dhoom"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "5", raw)
	assert.Equal(t, []bool{false, true, true, true, true, false}, l.stream.consumed)
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "ignoring 2 extra value(s)")
	assert.Contains(t, (*warnings)[0], "--dhoom (-d)")
}

func TestLookupValueMissing(t *testing.T) {
	for _, args := range [][]string{{"-d"}, {"-d", "-x"}, {"-d", "-5"}} {
		l, _ := newTestEngine(false, args...)
		_, _, err := l.value(ident{flag: 'd'})
		require.Error(t, err, "args %v", args)
		assert.True(t, IsErrorType(err, ErrorTypeMissingValue))
	}
}

func TestLookupValueEmptyTokenIsValue(t *testing.T) {
	l, _ := newTestEngine(false, "--name", "")
	raw, found, err := l.value(ident{key: "name"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", raw)
}

func TestLookupList(t *testing.T) {
	l, _ := newTestEngine(false, "--my-list", "9", "8", "--other")
	raw, found, err := l.list(ident{key: "my-list"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"9", "8"}, raw)
	assert.Equal(t, []bool{false, true, true, true, false}, l.stream.consumed)

	l, _ = newTestEngine(false, "--my-list", "--other")
	_, _, err = l.list(ident{key: "my-list"})
	assert.True(t, IsErrorType(err, ErrorTypeMissingListValues))
}

func TestLookupHelpModeRegistersButSkips(t *testing.T) {
	l, _ := newTestEngine(true, "-h", "-t")

	found, err := l.check(ident{flag: 't'})
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, l.stream.isConsumed(2))

	_, err = l.check(ident{flag: 't'})
	assert.True(t, IsErrorType(err, ErrorTypeDuplicateDefinition))
}

func TestUniqueRegistry(t *testing.T) {
	r := newUniqueRegistry()

	err := r.register(ident{flag: 'h'})
	assert.True(t, IsErrorType(err, ErrorTypeDuplicateDefinition))
	err = r.register(ident{key: "help"})
	assert.True(t, IsErrorType(err, ErrorTypeDuplicateDefinition))

	require.NoError(t, r.register(ident{flag: 'a', key: "alpha"}))

	// a rejected registration claims nothing
	err = r.register(ident{flag: 'b', key: "alpha"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key: --alpha")
	require.NoError(t, r.register(ident{flag: 'b'}))

	assert.Equal(t, []string{"alpha", "help"}, r.keyNames())
}

func TestIdentLabels(t *testing.T) {
	assert.Equal(t, "--key (-f)", ident{flag: 'f', key: "key"}.label())
	assert.Equal(t, "--key", ident{key: "key"}.label())
	assert.Equal(t, "-f", ident{flag: 'f'}.label())
	assert.Equal(t, "--key or -f", ident{flag: 'f', key: "key"}.helpLabel())
	assert.Equal(t, "-f", ident{flag: 'f'}.helpLabel())
}

func TestTokenStream(t *testing.T) {
	args := []string{"/usr/bin/prog", "a", "--help"}
	s := newTokenStream(args)
	args[1] = "changed"

	assert.Equal(t, "a", s.at(1))
	assert.Equal(t, "prog", s.programName())
	assert.True(t, s.helpRequested())

	s.consume(1)
	i, ok := s.firstUnconsumed()
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	assert.False(t, newTokenStream([]string{"--help"}).helpRequested())
	assert.Equal(t, "", newTokenStream(nil).programName())
}
