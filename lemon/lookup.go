package lemon

// lookupEngine resolves one definition against the token stream. Every
// lookup claims the definition's flag and key first, so duplicates surface
// even in help mode, then short-circuits when help was requested.
type lookupEngine struct {
	stream *tokenStream
	unique *uniqueRegistry
	help   bool
	warn   func(format string, args ...any)
}

// find claims id and returns the index of its first unconsumed match.
func (l *lookupEngine) find(id ident) (int, bool, error) {
	if err := l.unique.register(id); err != nil {
		return 0, false, err
	}
	if l.help {
		return 0, false, nil
	}
	for i := 1; i < l.stream.len(); i++ {
		if l.stream.isConsumed(i) {
			continue
		}
		if id.matches(l.stream.at(i)) {
			l.stream.consume(i)
			return i, true, nil
		}
	}
	return 0, false, nil
}

// check resolves a presence-only argument.
func (l *lookupEngine) check(id ident) (bool, error) {
	_, found, err := l.find(id)
	return found, err
}

// value resolves a single-value argument. Extra values following the first
// one are consumed and dropped with a warning.
func (l *lookupEngine) value(id ident) (string, bool, error) {
	i, found, err := l.find(id)
	if err != nil || !found {
		return "", false, err
	}
	if !l.stream.isValueAt(i + 1) {
		return "", false, NewParseError(ErrorTypeMissingValue, "missing value").WithLabel(id.label())
	}
	l.stream.consume(i + 1)
	raw := l.stream.at(i + 1)

	extra := 0
	for j := i + 2; l.stream.isValueAt(j); j++ {
		l.stream.consume(j)
		extra++
	}
	if extra > 0 && l.warn != nil {
		l.warn("found multiple values for '%s' when only one is expected, ignoring %d extra value(s)",
			id.label(), extra)
	}
	return raw, true, nil
}

// list resolves a list argument: the contiguous run of values after the match.
func (l *lookupEngine) list(id ident) ([]string, bool, error) {
	i, found, err := l.find(id)
	if err != nil || !found {
		return nil, false, err
	}
	var raw []string
	for j := i + 1; l.stream.isValueAt(j); j++ {
		l.stream.consume(j)
		raw = append(raw, l.stream.at(j))
	}
	if len(raw) == 0 {
		return nil, false, NewParseError(ErrorTypeMissingListValues, "missing value(s)").WithLabel(id.label())
	}
	return raw, true, nil
}
