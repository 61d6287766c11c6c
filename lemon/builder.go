package lemon

import (
	"fmt"
	"slices"
	"strings"
)

// Definition is implemented by every argument builder. Resolve finalizes
// the definition against the parser's tokens.
type Definition interface {
	Resolve() (Argument, error)
}

// definition is the state shared by all builder variants.
type definition struct {
	parser   *Parser
	id       ident
	desc     string
	required bool
	called   map[string]bool
	parsed   bool
	err      error
}

func newDefinition(p *Parser) definition {
	return definition{parser: p, called: make(map[string]bool)}
}

// once records a configurator call; a repeated call poisons the builder.
func (d *definition) once(name string) bool {
	if d.called[name] {
		d.fail(fmt.Sprintf("%s() called twice for same argument", name))
		return false
	}
	d.called[name] = true
	return true
}

// fail keeps the first configuration error; Parse reports it.
func (d *definition) fail(msg string) {
	if d.err == nil {
		d.err = NewParseError(ErrorTypeMalformedDefinition, msg)
	}
}

func (d *definition) setFlag(flag rune) {
	if !d.once("Flag") {
		return
	}
	if flag == 0 || flag == '-' {
		d.fail(fmt.Sprintf("%q is not a valid flag", flag))
		return
	}
	d.id.flag = flag
}

func (d *definition) setKey(key string) {
	if !d.once("Key") {
		return
	}
	if key == "" {
		d.fail("key must not be empty")
		return
	}
	if strings.HasPrefix(key, "-") {
		d.fail(fmt.Sprintf("key %q must not start with dashes '-'", key))
		return
	}
	d.id.key = key
}

func (d *definition) setDescription(desc string) {
	if d.once("Description") {
		d.desc = desc
	}
}

func (d *definition) setRequired() {
	if d.once("Required") {
		d.required = true
	}
}

// begin runs the steps every variant shares before the lookup: validate the
// configuration and record the help entry. entry carries the variant's
// rendered default and options.
func (d *definition) begin(entry DocEntry) error {
	if d.parser.finished {
		return ErrFinished
	}
	if d.parsed {
		return NewParseError(ErrorTypeMalformedDefinition, "Parse() called twice for same argument").
			WithLabel(d.id.label())
	}
	d.parsed = true
	if d.err != nil {
		if pe, ok := d.err.(*ParseError); ok && pe.Label == "" {
			pe.Label = d.id.label()
		}
		return d.err
	}
	if !d.id.hasFlag() && !d.id.hasKey() {
		return NewParseError(ErrorTypeMalformedDefinition,
			"must specify either a key or flag, did you call Flag() or Key()?")
	}
	entry.Flag, entry.Key = d.id.flag, d.id.key
	entry.Description, entry.Required = d.desc, d.required
	d.parser.docs.add(entry)
	return nil
}

// end enforces Required once the variant has resolved.
func (d *definition) end(present bool) error {
	if d.required && !present && !d.parser.help {
		return NewParseError(ErrorTypeMissingRequired, "missing required argument").WithLabel(d.id.label())
	}
	return nil
}

// CheckBuilder defines a presence-only argument.
type CheckBuilder struct {
	def definition
}

// AddCheck starts a presence-only argument definition.
func (p *Parser) AddCheck() *CheckBuilder {
	return &CheckBuilder{def: newDefinition(p)}
}

// Flag sets the single-character form, matched as -<flag>
func (b *CheckBuilder) Flag(flag rune) *CheckBuilder {
	b.def.setFlag(flag)
	return b
}

// Key sets the word form, matched as --<key>
func (b *CheckBuilder) Key(key string) *CheckBuilder {
	b.def.setKey(key)
	return b
}

// Description sets the help text
func (b *CheckBuilder) Description(desc string) *CheckBuilder {
	b.def.setDescription(desc)
	return b
}

// Parse finalizes the definition.
func (b *CheckBuilder) Parse() (*Check, error) {
	if err := b.def.begin(DocEntry{}); err != nil {
		return nil, err
	}
	found, err := b.def.parser.lookup.check(b.def.id)
	if err != nil {
		return nil, err
	}
	return &Check{label: b.def.id.label(), present: found}, nil
}

// MustParse is Parse that reports the error and exits the process.
func (b *CheckBuilder) MustParse() *Check {
	c, err := b.Parse()
	if err != nil {
		b.def.parser.fatal(err)
		return &Check{label: b.def.id.label()}
	}
	return c
}

// Resolve implements Definition.
func (b *CheckBuilder) Resolve() (Argument, error) {
	c, err := b.Parse()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ValueBuilder defines a single-value argument of type T.
type ValueBuilder[T Scalar] struct {
	def        definition
	defaultVal T
	hasDefault bool
	options    []T
}

// AddValue starts a single-value argument definition.
func AddValue[T Scalar](p *Parser) *ValueBuilder[T] {
	return &ValueBuilder[T]{def: newDefinition(p)}
}

// Flag sets the single-character form, matched as -<flag>
func (b *ValueBuilder[T]) Flag(flag rune) *ValueBuilder[T] {
	b.def.setFlag(flag)
	return b
}

// Key sets the word form, matched as --<key>
func (b *ValueBuilder[T]) Key(key string) *ValueBuilder[T] {
	b.def.setKey(key)
	return b
}

// Description sets the help text
func (b *ValueBuilder[T]) Description(desc string) *ValueBuilder[T] {
	b.def.setDescription(desc)
	return b
}

// Required makes Parse fail when neither a token nor a default supplies a value.
func (b *ValueBuilder[T]) Required() *ValueBuilder[T] {
	b.def.setRequired()
	return b
}

// Default sets the value used when no token matches.
func (b *ValueBuilder[T]) Default(value T) *ValueBuilder[T] {
	if b.def.once("Default") {
		b.defaultVal = value
		b.hasDefault = true
	}
	return b
}

// Options restricts the resolved value, default included, to the given set.
func (b *ValueBuilder[T]) Options(values ...T) *ValueBuilder[T] {
	if !b.def.once("Options") {
		return b
	}
	if len(values) == 0 {
		b.def.fail("Options() needs at least one value")
		return b
	}
	b.options = slices.Clone(values)
	return b
}

// Parse finalizes the definition.
func (b *ValueBuilder[T]) Parse() (*Value[T], error) {
	entry := DocEntry{HasDefault: b.hasDefault}
	if b.hasDefault {
		entry.Default = Encode(b.defaultVal)
	}
	if b.options != nil {
		entry.Options = joinEncoded(b.options)
	}
	if err := b.def.begin(entry); err != nil {
		return nil, err
	}

	p := b.def.parser
	raw, found, err := p.lookup.value(b.def.id)
	if err != nil {
		return nil, err
	}

	v := &Value[T]{label: b.def.id.label()}
	switch {
	case found:
		decoded, decErr := Decode[T](raw)
		if decErr != nil {
			return nil, NewParseError(ErrorTypeConversion, "invalid value").
				WithLabel(v.label).WithCause(decErr)
		}
		v.value, v.present = decoded, true
	case b.hasDefault:
		v.value, v.present, v.fromDefault = b.defaultVal, true, true
	}

	if b.options != nil && v.present && !p.help && !slices.Contains(b.options, v.value) {
		return nil, NewParseError(ErrorTypeInvalidOption,
			fmt.Sprintf("invalid option '%s', valid options: %s", Encode(v.value), entry.Options)).
			WithLabel(v.label)
	}
	if err := b.def.end(v.present); err != nil {
		return nil, err
	}
	return v, nil
}

// MustParse is Parse that reports the error and exits the process.
func (b *ValueBuilder[T]) MustParse() *Value[T] {
	v, err := b.Parse()
	if err != nil {
		b.def.parser.fatal(err)
		return &Value[T]{label: b.def.id.label()}
	}
	return v
}

// Resolve implements Definition.
func (b *ValueBuilder[T]) Resolve() (Argument, error) {
	v, err := b.Parse()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListBuilder defines a list argument of element type T.
type ListBuilder[T Scalar] struct {
	def         definition
	defaultList []T
	hasDefault  bool
}

// AddList starts a list argument definition.
func AddList[T Scalar](p *Parser) *ListBuilder[T] {
	return &ListBuilder[T]{def: newDefinition(p)}
}

// Flag sets the single-character form, matched as -<flag>
func (b *ListBuilder[T]) Flag(flag rune) *ListBuilder[T] {
	b.def.setFlag(flag)
	return b
}

// Key sets the word form, matched as --<key>
func (b *ListBuilder[T]) Key(key string) *ListBuilder[T] {
	b.def.setKey(key)
	return b
}

// Description sets the help text
func (b *ListBuilder[T]) Description(desc string) *ListBuilder[T] {
	b.def.setDescription(desc)
	return b
}

// Required makes Parse fail when neither tokens nor a default list supply items.
func (b *ListBuilder[T]) Required() *ListBuilder[T] {
	b.def.setRequired()
	return b
}

// DefaultList sets the items used when no token matches. An empty default
// list still counts as a default.
func (b *ListBuilder[T]) DefaultList(values ...T) *ListBuilder[T] {
	if b.def.once("DefaultList") {
		b.defaultList = slices.Clone(values)
		b.hasDefault = true
	}
	return b
}

// Parse finalizes the definition.
func (b *ListBuilder[T]) Parse() (*List[T], error) {
	entry := DocEntry{HasDefault: b.hasDefault}
	if b.hasDefault {
		entry.Default = EncodeList(b.defaultList)
	}
	if err := b.def.begin(entry); err != nil {
		return nil, err
	}

	raw, found, err := b.def.parser.lookup.list(b.def.id)
	if err != nil {
		return nil, err
	}

	l := &List[T]{label: b.def.id.label()}
	switch {
	case found:
		l.items = make([]T, 0, len(raw))
		for _, token := range raw {
			item, decErr := Decode[T](token)
			if decErr != nil {
				return nil, NewParseError(ErrorTypeConversion, "invalid list item").
					WithLabel(l.label).WithCause(decErr)
			}
			l.items = append(l.items, item)
		}
		l.present = true
	case b.hasDefault:
		l.items = slices.Clone(b.defaultList)
		l.present, l.fromDefault = true, true
	}

	if err := b.def.end(l.present); err != nil {
		return nil, err
	}
	return l, nil
}

// MustParse is Parse that reports the error and exits the process.
func (b *ListBuilder[T]) MustParse() *List[T] {
	l, err := b.Parse()
	if err != nil {
		b.def.parser.fatal(err)
		return &List[T]{label: b.def.id.label()}
	}
	return l
}

// Resolve implements Definition.
func (b *ListBuilder[T]) Resolve() (Argument, error) {
	l, err := b.Parse()
	if err != nil {
		return nil, err
	}
	return l, nil
}
