// Package lemon resolves declared command-line arguments against the raw
// process tokens.
//
// A program creates one Parser from os.Args, declares every argument through
// a builder and finalizes each with Parse or MustParse, then calls
// EnableHelp (or MustEnableHelp) exactly once:
//
//	p := lemon.New(os.Args)
//	verbose := p.AddCheck().Flag('v').Key("verbose").MustParse()
//	port := lemon.AddValue[int](p).Key("port").Default(8080).MustParse()
//	if !p.MustEnableHelp() {
//		return
//	}
//
// Each declaration consumes the tokens it matches. EnableHelp either prints
// the help table, when -h or --help was given, or rejects the first token no
// declaration consumed.
package lemon

import (
	"fmt"
	"os"
	"strings"

	"github.com/lemonkit/lemon/internal/fuzzy"
	lemonio "github.com/lemonkit/lemon/io"
	"github.com/pkg/errors"
)

const suggestDistance = 2

// Parser is one parsing session over a token vector. It is not safe for
// concurrent use.
type Parser struct {
	stream *tokenStream
	unique *uniqueRegistry
	docs   docRegistry
	lookup *lookupEngine

	help     bool
	finished bool

	name  string
	about string

	io        *lemonio.IOManager
	logger    *lemonio.Logger
	exitCodes *ExitCodeManager
	exit      func(int)
	suggest   bool
}

// New starts a session over args, where args[0] is the program name.
// The help flag and key are reserved immediately.
func New(args []string) *Parser {
	stream := newTokenStream(args)
	ioManager := lemonio.New()
	p := &Parser{
		stream:    stream,
		unique:    newUniqueRegistry(),
		help:      stream.helpRequested(),
		name:      stream.programName(),
		io:        ioManager,
		logger:    lemonio.NewLogger(ioManager),
		exitCodes: newExitCodeManager(),
		exit:      os.Exit,
		suggest:   true,
	}
	p.lookup = &lookupEngine{
		stream: p.stream,
		unique: p.unique,
		help:   p.help,
		warn:   func(format string, args ...any) { p.logger.Warning(format, args...) },
	}
	return p
}

// Name overrides the program name shown in the usage line.
func (p *Parser) Name(name string) *Parser { p.name = name; return p }

// About sets the text printed under the usage line.
func (p *Parser) About(text string) *Parser { p.about = text; return p }

// IO returns the output manager used for help and logging.
func (p *Parser) IO() *lemonio.IOManager { return p.io }

// Logger returns the logger used for warnings and fatal errors.
func (p *Parser) Logger() *lemonio.Logger { return p.logger }

// ExitCodes returns the exit-code mapping used by the Must variants.
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exitCodes }

// ExitFunc replaces os.Exit for the Must variants.
func (p *Parser) ExitFunc(fn func(int)) *Parser { p.exit = fn; return p }

// SuggestKeys toggles "Did you mean" hints for unrecognized keys.
func (p *Parser) SuggestKeys(enabled bool) *Parser { p.suggest = enabled; return p }

// HelpRequested reports whether -h or --help was among the tokens. While it
// is true no definition consumes tokens or reports missing or invalid values.
func (p *Parser) HelpRequested() bool { return p.help }

// Entries returns the help metadata recorded so far, in definition order.
func (p *Parser) Entries() []DocEntry { return p.docs.all() }

// EnableHelp ends the session. In help mode it writes the help table and
// returns ErrHelpShown. Otherwise it fails on the first token no definition
// consumed.
func (p *Parser) EnableHelp() error {
	if p.finished {
		return ErrFinished
	}
	p.finished = true

	if p.help {
		p.renderHelp()
		return ErrHelpShown
	}

	i, ok := p.stream.firstUnconsumed()
	if !ok {
		return nil
	}
	token := p.stream.at(i)
	err := NewParseError(ErrorTypeUnrecognizedToken, fmt.Sprintf("unrecognized argument '%s'", token))
	err.Token = token
	if p.suggest && strings.HasPrefix(token, "--") {
		if best := fuzzy.Suggest(token[2:], p.unique.keyNames(), suggestDistance); best != "" {
			err.Suggestion = fmt.Sprintf("Did you mean '--%s'?", best)
		}
	}
	return err
}

// MustEnableHelp is EnableHelp for main. It exits with the success code after
// help, and with the mapped error code on failure. It returns true when the
// program should go on; it can only return false when ExitFunc does not exit.
func (p *Parser) MustEnableHelp() bool {
	err := p.EnableHelp()
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrHelpShown):
		p.exit(p.exitCodes.Resolve(err))
	default:
		p.fatal(err)
	}
	return false
}

// fatal reports err through the logger and exits with its mapped code.
func (p *Parser) fatal(err error) {
	p.logger.Error("%s", describe(err))
	p.exit(p.exitCodes.Resolve(err))
}
