package lemon

import (
	"fmt"
	"strings"
	"unicode/utf8"

	lemonio "github.com/lemonkit/lemon/io"
)

const helpDescription = "Show this help message and exit"

// minWrap is the narrowest description column worth wrapping to; below it
// rows are printed on one line.
const minWrap = 20

// helpRow is one row of the options table before wrapping and styling.
type helpRow struct {
	label string
	words []helpWord
}

// helpWord is a description word; muted words belong to an annotation.
type helpWord struct {
	text  string
	muted bool
}

// helpRows builds the options table: the help row, then one row per entry
// in definition order.
func (p *Parser) helpRows() []helpRow {
	rows := []helpRow{{
		label: ident{flag: helpFlag, key: helpKey}.helpLabel(),
		words: splitWords(helpDescription, false),
	}}
	for _, e := range p.docs.all() {
		rows = append(rows, helpRow{label: e.ident().helpLabel(), words: annotate(e)})
	}
	return rows
}

// annotate appends [REQUIRED], (Options: ...) and (Default: ...) to the description.
func annotate(e DocEntry) []helpWord {
	words := splitWords(e.Description, false)
	if e.Required {
		words = append(words, helpWord{text: "[REQUIRED]"})
	}
	if e.Options != "" {
		words = append(words, splitWords("(Options: "+e.Options+")", true)...)
	}
	if e.HasDefault {
		def := e.Default
		if def == "" {
			def = `""`
		}
		words = append(words, splitWords("(Default: "+def+")", true)...)
	}
	return words
}

func splitWords(s string, muted bool) []helpWord {
	fields := strings.Fields(s)
	words := make([]helpWord, len(fields))
	for i, f := range fields {
		words[i] = helpWord{text: f, muted: muted}
	}
	return words
}

// wrap greedily fills lines of at most limit runes. A word longer than limit
// gets a line to itself; limit <= 0 disables wrapping.
func wrap(words []helpWord, limit int) [][]helpWord {
	var lines [][]helpWord
	var line []helpWord
	n := 0
	for _, w := range words {
		wn := utf8.RuneCountInString(w.text)
		if len(line) > 0 && limit > 0 && n+1+wn > limit {
			lines = append(lines, line)
			line, n = nil, 0
		}
		if len(line) > 0 {
			n++
		}
		line = append(line, w)
		n += wn
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// styleLine joins a wrapped line, styling each run of muted words as one span.
func (p *Parser) styleLine(line []helpWord, muted *lemonio.Style) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		j := i
		parts := []string{}
		for j < len(line) && line[j].muted == line[i].muted {
			parts = append(parts, line[j].text)
			j++
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		text := strings.Join(parts, " ")
		if line[i].muted {
			text = muted.Sprint(p.io, text)
		}
		b.WriteString(text)
		i = j
	}
	return b.String()
}

func (p *Parser) renderHelp() {
	out := p.io.Out()
	theme := lemonio.DefaultTheme(p.io)
	heading := lemonio.NewStyle().Bold()
	labelStyle := lemonio.NewStyle().Fg(theme.Primary)
	muted := lemonio.NewStyle().Fg(theme.Muted)

	fmt.Fprintln(out, heading.Sprint(p.io, "Usage:"))
	fmt.Fprintf(out, "  %s [OPTIONS]\n", p.name)
	if p.about != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.about)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, heading.Sprint(p.io, "Options:"))

	rows := p.helpRows()
	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r.label))
	}
	indent := 2 + width + 2
	limit := p.io.Width() - indent
	if limit < minWrap {
		limit = 0
	}
	for _, r := range rows {
		line := "  " + labelStyle.Sprint(p.io, r.label)
		for i, words := range wrap(r.words, limit) {
			if i == 0 {
				line += strings.Repeat(" ", width-utf8.RuneCountInString(r.label)+2)
			} else {
				fmt.Fprintln(out, line)
				line = strings.Repeat(" ", indent)
			}
			line += p.styleLine(words, muted)
		}
		fmt.Fprintln(out, line)
	}
}
