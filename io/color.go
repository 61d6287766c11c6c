package lemonio

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: basic (16), indexed (256) or truecolor (RGB).
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

// Bright basic colors (8-15)
var (
	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette spec (0-255).
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color spec.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent builder for a foreground color plus bold.
type Style struct {
	fg   *ColorSpec
	bold bool
}

func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }

// Sprint returns the styled text, or text unchanged when color is off.
func (s *Style) Sprint(io *IOManager, text string) string {
	if !io.SupportsColor() {
		return text
	}
	seq := s.sgr(io.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

func (s *Style) sgr(level int) string {
	codes := make([]string, 0, 2)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.fg != nil {
		if c := fgCode(*s.fg, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

// fgCode renders a foreground color; colors the terminal cannot show are dropped.
func fgCode(c ColorSpec, level int) string {
	switch c.kind {
	case 1:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case 2:
		if level >= 2 {
			return fmt.Sprintf("38;5;%d", c.index)
		}
	case 3:
		if level >= 3 {
			return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
		}
	}
	return ""
}

// Theme provides semantic colors. Primary and Muted style help output, the
// rest follow log levels.
type Theme struct {
	Primary, Warning, Error, Info, Debug, Muted ColorSpec
}

// DefaultTheme16 uses basic colors only.
func DefaultTheme16() Theme {
	return Theme{
		Primary: BrightBlue,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,
		Debug:   BrightMagenta,
		Muted:   BrightBlack,
	}
}

// DefaultThemeTruecolor uses 24-bit colors.
func DefaultThemeTruecolor() Theme {
	return Theme{
		Primary: Truecolor(92, 148, 252),
		Warning: Truecolor(255, 184, 108),
		Error:   Truecolor(255, 85, 85),
		Info:    Truecolor(139, 233, 253),
		Debug:   Truecolor(189, 147, 249),
		Muted:   Truecolor(128, 128, 128),
	}
}

// DefaultTheme picks a theme for the manager's color level.
func DefaultTheme(io *IOManager) Theme {
	if io.ColorLevel() >= 3 {
		return DefaultThemeTruecolor()
	}
	return DefaultTheme16()
}
