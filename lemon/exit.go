package lemon

import (
	"github.com/pkg/errors"
)

// ExitCodeDefaults holds the codes used when no specific mapping matches.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps resolution errors to process exit codes.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

// misusage lists the categories caused by the user's tokens rather than
// the program's definitions.
var misusage = []ErrorType{
	ErrorTypeMissingValue,
	ErrorTypeMissingListValues,
	ErrorTypeInvalidOption,
	ErrorTypeMissingRequired,
	ErrorTypeConversion,
	ErrorTypeUnrecognizedToken,
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	m.prewire()
	return m
}

func (e *ExitCodeManager) prewire() {
	e.codesByType[ErrorTypeDuplicateDefinition] = e.defaults.GeneralError
	e.codesByType[ErrorTypeMalformedDefinition] = e.defaults.GeneralError
	for _, typ := range misusage {
		e.codesByType[typ] = e.defaults.MisusageError
	}
}

// DefineType overrides the exit code for one error category.
func (e *ExitCodeManager) DefineType(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the default codes. Category mappings are rebuilt from
// the new defaults, so call it before DefineType.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	e.codesByType = make(map[ErrorType]int)
	e.prewire()
	return e
}

// Defaults returns the current default codes.
func (e *ExitCodeManager) Defaults() ExitCodeDefaults { return e.defaults }

// Resolve converts an error to an exit code.
// Precedence:
//  1. nil and ErrHelpShown map to Success
//  2. ParseError category mapping
//  3. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) {
		return e.defaults.Success
	}
	if typ, ok := ErrorTypeOf(err); ok {
		if code, found := e.codesByType[typ]; found {
			return code
		}
	}
	return e.defaults.GeneralError
}
