package lemon

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Char is a single-character argument value. It is a distinct type so that
// character arguments are not confused with int32 ones.
type Char rune

// String returns the character itself.
func (c Char) String() string { return string(rune(c)) }

// Scalar lists every type the codec can decode from a token and encode back
// for help output.
type Scalar interface {
	string | Char |
		int | int32 | int64 |
		uint | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

// Decode converts a raw token into T. Integers accept an optional sign and a
// 0x/0X hex prefix; durations use time.ParseDuration syntax; a Char takes
// the first character of the token.
func Decode[T Scalar](token string) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = token
	case *Char:
		r, size := utf8.DecodeRuneInString(token)
		if size == 0 {
			return out, errors.Errorf("cannot decode empty token as %s", TypeName[T]())
		}
		*p = Char(r)
	case *int:
		var v int64
		v, err = parseSigned(token, strconv.IntSize)
		*p = int(v)
	case *int32:
		var v int64
		v, err = parseSigned(token, 32)
		*p = int32(v)
	case *int64:
		*p, err = parseSigned(token, 64)
	case *uint:
		var v uint64
		v, err = parseUnsigned(token, strconv.IntSize)
		*p = uint(v)
	case *uint32:
		var v uint64
		v, err = parseUnsigned(token, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = parseUnsigned(token, 64)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(token, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(token, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(token)
	}
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "cannot decode %q as %s", token, TypeName[T]())
	}
	return out, nil
}

// Encode renders a value the way help output shows it.
func Encode[T Scalar](value T) string {
	switch v := any(value).(type) {
	case string:
		return v
	case Char:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Duration:
		return v.String()
	}
	return ""
}

// EncodeList renders values as "[a, b, c]".
func EncodeList[T Scalar](values []T) string {
	return "[" + joinEncoded(values) + "]"
}

func joinEncoded[T Scalar](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Encode(v)
	}
	return strings.Join(parts, ", ")
}

// TypeName returns the user-facing name of T, used in conversion errors.
func TypeName[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case string:
		return "string"
	case Char:
		return "char"
	case int:
		return "int"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case time.Duration:
		return "duration"
	}
	return "unknown"
}

// splitHex strips an optional sign and reports whether the remaining digits
// carry a hex prefix. The returned digits keep the sign.
func splitHex(token string) (digits string, base int) {
	sign := ""
	rest := token
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign, rest = rest[:1], rest[1:]
	}
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		return sign + rest[2:], 16
	}
	return token, 10
}

func parseSigned(token string, bits int) (int64, error) {
	digits, base := splitHex(token)
	return strconv.ParseInt(digits, base, bits)
}

func parseUnsigned(token string, bits int) (uint64, error) {
	digits, base := splitHex(token)
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	return strconv.ParseUint(digits, base, bits)
}
