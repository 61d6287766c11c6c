package lemon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntegers(t *testing.T) {
	v, err := Decode[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	i32, err := Decode[int32]("-7")
	require.NoError(t, err)
	assert.Equal(t, int32(-7), i32)

	i64, err := Decode[int64]("0xFF")
	require.NoError(t, err)
	assert.Equal(t, int64(255), i64)

	neg, err := Decode[int64]("-0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(-16), neg)

	u32, err := Decode[uint32]("+4000000000")
	require.NoError(t, err)
	assert.Equal(t, uint32(4000000000), u32)

	u64, err := Decode[uint64]("0X1f")
	require.NoError(t, err)
	assert.Equal(t, uint64(31), u64)
}

func TestDecodeRangeAndSyntaxErrors(t *testing.T) {
	_, err := Decode[int32]("3000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot decode "3000000000" as int32`)

	_, err = Decode[uint64]("-1")
	require.Error(t, err)

	_, err = Decode[int]("four")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "as int")

	_, err = Decode[float64]("1.2.3")
	require.Error(t, err)
}

func TestDecodeOtherScalars(t *testing.T) {
	s, err := Decode[string]("")
	require.NoError(t, err)
	assert.Equal(t, "", s)

	c, err := Decode[Char]("xyz")
	require.NoError(t, err)
	assert.Equal(t, Char('x'), c)

	c, err = Decode[Char]("ñandu")
	require.NoError(t, err)
	assert.Equal(t, Char('ñ'), c)

	_, err = Decode[Char]("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "char")

	f32, err := Decode[float32]("2.5")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f32)

	d, err := Decode[time.Duration]("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "4", Encode(4))
	assert.Equal(t, "-3", Encode(int32(-3)))
	assert.Equal(t, "18446744073709551615", Encode(^uint64(0)))
	assert.Equal(t, "2.5", Encode(float32(2.5)))
	assert.Equal(t, "0.1", Encode(0.1))
	assert.Equal(t, "q", Encode(Char('q')))
	assert.Equal(t, "1m30s", Encode(90*time.Second))
	assert.Equal(t, "text", Encode("text"))
}

func TestEncodeList(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", EncodeList([]int{1, 2, 3}))
	assert.Equal(t, "[]", EncodeList([]string{}))
	assert.Equal(t, "[a]", EncodeList([]string{"a"}))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "char", TypeName[Char]())
	assert.Equal(t, "int32", TypeName[int32]())
	assert.Equal(t, "duration", TypeName[time.Duration]())
	assert.Equal(t, "uint", TypeName[uint]())
}
