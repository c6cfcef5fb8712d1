//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := IntToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestNarrowUnsigned(t *testing.T) {
	t.Run("fits uint8", func(t *testing.T) {
		got, err := NarrowUnsigned[uint8](255)
		assert.NoError(t, err)
		assert.Equal(t, uint8(255), got)
	})

	t.Run("too large for uint8", func(t *testing.T) {
		_, err := NarrowUnsigned[uint8](256)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("uint64 passthrough", func(t *testing.T) {
		got, err := NarrowUnsigned[uint64](math.MaxUint64)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), got)
	})
}

func TestNarrowSigned(t *testing.T) {
	t.Run("fits int8", func(t *testing.T) {
		got, err := NarrowSigned[int8](-128)
		assert.NoError(t, err)
		assert.Equal(t, int8(-128), got)
	})

	t.Run("too small for int8", func(t *testing.T) {
		_, err := NarrowSigned[int8](-129)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("too large for int16", func(t *testing.T) {
		_, err := NarrowSigned[int16](math.MaxInt16 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestAddUint64(t *testing.T) {
	got, err := AddUint64(math.MaxUint64-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, err = AddUint64(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddInt64(t *testing.T) {
	got, err := AddInt64(math.MaxInt64-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = AddInt64(math.MaxInt64, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = AddInt64(math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err = AddInt64(-5, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(-2), got)
}
