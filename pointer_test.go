package xcf

import (
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func TestPointerWidthByVersion(t *testing.T) {
	require.False(t, pointerWidth64(10))
	require.True(t, pointerWidth64(11))
}

func TestPointerRoundTrip32(t *testing.T) {
	cur := binutil.NewWriter()
	writePointer(cur, 5, 0x1234)
	require.Equal(t, 4, cur.Pos)
	r := binutil.NewReader(cur.Data)
	v, err := readPointer(r, 5)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1234), v)
}

func TestPointerRoundTrip64(t *testing.T) {
	cur := binutil.NewWriter()
	writePointer(cur, 11, 0x123456789)
	require.Equal(t, 8, cur.Pos)
	r := binutil.NewReader(cur.Data)
	v, err := readPointer(r, 11)
	require.NoError(t, err)
	require.Equal(t, uint64(0x123456789), v)
}

func TestPointerListZeroTerminated(t *testing.T) {
	cur := binutil.NewWriter()
	writePointer(cur, 5, 100)
	writePointer(cur, 5, 200)
	writePointer(cur, 5, 0)
	r := binutil.NewReader(cur.Data)
	list, err := readPointerList(r, 5)
	require.NoError(t, err)
	require.Equal(t, []uint64{100, 200}, list)
}

func TestPointerTargetSeeksWithinBuf(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 42, 43, 44}
	c, err := pointerTarget(buf, 4, 0, "test pointer")
	require.NoError(t, err)
	require.Equal(t, 4, c.Pos)
	b, err := c.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(42), b)
}

func TestPointerTargetOutOfRange(t *testing.T) {
	buf := []byte{1, 2, 3}
	_, err := pointerTarget(buf, 10, 0, "test pointer")
	require.ErrorIs(t, err, ErrPointerOutOfRange)
}
