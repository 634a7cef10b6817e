package xcf

import (
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func u32p(v uint32) *uint32          { return &v }
func boolp(v bool) *bool             { return &v }
func i32p(v int32) *int32            { return &v }
func f32p(v float32) *float32        { return &v }
func compP(v CompressionMode) *CompressionMode { return &v }

func TestPropertyBagRoundTripEmpty(t *testing.T) {
	bag := &PropertyBag{}
	cur := binutil.NewReader(bag.Encode())
	got, err := DecodePropertyBag(cur, true)
	require.NoError(t, err)
	require.Equal(t, bag, got)
}

func TestPropertyBagRoundTripManyFields(t *testing.T) {
	bag := &PropertyBag{
		OpacityInt:  u32p(200),
		Visible:     boolp(true),
		Linked:      boolp(true),
		LockAlpha:   boolp(true),
		OffsetX:     i32p(-5),
		OffsetY:     i32p(10),
		Color:       &RGB8{R: 10, G: 20, B: 30},
		Compression: compP(CompressionZlib),
		Guides: []Guide{
			{Position: 100, Orientation: GuideHorizontal},
			{Position: 200, Orientation: GuideVertical},
		},
		ResolutionX: f32p(300),
		ResolutionY: f32p(300),
		Tattoo:      u32p(42),
		Parasites: []*Parasite{
			{Name: "p1", Flags: 1, Data: []byte{1, 2, 3}},
		},
		IsGroup:  true,
		ItemPath: []uint32{0, 2, 1},
		ColorTag: func() *ColorTag { c := ColorTagRed; return &c }(),
		Colormap: []RGB8{{1, 2, 3}, {4, 5, 6}},
	}
	cur := binutil.NewReader(bag.Encode())
	got, err := DecodePropertyBag(cur, true)
	require.NoError(t, err)
	require.Equal(t, bag, got)
}

func TestPropertyBagUnknownPropertyStrictFails(t *testing.T) {
	cur := binutil.NewWriter()
	cur.WriteU32(9999)
	cur.WriteU32(4)
	cur.WriteBytes([]byte{1, 2, 3, 4})
	cur.WriteU32(uint32(PropEnd))
	cur.WriteU32(0)

	_, err := DecodePropertyBag(binutil.NewReader(cur.Data), true)
	require.Error(t, err)
}

func TestPropertyBagUnknownPropertyLenientSkips(t *testing.T) {
	cur := binutil.NewWriter()
	cur.WriteU32(9999)
	cur.WriteU32(4)
	cur.WriteBytes([]byte{1, 2, 3, 4})
	cur.WriteU32(uint32(PropEnd))
	cur.WriteU32(0)

	got, err := DecodePropertyBag(binutil.NewReader(cur.Data), false)
	require.NoError(t, err)
	require.Equal(t, &PropertyBag{}, got)
}

func TestExpandedFlag(t *testing.T) {
	bag := &PropertyBag{}
	require.False(t, bag.Expanded())
	bag.SetExpanded(true)
	require.True(t, bag.Expanded())
	bag.SetExpanded(false)
	require.False(t, bag.Expanded())
}
