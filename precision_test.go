package xcf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionRoundTrip(t *testing.T) {
	cases := []struct {
		version uint32
		prec    Precision
	}{
		{0, Precision{Depth: BitDepth8, Gamma: GammaPerceptual, Number: NumberInt}},
		{4, Precision{Depth: BitDepth8, Gamma: GammaPerceptual, Number: NumberInt}},
		{4, Precision{Depth: BitDepth16, Gamma: GammaPerceptual, Number: NumberInt}},
		{4, Precision{Depth: BitDepth32, Gamma: GammaLinear, Number: NumberInt}},
		{4, Precision{Depth: BitDepth32, Gamma: GammaLinear, Number: NumberFloat}},
		{5, Precision{Depth: BitDepth16, Gamma: GammaLinear, Number: NumberInt}},
		{5, Precision{Depth: BitDepth32, Gamma: GammaPerceptual, Number: NumberInt}},
		{5, Precision{Depth: BitDepth32, Gamma: GammaPerceptual, Number: NumberFloat}},
		{7, Precision{Depth: BitDepth64, Gamma: GammaLinear, Number: NumberFloat}},
	}
	for _, c := range cases {
		code, err := c.prec.Encode(c.version)
		require.NoError(t, err)
		got, err := DecodePrecision(c.version, code)
		require.NoError(t, err)
		require.Equal(t, c.prec, got)
	}
}

func TestPrecision64BitRequiresVersion7(t *testing.T) {
	p := Precision{Depth: BitDepth64, Gamma: GammaLinear, Number: NumberFloat}
	_, err := p.Encode(6)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = DecodePrecision(6, 550)
	require.ErrorIs(t, err, ErrUnknownPrecision)
}

func TestPrecisionUnknownCode(t *testing.T) {
	_, err := DecodePrecision(5, 999)
	require.ErrorIs(t, err, ErrUnknownPrecision)
}

// TestPrecisionCanonicalCodes pins the wire codes GIMP itself writes, so a
// regression back to the GIMP-2.10 enum values (1,2,3,5,7) instead of the
// code/100 index scheme (0,1,2,3,4,5) is caught directly.
func TestPrecisionCanonicalCodes(t *testing.T) {
	got, err := DecodePrecision(7, 50)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth8, Gamma: GammaPerceptual, Number: NumberInt}, got)

	got, err = DecodePrecision(11, 150)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth16, Gamma: GammaPerceptual, Number: NumberInt}, got)

	got, err = DecodePrecision(7, 0)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth8, Gamma: GammaLinear, Number: NumberInt}, got)

	got, err = DecodePrecision(11, 550)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth64, Gamma: GammaPerceptual, Number: NumberFloat}, got)
}

// TestPrecision32BitIntVsFloat pins that depthCode 2 (32-bit int) and
// depthCode 4 (32-bit float) decode to distinct Precision values sharing
// BitDepth32 but differing in Number, matching spec.md's (bits, gamma,
// numeric) triple.
func TestPrecision32BitIntVsFloat(t *testing.T) {
	intPrec, err := DecodePrecision(7, 200)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth32, Gamma: GammaLinear, Number: NumberInt}, intPrec)

	floatPrec, err := DecodePrecision(7, 400)
	require.NoError(t, err)
	require.Equal(t, Precision{Depth: BitDepth32, Gamma: GammaLinear, Number: NumberFloat}, floatPrec)

	require.NotEqual(t, intPrec, floatPrec)

	code, err := intPrec.Encode(7)
	require.NoError(t, err)
	require.Equal(t, uint32(200), code)

	code, err = floatPrec.Encode(7)
	require.NoError(t, err)
	require.Equal(t, uint32(400), code)
}

func TestPrecisionBytesPerChannel(t *testing.T) {
	require.Equal(t, 1, Precision{Depth: BitDepth8}.BytesPerChannel())
	require.Equal(t, 2, Precision{Depth: BitDepth16}.BytesPerChannel())
	require.Equal(t, 2, Precision{Depth: BitDepthHalf}.BytesPerChannel())
	require.Equal(t, 4, Precision{Depth: BitDepth32}.BytesPerChannel())
	require.Equal(t, 8, Precision{Depth: BitDepth64}.BytesPerChannel())
}
