package xcf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlendModeName(t *testing.T) {
	require.Equal(t, "Normal (legacy)", BlendModeName(0))
	require.NotEmpty(t, BlendModeName(28))
}

func TestBlendModeNameUnknown(t *testing.T) {
	require.Equal(t, "Unknown blend mode 9999", BlendModeName(9999))
}
