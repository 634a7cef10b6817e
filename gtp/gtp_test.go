package gtp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSimple(t *testing.T) {
	data := `(gimp-tool-preset "My Preset" (opacity 100) (use-opacity yes) (paint-mode (layer-mode-normal)))`
	p, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, p.Values, 1)
	v := p.Values[0]
	require.Equal(t, "gimp-tool-preset", v.Type)
	require.Equal(t, "My Preset", v.Items[0])

	opacity, ok := v.Items[1].(*Value)
	require.True(t, ok)
	require.Equal(t, "opacity", opacity.Type)
	require.Equal(t, 100.0, opacity.Items[0])

	useOpacity, ok := v.Items[2].(*Value)
	require.True(t, ok)
	require.Equal(t, true, useOpacity.Items[0])

	paintMode, ok := v.Items[3].(*Value)
	require.True(t, ok)
	require.Equal(t, "paint-mode", paintMode.Type)
	nested, ok := paintMode.Items[0].(*Value)
	require.True(t, ok)
	require.Equal(t, "layer-mode-normal", nested.Type)
	require.Empty(t, nested.Items)
}

func TestRoundTrip(t *testing.T) {
	p := &Preset{Values: []*Value{{
		Type: "gimp-tool-preset",
		Items: []any{
			"Pencil",
			&Value{Type: "opacity", Items: []any{50.0}},
			&Value{Type: "antialias", Items: []any{false}},
		},
	}}}
	got, err := Decode(p.Encode())
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestUnterminatedForm(t *testing.T) {
	_, err := Decode([]byte("(gimp-tool-preset \"x\""))
	require.Error(t, err)
}
