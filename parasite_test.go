package xcf

import (
	"testing"

	"github.com/TheHeadlessSourceMan/gimpFormats/internal/binutil"
	"github.com/stretchr/testify/require"
)

func TestParasiteRoundTrip(t *testing.T) {
	p := &Parasite{Name: "gimp-comment", Flags: 1, Data: []byte("hello world")}
	cur := binutil.NewWriter()
	p.encode(cur)

	r := binutil.NewReader(cur.Data)
	got := &Parasite{}
	require.NoError(t, got.decode(r))
	require.Equal(t, p, got)
	require.Equal(t, len(cur.Data), r.Pos)
}
