package networkparser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/wirenet/pkg"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scenario = `4
0 1 copper 100 230000000
1 2 OPTICAL 50 200000000

0 2 Copper 10 460000000
2 3 copper 100 230000000
`

func TestParse(t *testing.T) {
	p := NewNetworkParser(zap.NewNop())
	g, err := p.Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumberOfVertices())
	assert.Equal(t, 4, g.NumberOfWires())

	bucket := g.Adjacent(2)
	require.Len(t, bucket, 3)
	assert.Equal(t, pkg.OPTICAL, bucket[0].GetMedium())
	assert.Equal(t, 50, bucket[0].GetBandwidth())
	assert.Equal(t, pkg.COPPER, bucket[1].GetMedium())
	assert.Equal(t, 460000000, bucket[1].GetRawLength())
	assert.Equal(t, da.Index(3), bucket[2].Other(2))
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty input", input: "", wantErr: ErrMalformedLine},
		{name: "vertex count not a number", input: "four\n", wantErr: ErrMalformedLine},
		{name: "negative vertex count", input: "-1\n", wantErr: ErrMalformedLine},
		{name: "missing field", input: "2\n0 1 copper 10\n", wantErr: ErrMalformedLine},
		{name: "bandwidth not a number", input: "2\n0 1 copper ten 10\n", wantErr: ErrMalformedLine},
		{name: "unknown medium", input: "2\n0 1 wireless 10 10\n", wantErr: ErrUnknownMedium},
		{name: "vertex out of range", input: "2\n0 2 copper 10 10\n", wantErr: ErrMalformedLine},
		{name: "self loop", input: "2\n1 1 copper 10 10\n", wantErr: ErrMalformedLine},
		{name: "zero bandwidth", input: "2\n0 1 copper 0 10\n", wantErr: ErrMalformedLine},
		{name: "negative length", input: "2\n0 1 optical 10 -5\n", wantErr: ErrMalformedLine},
	}

	p := NewNetworkParser(zap.NewNop())
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseValidationMessage(t *testing.T) {
	p := NewNetworkParser(zap.NewNop())
	_, err := p.Parse(strings.NewReader("2\n0 1 copper 0 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "bandwidth")
}

func TestWriteGraphRoundTrip(t *testing.T) {
	p := NewNetworkParser(zap.NewNop())
	g, err := p.Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(&buf, g))

	again, err := p.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Wires(), again.Wires())
}

func TestGraphFileRoundTrip(t *testing.T) {
	p := NewNetworkParser(zap.NewNop())
	g, err := p.Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	for _, name := range []string{"network.txt", "network.txt.bz2"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteGraphFile(filename, g))

			again, err := p.ParseFile(filename)
			require.NoError(t, err)
			assert.Equal(t, g.NumberOfVertices(), again.NumberOfVertices())
			assert.Equal(t, g.Wires(), again.Wires())
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	p := NewNetworkParser(zap.NewNop())
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var uerr *util.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, util.ErrNotFound, uerr.Code())
}
