package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsBigEndian(t *testing.T) {
	require.True(t, IsBigEndian(Default()))
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestEngine_AppendMatchesPut(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		buf := engine.AppendUint32(nil, 0xCAFEBABE)
		require.Len(t, buf, 4)

		tmp := make([]byte, 4)
		engine.PutUint32(tmp, 0xCAFEBABE)
		require.Equal(t, tmp, buf)
		require.Equal(t, uint32(0xCAFEBABE), engine.Uint32(buf))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want binary.ByteOrder
		ok   bool
	}{
		{"", binary.BigEndian, true},
		{"big", binary.BigEndian, true},
		{"Big-Endian", binary.BigEndian, true},
		{"little", binary.LittleEndian, true},
		{" LITTLE ", binary.LittleEndian, true},
		{"middle", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			} else {
				require.Nil(t, got)
			}
		})
	}
}
