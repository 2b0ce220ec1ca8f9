package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}

func TestCompressionType_IsValid(t *testing.T) {
	require.False(t, CompressionType(0).IsValid())
	require.True(t, CompressionNone.IsValid())
	require.True(t, CompressionLZ4.IsValid())
	require.False(t, CompressionType(5).IsValid())
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"listings.csv", CompressionNone},
		{"listings", CompressionNone},
		{"listings.csv.zst", CompressionZstd},
		{"LISTINGS.CSV.ZSTD", CompressionZstd},
		{"dump.jsonl.s2", CompressionS2},
		{"dump.sz", CompressionS2},
		{"/var/data/systems.lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, DetectCompression(tt.path))
		})
	}
}

func TestParseCompression(t *testing.T) {
	ct, ok := ParseCompression(" ZSTD ")
	require.True(t, ok)
	require.Equal(t, CompressionZstd, ct)

	ct, ok = ParseCompression("")
	require.True(t, ok)
	require.Equal(t, CompressionNone, ct)

	_, ok = ParseCompression("gzip")
	require.False(t, ok)
}
