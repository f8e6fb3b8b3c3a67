package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64([]byte(tt.data)))
		})
	}
}

func TestNewDigest_MatchesSum64(t *testing.T) {
	d := NewDigest()
	_, err := d.Write([]byte("this is a longer "))
	require.NoError(t, err)
	_, err = d.WriteString("test string to hash")
	require.NoError(t, err)

	require.Equal(t, uint64(0x69275f7f7ee59dbd), d.Sum64())
}

func BenchmarkSum64(b *testing.B) {
	data := make([]byte, 256)
	for b.Loop() {
		Sum64(data)
	}
}
