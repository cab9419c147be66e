package xds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestChecksum(t *testing.T) {
	assert.False(t, Checksum(nil))
	assert.False(t, Checksum([]Pair{}))
	assert.True(t, Checksum([]Pair{{0, 0}}))
	assert.False(t, Checksum([]Pair{{1, 0}}))
	// A value and its 7-bit complement cancel.
	assert.True(t, Checksum([]Pair{{5, 123}}))
}

// The checksum definition: valid iff the two's-complement byte sum is
// zero mod 128.
func TestChecksumProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")
		pairs := make([]Pair, n)
		sum := 0
		for i := range pairs {
			pairs[i] = Pair{
				B1: rapid.ByteMax(0x7F).Draw(t, "b1"),
				B2: rapid.ByteMax(0x7F).Draw(t, "b2"),
			}
			sum += twosComplement(pairs[i].B1) + twosComplement(pairs[i].B2)
		}
		if got, want := Checksum(pairs), sum&0x7F == 0; got != want {
			t.Fatalf("Checksum = %v, want %v (sum %d)", got, want, sum)
		}
	})
}

func TestDecodeString(t *testing.T) {
	r := &reader{pairs: []Pair{{'A', 'B'}, {'C', 'D'}, {0x0F, 0}}}
	assert.Equal(t, "ABCD", decodeString(r))

	assert.Equal(t, "", decodeString(&reader{}))
	assert.Equal(t, "", decodeString(&reader{pairs: []Pair{{0x0F, 0}}}))
}

func TestMinutesHours(t *testing.T) {
	minutes, hours, err := minutesHours(&reader{pairs: []Pair{{5 | 128, 5 | 128}}}, false)
	require.NoError(t, err)
	assert.Equal(t, 5, minutes)
	assert.Equal(t, 5, hours)

	_, _, err = minutesHours(&reader{}, false)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestContentAdvisory(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
		want string
	}{
		{"us tv 14", Pair{0x05, 0x05}, "XDS Rating: TV-14"},
		{"us tv 14 flags", Pair{0x25, 0x3D}, "XDS Rating: TV-14 Violence Sexual Situations Adult Language Sexually Suggestive Dialogue"},
		{"us tv y", Pair{0x01, 0x00}, "XDS Rating: TV-Y"},
		{"mpa pg", Pair{0x02, 0x00}, "XDS Rating: PG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := contentAdvisory(&reader{pairs: []Pair{tt.pair}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := contentAdvisory(&reader{})
	require.ErrorIs(t, err, ErrMalformed)
}

// The decodable packets below are drawn from a captured broadcast
// sequence and carry genuine checksums; the empty, bad-checksum and
// unknown-class cases are constructed.
func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		want  string
	}{
		{
			name: "empty",
			want: "XDS - Empty Packet",
		},
		{
			name:  "bad checksum",
			pairs: []Pair{{0x05, 0x02}, {0x43, 0x43}, {0x0F, 0x00}},
			want:  "XDS Rejected Packet - Incorrect Checksum",
		},
		{
			name:  "station call sign",
			pairs: []Pair{{0x05, 0x02}, {0x43, 0x43}, {0x54, 0x56}, {0x0F, 0x3A}},
			want:  "XDS Channel Station Call-Sign: CCTV",
		},
		{
			name: "channel name",
			pairs: []Pair{
				{0x05, 0x01}, {0x43, 0x6F}, {0x6D, 0x65}, {0x64, 0x79},
				{0x20, 0x43}, {0x65, 0x6E}, {0x74, 0x72}, {0x61, 0x6C}, {0x0F, 0x21},
			},
			want: "XDS Channel Name: Comedy Central",
		},
		{
			name:  "scheduled start time",
			pairs: []Pair{{0x01, 0x01}, {0x40, 0x48}, {0x57, 0x45}, {0x0F, 0x4B}},
			want:  "XDS Current Scheduled Start Time: 08:00 on Day 23 of Month 05 ",
		},
		{
			name:  "length and elapsed",
			pairs: []Pair{{0x01, 0x02}, {0x5D, 0x40}, {0x40, 0x40}, {0x0F, 0x51}},
			want:  "XDS Current Length of Show: 00:29 XDS Current Elapsed time: 00:00:15",
		},
		{
			name:  "content advisory",
			pairs: []Pair{{0x01, 0x05}, {0x48, 0x44}, {0x0F, 0x5F}},
			want:  "XDS Rating: N/A",
		},
		{
			name:  "unknown class",
			pairs: []Pair{{0x0B, 0x01}, {0x0F, 0x65}},
			want:  "Could not decode ---> XDS describes: 0b 01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeMalformed(t *testing.T) {
	// Program identification with no payload pairs at all. The packet
	// must be discarded, not crash the stream.
	_, err := Describe([]Pair{{0x01, 0x01}, {0x0F, 0x6F}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}
