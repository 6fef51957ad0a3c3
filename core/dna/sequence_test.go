package dna

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceInclusive(t *testing.T) {
	s := New("ACGTACGT")

	got, err := s.Slice(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "CGT", got)

	got, err = s.Slice(1, 8)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGT", got)

	got, err = s.Slice(5, 5)
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestSliceBounds(t *testing.T) {
	s := New("ACGTACGTAC") // length 10

	cases := []struct {
		name       string
		start, end uint
	}{
		{"zero start", 0, 3},
		{"end past length", 1, 100},
		{"start past end", 6, 2},
		{"both past length", 11, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Slice(tc.start, tc.end)
			var oob *OutOfBoundsError
			require.ErrorAs(t, err, &oob)
		})
	}
}

func TestAt(t *testing.T) {
	s := New("ACGT")

	b, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), b)

	b, err = s.At(4)
	require.NoError(t, err)
	assert.Equal(t, byte('T'), b)

	_, err = s.At(0)
	assert.Error(t, err)
	_, err = s.At(5)
	var oob *OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 4, oob.Length)
}
