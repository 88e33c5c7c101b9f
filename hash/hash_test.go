package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestSumMatchesBlake3(t *testing.T) {
	expected := blake3.Sum256([]byte("addressesamounts"))
	require.Equal(t, expected, Sum([]byte("addresses"), []byte("amounts")))
	require.Equal(t, expected, Sum([]byte("addressesamounts")))
}

func TestSumReusesHashers(t *testing.T) {
	first := Sum([]byte("a"))
	second := Sum([]byte("a"))
	require.Equal(t, first, second)
	require.NotEqual(t, first, Sum([]byte("b")))
}

func TestSumStrings(t *testing.T) {
	require.Equal(t, Sum([]byte("ab"), []byte("cd")), SumStrings("ab", "cd"))
	require.Equal(t, blake3.Sum256(nil), SumStrings())
}
