package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "a"))
	assert.False(t, ContainsString([]string{}, "a"))
	assert.False(t, ContainsString([]string{"a", "b"}, "c"))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	require.Len(t, s, 8)
	for _, r := range s {
		require.True(t, r >= 'a' && r <= 'z')
	}
}
