package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferenceCode(t *testing.T) {
	code, err := GenerateReferenceCode(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
	for _, ch := range code {
		assert.True(t, strings.ContainsRune(referenceCharset, ch), "unexpected character %q", ch)
	}

	_, err = GenerateReferenceCode(0)
	assert.Error(t, err)
}

func TestTableQRCodeURL(t *testing.T) {
	assert.Equal(t, "/table/2/14", TableQRCodeURL(2, 14))
	// Stable format: printed stickers depend on it.
	assert.Equal(t, "/table/1/1", TableQRCodeURL(1, 1))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "  ")
	assert.Equal(t, "fallback", EnvOrDefault("SOME_TEST_KEY", "fallback"))

	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("SOME_TEST_KEY", "fallback"))
}
