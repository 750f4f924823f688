package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	require.NoError(t, err)
	require.Len(t, otp, 4)
	n, err := strconv.Atoi(otp)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.LessOrEqual(t, n, 9999)
}

func TestGenerateOTPCoversFullRange(t *testing.T) {
	// A single random byte would cap every code at 0255. Over a few hundred
	// draws the odds of never exceeding that by chance are astronomically
	// small, so a failure here means the entropy source is too narrow.
	max := 0
	for i := 0; i < 300; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		if n > max {
			max = n
		}
	}
	assert.Greater(t, max, 255)
}

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference()
	assert.Len(t, ref, 8)
	assert.NotEqual(t, ref, GenerateReference())
}
