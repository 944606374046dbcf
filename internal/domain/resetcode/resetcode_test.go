//go:build unit

package resetcode_test

import (
	"strconv"
	"testing"
	"time"

	"dryclean-api/internal/domain/resetcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoGenerator(t *testing.T) {
	gen := resetcode.NewCryptoGenerator()
	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
		assert.True(t, resetcode.IsWellFormed(code))
	}
}

func TestResetCode(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("usable until expiry", func(t *testing.T) {
		rc, err := resetcode.NewResetCode(1, "123456", now, resetcode.DefaultTTL)
		require.NoError(t, err)

		assert.Equal(t, now.Add(10*time.Minute), rc.ExpiresAt())
		assert.True(t, rc.IsUsable(now.Add(9*time.Minute)))
		assert.False(t, rc.IsUsable(now.Add(10*time.Minute)))
	})

	t.Run("used code is not usable", func(t *testing.T) {
		rc := resetcode.ReconstructResetCode(1, 1, "123456", now.Add(time.Hour), true, now)
		assert.False(t, rc.IsUsable(now))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := resetcode.NewResetCode(1, "12345", now, time.Minute)
		require.ErrorIs(t, err, resetcode.ErrInvalidCode)

		_, err = resetcode.NewResetCode(1, "123456", now, 0)
		require.ErrorIs(t, err, resetcode.ErrInvalidTTL)

		assert.False(t, resetcode.IsWellFormed("012345"))
	})
}
