package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-05T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("05/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦1,000", FormatNaira(1000))
	assert.Equal(t, "₦0", FormatNaira(0))
	assert.Equal(t, "₦1,234.50", FormatNaira(1234.5))
}
