package calcom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/calcom"
)

func TestDateLayout(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		format string
		want   string
	}{
		"empty":        {format: "", want: "2006-01-02"},
		"go layout":    {format: "02/01/2006", want: "02/01/2006"},
		"placeholders": {format: "YYYY-MM-DD", want: "2006-01-02"},
		"strftime":     {format: "%d.%m.%Y", want: "02.01.2006"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, calcom.DateLayout(tc.format))
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := calcom.NewDate(2024, time.January, 15)
	assert.Equal(t, "2024-01-15", calcom.FormatDate(d, ""))
	assert.Equal(t, "15/01/2024", calcom.FormatDate(d, "DD/MM/YYYY"))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := calcom.ParseDate("2024-01-15", "")
	require.NoError(t, err)
	assert.Equal(t, calcom.NewDate(2024, time.January, 15), d)

	_, err = calcom.ParseDate("15 January", "")
	assert.Error(t, err)
}
