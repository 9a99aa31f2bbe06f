package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osumi/utils/pkg/utils"
)

func TestDateJSON(t *testing.T) {
	d := Date{Time: time.Date(2023, 1, 18, 10, 42, 0, 0, time.Local)}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-18"`, string(data))

	var got Date
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Equal(time.Date(2023, 1, 18, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2023-01-18", got.String())
}

func TestDateJSONRoundTripEarlyYears(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{"zero", Date{}, `"0001-01-01"`},
		{"year 999", Date{Time: time.Date(999, 5, 1, 0, 0, 0, 0, time.Local)}, `"0999-05-01"`},
		{"year 45", Date{Time: time.Date(45, 12, 31, 0, 0, 0, 0, time.Local)}, `"0045-12-31"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var got Date
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.date.String(), got.String())
			assert.Equal(t, tt.date.Year(), got.Year())
		})
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"18/01/2023"`), &d))
	assert.Equal(t, "2023-01-18", d.String())

	err := json.Unmarshal([]byte(`"yesterday"`), &d)
	assert.ErrorIs(t, err, utils.ErrDateString)

	assert.Error(t, json.Unmarshal([]byte(`12`), &d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-01-18")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-18", d.String())

	later, err := ParseDate("19/01/2023")
	require.NoError(t, err)
	assert.True(t, later.After(d))
	assert.False(t, d.After(later))

	_, err = ParseDate("nope")
	assert.ErrorIs(t, err, utils.ErrDateString)
}
