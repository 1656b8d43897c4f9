package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-BookingService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    types.TimeString
		wantErr bool
	}{
		{input: "10:00:00", want: "10:00:00"},
		{input: "10:00", want: "10:00:00"},
		{input: "23:59:59", want: "23:59:59"},
		{input: "00:00", want: "00:00:00"},
		{input: "", wantErr: true},
		{input: "25:00:00", wantErr: true},
		{input: "10:61", wantErr: true},
		{input: "not a time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2030, 6, 1, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, types.TimeString("09:30:15"), types.NewTimeString(moment))
}

func TestTimeString_Compare(t *testing.T) {
	a := types.TimeString("10:00:00")
	b := types.TimeString("10:30:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_CompareEndOfDay(t *testing.T) {
	assert.True(t, types.EndOfDay.IsAfter("23:59:59"))
	assert.True(t, types.TimeString("00:00:00").IsBefore(types.EndOfDay))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := types.TimeString("10:00:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00:00"), end)

	end, err = start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30:00"), end)

	end, err = types.TimeString("23:00:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, end)
}

func TestTimeString_AddMinutes_OutOfRange(t *testing.T) {
	_, err := types.TimeString("23:30:00").AddMinutes(60)
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)

	_, err = types.TimeString("00:30:00").AddMinutes(-60)
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, types.TimeString("10:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:30:00")))
	assert.Equal(t, types.TimeString("11:30:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2030, 6, 1, 12, 15, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("12:15:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := types.TimeString("10:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = types.TimeString("garbage").Value()
	assert.Error(t, err)
}
