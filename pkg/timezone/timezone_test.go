package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, zone string) *Clock {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)

	// 2024-03-15 02:30 UTC = 2024-03-14 23:30 em São Paulo
	now := time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC)
	return New(loc, WithNow(func() time.Time { return now }))
}

func TestClock_TodayAndBoundaries(t *testing.T) {
	c := fixedClock(t, "America/Sao_Paulo")

	today := c.Today()
	assert.Equal(t, 14, today.Day())
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, "America/Sao_Paulo", today.Location().String())

	end := c.EndOfDay(today)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 14, end.Day())

	assert.Equal(t, 7, c.DaysAgo(7).Day())
	assert.Equal(t, 15, c.DaysFromNow(1).Day())
}

func TestClock_AwareNaive(t *testing.T) {
	c := fixedClock(t, "America/Sao_Paulo")

	naive := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	aware := c.MakeAware(naive)
	assert.Equal(t, 12, aware.Hour())
	assert.Equal(t, 15, aware.UTC().Hour())

	back := c.MakeNaive(aware)
	assert.True(t, back.Equal(naive))
}

func TestClock_ParseDate(t *testing.T) {
	c := fixedClock(t, "UTC")

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-02-01", want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{input: "2024-02-01 10:20:30", want: time.Date(2024, 2, 1, 10, 20, 30, 0, time.UTC)},
		{input: "2024-02-01T10:20:30-03:00", want: time.Date(2024, 2, 1, 13, 20, 30, 0, time.UTC)},
		{input: "01/02/2024", want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{input: "", wantErr: true},
		{input: "ontem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestClock_PastFutureAndUserTimezone(t *testing.T) {
	c := fixedClock(t, "UTC")

	assert.True(t, c.IsPast(c.DatetimeAgo(time.Hour)))
	assert.True(t, c.IsFuture(c.DatetimeFromNow(time.Minute)))

	tokyo := "Asia/Tokyo"
	invalid := "Nowhere/City"
	assert.Equal(t, "Asia/Tokyo", c.UserLocation(&tokyo).String())
	assert.Equal(t, "UTC", c.UserLocation(&invalid).String())
	assert.Equal(t, "UTC", c.UserLocation(nil).String())

	converted := c.ToUserTimezone(c.Now(), &tokyo)
	assert.Equal(t, 11, converted.Hour())

	assert.Equal(t, "2024-03-15 02:30:00", c.FormatDateTime(c.Now(), ""))
	assert.Equal(t, "", c.FormatDateTime(time.Time{}, ""))
}
