package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
}

func TestValidateCheckIn(t *testing.T) {
	today := fixedNow()

	tests := []struct {
		name      string
		candidate time.Time
		wantErr   error
	}{
		{name: "yesterday rejected", candidate: day(2025, 6, 30), wantErr: ErrDateInPast},
		{name: "today allowed", candidate: day(2025, 7, 1), wantErr: nil},
		{name: "future allowed", candidate: day(2025, 7, 20), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckIn(tt.candidate, today)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCheckOut(t *testing.T) {
	today := fixedNow()
	checkIn := dayPtr(2025, 7, 20)

	tests := []struct {
		name      string
		candidate time.Time
		checkIn   *time.Time
		wantErr   error
	}{
		{name: "past rejected", candidate: day(2025, 6, 30), checkIn: checkIn, wantErr: ErrDateInPast},
		{name: "equal to check-in rejected", candidate: day(2025, 7, 20), checkIn: checkIn, wantErr: ErrInvalidDateOrder},
		{name: "before check-in rejected", candidate: day(2025, 7, 19), checkIn: checkIn, wantErr: ErrInvalidDateOrder},
		{name: "after check-in allowed", candidate: day(2025, 7, 23), checkIn: checkIn, wantErr: nil},
		{name: "no check-in yet allowed", candidate: day(2025, 7, 23), checkIn: nil, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckOut(tt.candidate, tt.checkIn, today)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelectCheckInAlwaysClearsCheckOut(t *testing.T) {
	d := NewDraft(Hotel{ID: "1", Name: "Elysium Gardens", NightlyRate: 100}, Defaults{}, fixedNow)

	require.NoError(t, d.SelectCheckIn(day(2025, 7, 20)))
	require.NoError(t, d.SelectCheckOut(day(2025, 7, 23)))
	require.NotNil(t, d.CheckOut())

	require.NoError(t, d.SelectCheckIn(day(2025, 7, 22)))

	assert.Nil(t, d.CheckOut(), "new check-in must clear any existing check-out")
	require.NotNil(t, d.CheckIn())
	assert.Equal(t, day(2025, 7, 22), *d.CheckIn())
}

func TestSelectCheckOutFailureLeavesDraftUnchanged(t *testing.T) {
	d := NewDraft(Hotel{ID: "1", NightlyRate: 100}, Defaults{}, fixedNow)

	require.NoError(t, d.SelectCheckIn(day(2025, 7, 20)))
	require.NoError(t, d.SelectCheckOut(day(2025, 7, 23)))

	err := d.SelectCheckOut(day(2025, 7, 20))

	assert.ErrorIs(t, err, ErrInvalidDateOrder)
	require.NotNil(t, d.CheckOut())
	assert.Equal(t, day(2025, 7, 23), *d.CheckOut(), "failed selection must not touch the stored check-out")
}

func TestSelectCheckInPastRejected(t *testing.T) {
	d := NewDraft(Hotel{ID: "1", NightlyRate: 100}, Defaults{}, fixedNow)

	err := d.SelectCheckIn(day(2025, 6, 1))

	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Nil(t, d.CheckIn())
}
