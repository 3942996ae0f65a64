package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnoozeArithmetic(t *testing.T) {
	s := newTestService(t)

	in := validInput()
	in.DueDate = datePtr(2024, 6, 1)
	in.DueTime = strPtr("10:00")
	created := mustCreate(t, s, in)

	snoozed, err := s.Snooze(testUserID, created.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", snoozed.DueDate.Format("2006-01-02"))
	assert.Equal(t, "12:00:00", *snoozed.DueTime)
}

func TestSnoozeMissingDueFieldsUsesClock(t *testing.T) {
	s := newTestService(t)

	created := mustCreate(t, s, validInput())

	// fixedNow is 2024-06-01 21:30. Three hours wrap past midnight, but with
	// days=0 the date stays on today.
	snoozed, err := s.Snooze(testUserID, created.ID, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", snoozed.DueDate.Format("2006-01-02"))
	assert.Equal(t, "00:30:00", *snoozed.DueTime)
}

func TestSnoozeHourWrapDoesNotBumpDate(t *testing.T) {
	s := newTestService(t)

	in := validInput()
	in.DueDate = datePtr(2024, 6, 1)
	in.DueTime = strPtr("23:00")
	created := mustCreate(t, s, in)

	snoozed, err := s.Snooze(testUserID, created.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", snoozed.DueDate.Format("2006-01-02"))
	assert.Equal(t, "01:00:00", *snoozed.DueTime)
}

func TestSnoozeDaysOnlyKeepsDueTime(t *testing.T) {
	s := newTestService(t)

	in := validInput()
	in.DueDate = datePtr(2024, 6, 1)
	in.DueTime = strPtr("10:15")
	created := mustCreate(t, s, in)

	snoozed, err := s.Snooze(testUserID, created.ID, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-04", snoozed.DueDate.Format("2006-01-02"))
	assert.Equal(t, "10:15:00", *snoozed.DueTime)
}

func TestSnoozeOnCompletedFails(t *testing.T) {
	s := newTestService(t)

	in := validInput()
	in.DueDate = datePtr(2024, 6, 1)
	created := mustCreate(t, s, in)
	_, err := s.Complete(testUserID, created.ID, true)
	require.NoError(t, err)

	_, err = s.Snooze(testUserID, created.ID, 1, 0)
	var nferr NotFoundError
	assert.ErrorAs(t, err, &nferr)

	unchanged, err := s.Get(testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", unchanged.DueDate.Format("2006-01-02"))
	assert.True(t, unchanged.IsCompleted)
}

func TestSnoozeUnknownID(t *testing.T) {
	s := newTestService(t)

	_, err := s.Snooze(testUserID, 99, 1, 0)
	var nferr NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestSnoozeValidation(t *testing.T) {
	s := newTestService(t)
	created := mustCreate(t, s, validInput())

	var verr ValidationError
	_, err := s.Snooze(testUserID, created.ID, -1, 0)
	assert.ErrorAs(t, err, &verr)
	_, err = s.Snooze(testUserID, created.ID, 0, -1)
	assert.ErrorAs(t, err, &verr)
	_, err = s.Snooze(testUserID, created.ID, 0, 0)
	assert.ErrorAs(t, err, &verr)
}

// Snooze applies a relative offset on every call, so a repeated request
// compounds the delay rather than being idempotent.
func TestSnoozeCompounds(t *testing.T) {
	s := newTestService(t)

	in := validInput()
	in.DueDate = datePtr(2024, 6, 1)
	in.DueTime = strPtr("09:00")
	created := mustCreate(t, s, in)

	_, err := s.Snooze(testUserID, created.ID, 1, 0)
	require.NoError(t, err)
	snoozed, err := s.Snooze(testUserID, created.ID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", snoozed.DueDate.Format("2006-01-02"))
}

func TestSnoozeDoesNotTouchOtherFields(t *testing.T) {
	s := newTestService(t)

	in := withPriority("high")
	in.DueDate = datePtr(2024, 6, 1)
	created := mustCreate(t, s, in)

	snoozed, err := s.Snooze(testUserID, created.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, created.Priority, snoozed.Priority)
	assert.Equal(t, created.Module, snoozed.Module)
	assert.False(t, snoozed.IsCompleted)
}
