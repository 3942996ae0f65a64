package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyedaFakhiraSaghir/Personal-Assistant/models"
)

func mustCreate(t *testing.T, s *Service, in Input) *models.Notification {
	t.Helper()
	n, err := s.Create(testUserID, in)
	require.NoError(t, err)
	return n
}

func withPriority(p string) Input {
	in := validInput()
	in.Priority = p
	return in
}

func TestUpcomingPriorityOrder(t *testing.T) {
	s := newTestService(t)

	mustCreate(t, s, withPriority(models.PriorityLow))
	mustCreate(t, s, withPriority(models.PriorityHigh))
	mustCreate(t, s, withPriority(models.PriorityMedium))

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.PriorityHigh, rows[0].Priority)
	assert.Equal(t, models.PriorityMedium, rows[1].Priority)
	assert.Equal(t, models.PriorityLow, rows[2].Priority)
}

func TestUpcomingDateTieBreak(t *testing.T) {
	s := newTestService(t)

	later := withPriority(models.PriorityHigh)
	later.DueDate = datePtr(2024, 6, 3)
	mustCreate(t, s, later)

	earlier := withPriority(models.PriorityHigh)
	earlier.DueDate = datePtr(2024, 6, 1)
	mustCreate(t, s, earlier)

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06-01", rows[0].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-03", rows[1].DueDate.Format("2006-01-02"))
}

func TestUpcomingNoDateSortsLast(t *testing.T) {
	s := newTestService(t)

	undated := withPriority(models.PriorityHigh)
	mustCreate(t, s, undated)

	dated := withPriority(models.PriorityHigh)
	dated.DueDate = datePtr(2024, 6, 10)
	mustCreate(t, s, dated)

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotNil(t, rows[0].DueDate)
	assert.Nil(t, rows[1].DueDate)
}

func TestUpcomingTimeTieBreak(t *testing.T) {
	s := newTestService(t)

	evening := withPriority(models.PriorityHigh)
	evening.DueDate = datePtr(2024, 6, 5)
	evening.DueTime = strPtr("18:00")
	mustCreate(t, s, evening)

	untimed := withPriority(models.PriorityHigh)
	untimed.DueDate = datePtr(2024, 6, 5)
	mustCreate(t, s, untimed)

	morning := withPriority(models.PriorityHigh)
	morning.DueDate = datePtr(2024, 6, 5)
	morning.DueTime = strPtr("09:00")
	mustCreate(t, s, morning)

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "09:00:00", *rows[0].DueTime)
	assert.Equal(t, "18:00:00", *rows[1].DueTime)
	assert.Nil(t, rows[2].DueTime)
}

func TestUpcomingExcludesCompleted(t *testing.T) {
	s := newTestService(t)

	open := mustCreate(t, s, withPriority(models.PriorityLow))
	done := mustCreate(t, s, withPriority(models.PriorityHigh))
	_, err := s.Complete(testUserID, done.ID, true)
	require.NoError(t, err)

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, open.ID, rows[0].ID)
}

func TestUpcomingExcludesPastDue(t *testing.T) {
	s := newTestService(t)

	past := validInput()
	past.DueDate = datePtr(2024, 5, 31)
	mustCreate(t, s, past)

	today := validInput()
	today.DueDate = datePtr(2024, 6, 1)
	wantToday := mustCreate(t, s, today)

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, wantToday.ID, rows[0].ID)
}

func TestUpcomingRespectsLimit(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 8; i++ {
		mustCreate(t, s, validInput())
	}

	rows, err := s.Upcoming(testUserID, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestUpcomingRejectsNonPositiveLimit(t *testing.T) {
	s := newTestService(t)

	var verr ValidationError
	_, err := s.Upcoming(testUserID, 0)
	assert.ErrorAs(t, err, &verr)
	_, err = s.Upcoming(testUserID, -2)
	assert.ErrorAs(t, err, &verr)
}

func TestUpcomingPreservesCreationOrderOnTies(t *testing.T) {
	s := newTestService(t)

	first := mustCreate(t, s, withPriority(models.PriorityMedium))
	second := mustCreate(t, s, withPriority(models.PriorityMedium))

	rows, err := s.Upcoming(testUserID, DefaultUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
}

func TestListByModuleScoping(t *testing.T) {
	s := newTestService(t)
	const otherUser = "33333333-3333-3333-3333-333333333333"
	addUser(t, s, otherUser)

	mine := mustCreate(t, s, validInput())

	health := validInput()
	health.Module = models.ModuleHealth
	mustCreate(t, s, health)

	theirs, err := s.Create(otherUser, validInput())
	require.NoError(t, err)

	rows, err := s.ListByModule(testUserID, models.ModuleFinance, nil, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].ID)
	assert.NotEqual(t, theirs.ID, rows[0].ID)
}

func TestListByModuleCompletedFilter(t *testing.T) {
	s := newTestService(t)

	open := mustCreate(t, s, validInput())
	done := mustCreate(t, s, validInput())
	_, err := s.Complete(testUserID, done.ID, true)
	require.NoError(t, err)

	completed := true
	rows, err := s.ListByModule(testUserID, models.ModuleFinance, &completed, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, done.ID, rows[0].ID)

	completed = false
	rows, err = s.ListByModule(testUserID, models.ModuleFinance, &completed, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, open.ID, rows[0].ID)

	rows, err = s.ListByModule(testUserID, models.ModuleFinance, nil, "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListByModulePriorityFilter(t *testing.T) {
	s := newTestService(t)

	mustCreate(t, s, withPriority(models.PriorityLow))
	high := mustCreate(t, s, withPriority(models.PriorityHigh))

	rows, err := s.ListByModule(testUserID, models.ModuleFinance, nil, models.PriorityHigh)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, high.ID, rows[0].ID)
}

func TestListByModuleOrdersByDueDate(t *testing.T) {
	s := newTestService(t)

	undated := validInput()
	mustCreate(t, s, undated)

	late := validInput()
	late.DueDate = datePtr(2024, 6, 20)
	mustCreate(t, s, late)

	early := validInput()
	early.DueDate = datePtr(2024, 6, 2)
	early.DueTime = strPtr("07:00")
	mustCreate(t, s, early)

	rows, err := s.ListByModule(testUserID, models.ModuleFinance, nil, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-06-02", rows[0].DueDate.Format("2006-01-02"))
	assert.Equal(t, "2024-06-20", rows[1].DueDate.Format("2006-01-02"))
	assert.Nil(t, rows[2].DueDate)
}

func TestListByModuleRejectsUnknownModule(t *testing.T) {
	s := newTestService(t)

	var verr ValidationError
	_, err := s.ListByModule(testUserID, "chores", nil, "")
	assert.ErrorAs(t, err, &verr)
	_, err = s.ListByModule(testUserID, models.ModuleFinance, nil, "urgent")
	assert.ErrorAs(t, err, &verr)
}
