package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
)

func newLeaveFixture() (*LeaveService, *fakeLeaveRepo) {
	leaves := newFakeLeaveRepo()
	return NewLeaveService(leaves, testLogger()), leaves
}

func day(offset int) time.Time {
	return time.Now().AddDate(0, 0, offset).Truncate(time.Hour)
}

func TestCreateLeave(t *testing.T) {
	svc, _ := newLeaveFixture()

	l, err := svc.CreateLeave(context.Background(), "user-1", CreateLeaveInput{
		LeaveType: entity.LeavePlanned,
		StartDate: day(7),
		EndDate:   day(9),
		Reason:    "family trip out of town",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, entity.LeavePending, l.Status)
	assert.Equal(t, "user-1", l.UserID)
}

func TestCreateLeaveTooOld(t *testing.T) {
	svc, _ := newLeaveFixture()

	// up to 3 days back is accepted, older is not
	_, err := svc.CreateLeave(context.Background(), "user-1", CreateLeaveInput{
		LeaveType: entity.LeaveEmergency,
		StartDate: day(-2),
		EndDate:   day(1),
		Reason:    "came down with the flu",
	})
	assert.NoError(t, err)

	_, err = svc.CreateLeave(context.Background(), "user-1", CreateLeaveInput{
		LeaveType: entity.LeaveEmergency,
		StartDate: day(-5),
		EndDate:   day(-4),
		Reason:    "retroactive leave request",
	})
	assert.ErrorIs(t, err, ErrLeaveTooOld)
}

func TestCreateLeaveOverlap(t *testing.T) {
	svc, leaves := newLeaveFixture()
	ctx := context.Background()

	_, err := svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeavePlanned,
		StartDate: day(10),
		EndDate:   day(14),
		Reason:    "family trip out of town",
	})
	require.NoError(t, err)

	// touching the window on either edge is still an overlap (inclusive range)
	_, err = svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeaveEmergency,
		StartDate: day(14),
		EndDate:   day(16),
		Reason:    "urgent family matter",
	})
	assert.ErrorIs(t, err, ErrLeaveOverlap)

	// another user is unaffected
	_, err = svc.CreateLeave(ctx, "user-2", CreateLeaveInput{
		LeaveType: entity.LeavePlanned,
		StartDate: day(10),
		EndDate:   day(14),
		Reason:    "parallel vacation request",
	})
	assert.NoError(t, err)

	// a rejected request does not block the window
	leaves.leaves[0].Status = entity.LeaveRejected
	_, err = svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeavePlanned,
		StartDate: day(10),
		EndDate:   day(14),
		Reason:    "resubmitting rejected dates",
	})
	assert.NoError(t, err)
}

func TestListLeavesPagination(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
			LeaveType: entity.LeavePlanned,
			StartDate: day(10 * (i + 1)),
			EndDate:   day(10*(i+1) + 2),
			Reason:    "planned leave for testing",
		})
		require.NoError(t, err)
	}

	page, err := svc.ListLeaves(ctx, "user-1", "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Leaves, 2)

	page, err = svc.ListLeaves(ctx, "user-1", "", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page.Leaves, 1)

	// out-of-range pages come back empty, not as an error
	page, err = svc.ListLeaves(ctx, "user-1", "", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Leaves)

	// nonsense paging params fall back to defaults
	page, err = svc.ListLeaves(ctx, "user-1", "", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Leaves, 5)
}

func TestListLeavesTypeFilter(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	_, err := svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeavePlanned, StartDate: day(10), EndDate: day(12),
		Reason: "planned leave for testing",
	})
	require.NoError(t, err)
	_, err = svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeaveEmergency, StartDate: day(20), EndDate: day(21),
		Reason: "emergency leave for testing",
	})
	require.NoError(t, err)

	page, err := svc.ListLeaves(ctx, "user-1", entity.LeaveEmergency, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Leaves, 1)
	assert.Equal(t, entity.LeaveEmergency, page.Leaves[0].LeaveType)
}

func TestGetLeaveOwnerScoped(t *testing.T) {
	svc, _ := newLeaveFixture()
	ctx := context.Background()

	l, err := svc.CreateLeave(ctx, "user-1", CreateLeaveInput{
		LeaveType: entity.LeavePlanned, StartDate: day(10), EndDate: day(12),
		Reason: "planned leave for testing",
	})
	require.NoError(t, err)

	got, err := svc.GetLeave(ctx, l.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	// someone else's leave is reported as absent, not forbidden
	_, err = svc.GetLeave(ctx, l.ID, "user-2")
	assert.ErrorIs(t, err, ErrLeaveNotFound)

	_, err = svc.GetLeave(ctx, "no-such-leave", "user-1")
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}
