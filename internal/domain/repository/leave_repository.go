package repository

import (
	"time"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
)

// LeaveFilter narrows ListByUser. Zero values mean "no filter" / defaults.
type LeaveFilter struct {
	LeaveType entity.LeaveType
	Page      int
	Limit     int
}

// LeaveRepository defines the interface for leave-request persistence.
// GetByID is owner-scoped: a leave belonging to another user is reported as
// absent, not forbidden.
type LeaveRepository interface {
	Create(l *entity.Leave) error
	GetByID(id, userID string) (*entity.Leave, error)
	ListByUser(userID string, f LeaveFilter) ([]*entity.Leave, int, error)
	// HasOverlap reports whether the user already has a non-rejected leave
	// whose inclusive date range intersects [start, end].
	HasOverlap(userID string, start, end time.Time) (bool, error)
}
