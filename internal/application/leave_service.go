package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
	repo "github.com/oksasatya/peopledesk/internal/domain/repository"
)

// LeaveService tracks leave requests: creation with overlap checking, and
// owner-scoped listing and lookup.
type LeaveService struct {
	Repo   repo.LeaveRepository
	Logger *logrus.Logger
}

func NewLeaveService(r repo.LeaveRepository, logger *logrus.Logger) *LeaveService {
	return &LeaveService{Repo: r, Logger: logger}
}

type CreateLeaveInput struct {
	LeaveType entity.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// CreateLeave validates the window and records a PENDING request. A request
// may start at most 3 days in the past, and must not overlap any existing
// non-rejected request of the same user.
func (s *LeaveService) CreateLeave(ctx context.Context, userID string, in CreateLeaveInput) (*entity.Leave, error) {
	threeDaysAgo := time.Now().AddDate(0, 0, -3)
	if in.StartDate.Before(threeDaysAgo) {
		return nil, ErrLeaveTooOld
	}

	overlap, err := s.Repo.HasOverlap(userID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrLeaveOverlap
	}

	l := &entity.Leave{
		UserID:    userID,
		LeaveType: in.LeaveType,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Status:    entity.LeavePending,
	}
	if err := s.Repo.Create(l); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", userID).Info("leave request created")
	return l, nil
}

// LeavePage is one page of a user's leave history, newest first.
type LeavePage struct {
	Leaves     []*entity.Leave
	Total      int
	Page       int
	TotalPages int
}

func (s *LeaveService) ListLeaves(ctx context.Context, userID string, leaveType entity.LeaveType, page, limit int) (*LeavePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	leaves, total, err := s.Repo.ListByUser(userID, repo.LeaveFilter{LeaveType: leaveType, Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}
	totalPages := (total + limit - 1) / limit
	return &LeavePage{Leaves: leaves, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (s *LeaveService) GetLeave(ctx context.Context, leaveID, userID string) (*entity.Leave, error) {
	l, err := s.Repo.GetByID(leaveID, userID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeaveNotFound
	}
	return l, nil
}
