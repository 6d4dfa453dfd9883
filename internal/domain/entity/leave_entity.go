package entity

import "time"

type LeaveType string

const (
	LeavePlanned   LeaveType = "PLANNED"
	LeaveEmergency LeaveType = "EMERGENCY"
)

func (t LeaveType) Valid() bool {
	return t == LeavePlanned || t == LeaveEmergency
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// Leave is a single leave request owned by a user. Date ranges are inclusive
// on both ends; two requests overlap when start <= other.end && end >= other.start.
type Leave struct {
	ID              string
	UserID          string
	LeaveType       LeaveType
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          LeaveStatus
	ApprovedBy      string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
