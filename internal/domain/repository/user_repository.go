package repository

import "github.com/oksasatya/peopledesk/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// GetByID and GetByEmail return (nil, nil) when no row matches so callers can
// distinguish "absent" from infrastructure failure.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}
