package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restaurant/backend/internal/domain/shared"
)

// User represents a person known to the restaurant.
// It is the aggregate root of the Person context. Besides the numeric
// surrogate ID it carries an opaque user code, the only identifier other
// contexts are allowed to hold.
type User struct {
	shared.BaseAggregateRoot
	UserCode  uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// NewUser creates a new user with a freshly generated user code
func NewUser(username string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserCode:          uuid.New(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// SetName sets the user's display name
func (u *User) SetName(first, last string) {
	u.FirstName = strings.TrimSpace(first)
	u.LastName = strings.TrimSpace(last)
	u.UpdatedAt = time.Now()
}

// SetEmail sets the user's email address
func (u *User) SetEmail(email string) error {
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if !strings.Contains(email, "@") || len(email) > 254 {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
		}
	}

	u.Email = email
	u.UpdatedAt = time.Now()

	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 || len(username) > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be between 3 and 50 characters")
	}
	return nil
}
