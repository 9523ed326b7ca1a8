package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) *User {
	user, err := NewUser("mario.rossi")
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "mario.rossi",
			wantErr:  false,
		},
		{
			name:     "username is lowercased",
			username: "Mario.Rossi",
			wantErr:  false,
		},
		{
			name:     "empty username",
			username: "",
			wantErr:  true,
		},
		{
			name:     "too short",
			username: "ab",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "mario.rossi", user.Username)
			assert.NotEqual(t, uuid.Nil, user.UserCode)
		})
	}
}

func TestNewUser_AssignsDistinctUserCodes(t *testing.T) {
	a := createTestUser(t)
	b := createTestUser(t)
	assert.NotEqual(t, a.UserCode, b.UserCode)
}

func TestNewUser_RecordsCreatedEvent(t *testing.T) {
	user := createTestUser(t)

	events := user.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeUserCreated, events[0].EventType())

	created, ok := events[0].(*UserCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, user.UserCode, created.UserCode)
}

func TestUser_SetEmail(t *testing.T) {
	user := createTestUser(t)

	require.NoError(t, user.SetEmail("Mario@Example.com"))
	assert.Equal(t, "mario@example.com", user.Email)

	assert.Error(t, user.SetEmail("not-an-address"))
}
