package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name     string
		roleName RoleName
		wantErr  bool
	}{
		{
			name:     "guest role",
			roleName: RoleGuest,
			wantErr:  false,
		},
		{
			name:     "admin role",
			roleName: RoleAdmin,
			wantErr:  false,
		},
		{
			name:     "empty name",
			roleName: RoleName(""),
			wantErr:  true,
		},
		{
			name:     "name outside catalog",
			roleName: RoleName("ROLE_CHEF"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := NewRole(tt.roleName)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, role)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, role)
			assert.Equal(t, tt.roleName, role.Name)
		})
	}
}

func TestNewRole_RecordsCreatedEvent(t *testing.T) {
	role, err := NewRole(RoleGuest)
	require.NoError(t, err)

	events := role.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeRoleCreated, events[0].EventType())
	assert.Equal(t, AggregateTypeRole, events[0].AggregateType())

	role.ClearDomainEvents()
	assert.Empty(t, role.GetDomainEvents())
}

func TestAllRoleNames_CoversCatalog(t *testing.T) {
	names := AllRoleNames()
	require.Len(t, names, 2)
	for _, name := range names {
		assert.True(t, name.IsValid())
	}
	assert.False(t, RoleName("ROLE_WAITER").IsValid())
}
