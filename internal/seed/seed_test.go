package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
)

type memoryUsers struct {
	byEmail   map[string]models.User
	failEmail string
}

func (m *memoryUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) (int64, error) {
	if user.Email == m.failEmail {
		return 0, errors.New("insert failed")
	}
	user.ID = int64(len(m.byEmail) + 1)
	m.byEmail[user.Email] = *user
	return user.ID, nil
}

func TestCreateDefaultData_EmptyDatabase(t *testing.T) {
	users := &memoryUsers{byEmail: map[string]models.User{}}

	require.NoError(t, CreateDefaultData(context.Background(), users, zerolog.Nop()))

	alice := users.byEmail["alice@example.com"]
	bob := users.byEmail["bob@example.com"]
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, models.RoleStudent, alice.Role)
	assert.Equal(t, int64(2), bob.ID)
	assert.Equal(t, models.RoleTeacher, bob.Role)
}

func TestCreateDefaultData_Idempotent(t *testing.T) {
	users := &memoryUsers{byEmail: map[string]models.User{}}
	require.NoError(t, CreateDefaultData(context.Background(), users, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(context.Background(), users, zerolog.Nop()))
	assert.Len(t, users.byEmail, 2)
}

func TestCreateDefaultData_ContinuesPastFailures(t *testing.T) {
	users := &memoryUsers{byEmail: map[string]models.User{}, failEmail: "alice@example.com"}

	err := CreateDefaultData(context.Background(), users, zerolog.Nop())
	assert.ErrorContains(t, err, "alice@example.com")
	assert.Contains(t, users.byEmail, "bob@example.com")
}
