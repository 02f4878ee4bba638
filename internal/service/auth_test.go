package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/testhelpers"
	"github.com/cookbookd/backend/internal/types"
)

const testSecret = "test-secret"

func TestSignupAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, types.SignupRequest{
		UserName: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)

	loggedIn, loginToken, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestSignupDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, types.SignupRequest{
		UserName: "alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, types.SignupRequest{
		UserName: "alice", Email: "other@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, service.ErrUserExists)

	_, _, err = svc.Signup(ctx, types.SignupRequest{
		UserName: "alice2", Email: "alice@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestSignupAfterAccountDeletion(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	first, _, err := svc.Signup(ctx, types.SignupRequest{
		UserName: "alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.User{}, first.ID).Error)

	// A soft-deleted account releases its username and email.
	second, _, err := svc.Signup(ctx, types.SignupRequest{
		UserName: "alice", Email: "alice@example.com", Password: "password456",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLoginFailures(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "bob", "bob@example.com", "password123")

	_, _, err := svc.Login(ctx, "bob@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// A soft-deleted account behaves exactly like an unknown one.
	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)
	_, _, err = svc.Login(ctx, "bob@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	_, err := svc.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	other := service.NewAuthService(db, nil, "other-secret")
	user := testhelpers.CreateTestUser(t, db, "carol", "carol@example.com", "password123")
	token, err := other.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestSignupGuardChecks(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewAuthService(db, nil, testSecret)
	ctx := context.Background()

	testhelpers.CreateTestUser(t, db, "dave", "dave@example.com", "password123")

	taken, err := svc.UserNameTaken(ctx, "dave")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = svc.UserNameTaken(ctx, "someone-else")
	require.NoError(t, err)
	assert.False(t, taken)

	registered, err := svc.EmailRegistered(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.True(t, registered)
}
