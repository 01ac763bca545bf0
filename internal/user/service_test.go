package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/auth"
)

const testSecret = "test-secret"

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, name, email, passwordHash string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestSignup_Success(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "john@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, "John Doe", "john@example.com", mock.AnythingOfType("string")).
		Return(&User{ID: 1, Name: "John Doe", Email: "john@example.com", IsActive: true}, nil)

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 1, resp.User.ID)

	claims, err := auth.ValidateToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)

	repo.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "john@example.com").Return(true, nil)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "john@example.com").
		Return(&User{ID: 1, Email: "john@example.com", PasswordHash: hash, IsActive: true}, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "john@example.com").
		Return(&User{ID: 1, Email: "john@example.com", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "john@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, assert.AnError)

	// unknown email and wrong password are indistinguishable to the caller
	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	refreshToken, err := auth.GenerateRefreshToken(1, "john@example.com", testSecret)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, 1).
		Return(&User{ID: 1, Email: "john@example.com", IsActive: true}, nil)

	newAccess, user, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := auth.ValidateToken(newAccess, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	repo := new(MockRepo)
	svc := NewService(repo, testSecret)

	accessToken, err := auth.GenerateAccessToken(1, "john@example.com", testSecret)
	require.NoError(t, err)

	_, _, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidTokenType)
	repo.AssertNotCalled(t, "FindByID")
}
