package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func newTestService(repo UserRepository) Service {
	return NewService(repo, "test-secret", 15*time.Minute)
}

func TestRegisterSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*auth.User")).Return(nil)

	svc := newTestService(repo)
	user, err := svc.Register("alice", "s3cret", "alice@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.NoError(t, VerifyPassword(user.Password, "s3cret"))
	repo.AssertExpectations(t)
}

func TestRegisterUsernameTaken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsername", "alice").Return(&User{Username: "alice"}, nil)

	svc := newTestService(repo)
	_, err := svc.Register("alice", "s3cret", "alice@example.com")

	assert.ErrorIs(t, err, ErrNameInUse)
}

func TestLoginAndValidateToken(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)

	stored := &User{ID: "11111111-1111-1111-1111-111111111111", Username: "alice", Password: hash, Role: "user"}
	repo := new(MockUserRepository)
	repo.On("FindByUsername", "alice").Return(stored, nil)

	svc := newTestService(repo)
	token, user, err := svc.Login("alice", "s3cret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, stored.ID, user.ID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByUsername", "alice").Return(&User{Username: "alice", Password: hash}, nil)

	svc := newTestService(repo)
	_, _, err = svc.Login("alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(repo)
	_, _, err := svc.Login("ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestService(repo)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
