package auth

import (
	"context"
	"testing"

	"furnistore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_HashesPassword(t *testing.T) {
	repo := new(mockUserRepo)
	jwt := new(mockJWT)

	var stored *domain.User
	repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		copied := *u
		stored = &copied
	}).Return(nil)
	jwt.On("GenerateToken", int64(1), "client").Return("signed-token", nil)

	service := NewService(repo, jwt)

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Name:     "New User",
		Email:    "New@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	service := NewService(repo, new(mockJWT))

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	repo := new(mockUserRepo)
	jwt := new(mockJWT)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           5,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}, nil)
	jwt.On("GenerateToken", int64(5), "admin").Return("signed-token", nil)

	service := NewService(repo, jwt)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           5,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(repo, new(mockJWT))

	_, _, err = service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, new(mockJWT))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Update_PartialFields(t *testing.T) {
	repo := new(mockUserRepo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:   5,
		Name: "Before",
		Role: domain.RoleClient,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(mockJWT))

	user, err := service.Update(context.Background(), 5, UpdateUserRequest{Name: "After"})

	require.NoError(t, err)
	assert.Equal(t, "After", user.Name)
	assert.Equal(t, domain.RoleClient, user.Role)
}

func TestService_Delete_UnknownUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, new(mockJWT))

	err := service.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrUserNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
