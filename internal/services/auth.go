package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the salt rounds used for all stored password hashes.
const bcryptCost = 12

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrAdminAlreadyExists = errors.New("admin user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetAll(ctx context.Context) ([]models.UserDB, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email, role string) (*models.UserDB, error)
	Update(ctx context.Context, username string, upd models.UserUpdate) (bool, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles registration, login and user administration.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user. An empty role defaults to "user". The
// username is checked pre-emptively and the unique constraint is the
// backstop for concurrent registrations.
func (svc *AuthService) Register(ctx context.Context, username, password, email, role string) (*models.UserDB, error) {
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInvalidRole
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", username, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword), email, role)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a session token. A missing user
// and a wrong password are deliberately indistinguishable.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "username", username, "err", err)
		return "", err
	}

	return token, nil
}

// SetupAdmin creates the first admin account. It fails once any admin
// exists.
func (svc *AuthService) SetupAdmin(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	admins, err := svc.reader.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to count admins", "err", err)
		return nil, err
	}
	if admins > 0 {
		return nil, ErrAdminAlreadyExists
	}

	return svc.Register(ctx, username, password, email, models.RoleAdmin)
}

// ListUsers returns every user record.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a partial update, re-hashing the password when one is
// supplied. It reports whether a record was modified.
func (svc *AuthService) UpdateUser(ctx context.Context, username string, password, email, role *string) (bool, error) {
	if role != nil && *role != models.RoleAdmin && *role != models.RoleUser {
		return false, ErrInvalidRole
	}

	upd := models.UserUpdate{
		Email: email,
		Role:  role,
	}

	if password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return false, err
		}
		hashedStr := string(hashed)
		upd.PasswordHash = &hashedStr
	}

	modified, err := svc.writer.Update(ctx, username, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "username", username, "err", err)
		return false, err
	}
	return modified, nil
}

// DeleteUser removes a user and reports whether one existed. Tokens already
// minted for the account stay valid until they expire.
func (svc *AuthService) DeleteUser(ctx context.Context, username string) (bool, error) {
	deleted, err := svc.writer.Delete(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "err", err)
		return false, err
	}
	return deleted, nil
}
