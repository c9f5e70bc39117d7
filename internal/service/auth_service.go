package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/batoolzehra/car-rental-system/internal/model"
	"github.com/batoolzehra/car-rental-system/internal/repository"
)

// AdminProfile is the fixed admin credential pair and starting balance,
// supplied from configuration at startup.
type AdminProfile struct {
	Username string
	Password string
	Balance  float64
}

// RegisterInput carries the registration form fields. Balance arrives as
// the raw string the user typed; the record constructor parses and
// validates it.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Balance   string
}

// AuthService covers the user-table operations: login, registration and
// balance administration.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	SetAdminBalance(ctx context.Context, amount float64) (*model.User, error)
	CurrentBalance(ctx context.Context, username string) (float64, error)
}

type authService struct {
	users *repository.UserRepo
	admin AdminProfile
}

// NewAuthService creates an AuthService bound to the users table and the
// configured admin profile.
func NewAuthService(users *repository.UserRepo, admin AdminProfile) AuthService {
	return &authService{users: users, admin: admin}
}

// Authenticate checks credentials and returns the stored user record.
// The configured admin pair always succeeds regardless of table contents,
// lazily provisioning the admin record on first login. For everyone else
// the username is matched case-insensitively and the password exactly; no
// lockout, no rate limiting, no hashing.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if strings.EqualFold(username, s.admin.Username) && password == s.admin.Password {
		return s.adminRecord()
	}

	u, err := s.users.FindByUsername(username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	if u.Role == "" {
		u.Role = model.RoleCustomer
	}
	return u, nil
}

// Register validates the form and persists a new customer record.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if strings.EqualFold(strings.TrimSpace(in.Username), s.admin.Username) {
		return nil, ErrReservedUsername
	}
	if _, err := s.users.FindByUsername(in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	u, err := model.NewUser(in.Username, in.Password, in.FirstName, in.LastName, in.Address, in.Balance, model.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if err := s.users.Upsert(u); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

// SetAdminBalance upserts the admin's balance, provisioning the admin
// record when absent. Non-negativity is enforced by the request
// validation in front of this operation, not here.
func (s *authService) SetAdminBalance(ctx context.Context, amount float64) (*model.User, error) {
	admin, err := s.adminRecord()
	if err != nil {
		return nil, err
	}
	admin.Balance = amount
	if err := s.users.Upsert(admin); err != nil {
		return nil, fmt.Errorf("set admin balance: %w", err)
	}
	return admin, nil
}

// CurrentBalance returns the stored balance of a user.
func (s *authService) CurrentBalance(ctx context.Context, username string) (float64, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

// adminRecord loads the admin row, creating it with the configured
// defaults on first use.
func (s *authService) adminRecord() (*model.User, error) {
	u, err := s.users.FindByUsername(s.admin.Username)
	if err == nil {
		if u.Role == "" {
			u.Role = model.RoleAdmin
		}
		return u, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("load admin: %w", err)
	}
	admin := &model.User{
		Username:  s.admin.Username,
		Password:  s.admin.Password,
		FirstName: "Admin",
		LastName:  "User",
		Address:   "System",
		Balance:   s.admin.Balance,
		Role:      model.RoleAdmin,
	}
	if err := s.users.Upsert(admin); err != nil {
		return nil, fmt.Errorf("provision admin: %w", err)
	}
	return admin, nil
}
