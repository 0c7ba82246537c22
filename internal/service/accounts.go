package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/logger"
	"shift-scheduler/internal/metrics"
	"shift-scheduler/internal/model"
	"shift-scheduler/internal/store"
)

var (
	getUserByEmail  = store.GetUserByEmail
	emailExists     = store.EmailExists
	createUser      = store.CreateUser
	ensureUser      = store.EnsureUser
	hashPassword    = HashPassword
	comparePassword = ComparePassword
)

type SignupInput struct {
	Name         string
	Email        string
	Password     string
	EmployeeCode string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal model.Principal
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a regular user. The role is always user; callers
// cannot request anything else.
func Signup(ctx context.Context, db database.DB, in SignupInput) (*model.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		metrics.SignupsTotal.WithLabelValues("missing_fields").Inc()
		return nil, ErrMissingFields
	}
	if len(in.Password) > MaxPasswordBytes {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrPasswordTooLong
	}

	exists, err := emailExists(ctx, db, email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if exists {
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, ErrDuplicateEmail
	}

	hash, err := hashPassword(in.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	code := strings.TrimSpace(in.EmployeeCode)
	if code == "" {
		code = model.DefaultEmployeeCode
	}

	user, err := createUser(ctx, db, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		EmployeeCode: code,
		Department:   model.DefaultDepartment,
	})
	if errors.Is(err, store.ErrDuplicate) {
		// lost a race with a concurrent signup for the same email
		metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return user, nil
}

// Login checks the credentials and issues a token. A missing user and a
// wrong password produce the same ErrInvalidCredentials. throttle may be nil.
func Login(ctx context.Context, db database.DB, issuer *TokenIssuer, throttle *LoginThrottle, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	log := logger.Get()

	if throttle != nil {
		allowed, err := throttle.Allow(ctx, email)
		if err != nil {
			log.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, ErrTooManyAttempts
		}
	}

	reject := func() (*LoginResult, error) {
		if throttle != nil {
			if err := throttle.Fail(ctx, email); err != nil {
				log.Warn().Err(err).Msg("record failed login")
			}
		}
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidCredentials
	}

	user, err := getUserByEmail(ctx, db, email)
	if errors.Is(err, store.ErrNotFound) {
		return reject()
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := comparePassword(user.PasswordHash, password); err != nil {
		return reject()
	}

	principal := model.Principal{ID: user.ID, Role: user.Role, Name: user.Name}
	token, expiresAt, err := issuer.Issue(principal)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if throttle != nil {
		if err := throttle.Reset(ctx, email); err != nil {
			log.Warn().Err(err).Msg("reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Principal: principal}, nil
}

// EnsureAdmin creates the bootstrap admin unless the email already exists.
func EnsureAdmin(ctx context.Context, db database.DB, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, ErrMissingFields
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}

	hash, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	return ensureUser(ctx, db, &model.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		EmployeeCode: "ADMIN",
		Department:   model.DefaultDepartment,
	})
}
