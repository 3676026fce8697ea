package user

import (
	"context"

	"canteen/internal/auth"
	"canteen/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, role, username, password string) (auth.Identity, error)
	Login(ctx context.Context, role, username, password string) (auth.Identity, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register appends an account. A role other than "student" registers an
// admin.
func (s *service) Register(ctx context.Context, role, username, password string) (auth.Identity, error) {
	log := logger.FromCtx(ctx).With(zap.String("username", username), zap.String("role", role))

	if role == "" || username == "" || password == "" {
		log.Warn("register rejected: missing data")
		return auth.Identity{}, ErrMissingData
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return auth.Identity{}, err
	}

	acc := Account{Username: username, PasswordHash: hashed, Role: auth.NormalizeRole(role)}
	if err := s.repo.Create(ctx, acc); err != nil {
		log.Error("failed to create account", zap.Error(err))
		return auth.Identity{}, err
	}

	log.Info("account registered", zap.String("normalized_role", string(acc.Role)))
	return auth.Identity{Username: acc.Username, Role: acc.Role}, nil
}

// Login checks the credentials against the account list of the given role.
func (s *service) Login(ctx context.Context, role, username, password string) (auth.Identity, error) {
	r := auth.NormalizeRole(role)

	for _, acc := range s.repo.FindByUsername(ctx, r, username) {
		if CheckPasswordHash(password, acc.PasswordHash) {
			return auth.Identity{Username: acc.Username, Role: r}, nil
		}
	}

	logger.FromCtx(ctx).Warn("login failed",
		zap.String("username", username),
		zap.String("role", string(r)),
	)
	return auth.Identity{}, ErrInvalidCredentials
}

// SeedAdmin registers the default admin account at start-up.
func SeedAdmin(ctx context.Context, svc Service, username, password string) error {
	_, err := svc.Register(ctx, string(auth.RoleAdmin), username, password)
	return err
}
