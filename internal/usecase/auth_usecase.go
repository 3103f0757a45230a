package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/metrics"
	"github.com/intervue/platform-api/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type SessionIssuer interface {
	Create(ctx context.Context, userID string) (string, error)
	Destroy(ctx context.Context, token string) error
}

type OrganizationFinder interface {
	FindByID(ctx context.Context, id string) (*model.Organization, error)
}

type AuthUsecase struct {
	users    UserStore
	orgs     OrganizationFinder
	sessions SessionIssuer
	log      *zap.Logger
}

func NewAuthUsecase(users UserStore, orgs OrganizationFinder, sessions SessionIssuer, log *zap.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, orgs: orgs, sessions: sessions, log: log}
}

// Register creates an actor with an immutable role. The raw role claim is
// canonicalized here, once; client roles are linked to their organization.
func (uc *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.Profile, error) {
	role, ok := model.CanonicalRole(req.Role)
	if !ok {
		return nil, apperror.Validation("unknown role", map[string]string{"role": "must be one of the assignable roles"})
	}

	if _, err := uc.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Validation("email already registered", map[string]string{"email": "already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.RemoteUnavailable("user store", err)
	}

	var orgID *uuid.UUID
	if req.OrganizationID != "" {
		org, err := uc.orgs.FindByID(ctx, req.OrganizationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("organization", req.OrganizationID)
		}
		if err != nil {
			return nil, apperror.RemoteUnavailable("organization store", err)
		}
		orgID = &org.ID
	}
	if orgID == nil && (role == model.RoleClient || role == model.RoleClientCoordinator) {
		return nil, apperror.Validation("client roles require an organization", map[string]string{"organization_id": "required for client roles"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Validation("password cannot be hashed", nil)
	}

	user := &model.User{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           role,
		OrganizationID: orgID,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, apperror.RemoteUnavailable("user store", err)
	}

	uc.log.Info("actor registered", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	profile := dto.ProfileFromUser(user)
	return &profile, nil
}

// Login verifies credentials and issues a session token. The response
// carries the role's dashboard landing path.
func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.Logins.WithLabelValues("rejected").Inc()
		return nil, apperror.Validation("invalid email or password", nil)
	}
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, apperror.RemoteUnavailable("user store", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		return nil, apperror.Validation("invalid email or password", nil)
	}

	token, err := uc.sessions.Create(ctx, user.ID.String())
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, apperror.RemoteUnavailable("session store", err)
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	return &dto.LoginResponse{Token: token, Profile: dto.ProfileFromUser(user)}, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	if err := uc.sessions.Destroy(ctx, token); err != nil {
		return apperror.RemoteUnavailable("session store", err)
	}
	return nil
}
