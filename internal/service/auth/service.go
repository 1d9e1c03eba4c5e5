package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/company"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/user"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/jwt"
	"github.com/planilla-cr/planilla-backend-go/internal/repository/postgresql"
)

type Service interface {
	Register(ctx context.Context, req user.RegisterRequest) (user.LoginResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error)
	Me(ctx context.Context) (user.ProfileResponse, error)
}

type ServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	jwtService  jwt.Service
}

func NewService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	jwtService jwt.Service,
) Service {
	return &ServiceImpl{
		db:          db,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
	}
}

// Register creates a company and its first user. The first user is
// always a supervisor.
func (s *ServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.LoginResponse{}, err
	}

	newUser := &user.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         user.RoleSupervisor,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		newCompany := &company.Company{
			ID:             uuid.New().String(),
			Name:           req.CompanyName,
			IdentityNumber: req.CompanyIdentityNumber,
		}
		if err := s.companyRepo.Create(ctx, newCompany); err != nil {
			return err
		}
		newUser.CompanyID = newCompany.ID
		return s.userRepo.Create(ctx, newUser)
	})
	if err != nil {
		return user.LoginResponse{}, err
	}

	return s.loginResponse(newUser)
}

// Login authenticates a user within a company. The company identity
// number scopes the lookup so the same email can exist in more than
// one company.
func (s *ServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	comp, err := s.companyRepo.GetByIdentityNumber(ctx, req.CompanyIdentityNumber)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByEmailAndCompany(ctx, req.Email, comp.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	return s.loginResponse(u)
}

// Me resolves the authenticated user and their company from the token
// claims.
func (s *ServiceImpl) Me(ctx context.Context) (user.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.ProfileResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, u.CompanyID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ProfileResponse{
		User:    user.ToUserResponse(u),
		Company: company.ToCompanyResponse(comp),
	}, nil
}

func (s *ServiceImpl) loginResponse(u *user.User) (user.LoginResponse, error) {
	token, _, err := s.jwtService.GenerateAccessToken(u.ID, u.CompanyID, u.Role)
	if err != nil {
		return user.LoginResponse{}, err
	}
	return user.LoginResponse{
		AccessToken: token,
		User:        user.ToUserResponse(u),
	}, nil
}
