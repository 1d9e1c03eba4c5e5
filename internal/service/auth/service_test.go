package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/company"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/user"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/jwt"
)

type fakeCompanyRepo struct {
	byIdentity map[string]*company.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*company.Company, error) {
	for _, c := range f.byIdentity {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, company.ErrCompanyNotFound
}
func (f *fakeCompanyRepo) GetByIdentityNumber(ctx context.Context, identityNumber string) (*company.Company, error) {
	c, ok := f.byIdentity[identityNumber]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	return c, nil
}

type fakeUserRepo struct {
	users []*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmailAndCompany(ctx context.Context, email, companyID string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func testLoginService(t *testing.T) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	companies := &fakeCompanyRepo{byIdentity: map[string]*company.Company{
		"3-101-123456": {ID: "co-1", Name: "Transportes del Valle", IdentityNumber: "3-101-123456"},
	}}
	users := &fakeUserRepo{users: []*user.User{
		{
			ID:           "user-1",
			CompanyID:    "co-1",
			Email:        "ana@empresa.cr",
			FullName:     "Ana Solano",
			PasswordHash: string(hash),
			Role:         user.RoleSupervisor,
		},
	}}
	return NewService(nil, users, companies, jwt.NewJWTService("test-secret", "8h"))
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)
	resp, err := svc.Login(context.Background(), user.LoginRequest{
		CompanyIdentityNumber: "3-101-123456",
		Email:                 "ana@empresa.cr",
		Password:              "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "co-1", resp.User.CompanyID)
	assert.Equal(t, string(user.RoleSupervisor), resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)
	_, err := svc.Login(context.Background(), user.LoginRequest{
		CompanyIdentityNumber: "3-101-123456",
		Email:                 "ana@empresa.cr",
		Password:              "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownCompany(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)
	_, err := svc.Login(context.Background(), user.LoginRequest{
		CompanyIdentityNumber: "3-101-999999",
		Email:                 "ana@empresa.cr",
		Password:              "correct-horse",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": "co-1",
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	profile, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Solano", profile.User.FullName)
	assert.Equal(t, "Transportes del Valle", profile.Company.Name)
}

func TestMe_MissingClaims(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)
	_, err := svc.Me(context.Background())
	assert.Error(t, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := testLoginService(t)
	_, err := svc.Login(context.Background(), user.LoginRequest{
		CompanyIdentityNumber: "3-101-123456",
		Email:                 "nadie@empresa.cr",
		Password:              "correct-horse",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
