package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/entregas-api/internal/application/auth"
	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/entregas-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error                    { return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Delete(id string) error                         { return nil }

func newAuthUseCase() (*auth.UseCase, *memUserRepo) {
	repo := &memUserRepo{users: map[string]*entity.User{}}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "entregas-api-test",
	})
	return uc, repo
}

// El registro hashea el password con bcrypt y nunca lo guarda en claro.
func TestRegisterUser_HashBcrypt(t *testing.T) {
	uc, repo := newAuthUseCase()

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, resp.Role, "rol por defecto: vendedor")

	stored, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Login correcto devuelve un JWT verificable con el userID y rol del usuario.
func TestLogin_TokenValido(t *testing.T) {
	uc, _ := newAuthUseCase()
	reg, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		Role:     entity.RoleBodeguero,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, role, err := pkgjwt.Parse("secret-de-test", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleBodeguero, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un usuario suspendido no puede iniciar sesión aunque el password sea correcto.
func TestLogin_UsuarioSuspendido(t *testing.T) {
	uc, repo := newAuthUseCase()
	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	repo.users[reg.ID].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.ErrorIs(t, err, domain.ErrPermissionDenied)
}
