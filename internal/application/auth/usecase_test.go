package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/josevesidio/university-backend-dev-project/internal/application/auth"
	"github.com/josevesidio/university-backend-dev-project/internal/application/dto"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	pkgjwt "github.com/josevesidio/university-backend-dev-project/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByVerificationToken(token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "controle-estoque-test"
)

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

// O registro cria o usuário com password hasheado (bcrypt) e token de
// verificação pendente; o login fica bloqueado até verificar o e-mail.
func TestRegister_CriaUsuarioPendenteDeVerificacao(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "maria@example.com",
		Password: "senha123",
		Name:     "Maria",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.UserID)

	user, err := repo.GetByID(out.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.False(t, user.EmailVerified, "usuário recém-registrado não deve estar verificado")
	require.NotNil(t, user.VerificationToken, "deve existir um token de verificação")
	require.NotNil(t, user.TokenExpires)
	assert.True(t, user.TokenExpires.After(time.Now()), "o token deve expirar no futuro")

	// O password nunca é persistido em claro.
	assert.NotEqual(t, "senha123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
}

func TestRegister_EmailDuplicado_Falha(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "outrasenha"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificação de e-mail
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyEmail_TokenValido_AtivaUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha123"})
	require.NoError(t, err)
	user, _ := repo.GetByID(out.UserID)
	token := *user.VerificationToken

	require.NoError(t, uc.VerifyEmail(token))

	user, _ = repo.GetByID(out.UserID)
	assert.True(t, user.EmailVerified)
	assert.Nil(t, user.VerificationToken, "o token deve ser descartado depois de usado")
	assert.Nil(t, user.TokenExpires)
}

func TestVerifyEmail_TokenDesconhecido_Falha(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	err := uc.VerifyEmail("token-que-nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerifyEmail_TokenExpirado_Falha(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha123"})
	require.NoError(t, err)

	// Expira o token manualmente.
	user, _ := repo.GetByID(out.UserID)
	past := time.Now().Add(-time.Hour)
	user.TokenExpires = &past
	require.NoError(t, repo.Update(user))

	err = uc.VerifyEmail(*user.VerificationToken)
	assert.ErrorIs(t, err, domain.ErrNotFound, "token expirado equivale a token desconhecido")

	user, _ = repo.GetByID(out.UserID)
	assert.False(t, user.EmailVerified)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func registerAndVerify(t *testing.T, repo *fakeUserRepo, uc *auth.AuthUseCase, email, password string) string {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{Email: email, Password: password, Name: "Maria"})
	require.NoError(t, err)
	user, _ := repo.GetByID(out.UserID)
	require.NoError(t, uc.VerifyEmail(*user.VerificationToken))
	return out.UserID
}

func TestLogin_CredenciaisValidas_DevolveJWT(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	userID := registerAndVerify(t, repo, uc, "maria@example.com", "senha123")

	out, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, userID, out.User.ID)

	// O token é válido e carrega o ID do usuário.
	parsedID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestLogin_SenhaErrada_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	registerAndVerify(t, repo, uc, "maria@example.com", "senha123")

	_, err := uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_Retorna401(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@example.com", Password: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"e-mail desconhecido e senha errada devem ser indistinguíveis para o cliente")
}

func TestLogin_EmailNaoVerificado_Bloqueado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "maria@example.com", Password: "senha123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@example.com", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)
}
