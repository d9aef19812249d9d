package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/josevesidio/university-backend-dev-project/internal/application/dto"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
	"github.com/josevesidio/university-backend-dev-project/pkg/jwt"
)

// Validade do token de verificação de e-mail.
const verificationTokenTTL = 24 * time.Hour

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro, verificação de e-mail e login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia o password com bcrypt e persiste com um
// token de verificação de e-mail pendente. Devolve ErrEmailAlreadyExists se o
// e-mail já estiver em uso.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	token := uuid.New().String()
	expires := now.Add(verificationTokenTTL)
	user := &entity.User{
		ID:                uuid.New().String(),
		Email:             in.Email,
		PasswordHash:      string(hash),
		Name:              name,
		EmailVerified:     false,
		VerificationToken: &token,
		TokenExpires:      &expires,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Message: "Usuário registrado com sucesso! Verifique seu e-mail.",
		UserID:  user.ID,
	}, nil
}

// VerifyEmail marca o e-mail do usuário como verificado a partir do token.
// Token desconhecido ou expirado devolve ErrNotFound.
func (uc *AuthUseCase) VerifyEmail(token string) error {
	user, err := uc.userRepo.GetByVerificationToken(token)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.TokenExpires == nil || time.Now().After(*user.TokenExpires) {
		return domain.ErrNotFound
	}
	user.EmailVerified = true
	user.VerificationToken = nil
	user.TokenExpires = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// Login verifica email/password, exige e-mail verificado, gera JWT e retorna token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login bem-sucedido!",
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
