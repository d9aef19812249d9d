package entity

import "time"

// User representa um usuário do sistema.
type User struct {
	ID                string
	Email             string
	PasswordHash      string // hash bcrypt, nunca texto plano depois de persistir
	Name              string
	EmailVerified     bool
	VerificationToken *string    // token de verificação de e-mail pendente
	TokenExpires      *time.Time // validade do token de verificação
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
