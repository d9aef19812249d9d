package repository

import "github.com/josevesidio/university-backend-dev-project/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByVerificationToken(token string) (*entity.User, error)
	Update(user *entity.User) error
}
