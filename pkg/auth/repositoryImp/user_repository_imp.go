package repositoryImp

import (
	"gorm.io/gorm"

	"agritech/entities"
	"agritech/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
