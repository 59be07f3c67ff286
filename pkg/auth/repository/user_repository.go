package repository

import "agritech/entities"

type UserRepository interface {
	FindByEmail(email string) (*entities.User, error)
}
