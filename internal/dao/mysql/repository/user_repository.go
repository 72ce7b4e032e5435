package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user email=%s", email)
	}
	return &user, nil
}

func (r *userRepository) FindByUuid(uuid string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user uuid=%s", uuid)
	}
	return &user, nil
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "create user")
	}
	return nil
}
