package postgres

import (
	"github.com/frahmantamala/finance-tracker/internal/user"
	userDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetActiveByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}
