package repositories

import (
	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/models"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	ListUsers() ([]models.User, error)
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return db.DB.Delete(&models.User{}, id).Error
}
