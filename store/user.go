package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tutorialhub/models"
)

// UserRepo persists accounts and verifies passwords. The hash never
// leaves this package populated on a read path.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create registers a user, hashing the password before it is stored.
func (r *UserRepo) Create(username, email, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := r.db.Create(&user).Error; err != nil {
		// the driver sentinel does not say which column collided
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.User
			if r.db.Where("email = ?", email).First(&existing).Error == nil {
				return nil, &DuplicateError{Field: "email"}
			}
			return nil, &DuplicateError{Field: "username"}
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// Authenticate resolves the credentials to a user. Unknown email and
// wrong password both fail with the same ErrUnauthorized.
func (r *UserRepo) Authenticate(email, password string) (*models.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !checkPasswordHash(password, user.Password) {
		return nil, ErrUnauthorized
	}
	user.Password = ""
	return user, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
