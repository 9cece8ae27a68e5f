package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/database"
	"github.com/waitlist-simple/models"
)

const userNotFound = "User not found"

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc, error) {
	ctx, cancel := withQueryDeadline(ctx)
	if r.db != nil {
		return r.db.WithContext(ctx), cancel, nil
	}
	conn, err := database.Conn(ctx)
	if err != nil {
		cancel()
		return nil, nil, apperrors.NewUnavailable(err)
	}
	return conn, cancel, nil
}

// Create inserts a new user. A duplicate email surfaces as a conflict.
func (r *UserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer cancel()
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, translate(err, userNotFound)
	}
	return user, nil
}

// FindByEmail retrieves a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer cancel()
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translate(err, userNotFound)
	}
	return user, nil
}

// FindByID retrieves a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	db, cancel, err := r.conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer cancel()
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err, userNotFound)
	}
	return user, nil
}
