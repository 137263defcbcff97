package service

import (
	"time"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService is the credential store: every account lookup and write
// goes through it, including the per-request re-validation done by the
// auth middleware.
type UserService struct{}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetById(id string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Upsert inserts or updates a user keyed by Id. A missing Id is filled
// with a fresh UUID. The password hash is never touched on update unless
// explicitly set on the record.
func (s *UserService) Upsert(user *model.User) error {
	db := database.GetDB()
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	// Role and password hash only join the update set when explicitly
	// provided, so profile upserts cannot downgrade or lock out an
	// account.
	columns := []string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}
	if user.Role != "" {
		columns = append(columns, "role")
	} else {
		user.Role = model.RoleUser
	}
	if user.PasswordHash != "" {
		columns = append(columns, "password_hash")
	}
	user.UpdatedAt = time.Now()
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(user).Error
}

// UpdateRole changes the stored role for an account. Active admin tokens
// for a downgraded account stop working on their next request.
func (s *UserService) UpdateRole(id string, role string) error {
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": role, "updated_at": time.Now()}).
		Error
}

// IsNotFound reports whether err is the store's missing-record error.
func (s *UserService) IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound || database.IsNotFound(err)
}
