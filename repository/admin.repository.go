package repository

import (
	"context"

	"reachout/models"

	"gorm.io/gorm"
)

// AdminStore persists administrator accounts.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
	Create(ctx context.Context, admin *models.AdminUser) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.AdminUser, error)
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByEmail matches the stored (lower-cased) email exactly.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	return translate(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&total).Error
	return total, translate(err)
}

func (r *AdminRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	admins := make([]models.AdminUser, 0)
	err := r.db.WithContext(ctx).Order("id asc").Find(&admins).Error
	return admins, translate(err)
}
