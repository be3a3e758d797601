package repository

import (
	"context"

	"reachout/models"

	"gorm.io/gorm"
)

// CertificateStore persists issued certificates.
type CertificateStore interface {
	List(ctx context.Context) ([]models.Certificate, error)
	FindByID(ctx context.Context, id uint) (*models.Certificate, error)
	FindByNumber(ctx context.Context, number string) (*models.Certificate, error)
	Create(ctx context.Context, cert *models.Certificate) error
	Delete(ctx context.Context, id uint) error
}

type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) List(ctx context.Context) ([]models.Certificate, error) {
	certs := make([]models.Certificate, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&certs).Error
	return certs, translate(err)
}

func (r *CertificateRepository) FindByID(ctx context.Context, id uint) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.WithContext(ctx).First(&cert, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cert, nil
}

// FindByNumber is an exact, case-sensitive match on cert_number.
func (r *CertificateRepository) FindByNumber(ctx context.Context, number string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.WithContext(ctx).Where("cert_number = ?", number).First(&cert).Error; err != nil {
		return nil, translate(err)
	}
	return &cert, nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	return translate(r.db.WithContext(ctx).Create(cert).Error)
}

func (r *CertificateRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Certificate{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
