package repository

import (
	"context"

	"reachout/models"

	"gorm.io/gorm"
)

// CourseStore persists courses.
type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id uint) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uint) error
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course, newest first.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&courses).Error
	return courses, translate(err)
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return translate(r.db.WithContext(ctx).Create(course).Error)
}

// Update saves every column of course; the row must already exist.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return translate(r.db.WithContext(ctx).Save(course).Error)
}

// Delete removes the course, returning ErrNotFound when no row matched.
func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
