package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// DoctorRepository is the gorm-backed ports.DoctorRepository.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return doctor, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id uint) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor by user: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) First(ctx context.Context) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := r.db.WithContext(ctx).Order("id").First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("first doctor: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) List(ctx context.Context, offset, limit int) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := paginate(r.db.WithContext(ctx), offset, limit).Order("id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	if err := r.db.WithContext(ctx).Save(doctor).Error; err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}
