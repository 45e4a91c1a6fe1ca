package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// TreatmentRepository is the gorm-backed ports.TreatmentRepository.
type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

func (r *TreatmentRepository) Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	if err := r.db.WithContext(ctx).Create(treatment).Error; err != nil {
		return nil, fmt.Errorf("insert treatment: %w", err)
	}
	return treatment, nil
}

func (r *TreatmentRepository) FindByID(ctx context.Context, id uint) (*domain.Treatment, error) {
	var treatment domain.Treatment
	if err := r.db.WithContext(ctx).First(&treatment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTreatmentNotFound
		}
		return nil, fmt.Errorf("find treatment: %w", err)
	}
	return &treatment, nil
}

func (r *TreatmentRepository) List(ctx context.Context, filter ports.TreatmentFilter) ([]domain.Treatment, error) {
	query := r.db.WithContext(ctx)
	if filter.DoctorID != 0 {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.PatientID != 0 {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.PatientIDs != nil {
		if len(filter.PatientIDs) == 0 {
			return []domain.Treatment{}, nil
		}
		query = query.Where("patient_id IN ?", filter.PatientIDs)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	var treatments []domain.Treatment
	if err := paginate(query, filter.Offset, filter.Limit).Order("id").Find(&treatments).Error; err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	return treatments, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, treatment *domain.Treatment) error {
	if err := r.db.WithContext(ctx).Save(treatment).Error; err != nil {
		return fmt.Errorf("update treatment: %w", err)
	}
	return nil
}
