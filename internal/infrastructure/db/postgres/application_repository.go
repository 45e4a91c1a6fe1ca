package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// ApplicationRepository is the gorm-backed ports.ApplicationRepository.
// Applications are append-only; there is no update or delete path.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *domain.TreatmentApplication) (*domain.TreatmentApplication, error) {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return application, nil
}

func (r *ApplicationRepository) List(ctx context.Context, treatmentID, assistantID uint) ([]domain.TreatmentApplication, error) {
	query := r.db.WithContext(ctx)
	if treatmentID != 0 {
		query = query.Where("treatment_id = ?", treatmentID)
	}
	if assistantID != 0 {
		query = query.Where("assistant_id = ?", assistantID)
	}
	var applications []domain.TreatmentApplication
	if err := query.Order("id").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (r *ApplicationRepository) CountByTreatment(ctx context.Context, treatmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.TreatmentApplication{}).
		Where("treatment_id = ?", treatmentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}
