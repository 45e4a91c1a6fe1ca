package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// AssignmentRepository is the gorm-backed ports.AssignmentRepository.
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.PatientAssistant) (*domain.PatientAssistant, error) {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	return assignment, nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id uint) (*domain.PatientAssistant, error) {
	var assignment domain.PatientAssistant
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) List(ctx context.Context, patientID, assistantID uint) ([]domain.PatientAssistant, error) {
	query := r.db.WithContext(ctx)
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	if assistantID != 0 {
		query = query.Where("assistant_id = ?", assistantID)
	}
	var assignments []domain.PatientAssistant
	if err := query.Order("id").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) FindActive(ctx context.Context, patientID, assistantID uint) (*domain.PatientAssistant, error) {
	var assignment domain.PatientAssistant
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND assistant_id = ? AND is_active = ?", patientID, assistantID, true).
		Order("id").
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("find active assignment: %w", err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListActiveByAssistant(ctx context.Context, assistantID uint) ([]domain.PatientAssistant, error) {
	var assignments []domain.PatientAssistant
	err := r.db.WithContext(ctx).
		Where("assistant_id = ? AND is_active = ?", assistantID, true).
		Order("id").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("list active assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) Update(ctx context.Context, assignment *domain.PatientAssistant) error {
	if err := r.db.WithContext(ctx).Save(assignment).Error; err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}
