package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// AssistantRepository is the gorm-backed ports.AssistantRepository.
type AssistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) *AssistantRepository {
	return &AssistantRepository{db: db}
}

func (r *AssistantRepository) Create(ctx context.Context, assistant *domain.Assistant) (*domain.Assistant, error) {
	if err := r.db.WithContext(ctx).Create(assistant).Error; err != nil {
		return nil, fmt.Errorf("insert assistant: %w", err)
	}
	return assistant, nil
}

func (r *AssistantRepository) FindByID(ctx context.Context, id uint) (*domain.Assistant, error) {
	var assistant domain.Assistant
	if err := r.db.WithContext(ctx).First(&assistant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssistantNotFound
		}
		return nil, fmt.Errorf("find assistant: %w", err)
	}
	return &assistant, nil
}

func (r *AssistantRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Assistant, error) {
	var assistant domain.Assistant
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&assistant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssistantNotFound
		}
		return nil, fmt.Errorf("find assistant by user: %w", err)
	}
	return &assistant, nil
}

func (r *AssistantRepository) List(ctx context.Context, offset, limit int) ([]domain.Assistant, error) {
	var assistants []domain.Assistant
	if err := paginate(r.db.WithContext(ctx), offset, limit).Order("id").Find(&assistants).Error; err != nil {
		return nil, fmt.Errorf("list assistants: %w", err)
	}
	return assistants, nil
}

func (r *AssistantRepository) Update(ctx context.Context, assistant *domain.Assistant) error {
	if err := r.db.WithContext(ctx).Save(assistant).Error; err != nil {
		return fmt.Errorf("update assistant: %w", err)
	}
	return nil
}
