package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// AssignmentRepository 作业仓储接口
type AssignmentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Assignment, error)
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByIDAndUser(ctx context.Context, assignmentID, userID string) (*model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, assignmentID, userID string) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository 创建作业仓储
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// ListByUser 按截止时间升序，最紧迫的排最前
func (r *assignmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) GetByIDAndUser(ctx context.Context, assignmentID, userID string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, assignmentID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Delete(&model.Assignment{})
	return result.RowsAffected, result.Error
}
