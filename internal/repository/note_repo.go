package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushant0603/Smart-College-companion-Backend/internal/model"
)

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	GetByIDAndUser(ctx context.Context, noteID, userID string) (*model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, noteID, userID string) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建笔记仓储
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// ListByUser 按创建时间倒序，最新创建的排最前
func (r *noteRepository) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByIDAndUser(ctx context.Context, noteID, userID string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) Delete(ctx context.Context, noteID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Delete(&model.Note{})
	return result.RowsAffected, result.Error
}
