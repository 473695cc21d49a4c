package repository

import (
	"context"

	"github.com/lshigami/ShambaQuest/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows List. Empty fields match everything.
type QuestionFilter struct {
	Difficulty string
	Category   string
	Limit      int
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&questions, 100).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	query := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var questions []model.Question
	if err := query.Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
