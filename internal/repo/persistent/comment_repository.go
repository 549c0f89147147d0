package persistent

import (
	"inkwell/internal/entity"
	"inkwell/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	GetByIDWithAuthor(id string) (*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) GetByIDWithAuthor(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Preload("Author").Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Save(ToCommentModel(comment)).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.CommentModel{}, "id = ?", id).Error
}
