package usecase

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/authz"
	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CommentUseCase interface {
	CreateComment(identity authz.Identity, content, postID string) (*entity.Comment, error)
	UpdateComment(identity authz.Identity, commentID, content string) (*entity.Comment, error)
	DeleteComment(identity authz.Identity, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// CreateComment attaches a comment to an existing post. The parent post must
// resolve; any authenticated identity may comment.
func (uc *commentUseCase) CreateComment(identity authz.Identity, content, postID string) (*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to load post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to load post")
	}

	comment := &entity.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: identity.UserID,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment")
	}

	populated, err := uc.commentRepo.GetByIDWithAuthor(comment.ID)
	if err != nil {
		uc.logger.Error("Failed to reload comment %s: %v", comment.ID, err)
		return nil, fmt.Errorf("failed to load comment")
	}

	uc.invalidatePost(postID)
	return populated, nil
}

func (uc *commentUseCase) UpdateComment(identity authz.Identity, commentID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to load comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to load comment")
	}

	if !authz.CanEdit(identity, comment.AuthorID) {
		return nil, ErrForbidden
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return nil, fmt.Errorf("failed to update comment")
	}

	uc.invalidatePost(comment.PostID)
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(identity authz.Identity, commentID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("Failed to load comment %s: %v", commentID, err)
		return fmt.Errorf("failed to load comment")
	}

	if !authz.CanDelete(identity, comment.AuthorID) {
		return ErrForbidden
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return fmt.Errorf("failed to delete comment")
	}

	uc.invalidatePost(comment.PostID)
	return nil
}

// The post detail cache embeds comments, so any comment write drops the
// parent post's cache entry.
func (uc *commentUseCase) invalidatePost(postID string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), postCacheKey(postID))
}
