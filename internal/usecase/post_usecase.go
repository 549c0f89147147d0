package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/authz"
	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const postCacheTTL = 24 * time.Hour

type PostPage struct {
	Posts      []*entity.Post
	Page       int
	TotalPages int
}

type PostUseCase interface {
	CreatePost(identity authz.Identity, title, content string) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts(page, limit int) (*PostPage, error)
	UpdatePost(identity authz.Identity, postID string, title, content *string) (*entity.Post, error)
	DeletePost(identity authz.Identity, postID string) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(identity authz.Identity, title, content string) (*entity.Post, error) {
	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: identity.UserID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}

	return post, nil
}

// GetPost returns the post with author and comments populated, reading through
// the redis cache when one is configured.
func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	if cached := uc.cachedPost(postID); cached != nil {
		return cached, nil
	}

	post, err := uc.postRepo.GetByIDWithRelations(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to load post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to load post")
	}

	uc.cachePost(post)
	return post, nil
}

func (uc *postUseCase) ListPosts(page, limit int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := uc.postRepo.Count()
	if err != nil {
		uc.logger.Error("Failed to count posts: %v", err)
		return nil, fmt.Errorf("failed to fetch posts")
	}

	posts, err := uc.postRepo.List(limit, (page-1)*limit)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to fetch posts")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PostPage{Posts: posts, Page: page, TotalPages: totalPages}, nil
}

// UpdatePost merges the provided fields onto the stored post. Only the author
// may edit; a nil field leaves the stored value untouched.
func (uc *postUseCase) UpdatePost(identity authz.Identity, postID string, title, content *string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to load post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to load post")
	}

	if !authz.CanEdit(identity, post.AuthorID) {
		return nil, ErrForbidden
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to update post")
	}

	uc.invalidatePost(postID)
	return post, nil
}

// DeletePost removes the post and cascades to its comments. The author or any
// admin may delete.
func (uc *postUseCase) DeletePost(identity authz.Identity, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		uc.logger.Error("Failed to load post %s: %v", postID, err)
		return fmt.Errorf("failed to load post")
	}

	if !authz.CanDelete(identity, post.AuthorID) {
		return ErrForbidden
	}

	if err := uc.postRepo.DeleteWithComments(postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post")
	}

	uc.invalidatePost(postID)
	return nil
}

func (uc *postUseCase) cachedPost(postID string) *entity.Post {
	if uc.redisClient == nil {
		return nil
	}

	data, err := uc.redisClient.Get(context.Background(), postCacheKey(postID)).Bytes()
	if err != nil {
		return nil
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil
	}
	return &post
}

func (uc *postUseCase) cachePost(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(post)
	if err != nil {
		return
	}
	uc.redisClient.Set(context.Background(), postCacheKey(post.ID), data, postCacheTTL)
}

func (uc *postUseCase) invalidatePost(postID string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), postCacheKey(postID))
}

func postCacheKey(postID string) string {
	return fmt.Sprintf("post:%s", postID)
}
