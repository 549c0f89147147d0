package main

import (
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"
	"inkwell/pkg/password"

	"gorm.io/gorm"
)

// Seeds an admin account plus a handful of demo users, posts, and comments for
// local development. Safe to run repeatedly; existing users are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	seedUsers := []struct {
		username string
		email    string
		password string
		role     entity.UserRole
	}{
		{"admin", "admin@inkwell.local", "admin123", entity.RoleAdmin},
		{"alice", "alice@inkwell.local", "password123", entity.RoleUser},
		{"bob", "bob@inkwell.local", "password123", entity.RoleUser},
	}

	users := make([]*entity.User, 0, len(seedUsers))
	for _, data := range seedUsers {
		if existing, err := userRepo.GetByEmail(data.email); err == nil {
			log.Info("User %s already exists, skipping", data.username)
			users = append(users, existing)
			continue
		}

		hashed, err := password.Hash(data.password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &entity.User{
			Username: data.username,
			Email:    data.email,
			Password: hashed,
			Role:     data.role,
		}
		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.username, err)
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		users = append(users, user)
	}

	for i, user := range users {
		if user.Role == entity.RoleAdmin {
			continue
		}

		post := &entity.Post{
			Title:    fmt.Sprintf("Hello from %s", user.Username),
			Content:  fmt.Sprintf("This is demo post #%d seeded for local development.", i),
			AuthorID: user.ID,
		}
		if err := postRepo.Create(post); err != nil {
			log.Error("Failed to create post for %s: %v", user.Username, err)
			continue
		}
		log.Info("Created post: %s", post.Title)

		for _, commenter := range users {
			if commenter.ID == user.ID {
				continue
			}
			comment := &entity.Comment{
				Content:  fmt.Sprintf("Nice post, %s!", user.Username),
				PostID:   post.ID,
				AuthorID: commenter.ID,
			}
			if err := commentRepo.Create(comment); err != nil {
				log.Error("Failed to create comment: %v", err)
			}
		}
	}

	return nil
}
