package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	Content   string     `gorm:"type:text;not null"`
	PostID    string     `gorm:"type:uuid;not null;index"`
	AuthorID  string     `gorm:"type:uuid;not null;index"`
	Author    *UserModel `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
