package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string         `gorm:"type:uuid;primary_key"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text;not null"`
	AuthorID  string         `gorm:"type:uuid;not null;index"`
	Author    *UserModel     `gorm:"foreignKey:AuthorID"`
	Comments  []CommentModel `gorm:"foreignKey:PostID"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
