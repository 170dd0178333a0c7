package models

import (
	"fmt"
	"time"
)

const (
	DiscussionCategoryGeneral        = "general"
	DiscussionCategoryTips           = "tips"
	DiscussionCategorySuccessStories = "success-stories"
	DiscussionCategoryHelp           = "help"
)

type Discussion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	AuthorID  uint      `gorm:"not null" json:"authorId"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category  string    `gorm:"default:general" json:"category"`
	Replies   []Reply   `gorm:"foreignKey:DiscussionID" json:"replies"`
	Views     int64     `gorm:"default:0" json:"views"`
}

type Reply struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	DiscussionID uint      `gorm:"not null;index" json:"discussionId"`
	AuthorID     uint      `gorm:"not null" json:"authorId"`
	Author       *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content      string    `gorm:"type:text;not null" json:"content"`
}

func (d *Discussion) ValidateCategory() error {
	switch d.Category {
	case DiscussionCategoryGeneral, DiscussionCategoryTips,
		DiscussionCategorySuccessStories, DiscussionCategoryHelp:
		return nil
	}
	return fmt.Errorf("invalid category: %s", d.Category)
}
