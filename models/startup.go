package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

const (
	StartupStatusAvailable       = "available"
	StartupStatusInCollaboration = "in-collaboration"
	StartupStatusSold            = "sold"
)

type Startup struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	FailureReason string         `gorm:"type:text" json:"failureReason"`
	TechStack     pq.StringArray `gorm:"type:text[]" json:"techStack"`
	RepositoryURL string         `json:"repositoryUrl"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	FounderID     uint           `gorm:"not null" json:"founderId"`
	Founder       *User          `gorm:"foreignKey:FounderID" json:"founder,omitempty"`
	RevivalScore  int            `gorm:"default:0" json:"revivalScore"`
	Status        string         `gorm:"default:available" json:"status"`
	Collaborators []User         `gorm:"many2many:startup_collaborators;" json:"collaborators,omitempty"`
	BuyoutPrice   *float64       `json:"buyoutPrice,omitempty"`
	Category      string         `json:"category"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Views         int64          `gorm:"default:0" json:"views"`
}

func (s *Startup) ValidateStatus() error {
	switch s.Status {
	case StartupStatusAvailable, StartupStatusInCollaboration, StartupStatusSold:
		return nil
	}
	return fmt.Errorf("invalid status: %s", s.Status)
}

func (s *Startup) ValidateRevivalScore() error {
	if s.RevivalScore < 0 || s.RevivalScore > 100 {
		return fmt.Errorf("invalid revivalScore: %d, must be between 0 and 100", s.RevivalScore)
	}
	return nil
}
