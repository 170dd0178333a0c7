package dto

import "failfund/models"

type StartupFilters struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

type CreateStartupInput struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	FailureReason string   `json:"failureReason"`
	TechStack     []string `json:"techStack"`
	RepositoryURL string   `json:"repositoryUrl"`
	Images        []string `json:"images"`
	RevivalScore  int      `json:"revivalScore"`
	Status        string   `json:"status"`
	BuyoutPrice   *float64 `json:"buyoutPrice"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
}

// UpdateStartupInput carries only the fields present in the request body;
// nil pointers leave the stored value untouched.
type UpdateStartupInput struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	FailureReason *string   `json:"failureReason"`
	TechStack     *[]string `json:"techStack"`
	RepositoryURL *string   `json:"repositoryUrl"`
	Images        *[]string `json:"images"`
	RevivalScore  *int      `json:"revivalScore"`
	Status        *string   `json:"status"`
	BuyoutPrice   *float64  `json:"buyoutPrice"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
}

func (in *UpdateStartupInput) Apply(startup *models.Startup) {
	if in.Title != nil {
		startup.Title = *in.Title
	}
	if in.Description != nil {
		startup.Description = *in.Description
	}
	if in.FailureReason != nil {
		startup.FailureReason = *in.FailureReason
	}
	if in.TechStack != nil {
		startup.TechStack = *in.TechStack
	}
	if in.RepositoryURL != nil {
		startup.RepositoryURL = *in.RepositoryURL
	}
	if in.Images != nil {
		startup.Images = *in.Images
	}
	if in.RevivalScore != nil {
		startup.RevivalScore = *in.RevivalScore
	}
	if in.Status != nil {
		startup.Status = *in.Status
	}
	if in.BuyoutPrice != nil {
		startup.BuyoutPrice = in.BuyoutPrice
	}
	if in.Category != nil {
		startup.Category = *in.Category
	}
	if in.Tags != nil {
		startup.Tags = *in.Tags
	}
}
