package dto

type DiscussionFilters struct {
	Category string `form:"category"`
}

type CreateDiscussionInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type ReplyInput struct {
	Content string `json:"content" binding:"required"`
}
