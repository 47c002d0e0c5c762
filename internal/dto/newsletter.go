package dto

import "time"

type ArticleRequestDTO struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type ArticleResponseDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
