package request

import "github.com/kelasbackend/forum-api/domain"

type Thread struct {
	Title string `json:"title" binding:"required,max=150"`
	Body  string `json:"body" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		Title: r.Title,
		Body:  r.Body,
	}
}
