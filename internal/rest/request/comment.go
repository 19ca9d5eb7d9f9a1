package request

import "github.com/kelasbackend/forum-api/domain"

type Comment struct {
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Content: r.Content,
	}
}

type Reply struct {
	Content string `json:"content" binding:"required"`
}

func (r *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		Content: r.Content,
	}
}
