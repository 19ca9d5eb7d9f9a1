package response

import "github.com/kelasbackend/forum-api/domain"

type AddedThread struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Owner int64  `json:"owner"`
}

func NewAddedThreadFromDomain(t *domain.Thread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.User.ID,
	}
}

type Thread struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// NewThreadFromDomain: Domain -> Response, list view without comments
func NewThreadFromDomain(t *domain.Thread) Thread {
	return Thread{
		ID:        t.ID,
		Title:     t.Title,
		Username:  t.User.Username,
		CreatedAt: t.CreatedAt.Format(DateTimeFormat),
	}
}

type ThreadDetail struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Username  string     `json:"username"`
	CreatedAt string     `json:"created_at"`
	Comments  []*Comment `json:"comments"`
}

// NewThreadDetailFromDomain maps the assembled detail, masking
// soft-deleted comments and replies.
func NewThreadDetailFromDomain(t *domain.Thread) ThreadDetail {
	comments := make([]*Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, NewCommentFromDomain(c))
	}
	return ThreadDetail{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Username:  t.User.Username,
		CreatedAt: t.CreatedAt.Format(DateTimeFormat),
		Comments:  comments,
	}
}
