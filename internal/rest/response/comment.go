package response

import "github.com/kelasbackend/forum-api/domain"

const (
	// Tombstone texts shown in place of soft-deleted content.
	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)

type Comment struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	LikeCount int64    `json:"like_count"`
	Replies   []*Reply `json:"replies"`
}

type Reply struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type AddedComment struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Owner   int64  `json:"owner"`
}

type AddedReply struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Owner   int64  `json:"owner"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}

	content := c.Content
	if c.IsDeleted {
		content = DeletedCommentContent
	}

	replies := make([]*Reply, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, NewReplyFromDomain(r))
	}

	return &Comment{
		ID:        c.ID,
		Username:  c.Username,
		Content:   content,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	if r == nil {
		return nil
	}

	content := r.Content
	if r.IsDeleted {
		content = DeletedReplyContent
	}

	return &Reply{
		ID:        r.ID,
		Username:  r.Username,
		Content:   content,
		CreatedAt: r.CreatedAt.Format(DateTimeFormat),
	}
}

func NewAddedCommentFromDomain(c *domain.Comment) AddedComment {
	return AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.UserID,
	}
}

func NewAddedReplyFromDomain(r *domain.Reply) AddedReply {
	return AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.UserID,
	}
}
