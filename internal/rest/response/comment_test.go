package response_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kelasbackend/forum-api/domain"
	"github.com/kelasbackend/forum-api/internal/rest/response"
)

func TestCommentMasking(t *testing.T) {
	now := time.Now()

	c := &domain.Comment{
		ID:        5,
		Content:   "sebuah komentar",
		Username:  "dicoding",
		CreatedAt: now,
		IsDeleted: true,
		Replies: []*domain.Reply{
			{ID: 8, Content: "sebuah balasan", IsDeleted: true, CreatedAt: now},
			{ID: 9, Content: "balasan lain", CreatedAt: now},
		},
	}

	res := response.NewCommentFromDomain(c)

	assert.Equal(t, response.DeletedCommentContent, res.Content)
	assert.Equal(t, response.DeletedReplyContent, res.Replies[0].Content)
	assert.Equal(t, "balasan lain", res.Replies[1].Content)
}

func TestCommentWithoutReplies(t *testing.T) {
	c := &domain.Comment{ID: 5, Content: "sebuah komentar", CreatedAt: time.Now()}

	res := response.NewCommentFromDomain(c)

	assert.NotNil(t, res.Replies)
	assert.Empty(t, res.Replies)
}
