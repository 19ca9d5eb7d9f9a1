package response

import "github.com/kelasbackend/forum-api/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type AddedUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// NewAddedUserFromDomain: Domain -> Response
func NewAddedUserFromDomain(u *domain.User) AddedUser {
	return AddedUser{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
	}
}
