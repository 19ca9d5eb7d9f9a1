package request

import "github.com/kelasbackend/forum-api/domain"

type RegisterUser struct {
	Username string `json:"username" binding:"required,min=3,max=50,alphanum"`
	Password string `json:"password" binding:"required,min=6"`
	Fullname string `json:"fullname" binding:"required,max=100"`
}

// ToDomain: Request -> Domain
func (r *RegisterUser) ToDomain() domain.User {
	return domain.User{
		Username: r.Username,
		Password: r.Password,
		Fullname: r.Fullname,
	}
}
