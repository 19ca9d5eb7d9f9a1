package model

import "time"

// Authentication holds an issued refresh token. Logout deletes the row,
// refresh requires it to still exist.
type Authentication struct {
	Token     string    `gorm:"type:varchar(512);primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Authentication) TableName() string {
	return "authentications"
}
