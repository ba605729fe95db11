package models

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string    `gorm:"column:username;size:50;uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
