package models

import "time"

type User struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	UserName   string    `json:"userName" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"column:password_hash;not null"` // Not shown in JSON
	FirstName  string    `json:"firstName" gorm:"not null"`
	LastName   string    `json:"lastName" gorm:"not null"`
	BirthDate  time.Time `json:"birthDate" gorm:"not null"`
	AvatarPath *string   `json:"avatarPath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
