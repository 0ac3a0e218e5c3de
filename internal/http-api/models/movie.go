package models

import "time"

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Director    string    `json:"director" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Genre       string    `json:"genre" gorm:"not null"`
	ReleaseDate time.Time `json:"releaseDate" gorm:"not null"`
	ImagePath   *string   `json:"imagePath,omitempty"`
	UserID      int64     `json:"userId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Associations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:MovieID"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:MovieID"`
}

func (Movie) TableName() string {
	return "movies"
}
