package models

import "time"

// Rating holds one user's score for one movie. The composite unique index
// guarantees at most one row per (movie, user) pair; concurrent submissions
// from the same user serialize on the constraint.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Value     float64   `json:"value" gorm:"not null;check:value >= 1 AND value <= 10"`
	MovieID   int64     `json:"movieId" gorm:"not null;uniqueIndex:idx_ratings_movie_user"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_ratings_movie_user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
