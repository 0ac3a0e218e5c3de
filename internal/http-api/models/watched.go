package models

import "time"

// WatchedMovie is a presence row: its existence means the user has marked
// the movie as watched.
type WatchedMovie struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_watched_user_movie"`
	MovieID   int64     `json:"movieId" gorm:"not null;uniqueIndex:idx_watched_user_movie"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (WatchedMovie) TableName() string {
	return "watched_movies"
}
