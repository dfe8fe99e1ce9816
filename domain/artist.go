package domain

import (
	"fmt"
	"time"
)

type ArtistStatus string

const (
	ArtistPending  ArtistStatus = "pending"
	ArtistApproved ArtistStatus = "approved"
	ArtistRejected ArtistStatus = "rejected"
)

func ParseArtistStatus(raw string) (ArtistStatus, error) {
	switch s := ArtistStatus(raw); s {
	case ArtistPending, ArtistApproved, ArtistRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidArtistStatus, raw)
	}
}

// Artist is a featured creator. Requests from users arrive as pending and
// an admin approves or rejects them.
type Artist struct {
	ID        uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string       `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Title     string       `gorm:"column:title;type:varchar(255)" json:"title"`
	ImageURL  string       `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	Bio       *string      `gorm:"column:bio;type:text" json:"bio"`
	UserID    *uint64      `gorm:"column:user_id;index" json:"user_id"`
	Status    ArtistStatus `gorm:"column:status;type:varchar(16);not null;default:pending;check:chk_artists_status,status IN ('pending', 'approved', 'rejected')" json:"status"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}
