package models

import (
	"fmt"
	"time"
)

// ContentType names the kind of record a Like points at.
type ContentType string

const (
	ContentProject ContentType = "project"
	ContentMedia   ContentType = "media"
)

// Like is a user's like on a project or a media item. The compound unique
// index is what keeps concurrent toggles from storing duplicates.
type Like struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_content"`
	ContentType ContentType `json:"content_type" gorm:"size:20;not null;uniqueIndex:idx_like_user_content"`
	ContentID   uint        `json:"content_id" gorm:"not null;uniqueIndex:idx_like_user_content"`
	ProjectID   *uint       `json:"project_id,omitempty" gorm:"index"`
	MediaID     *uint       `json:"media_id,omitempty" gorm:"index"`
	User        *User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Project     *Project    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Media       *MediaItem  `json:"-" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at"`
}

// LikeTarget is the closed set of likeable records. Implementations carry
// the typed foreign key of their table.
type LikeTarget interface {
	Type() ContentType
	ID() uint
	attach(*Like)
}

type ProjectTarget struct {
	ProjectID uint
}

func (t ProjectTarget) Type() ContentType { return ContentProject }
func (t ProjectTarget) ID() uint          { return t.ProjectID }
func (t ProjectTarget) attach(l *Like) {
	id := t.ProjectID
	l.ProjectID = &id
}

type MediaTarget struct {
	MediaID uint
}

func (t MediaTarget) Type() ContentType { return ContentMedia }
func (t MediaTarget) ID() uint          { return t.MediaID }
func (t MediaTarget) attach(l *Like) {
	id := t.MediaID
	l.MediaID = &id
}

// ParseLikeTarget turns the (content type, id) pair of a request into a target.
func ParseLikeTarget(contentType string, id uint) (LikeTarget, error) {
	switch ContentType(contentType) {
	case ContentProject:
		return ProjectTarget{ProjectID: id}, nil
	case ContentMedia:
		return MediaTarget{MediaID: id}, nil
	}
	return nil, fmt.Errorf("invalid content type %q", contentType)
}

func NewLike(userID uint, target LikeTarget) *Like {
	like := &Like{
		UserID:      userID,
		ContentType: target.Type(),
		ContentID:   target.ID(),
	}
	target.attach(like)
	return like
}
