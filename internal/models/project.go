package models

import "time"

type Category string

const (
	CategoryDevelopment Category = "Development"
	CategoryDrone       Category = "Drone"
	CategoryMixed       Category = "Mixed"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Project is a portfolio showcase entry addressed by its slug.
type Project struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"size:200;not null"`
	Slug        string      `json:"slug" gorm:"size:220;uniqueIndex;not null"`
	Description string      `json:"description" gorm:"type:text"`
	Category    Category    `json:"category" gorm:"size:20;index"`
	Thumbnail   *string     `json:"thumbnail"`
	VideoURL    *string     `json:"video_url"`
	ProjectURL  *string     `json:"project_url"`
	GithubURL   *string     `json:"github_url"`
	IsFeatured  bool        `json:"is_featured" gorm:"index"`
	IsActive    bool        `json:"is_active" gorm:"index"`
	CreatedByID *uint       `json:"created_by" gorm:"index"`
	CreatedBy   *User       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Media       []MediaItem `json:"media" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time   `json:"updated_at"`

	LikesCount int64 `json:"likes_count" gorm:"-"`
	IsLiked    bool  `json:"is_liked" gorm:"-"`
}

func (p *Project) OwnedBy(u *User) bool {
	return u != nil && p.CreatedByID != nil && *p.CreatedByID == u.ID
}

type MediaItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"index;not null"`
	MediaType MediaType `json:"media_type" gorm:"size:10"`
	URL       string    `json:"url" gorm:"not null"`
	Thumbnail *string   `json:"thumbnail"`
	Caption   string    `json:"caption" gorm:"size:200"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"created_at"`

	LikesCount int64 `json:"likes_count" gorm:"-"`
	IsLiked    bool  `json:"is_liked" gorm:"-"`
}

// Skill is a labelled proficiency shown on the portfolio.
type Skill struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Category    string    `json:"category" gorm:"size:50"`
	Proficiency int       `json:"proficiency"`
	Icon        string    `json:"icon" gorm:"size:50"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSkill() *Skill {
	return &Skill{Proficiency: 80}
}

// About is one section of the about page.
type About struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Image     *string   `json:"image"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (About) TableName() string {
	return "about_sections"
}

func NewAbout() *About {
	return &About{IsActive: true}
}

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Slug        string   `json:"slug" validate:"omitempty,max=220,slug"`
	Description string   `json:"description"`
	Category    Category `json:"category" validate:"omitempty,oneof=Development Drone Mixed"`
	Thumbnail   *string  `json:"thumbnail" validate:"omitempty,max=500"`
	VideoURL    *string  `json:"video_url" validate:"omitempty,url"`
	ProjectURL  *string  `json:"project_url" validate:"omitempty,url"`
	GithubURL   *string  `json:"github_url" validate:"omitempty,url"`
	IsFeatured  bool     `json:"is_featured"`
	IsActive    *bool    `json:"is_active"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200"`
	Slug        *string   `json:"slug" validate:"omitempty,max=220,slug"`
	Description *string   `json:"description"`
	Category    *Category `json:"category" validate:"omitempty,oneof=Development Drone Mixed"`
	Thumbnail   *string   `json:"thumbnail" validate:"omitempty,max=500"`
	VideoURL    *string   `json:"video_url" validate:"omitempty,url"`
	ProjectURL  *string   `json:"project_url" validate:"omitempty,url"`
	GithubURL   *string   `json:"github_url" validate:"omitempty,url"`
	IsFeatured  *bool     `json:"is_featured"`
	IsActive    *bool     `json:"is_active"`
}

type CreateMediaRequest struct {
	MediaType MediaType `json:"media_type" validate:"required,oneof=image video"`
	URL       string    `json:"url" validate:"required,max=500"`
	Thumbnail *string   `json:"thumbnail" validate:"omitempty,max=500"`
	Caption   string    `json:"caption" validate:"max=200"`
	Order     int       `json:"order" validate:"min=0"`
}

type UpdateMediaRequest struct {
	MediaType *MediaType `json:"media_type" validate:"omitempty,oneof=image video"`
	URL       *string    `json:"url" validate:"omitempty,max=500"`
	Thumbnail *string    `json:"thumbnail" validate:"omitempty,max=500"`
	Caption   *string    `json:"caption" validate:"omitempty,max=200"`
	Order     *int       `json:"order" validate:"omitempty,min=0"`
}

type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Category    string `json:"category" validate:"max=50"`
	Proficiency *int   `json:"proficiency" validate:"omitempty,min=0,max=100"`
	Icon        string `json:"icon" validate:"max=50"`
	Order       int    `json:"order" validate:"min=0"`
}

type SkillPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=50"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Proficiency *int    `json:"proficiency" validate:"omitempty,min=0,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

type AboutRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	Order    int     `json:"order" validate:"min=0"`
	IsActive *bool   `json:"is_active"`
}

type AboutPatch struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Content  *string `json:"content"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}
