package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SettingsID is the primary key of the only SiteSettings row.
const SettingsID uint = 1

type SiteSettings struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement:false"`

	// Branding
	SiteName        string `json:"site_name" gorm:"size:100"`
	SiteTitle       string `json:"site_title" gorm:"size:100"`
	LogoURL         string `json:"logo_url" gorm:"size:500"`
	FaviconURL      string `json:"favicon_url" gorm:"size:500"`
	SiteDescription string `json:"site_description" gorm:"type:text"`

	// Hero
	HeroTitle    string `json:"hero_title" gorm:"size:200"`
	HeroSubtitle string `json:"hero_subtitle" gorm:"type:text"`
	HeroTagline  string `json:"hero_tagline" gorm:"size:200"`

	// CV personal info
	CVFullName     string `json:"cv_full_name" gorm:"size:200"`
	CVJobTitle     string `json:"cv_job_title" gorm:"size:200"`
	CVEmail        string `json:"cv_email" gorm:"size:254"`
	CVPhone        string `json:"cv_phone" gorm:"size:50"`
	CVLocation     string `json:"cv_location" gorm:"size:200"`
	CVProfileImage string `json:"cv_profile_image" gorm:"size:500"`
	CVSummary      string `json:"cv_summary" gorm:"type:text"`

	Location  string   `json:"location" gorm:"size:200"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	InstagramURL string `json:"instagram_url" gorm:"size:500"`
	LinkedinURL  string `json:"linkedin_url" gorm:"size:500"`
	GithubURL    string `json:"github_url" gorm:"size:500"`
	TwitterURL   string `json:"twitter_url" gorm:"size:500"`

	// OAuth
	GoogleClientID     string `json:"google_client_id" gorm:"size:255"`
	GoogleClientSecret string `json:"google_client_secret,omitempty" gorm:"size:255"`
	FacebookAppID      string `json:"facebook_app_id" gorm:"size:255"`
	FacebookAppSecret  string `json:"facebook_app_secret,omitempty" gorm:"size:255"`

	// SMTP
	EmailHost         string `json:"email_host" gorm:"size:255"`
	EmailPort         int    `json:"email_port"`
	EmailHostUser     string `json:"email_host_user" gorm:"size:255"`
	EmailHostPassword string `json:"email_host_password,omitempty" gorm:"size:255"`
	DefaultFromEmail  string `json:"default_from_email" gorm:"size:254"`

	ContactEmail string `json:"contact_email" gorm:"size:254"`
	ContactPhone string `json:"contact_phone" gorm:"size:50"`

	FooterText    string `json:"footer_text" gorm:"type:text"`
	CopyrightYear int    `json:"copyright_year"`
	Version       string `json:"version" gorm:"size:20"`

	// SEO
	MetaTitle       string `json:"meta_title" gorm:"size:200"`
	MetaDescription string `json:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:            SettingsID,
		SiteName:      "Portfolio",
		SiteTitle:     "ADRIAN",
		HeroTitle:     "Creative Developer",
		EmailPort:     587,
		CopyrightYear: 2024,
		Version:       "1.0.0",
	}
}

// BeforeCreate pins every insert to SettingsID, so a second row collides
// on the primary key whichever code path attempts it.
func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID != 0 && s.ID != SettingsID {
		return fmt.Errorf("site settings id must be %d, got %d", SettingsID, s.ID)
	}
	s.ID = SettingsID
	return nil
}

// Public returns a copy without the OAuth and SMTP secrets.
func (s SiteSettings) Public() SiteSettings {
	s.GoogleClientSecret = ""
	s.FacebookAppSecret = ""
	s.EmailHostPassword = ""
	return s
}

type CVPersonalInfo struct {
	FullName     string `json:"full_name"`
	JobTitle     string `json:"job_title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	ProfileImage string `json:"profile_image"`
	Summary      string `json:"summary"`
	Linkedin     string `json:"linkedin"`
	Github       string `json:"github"`
}

func (s *SiteSettings) PersonalInfo() CVPersonalInfo {
	return CVPersonalInfo{
		FullName:     s.CVFullName,
		JobTitle:     s.CVJobTitle,
		Email:        s.CVEmail,
		Phone:        s.CVPhone,
		Location:     s.CVLocation,
		ProfileImage: s.CVProfileImage,
		Summary:      s.CVSummary,
		Linkedin:     s.LinkedinURL,
		Github:       s.GithubURL,
	}
}

type UpdateSettingsRequest struct {
	SiteName        *string `json:"site_name" validate:"omitempty,max=100"`
	SiteTitle       *string `json:"site_title" validate:"omitempty,max=100"`
	LogoURL         *string `json:"logo_url" validate:"omitempty,max=500"`
	FaviconURL      *string `json:"favicon_url" validate:"omitempty,max=500"`
	SiteDescription *string `json:"site_description"`

	HeroTitle    *string `json:"hero_title" validate:"omitempty,max=200"`
	HeroSubtitle *string `json:"hero_subtitle"`
	HeroTagline  *string `json:"hero_tagline" validate:"omitempty,max=200"`

	CVFullName     *string `json:"cv_full_name" validate:"omitempty,max=200"`
	CVJobTitle     *string `json:"cv_job_title" validate:"omitempty,max=200"`
	CVEmail        *string `json:"cv_email" validate:"omitempty,email"`
	CVPhone        *string `json:"cv_phone" validate:"omitempty,max=50"`
	CVLocation     *string `json:"cv_location" validate:"omitempty,max=200"`
	CVProfileImage *string `json:"cv_profile_image" validate:"omitempty,max=500"`
	CVSummary      *string `json:"cv_summary"`

	Location  *string  `json:"location" validate:"omitempty,max=200"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`

	InstagramURL *string `json:"instagram_url" validate:"omitempty,url"`
	LinkedinURL  *string `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL    *string `json:"github_url" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitter_url" validate:"omitempty,url"`

	GoogleClientID     *string `json:"google_client_id" validate:"omitempty,max=255"`
	GoogleClientSecret *string `json:"google_client_secret" validate:"omitempty,max=255"`
	FacebookAppID      *string `json:"facebook_app_id" validate:"omitempty,max=255"`
	FacebookAppSecret  *string `json:"facebook_app_secret" validate:"omitempty,max=255"`

	EmailHost         *string `json:"email_host" validate:"omitempty,max=255"`
	EmailPort         *int    `json:"email_port" validate:"omitempty,min=1,max=65535"`
	EmailHostUser     *string `json:"email_host_user" validate:"omitempty,max=255"`
	EmailHostPassword *string `json:"email_host_password" validate:"omitempty,max=255"`
	DefaultFromEmail  *string `json:"default_from_email" validate:"omitempty,email"`

	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=50"`

	FooterText    *string `json:"footer_text"`
	CopyrightYear *int    `json:"copyright_year" validate:"omitempty,min=1900,max=3000"`
	Version       *string `json:"version" validate:"omitempty,max=20"`

	MetaTitle       *string `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
}
