package models

import "time"

type CVExperience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Company     string    `json:"company" gorm:"size:200;not null"`
	Location    string    `json:"location" gorm:"size:200"`
	StartDate   Date      `json:"start_date" gorm:"not null"`
	EndDate     *Date     `json:"end_date"`
	IsCurrent   bool      `json:"is_current"`
	Description string    `json:"description" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CVExperience) TableName() string { return "cv_experiences" }

type CVEducation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Degree      string    `json:"degree" gorm:"size:200;not null"`
	Institution string    `json:"institution" gorm:"size:200;not null"`
	Location    string    `json:"location" gorm:"size:200"`
	StartDate   Date      `json:"start_date" gorm:"not null"`
	EndDate     *Date     `json:"end_date"`
	IsCurrent   bool      `json:"is_current"`
	Description string    `json:"description" gorm:"type:text"`
	GPA         string    `json:"gpa" gorm:"size:20"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CVEducation) TableName() string { return "cv_education" }

type CVSkill struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Level      string    `json:"level" gorm:"size:20"`
	Category   string    `json:"category" gorm:"size:20"`
	Percentage int       `json:"percentage"`
	Order      int       `json:"order" gorm:"column:sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CVSkill) TableName() string { return "cv_skills" }

func NewCVSkill() *CVSkill {
	return &CVSkill{Level: "intermediate", Category: "technical", Percentage: 80}
}

type CVLanguage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Level     string    `json:"level" gorm:"size:20"`
	Order     int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (CVLanguage) TableName() string { return "cv_languages" }

func NewCVLanguage() *CVLanguage {
	return &CVLanguage{Level: "intermediate"}
}

type CVCertification struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:200;not null"`
	Issuer        string    `json:"issuer" gorm:"size:200;not null"`
	IssueDate     Date      `json:"issue_date" gorm:"not null"`
	ExpiryDate    *Date     `json:"expiry_date"`
	CredentialID  string    `json:"credential_id" gorm:"size:200"`
	CredentialURL string    `json:"credential_url" gorm:"size:500"`
	Description   string    `json:"description" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func (CVCertification) TableName() string { return "cv_certifications" }

type CVProject struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	// Technologies is a comma separated list.
	Technologies string    `json:"technologies" gorm:"size:500"`
	URL          string    `json:"url" gorm:"size:500"`
	GithubURL    string    `json:"github_url" gorm:"size:500"`
	StartDate    *Date     `json:"start_date"`
	EndDate      *Date     `json:"end_date"`
	IsOngoing    bool      `json:"is_ongoing"`
	Order        int       `json:"order" gorm:"column:sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CVProject) TableName() string { return "cv_projects" }

type CVInterest struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Icon        string    `json:"icon" gorm:"size:50"`
	Description string    `json:"description" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CVInterest) TableName() string { return "cv_interests" }

// Request bodies. XRequest is the full body of create and PUT, XPatch has
// only pointer fields so that absent keys are left untouched.

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	StartDate   *Date  `json:"start_date" validate:"required"`
	EndDate     *Date  `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
	Order       int    `json:"order" validate:"min=0"`
}

type ExperiencePatch struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	IsCurrent   *bool   `json:"is_current"`
	Description *string `json:"description"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

type EducationRequest struct {
	Degree      string `json:"degree" validate:"required,max=200"`
	Institution string `json:"institution" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	StartDate   *Date  `json:"start_date" validate:"required"`
	EndDate     *Date  `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
	GPA         string `json:"gpa" validate:"max=20"`
	Order       int    `json:"order" validate:"min=0"`
}

type EducationPatch struct {
	Degree      *string `json:"degree" validate:"omitempty,max=200"`
	Institution *string `json:"institution" validate:"omitempty,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	IsCurrent   *bool   `json:"is_current"`
	Description *string `json:"description"`
	GPA         *string `json:"gpa" validate:"omitempty,max=20"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

type CVSkillRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Level      *string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category   *string `json:"category" validate:"omitempty,oneof=technical language soft tool other"`
	Percentage *int    `json:"percentage" validate:"omitempty,min=0,max=100"`
	Order      int     `json:"order" validate:"min=0"`
}

type CVSkillPatch struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	Level      *string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category   *string `json:"category" validate:"omitempty,oneof=technical language soft tool other"`
	Percentage *int    `json:"percentage" validate:"omitempty,min=0,max=100"`
	Order      *int    `json:"order" validate:"omitempty,min=0"`
}

type LanguageRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Level *string `json:"level" validate:"omitempty,oneof=native fluent advanced intermediate basic"`
	Order int     `json:"order" validate:"min=0"`
}

type LanguagePatch struct {
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Level *string `json:"level" validate:"omitempty,oneof=native fluent advanced intermediate basic"`
	Order *int    `json:"order" validate:"omitempty,min=0"`
}

type CertificationRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Issuer        string `json:"issuer" validate:"required,max=200"`
	IssueDate     *Date  `json:"issue_date" validate:"required"`
	ExpiryDate    *Date  `json:"expiry_date"`
	CredentialID  string `json:"credential_id" validate:"max=200"`
	CredentialURL string `json:"credential_url" validate:"omitempty,url"`
	Description   string `json:"description"`
	Order         int    `json:"order" validate:"min=0"`
}

type CertificationPatch struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	Issuer        *string `json:"issuer" validate:"omitempty,max=200"`
	IssueDate     *Date   `json:"issue_date"`
	ExpiryDate    *Date   `json:"expiry_date"`
	CredentialID  *string `json:"credential_id" validate:"omitempty,max=200"`
	CredentialURL *string `json:"credential_url" validate:"omitempty,url"`
	Description   *string `json:"description"`
	Order         *int    `json:"order" validate:"omitempty,min=0"`
}

type CVProjectRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required"`
	Technologies string `json:"technologies" validate:"max=500"`
	URL          string `json:"url" validate:"omitempty,url"`
	GithubURL    string `json:"github_url" validate:"omitempty,url"`
	StartDate    *Date  `json:"start_date"`
	EndDate      *Date  `json:"end_date"`
	IsOngoing    bool   `json:"is_ongoing"`
	Order        int    `json:"order" validate:"min=0"`
}

type CVProjectPatch struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies" validate:"omitempty,max=500"`
	URL          *string `json:"url" validate:"omitempty,url"`
	GithubURL    *string `json:"github_url" validate:"omitempty,url"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	IsOngoing    *bool   `json:"is_ongoing"`
	Order        *int    `json:"order" validate:"omitempty,min=0"`
}

type InterestRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Icon        string `json:"icon" validate:"max=50"`
	Description string `json:"description"`
	Order       int    `json:"order" validate:"min=0"`
}

type InterestPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	Description *string `json:"description"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}
