package dto

import "strings"

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,notblank,min=2,max=50" example:"Ada"`
	LastName        string `json:"lastName" validate:"required,notblank,min=2,max=50" example:"Lovelace"`
	Email           string `json:"email" validate:"required,email,max=100" example:"ada@example.com"`
	Grade           int    `json:"grade" validate:"required,gte=1,lte=12" example:"4"`
	Password        string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password" example:"secret123"`
}

func (r *RegisterRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = NormalizeEmail(r.Email)
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

func (l *LoginRequest) Normalize() {
	l.Email = NormalizeEmail(l.Email)
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// NormalizeEmail lower-cases and trims an address so uniqueness is
// checked on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

// Identity is what a session token asserts about its bearer.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Grade  int    `json:"grade,omitempty"`
}

type UserInfo struct {
	ID           string `json:"id" example:"01920f7e-8b4e-7c3a-9d1f-2b6c8e4a5f10"`
	FirstName    string `json:"firstName" example:"Ada"`
	LastName     string `json:"lastName" example:"Lovelace"`
	Email        string `json:"email" example:"ada@example.com"`
	Role         string `json:"role" example:"student"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Grade        *int   `json:"grade,omitempty" example:"4"`
	CurrentLevel *int   `json:"currentLevel,omitempty" example:"1"`
	TotalPoints  *int   `json:"totalPoints,omitempty" example:"0"`
	DailyPoints  *int   `json:"dailyPoints,omitempty" example:"0"`
	StreakDays   *int   `json:"streakDays,omitempty" example:"0"`
}

type AuthResponse struct {
	Token string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserInfo `json:"user"`
}

type VerifyResponse struct {
	User UserInfo `json:"user"`
}
