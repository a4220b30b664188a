package domain

import "time"

// Member represents a service member (회원). IsPremium gates the emotion
// calendar view.
type Member struct {
	MemberIdx int       `gorm:"column:member_idx;primaryKey;autoIncrement" json:"member_idx"`
	Nickname  string    `gorm:"column:nickname;size:20;uniqueIndex" json:"nickname"`
	Email     string    `gorm:"column:email;size:100;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	IsPremium string    `gorm:"column:is_premium;size:10;default:free" json:"is_premium"` // "free" or "premium"
	Status    string    `gorm:"column:status;size:10;default:active" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Member) TableName() string {
	return "member"
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents issued tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	MemberIdx    int    `json:"member_idx"`
	Nickname     string `json:"nickname"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
