package domain

import "time"

// Letter represents a letter sent between members (편지). Always plaintext.
type Letter struct {
	LetterIdx int       `gorm:"column:letter_idx;primaryKey;autoIncrement" json:"letter_idx"`
	MemberIdx int       `gorm:"column:member_idx;index" json:"member_idx"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Status    string    `gorm:"column:status;size:10;default:active" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Letter) TableName() string {
	return "letter"
}

// SendLetterRequest represents a letter send request
type SendLetterRequest struct {
	ReceiverIdx int    `json:"receiver_idx" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// LetterResponse represents a letter in API responses
type LetterResponse struct {
	LetterIdx      int    `json:"letter_idx"`
	SenderNickname string `json:"sender_nickname"`
	Content        string `json:"content"`
	SendAt         string `json:"send_at"`
}
