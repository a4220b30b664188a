package domain

import "time"

// Reply represents a response to a received diary or letter (답장). The row
// records which kind of exchange it started from and that record's id.
type Reply struct {
	ReplyIdx        int       `gorm:"column:reply_idx;primaryKey;autoIncrement" json:"reply_idx"`
	ReplierIdx      int       `gorm:"column:replier_idx;index" json:"replier_idx"`
	ReceiverIdx     int       `gorm:"column:receiver_idx;index" json:"receiver_idx"`
	FirstOriginType string    `gorm:"column:first_origin_type;size:10" json:"first_origin_type"` // "diary" or "letter"
	FirstOriginIdx  int       `gorm:"column:first_origin_idx" json:"first_origin_idx"`
	Content         string    `gorm:"column:content;type:text" json:"content"`
	IsChecked       bool      `gorm:"column:is_checked" json:"is_checked"`
	Status          string    `gorm:"column:status;size:10;default:active" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Reply) TableName() string {
	return "reply"
}

// CreateReplyRequest represents a reply creation request
type CreateReplyRequest struct {
	ReceiverIdx     int    `json:"receiver_idx" binding:"required"`
	FirstOriginType string `json:"first_origin_type" binding:"required"`
	FirstOriginIdx  int    `json:"first_origin_idx" binding:"required"`
	Content         string `json:"content" binding:"required"`
}

// ReplyResponse represents a reply in API responses
type ReplyResponse struct {
	ReplyIdx       int    `json:"reply_idx"`
	SenderNickname string `json:"sender_nickname"`
	Content        string `json:"content"`
	SendAt         string `json:"send_at"`
}
