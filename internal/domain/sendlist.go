package domain

import "time"

// DiarySendList is the delivery record linking a diary to its receiver
// (수신 기록). IsChecked flips when the receiver opens the mail.
type DiarySendList struct {
	SendIdx     int       `gorm:"column:send_idx;primaryKey;autoIncrement" json:"send_idx"`
	DiaryIdx    int       `gorm:"column:diary_idx;index" json:"diary_idx"`
	ReceiverIdx int       `gorm:"column:receiver_idx;index" json:"receiver_idx"`
	IsChecked   bool      `gorm:"column:is_checked" json:"is_checked"`
	Status      string    `gorm:"column:status;size:10;default:active" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (DiarySendList) TableName() string {
	return "diary_send_list"
}

// LetterSendList is the delivery record for letters.
type LetterSendList struct {
	SendIdx     int       `gorm:"column:send_idx;primaryKey;autoIncrement" json:"send_idx"`
	LetterIdx   int       `gorm:"column:letter_idx;index" json:"letter_idx"`
	ReceiverIdx int       `gorm:"column:receiver_idx;index" json:"receiver_idx"`
	IsChecked   bool      `gorm:"column:is_checked" json:"is_checked"`
	Status      string    `gorm:"column:status;size:10;default:active" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (LetterSendList) TableName() string {
	return "letter_send_list"
}

// MailboxItem is one unopened piece of received mail (우편함 항목).
type MailboxItem struct {
	Kind           HistoryKind `json:"type"`
	Idx            int         `json:"idx"`
	SenderNickname string      `json:"sender_nickname"`
	SendAt         string      `json:"send_at"`
}
