package repository

import (
	"time"

	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// UnreadRow is one unopened delivery, any kind.
type UnreadRow struct {
	Idx            int       `gorm:"column:idx"`
	SenderNickname string    `gorm:"column:sender_nickname"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// MailboxRepository reads and updates unopened deliveries (우편함).
type MailboxRepository interface {
	UnreadDiaries(receiverIdx int) ([]*UnreadRow, error)
	UnreadLetters(receiverIdx int) ([]*UnreadRow, error)
	UnreadReplies(receiverIdx int) ([]*UnreadRow, error)
	MarkDiaryChecked(receiverIdx, diaryIdx int) error
	MarkLetterChecked(receiverIdx, letterIdx int) error
	MarkReplyChecked(receiverIdx, replyIdx int) error
}

type mailboxRepository struct {
	db *gorm.DB
}

// NewMailboxRepository creates a new MailboxRepository
func NewMailboxRepository(db *gorm.DB) MailboxRepository {
	return &mailboxRepository{db: db}
}

func (r *mailboxRepository) UnreadDiaries(receiverIdx int) ([]*UnreadRow, error) {
	var rows []*UnreadRow
	err := r.db.Table("diary_send_list AS sl").
		Select("diary.diary_idx AS idx, member.nickname AS sender_nickname, diary.created_at").
		Joins("JOIN diary ON diary.diary_idx = sl.diary_idx").
		Joins("JOIN member ON member.member_idx = diary.member_idx").
		Where("sl.receiver_idx = ? AND sl.is_checked = 0 AND sl.status = 'active' AND diary.status = 'active'", receiverIdx).
		Order("diary.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *mailboxRepository) UnreadLetters(receiverIdx int) ([]*UnreadRow, error) {
	var rows []*UnreadRow
	err := r.db.Table("letter_send_list AS sl").
		Select("letter.letter_idx AS idx, member.nickname AS sender_nickname, letter.created_at").
		Joins("JOIN letter ON letter.letter_idx = sl.letter_idx").
		Joins("JOIN member ON member.member_idx = letter.member_idx").
		Where("sl.receiver_idx = ? AND sl.is_checked = 0 AND sl.status = 'active' AND letter.status = 'active'", receiverIdx).
		Order("letter.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// 답장은 send list 없이 reply 행의 is_checked로 관리한다.
func (r *mailboxRepository) UnreadReplies(receiverIdx int) ([]*UnreadRow, error) {
	var rows []*UnreadRow
	err := r.db.Table("reply").
		Select("reply.reply_idx AS idx, member.nickname AS sender_nickname, reply.created_at").
		Joins("JOIN member ON member.member_idx = reply.replier_idx").
		Where("reply.receiver_idx = ? AND reply.is_checked = 0 AND reply.status = 'active'", receiverIdx).
		Order("reply.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *mailboxRepository) MarkDiaryChecked(receiverIdx, diaryIdx int) error {
	return r.db.Model(&domain.DiarySendList{}).
		Where("receiver_idx = ? AND diary_idx = ? AND status = 'active'", receiverIdx, diaryIdx).
		Update("is_checked", true).Error
}

func (r *mailboxRepository) MarkLetterChecked(receiverIdx, letterIdx int) error {
	return r.db.Model(&domain.LetterSendList{}).
		Where("receiver_idx = ? AND letter_idx = ? AND status = 'active'", receiverIdx, letterIdx).
		Update("is_checked", true).Error
}

func (r *mailboxRepository) MarkReplyChecked(receiverIdx, replyIdx int) error {
	return r.db.Model(&domain.Reply{}).
		Where("receiver_idx = ? AND reply_idx = ? AND status = 'active'", receiverIdx, replyIdx).
		Update("is_checked", true).Error
}
