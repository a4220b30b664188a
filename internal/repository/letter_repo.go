package repository

import (
	"time"

	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// LetterRepository letter data access interface
type LetterRepository interface {
	Create(letter *domain.Letter, receiverIdx int) error
	FindByIdx(letterIdx int) (*domain.Letter, error)
	IsReceiver(letterIdx, memberIdx int) (bool, error)
	SoftDelete(letterIdx, memberIdx int) error
}

type letterRepository struct {
	db *gorm.DB
}

// NewLetterRepository creates a new LetterRepository
func NewLetterRepository(db *gorm.DB) LetterRepository {
	return &letterRepository{db: db}
}

// Create inserts the letter and its delivery record in one transaction.
func (r *letterRepository) Create(letter *domain.Letter, receiverIdx int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		letter.Status = domain.StatusActive
		letter.CreatedAt = time.Now()
		if err := tx.Create(letter).Error; err != nil {
			return err
		}
		send := &domain.LetterSendList{
			LetterIdx:   letter.LetterIdx,
			ReceiverIdx: receiverIdx,
			Status:      domain.StatusActive,
			CreatedAt:   letter.CreatedAt,
		}
		return tx.Create(send).Error
	})
}

func (r *letterRepository) FindByIdx(letterIdx int) (*domain.Letter, error) {
	var letter domain.Letter
	err := r.db.Where("letter_idx = ? AND status = 'active'", letterIdx).First(&letter).Error
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

// IsReceiver reports whether the member has an active delivery record for
// this letter.
func (r *letterRepository) IsReceiver(letterIdx, memberIdx int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.LetterSendList{}).
		Where("letter_idx = ? AND receiver_idx = ? AND status = 'active'", letterIdx, memberIdx).
		Count(&count).Error
	return count > 0, err
}

// SoftDelete deactivates the letter and its delivery records.
func (r *letterRepository) SoftDelete(letterIdx, memberIdx int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Letter{}).
			Where("letter_idx = ? AND member_idx = ? AND status = 'active'", letterIdx, memberIdx).
			Update("status", domain.StatusDeleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.LetterSendList{}).
			Where("letter_idx = ?", letterIdx).
			Update("status", domain.StatusDeleted).Error
	})
}
