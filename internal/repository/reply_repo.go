package repository

import (
	"time"

	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// ReplyRepository reply data access interface
type ReplyRepository interface {
	Create(reply *domain.Reply) error
	FindByIdx(replyIdx int) (*domain.Reply, error)
	SoftDelete(replyIdx, memberIdx int) error
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new ReplyRepository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *domain.Reply) error {
	reply.Status = domain.StatusActive
	reply.CreatedAt = time.Now()
	return r.db.Create(reply).Error
}

func (r *replyRepository) FindByIdx(replyIdx int) (*domain.Reply, error) {
	var reply domain.Reply
	err := r.db.Where("reply_idx = ? AND status = 'active'", replyIdx).First(&reply).Error
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// SoftDelete deactivates a reply the member wrote.
func (r *replyRepository) SoftDelete(replyIdx, memberIdx int) error {
	result := r.db.Model(&domain.Reply{}).
		Where("reply_idx = ? AND replier_idx = ? AND status = 'active'", replyIdx, memberIdx).
		Update("status", domain.StatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
