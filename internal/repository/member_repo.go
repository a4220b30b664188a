package repository

import (
	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member data access interface
type MemberRepository interface {
	FindByIdx(memberIdx int) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
	FindByNickname(nickname string) (*domain.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByIdx(memberIdx int) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("member_idx = ? AND status = 'active'", memberIdx).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(email string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("email = ? AND status = 'active'", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByNickname(nickname string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("nickname = ? AND status = 'active'", nickname).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}
