package service

import (
	"errors"
	"fmt"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"gorm.io/gorm"
)

// LetterService business logic for letters
type LetterService interface {
	SendLetter(senderIdx int, req *domain.SendLetterRequest) (*domain.LetterResponse, error)
	GetLetter(memberIdx, letterIdx int) (*domain.LetterResponse, error)
	DeleteLetter(memberIdx, letterIdx int) error
}

type letterService struct {
	repo       repository.LetterRepository
	memberRepo repository.MemberRepository
}

// NewLetterService creates a new LetterService
func NewLetterService(repo repository.LetterRepository, memberRepo repository.MemberRepository) LetterService {
	return &letterService{repo: repo, memberRepo: memberRepo}
}

// SendLetter writes a letter and its delivery record.
func (s *letterService) SendLetter(senderIdx int, req *domain.SendLetterRequest) (*domain.LetterResponse, error) {
	if senderIdx == req.ReceiverIdx {
		return nil, fmt.Errorf("%w: 자기 자신에게 편지를 보낼 수 없습니다", common.ErrInvalidInput)
	}

	// 수신자 존재 확인
	if _, err := s.memberRepo.FindByIdx(req.ReceiverIdx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	sender, err := s.memberRepo.FindByIdx(senderIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	letter := &domain.Letter{
		MemberIdx: senderIdx,
		Content:   req.Content,
	}
	if err := s.repo.Create(letter, req.ReceiverIdx); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.LetterResponse{
		LetterIdx:      letter.LetterIdx,
		SenderNickname: sender.Nickname,
		Content:        letter.Content,
		SendAt:         letter.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// GetLetter returns one letter. 작성자 또는 수신자만 열람.
func (s *letterService) GetLetter(memberIdx, letterIdx int) (*domain.LetterResponse, error) {
	letter, err := s.repo.FindByIdx(letterIdx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrLetterNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	if letter.MemberIdx != memberIdx {
		received, err := s.repo.IsReceiver(letterIdx, memberIdx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		if !received {
			return nil, common.ErrForbidden
		}
	}

	sender, err := s.memberRepo.FindByIdx(letter.MemberIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.LetterResponse{
		LetterIdx:      letter.LetterIdx,
		SenderNickname: sender.Nickname,
		Content:        letter.Content,
		SendAt:         letter.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteLetter soft-deletes a letter the member wrote.
func (s *letterService) DeleteLetter(memberIdx, letterIdx int) error {
	err := s.repo.SoftDelete(letterIdx, memberIdx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrLetterNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	return nil
}
