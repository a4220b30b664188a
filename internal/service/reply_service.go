package service

import (
	"errors"
	"fmt"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"gorm.io/gorm"
)

// ReplyService business logic for replies
type ReplyService interface {
	CreateReply(replierIdx int, req *domain.CreateReplyRequest) (*domain.ReplyResponse, error)
	DeleteReply(memberIdx, replyIdx int) error
}

type replyService struct {
	repo       repository.ReplyRepository
	diaryRepo  repository.DiaryRepository
	letterRepo repository.LetterRepository
	memberRepo repository.MemberRepository
}

// NewReplyService creates a new ReplyService
func NewReplyService(repo repository.ReplyRepository, diaryRepo repository.DiaryRepository,
	letterRepo repository.LetterRepository, memberRepo repository.MemberRepository) ReplyService {
	return &replyService{repo: repo, diaryRepo: diaryRepo, letterRepo: letterRepo, memberRepo: memberRepo}
}

// CreateReply records a reply against the diary or letter its exchange
// started from.
func (s *replyService) CreateReply(replierIdx int, req *domain.CreateReplyRequest) (*domain.ReplyResponse, error) {
	originKind, ok := domain.ParseHistoryKind(req.FirstOriginType)
	if !ok || originKind == domain.KindReply {
		return nil, fmt.Errorf("%w: first_origin_type must be diary or letter", common.ErrInvalidInput)
	}

	// 시작점 존재 확인
	switch originKind {
	case domain.KindDiary:
		if _, err := s.diaryRepo.FindByIdx(req.FirstOriginIdx); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrDiaryNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
	case domain.KindLetter:
		if _, err := s.letterRepo.FindByIdx(req.FirstOriginIdx); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrLetterNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
	}

	// 수신자 존재 확인
	if _, err := s.memberRepo.FindByIdx(req.ReceiverIdx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	replier, err := s.memberRepo.FindByIdx(replierIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	reply := &domain.Reply{
		ReplierIdx:      replierIdx,
		ReceiverIdx:     req.ReceiverIdx,
		FirstOriginType: string(originKind),
		FirstOriginIdx:  req.FirstOriginIdx,
		Content:         req.Content,
	}
	if err := s.repo.Create(reply); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.ReplyResponse{
		ReplyIdx:       reply.ReplyIdx,
		SenderNickname: replier.Nickname,
		Content:        reply.Content,
		SendAt:         reply.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteReply soft-deletes a reply the member wrote.
func (s *replyService) DeleteReply(memberIdx, replyIdx int) error {
	err := s.repo.SoftDelete(replyIdx, memberIdx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrReplyNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	return nil
}
