package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"gorm.io/gorm"
)

// MailboxService lists unopened mail and opens it. 열람 시 is_checked 처리.
type MailboxService interface {
	GetMailbox(memberIdx int) ([]*domain.MailboxItem, error)
	OpenMail(memberIdx int, kind domain.HistoryKind, idx int) (interface{}, error)
}

type mailboxService struct {
	repo        repository.MailboxRepository
	historyRepo repository.HistoryRepository
	cipher      *cipher.AES
}

// NewMailboxService creates a new MailboxService
func NewMailboxService(repo repository.MailboxRepository, historyRepo repository.HistoryRepository, c *cipher.AES) MailboxService {
	return &mailboxService{repo: repo, historyRepo: historyRepo, cipher: c}
}

// GetMailbox returns every unopened delivery, newest first.
func (s *mailboxService) GetMailbox(memberIdx int) ([]*domain.MailboxItem, error) {
	type timed struct {
		item   *domain.MailboxItem
		sentAt time.Time
	}
	var all []timed

	add := func(kind domain.HistoryKind, rows []*repository.UnreadRow) {
		for _, row := range rows {
			all = append(all, timed{
				item: &domain.MailboxItem{
					Kind:           kind,
					Idx:            row.Idx,
					SenderNickname: row.SenderNickname,
					SendAt:         row.CreatedAt.Format("2006.01.02"),
				},
				sentAt: row.CreatedAt,
			})
		}
	}

	diaries, err := s.repo.UnreadDiaries(memberIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	add(domain.KindDiary, diaries)

	letters, err := s.repo.UnreadLetters(memberIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	add(domain.KindLetter, letters)

	replies, err := s.repo.UnreadReplies(memberIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	add(domain.KindReply, replies)

	sort.Slice(all, func(i, j int) bool {
		return all[i].sentAt.After(all[j].sentAt)
	})

	items := make([]*domain.MailboxItem, len(all))
	for i, entry := range all {
		items[i] = entry.item
	}
	return items, nil
}

// OpenMail marks the delivery opened and returns its body. 비공개 일기는
// 수신자에게도 복호화해서 보여준다.
func (s *mailboxService) OpenMail(memberIdx int, kind domain.HistoryKind, idx int) (interface{}, error) {
	switch kind {
	case domain.KindDiary:
		rec, err := s.historyRepo.DiaryOrigin(idx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrDiaryNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}

		content := rec.Content
		if !rec.IsPublic {
			if content, err = s.cipher.Decrypt(rec.Content); err != nil {
				return nil, fmt.Errorf("%w: diary %d: %v", common.ErrContentCrypto, idx, err)
			}
		}
		doneList, err := s.historyRepo.DoneContents(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		if !rec.IsPublic {
			for i, done := range doneList {
				if doneList[i], err = s.cipher.Decrypt(done); err != nil {
					return nil, fmt.Errorf("%w: done list of diary %d: %v", common.ErrContentCrypto, idx, err)
				}
			}
		}

		if err := s.repo.MarkDiaryChecked(memberIdx, idx); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		item := domain.NewHistoryItem(domain.KindDiary, rec.DiaryIdx, rec.SenderNickname,
			content, rec.EmotionIdx, rec.DoneListNum, rec.CreatedAt)
		return &domain.Thread{
			Origin:   &domain.ThreadItem{HistoryItem: *item},
			DoneList: doneList,
		}, nil

	case domain.KindLetter:
		rec, err := s.historyRepo.LetterOrigin(idx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrLetterNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		if err := s.repo.MarkLetterChecked(memberIdx, idx); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		return &domain.LetterResponse{
			LetterIdx:      rec.LetterIdx,
			SenderNickname: rec.SenderNickname,
			Content:        rec.Content,
			SendAt:         rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}, nil

	case domain.KindReply:
		originKind, originIdx, err := s.historyRepo.ReplyOrigin(idx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrReplyNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		replies, err := s.historyRepo.ThreadReplies(memberIdx, originKind, originIdx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
		for _, rec := range replies {
			if rec.ReplyIdx != idx {
				continue
			}
			if err := s.repo.MarkReplyChecked(memberIdx, idx); err != nil {
				return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
			}
			return &domain.ReplyResponse{
				ReplyIdx:       rec.ReplyIdx,
				SenderNickname: rec.SenderNickname,
				Content:        rec.Content,
				SendAt:         rec.CreatedAt.Format("2006-01-02 15:04:05"),
			}, nil
		}
		return nil, common.ErrReplyNotFound

	default:
		return nil, common.ErrInvalidInput
	}
}
