package service

import (
	"errors"
	"fmt"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"gorm.io/gorm"
)

// DiaryService business logic for diaries
type DiaryService interface {
	CreateDiary(memberIdx int, req *domain.CreateDiaryRequest) (*domain.DiaryResponse, error)
	UpdateDiary(memberIdx, diaryIdx int, req *domain.UpdateDiaryRequest) (*domain.DiaryResponse, error)
	DeleteDiary(memberIdx, diaryIdx int) error
	GetDiary(memberIdx, diaryIdx int) (*domain.DiaryResponse, error)
}

type diaryService struct {
	repo       repository.DiaryRepository
	memberRepo repository.MemberRepository
	cipher     *cipher.AES
}

// NewDiaryService creates a new DiaryService
func NewDiaryService(repo repository.DiaryRepository, memberRepo repository.MemberRepository, c *cipher.AES) DiaryService {
	return &diaryService{repo: repo, memberRepo: memberRepo, cipher: c}
}

// CreateDiary stores a diary and delivers it to the requested receivers.
// 비공개 일기는 본문과 done list를 암호화해서 저장한다.
func (s *diaryService) CreateDiary(memberIdx int, req *domain.CreateDiaryRequest) (*domain.DiaryResponse, error) {
	if req.EmotionIdx < 0 || req.EmotionIdx > 8 {
		return nil, common.ErrInvalidEmotion
	}

	for _, receiverIdx := range req.Receivers {
		if receiverIdx == memberIdx {
			return nil, fmt.Errorf("%w: 자기 자신에게 일기를 보낼 수 없습니다", common.ErrInvalidInput)
		}
		if _, err := s.memberRepo.FindByIdx(receiverIdx); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrUserNotFound
			}
			return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
		}
	}

	content := req.Content
	doneList := append([]string(nil), req.DoneList...)
	if !req.IsPublic {
		var err error
		if content, doneList, err = s.encryptAll(req.Content, req.DoneList); err != nil {
			return nil, err
		}
	}

	diary := &domain.Diary{
		MemberIdx:  memberIdx,
		EmotionIdx: req.EmotionIdx,
		DiaryDate:  req.DiaryDate,
		Content:    content,
		IsPublic:   req.IsPublic,
	}
	if err := s.repo.Create(diary, doneList, req.Receivers); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.DiaryResponse{
		DiaryIdx:   diary.DiaryIdx,
		EmotionIdx: diary.EmotionIdx,
		DiaryDate:  diary.DiaryDate,
		Content:    req.Content,
		IsPublic:   diary.IsPublic,
		DoneList:   req.DoneList,
		CreatedAt:  diary.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// UpdateDiary rewrites a diary the member owns.
func (s *diaryService) UpdateDiary(memberIdx, diaryIdx int, req *domain.UpdateDiaryRequest) (*domain.DiaryResponse, error) {
	if req.EmotionIdx < 0 || req.EmotionIdx > 8 {
		return nil, common.ErrInvalidEmotion
	}

	existing, err := s.repo.FindByIdx(diaryIdx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrDiaryNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	if existing.MemberIdx != memberIdx {
		return nil, common.ErrForbidden
	}

	content := req.Content
	doneList := append([]string(nil), req.DoneList...)
	if !req.IsPublic {
		if content, doneList, err = s.encryptAll(req.Content, req.DoneList); err != nil {
			return nil, err
		}
	}

	diary := &domain.Diary{
		DiaryIdx:   diaryIdx,
		EmotionIdx: req.EmotionIdx,
		Content:    content,
		IsPublic:   req.IsPublic,
	}
	if err := s.repo.Update(diary, doneList); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	return &domain.DiaryResponse{
		DiaryIdx:   diaryIdx,
		EmotionIdx: req.EmotionIdx,
		DiaryDate:  existing.DiaryDate,
		Content:    req.Content,
		IsPublic:   req.IsPublic,
		DoneList:   req.DoneList,
		CreatedAt:  existing.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteDiary soft-deletes a diary the member owns.
func (s *diaryService) DeleteDiary(memberIdx, diaryIdx int) error {
	err := s.repo.SoftDelete(diaryIdx, memberIdx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrDiaryNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	return nil
}

// GetDiary returns a diary with decrypted content. 비공개 일기는 작성자만 조회.
func (s *diaryService) GetDiary(memberIdx, diaryIdx int) (*domain.DiaryResponse, error) {
	diary, err := s.repo.FindByIdx(diaryIdx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrDiaryNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}
	if !diary.IsPublic && diary.MemberIdx != memberIdx {
		return nil, common.ErrForbidden
	}

	doneList, err := s.repo.DoneContents(diaryIdx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRetrieval, err)
	}

	content := diary.Content
	if !diary.IsPublic {
		if content, err = s.cipher.Decrypt(diary.Content); err != nil {
			return nil, fmt.Errorf("%w: diary %d: %v", common.ErrContentCrypto, diaryIdx, err)
		}
		for i, done := range doneList {
			if doneList[i], err = s.cipher.Decrypt(done); err != nil {
				return nil, fmt.Errorf("%w: done list of diary %d: %v", common.ErrContentCrypto, diaryIdx, err)
			}
		}
	}

	return &domain.DiaryResponse{
		DiaryIdx:   diary.DiaryIdx,
		EmotionIdx: diary.EmotionIdx,
		DiaryDate:  diary.DiaryDate,
		Content:    content,
		IsPublic:   diary.IsPublic,
		DoneList:   doneList,
		CreatedAt:  diary.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (s *diaryService) encryptAll(content string, doneList []string) (string, []string, error) {
	encrypted, err := s.cipher.Encrypt(content)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", common.ErrContentCrypto, err)
	}
	encryptedDone := make([]string, len(doneList))
	for i, done := range doneList {
		if encryptedDone[i], err = s.cipher.Encrypt(done); err != nil {
			return "", nil, fmt.Errorf("%w: %v", common.ErrContentCrypto, err)
		}
	}
	return encrypted, encryptedDone, nil
}
