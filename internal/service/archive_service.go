package service

import (
	"fmt"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
)

// ArchiveService serves a member's own diaries: the monthly calendar view and
// the month-grouped, searchable diary list.
//
// 달력 조회는 type에 따라 doneList 개수 또는 감정 인덱스를 내려주고,
// emotion 모드는 프리미엄 회원 전용이다.
type ArchiveService interface {
	GetCalendar(memberIdx int, month string, calType domain.CalendarType) ([]*domain.CalendarDay, error)
	GetDiaryList(memberIdx int, search, startDate, endDate string, page int) ([]*domain.DiaryMonthGroup, *common.PageCursor, error)
}

type archiveService struct {
	repo     repository.ArchiveRepository
	cipher   *cipher.AES
	pageSize int
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(repo repository.ArchiveRepository, c *cipher.AES, pageSize int) ArchiveService {
	return &archiveService{repo: repo, cipher: c, pageSize: pageSize}
}

// GetCalendar returns the member's diary days of one yyyy-MM month. Each day
// carries only the metric matching the requested type.
func (s *archiveService) GetCalendar(memberIdx int, month string, calType domain.CalendarType) ([]*domain.CalendarDay, error) {
	if calType == domain.CalendarEmotion {
		premium, err := s.repo.IsPremium(memberIdx)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if !premium {
			return nil, common.ErrPremiumRequired
		}
	}

	days, err := s.repo.CalendarDays(memberIdx, month)
	if err != nil {
		return nil, retrievalErr(err)
	}
	for _, day := range days {
		if calType == domain.CalendarDoneList {
			day.EmotionIdx = 0
		} else {
			day.DoneListNum = 0
		}
	}
	return days, nil
}

// GetDiaryList returns the member's own diaries grouped by month, newest
// first. search와 날짜 범위는 함께 쓸 수 있고, 검색은 비공개 일기를 복호화한
// 평문에서 수행한다.
func (s *archiveService) GetDiaryList(memberIdx int, search, startDate, endDate string, page int) ([]*domain.DiaryMonthGroup, *common.PageCursor, error) {
	var rows []*domain.ArchiveRecord
	var err error
	if startDate != "" || endDate != "" {
		rows, err = s.repo.OwnDiariesByDate(memberIdx, startDate, endDate)
	} else {
		rows, err = s.repo.OwnDiaries(memberIdx)
	}
	if err != nil {
		return nil, nil, retrievalErr(err)
	}

	diaries := make([]*domain.ArchiveDiary, 0, len(rows))
	for _, rec := range rows {
		content := rec.Content
		if !rec.IsPublic {
			plain, err := s.cipher.Decrypt(content)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: diary %d: %v", common.ErrContentCrypto, rec.DiaryIdx, err)
			}
			content = plain
		}
		diaries = append(diaries, &domain.ArchiveDiary{
			DiaryIdx:    rec.DiaryIdx,
			DiaryDate:   rec.DiaryDate,
			EmotionIdx:  rec.EmotionIdx,
			Content:     content,
			IsPublic:    rec.IsPublic,
			DoneListNum: rec.DoneListNum,
		})
	}

	if search != "" {
		folded := foldText(search)
		kept := diaries[:0]
		for _, d := range diaries {
			if containsFolded(d.Content, folded) {
				kept = append(kept, d)
			}
		}
		diaries = kept
	}

	if len(diaries) == 0 {
		return nil, nil, common.ErrEmptyResult
	}
	cursor, err := common.NewPageCursor(int64(len(diaries)), s.pageSize, page)
	if err != nil {
		return nil, nil, err
	}
	start, end := cursor.Bounds(len(diaries))

	return groupByMonth(diaries[start:end]), cursor, nil
}

// groupByMonth folds the already date-ordered page into yyyy-MM groups.
func groupByMonth(diaries []*domain.ArchiveDiary) []*domain.DiaryMonthGroup {
	var groups []*domain.DiaryMonthGroup
	for _, d := range diaries {
		month := d.DiaryDate
		if len(month) >= 7 {
			month = month[:7]
		}
		if len(groups) == 0 || groups[len(groups)-1].Month != month {
			groups = append(groups, &domain.DiaryMonthGroup{Month: month})
		}
		last := groups[len(groups)-1]
		last.Diaries = append(last.Diaries, d)
	}
	return groups
}
