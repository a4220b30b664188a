package repository

import (
	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// ArchiveRepository reads a member's own diaries for the archive views.
// 수신 여부와 무관하게 본인이 쓴 active 일기만 대상으로 한다.
type ArchiveRepository interface {
	OwnDiaries(memberIdx int) ([]*domain.ArchiveRecord, error)
	OwnDiariesByDate(memberIdx int, startDate, endDate string) ([]*domain.ArchiveRecord, error)
	CalendarDays(memberIdx int, month string) ([]*domain.CalendarDay, error)
	IsPremium(memberIdx int) (bool, error)
}

type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new ArchiveRepository
func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) ownDiaries(memberIdx int) *gorm.DB {
	return r.db.Table("diary").
		Select("diary.diary_idx, diary.diary_date, diary.emotion_idx, diary.content, diary.is_public, " +
			"(SELECT COUNT(*) FROM diary_done WHERE diary_done.diary_idx = diary.diary_idx AND diary_done.status = 'active') AS done_list_num").
		Where("diary.member_idx = ? AND diary.status = 'active'", memberIdx)
}

func (r *archiveRepository) OwnDiaries(memberIdx int) ([]*domain.ArchiveRecord, error) {
	var rows []*domain.ArchiveRecord
	err := r.ownDiaries(memberIdx).
		Order("diary.diary_date DESC, diary.diary_idx DESC").
		Scan(&rows).Error
	return rows, err
}

// OwnDiariesByDate bounds the list by diary_date (inclusive). Dates are
// yyyy-MM-dd strings so string comparison orders them correctly.
func (r *archiveRepository) OwnDiariesByDate(memberIdx int, startDate, endDate string) ([]*domain.ArchiveRecord, error) {
	q := r.ownDiaries(memberIdx)
	if startDate != "" {
		q = q.Where("diary.diary_date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("diary.diary_date <= ?", endDate)
	}

	var rows []*domain.ArchiveRecord
	err := q.Order("diary.diary_date DESC, diary.diary_idx DESC").Scan(&rows).Error
	return rows, err
}

// CalendarDays returns the member's diary days of one yyyy-MM month with the
// emotion and done count of each day.
func (r *archiveRepository) CalendarDays(memberIdx int, month string) ([]*domain.CalendarDay, error) {
	var rows []*domain.CalendarDay
	err := r.db.Table("diary").
		Select("diary.diary_idx, diary.diary_date, diary.emotion_idx, "+
			"(SELECT COUNT(*) FROM diary_done WHERE diary_done.diary_idx = diary.diary_idx AND diary_done.status = 'active') AS done_list_num").
		Where("diary.member_idx = ? AND diary.status = 'active' AND diary.diary_date LIKE ?", memberIdx, month+"%").
		Order("diary.diary_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *archiveRepository) IsPremium(memberIdx int) (bool, error) {
	var values []string
	err := r.db.Model(&domain.Member{}).
		Where("member_idx = ? AND status = 'active'", memberIdx).
		Pluck("is_premium", &values).Error
	if err != nil {
		return false, err
	}
	if len(values) == 0 {
		return false, gorm.ErrRecordNotFound
	}
	return values[0] == "premium", nil
}
