package repository

import (
	"time"

	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// DiaryRepository diary data access interface
type DiaryRepository interface {
	Create(diary *domain.Diary, doneList []string, receivers []int) error
	Update(diary *domain.Diary, doneList []string) error
	FindByIdx(diaryIdx int) (*domain.Diary, error)
	DoneContents(diaryIdx int) ([]string, error)
	SoftDelete(diaryIdx, memberIdx int) error
}

type diaryRepository struct {
	db *gorm.DB
}

// NewDiaryRepository creates a new DiaryRepository
func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// Create inserts the diary, its done list and its delivery records in one
// transaction.
func (r *diaryRepository) Create(diary *domain.Diary, doneList []string, receivers []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		diary.Status = domain.StatusActive
		diary.CreatedAt = time.Now()
		diary.UpdatedAt = diary.CreatedAt
		if err := tx.Create(diary).Error; err != nil {
			return err
		}
		for _, content := range doneList {
			done := &domain.Done{
				DiaryIdx: diary.DiaryIdx,
				Content:  content,
				Status:   domain.StatusActive,
			}
			if err := tx.Create(done).Error; err != nil {
				return err
			}
		}
		for _, receiverIdx := range receivers {
			send := &domain.DiarySendList{
				DiaryIdx:    diary.DiaryIdx,
				ReceiverIdx: receiverIdx,
				Status:      domain.StatusActive,
				CreatedAt:   diary.CreatedAt,
			}
			if err := tx.Create(send).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the diary row and replaces its done list.
// 기존 done list는 soft delete 후 새로 쓴다.
func (r *diaryRepository) Update(diary *domain.Diary, doneList []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		diary.UpdatedAt = time.Now()
		err := tx.Model(&domain.Diary{}).
			Where("diary_idx = ? AND status = 'active'", diary.DiaryIdx).
			Updates(map[string]interface{}{
				"emotion_idx": diary.EmotionIdx,
				"content":     diary.Content,
				"is_public":   diary.IsPublic,
				"updated_at":  diary.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}

		err = tx.Model(&domain.Done{}).
			Where("diary_idx = ? AND status = 'active'", diary.DiaryIdx).
			Update("status", domain.StatusDeleted).Error
		if err != nil {
			return err
		}
		for _, content := range doneList {
			done := &domain.Done{
				DiaryIdx: diary.DiaryIdx,
				Content:  content,
				Status:   domain.StatusActive,
			}
			if err := tx.Create(done).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *diaryRepository) FindByIdx(diaryIdx int) (*domain.Diary, error) {
	var diary domain.Diary
	err := r.db.Where("diary_idx = ? AND status = 'active'", diaryIdx).First(&diary).Error
	if err != nil {
		return nil, err
	}
	return &diary, nil
}

func (r *diaryRepository) DoneContents(diaryIdx int) ([]string, error) {
	var contents []string
	err := r.db.Model(&domain.Done{}).
		Where("diary_idx = ? AND status = 'active'", diaryIdx).
		Order("done_idx ASC").
		Pluck("content", &contents).Error
	return contents, err
}

// SoftDelete deactivates the diary, its done list and its send records.
func (r *diaryRepository) SoftDelete(diaryIdx, memberIdx int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Diary{}).
			Where("diary_idx = ? AND member_idx = ? AND status = 'active'", diaryIdx, memberIdx).
			Update("status", domain.StatusDeleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&domain.Done{}).
			Where("diary_idx = ?", diaryIdx).
			Update("status", domain.StatusDeleted).Error; err != nil {
			return err
		}
		return tx.Model(&domain.DiarySendList{}).
			Where("diary_idx = ?", diaryIdx).
			Update("status", domain.StatusDeleted).Error
	})
}
