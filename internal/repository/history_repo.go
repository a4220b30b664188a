package repository

import (
	"github.com/dayletter/dayletter-backend/internal/domain"
	"gorm.io/gorm"
)

// HistoryRepository is the storage access port for the history engine: read
// only projections over diaries, letters, replies and their send lists.
// 모든 조회는 active 행만 대상으로 한다.
type HistoryRepository interface {
	// 발신인 닉네임 목록 (가장 최근에 받은 순)
	SenderNicknames(receiverIdx int) ([]string, error)

	// 전체 수신 기록 (최신순)
	AllDiaries(receiverIdx int) ([]*domain.DiaryRecord, error)
	AllLetters(receiverIdx int) ([]*domain.LetterRecord, error)
	AllReplies(receiverIdx int) ([]*domain.ReplyRecord, error)

	// 일기 전용 페이지 조회
	CountDiaries(receiverIdx int) (int64, error)
	DiaryPage(receiverIdx, offset, limit int) ([]*domain.DiaryRecord, error)

	// 발신인별 조회
	DiariesBySender(receiverIdx int, nickname string) ([]*domain.DiaryRecord, error)
	LettersBySender(receiverIdx int, nickname string) ([]*domain.LetterRecord, error)
	RepliesBySender(receiverIdx int, nickname string) ([]*domain.ReplyRecord, error)
	CountDiariesBySender(receiverIdx int, nickname string) (int64, error)
	CountLettersBySender(receiverIdx int, nickname string) (int64, error)
	CountRepliesBySender(receiverIdx int, nickname string) (int64, error)
	LatestDiaryBySender(receiverIdx int, nickname string) (*domain.DiaryRecord, error)
	LatestLetterBySender(receiverIdx int, nickname string) (*domain.LetterRecord, error)
	LatestReplyBySender(receiverIdx int, nickname string) (*domain.ReplyRecord, error)

	// 본문(스레드) 조회
	DiaryOrigin(diaryIdx int) (*domain.DiaryRecord, error)
	LetterOrigin(letterIdx int) (*domain.LetterRecord, error)
	DoneContents(diaryIdx int) ([]string, error)
	ReplyOrigin(replyIdx int) (domain.HistoryKind, int, error)
	ThreadReplies(memberIdx int, originKind domain.HistoryKind, originIdx int) ([]*domain.ReplyRecord, error)
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// 수신 일기 조회의 공통 join. done_list_num은 상관 서브쿼리로 센다.
func (r *historyRepository) receivedDiaries(receiverIdx int) *gorm.DB {
	return r.db.Table("diary_send_list AS sl").
		Select("diary.diary_idx, member.nickname AS sender_nickname, diary.content, "+
			"diary.is_public, diary.emotion_idx, "+
			"(SELECT COUNT(*) FROM diary_done WHERE diary_done.diary_idx = diary.diary_idx AND diary_done.status = 'active') AS done_list_num, "+
			"diary.created_at").
		Joins("JOIN diary ON diary.diary_idx = sl.diary_idx").
		Joins("JOIN member ON member.member_idx = diary.member_idx").
		Where("sl.receiver_idx = ? AND sl.status = 'active' AND diary.status = 'active'", receiverIdx)
}

func (r *historyRepository) receivedLetters(receiverIdx int) *gorm.DB {
	return r.db.Table("letter_send_list AS sl").
		Select("letter.letter_idx, member.nickname AS sender_nickname, letter.content, letter.created_at").
		Joins("JOIN letter ON letter.letter_idx = sl.letter_idx").
		Joins("JOIN member ON member.member_idx = letter.member_idx").
		Where("sl.receiver_idx = ? AND sl.status = 'active' AND letter.status = 'active'", receiverIdx)
}

func (r *historyRepository) receivedReplies(receiverIdx int) *gorm.DB {
	return r.db.Table("reply").
		Select("reply.reply_idx, member.nickname AS sender_nickname, reply.content, reply.created_at").
		Joins("JOIN member ON member.member_idx = reply.replier_idx").
		Where("reply.receiver_idx = ? AND reply.status = 'active'", receiverIdx)
}

// SenderNicknames returns every nickname that has sent this member a diary,
// letter or reply, most recent contact first.
func (r *historyRepository) SenderNicknames(receiverIdx int) ([]string, error) {
	query := `
		SELECT sender_nickname FROM (
			SELECT member.nickname AS sender_nickname, diary.created_at AS send_at
			FROM diary_send_list sl
			JOIN diary ON diary.diary_idx = sl.diary_idx
			JOIN member ON member.member_idx = diary.member_idx
			WHERE sl.receiver_idx = ? AND sl.status = 'active' AND diary.status = 'active'
			UNION ALL
			SELECT member.nickname, letter.created_at
			FROM letter_send_list sl
			JOIN letter ON letter.letter_idx = sl.letter_idx
			JOIN member ON member.member_idx = letter.member_idx
			WHERE sl.receiver_idx = ? AND sl.status = 'active' AND letter.status = 'active'
			UNION ALL
			SELECT member.nickname, reply.created_at
			FROM reply
			JOIN member ON member.member_idx = reply.replier_idx
			WHERE reply.receiver_idx = ? AND reply.status = 'active'
		) contacts
		GROUP BY sender_nickname
		ORDER BY MAX(send_at) DESC`

	var nicknames []string
	err := r.db.Raw(query, receiverIdx, receiverIdx, receiverIdx).Scan(&nicknames).Error
	return nicknames, err
}

func (r *historyRepository) AllDiaries(receiverIdx int) ([]*domain.DiaryRecord, error) {
	var rows []*domain.DiaryRecord
	err := r.receivedDiaries(receiverIdx).Order("diary.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) AllLetters(receiverIdx int) ([]*domain.LetterRecord, error) {
	var rows []*domain.LetterRecord
	err := r.receivedLetters(receiverIdx).Order("letter.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) AllReplies(receiverIdx int) ([]*domain.ReplyRecord, error) {
	var rows []*domain.ReplyRecord
	err := r.receivedReplies(receiverIdx).Order("reply.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) CountDiaries(receiverIdx int) (int64, error) {
	var total int64
	err := r.receivedDiaries(receiverIdx).Count(&total).Error
	return total, err
}

func (r *historyRepository) DiaryPage(receiverIdx, offset, limit int) ([]*domain.DiaryRecord, error) {
	var rows []*domain.DiaryRecord
	err := r.receivedDiaries(receiverIdx).
		Order("diary.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) DiariesBySender(receiverIdx int, nickname string) ([]*domain.DiaryRecord, error) {
	var rows []*domain.DiaryRecord
	err := r.receivedDiaries(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("diary.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) LettersBySender(receiverIdx int, nickname string) ([]*domain.LetterRecord, error) {
	var rows []*domain.LetterRecord
	err := r.receivedLetters(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("letter.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) RepliesBySender(receiverIdx int, nickname string) ([]*domain.ReplyRecord, error) {
	var rows []*domain.ReplyRecord
	err := r.receivedReplies(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("reply.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *historyRepository) CountDiariesBySender(receiverIdx int, nickname string) (int64, error) {
	var total int64
	err := r.receivedDiaries(receiverIdx).Where("member.nickname = ?", nickname).Count(&total).Error
	return total, err
}

func (r *historyRepository) CountLettersBySender(receiverIdx int, nickname string) (int64, error) {
	var total int64
	err := r.receivedLetters(receiverIdx).Where("member.nickname = ?", nickname).Count(&total).Error
	return total, err
}

func (r *historyRepository) CountRepliesBySender(receiverIdx int, nickname string) (int64, error) {
	var total int64
	err := r.receivedReplies(receiverIdx).Where("member.nickname = ?", nickname).Count(&total).Error
	return total, err
}

func (r *historyRepository) LatestDiaryBySender(receiverIdx int, nickname string) (*domain.DiaryRecord, error) {
	var rows []*domain.DiaryRecord
	err := r.receivedDiaries(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("diary.created_at DESC").
		Limit(1).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *historyRepository) LatestLetterBySender(receiverIdx int, nickname string) (*domain.LetterRecord, error) {
	var rows []*domain.LetterRecord
	err := r.receivedLetters(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("letter.created_at DESC").
		Limit(1).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *historyRepository) LatestReplyBySender(receiverIdx int, nickname string) (*domain.ReplyRecord, error) {
	var rows []*domain.ReplyRecord
	err := r.receivedReplies(receiverIdx).
		Where("member.nickname = ?", nickname).
		Order("reply.created_at DESC").
		Limit(1).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// DiaryOrigin loads a diary as a thread origin, regardless of send lists:
// 스레드는 발신자 본인도 열람한다.
func (r *historyRepository) DiaryOrigin(diaryIdx int) (*domain.DiaryRecord, error) {
	var rows []*domain.DiaryRecord
	err := r.db.Table("diary").
		Select("diary.diary_idx, member.nickname AS sender_nickname, diary.content, "+
			"diary.is_public, diary.emotion_idx, "+
			"(SELECT COUNT(*) FROM diary_done WHERE diary_done.diary_idx = diary.diary_idx AND diary_done.status = 'active') AS done_list_num, "+
			"diary.created_at").
		Joins("JOIN member ON member.member_idx = diary.member_idx").
		Where("diary.diary_idx = ? AND diary.status = 'active'", diaryIdx).
		Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *historyRepository) LetterOrigin(letterIdx int) (*domain.LetterRecord, error) {
	var rows []*domain.LetterRecord
	err := r.db.Table("letter").
		Select("letter.letter_idx, member.nickname AS sender_nickname, letter.content, letter.created_at").
		Joins("JOIN member ON member.member_idx = letter.member_idx").
		Where("letter.letter_idx = ? AND letter.status = 'active'", letterIdx).
		Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *historyRepository) DoneContents(diaryIdx int) ([]string, error) {
	var contents []string
	err := r.db.Model(&domain.Done{}).
		Where("diary_idx = ? AND status = 'active'", diaryIdx).
		Order("done_idx ASC").
		Pluck("content", &contents).Error
	return contents, err
}

// ReplyOrigin returns the kind and id of the record the reply's exchange
// started from.
func (r *historyRepository) ReplyOrigin(replyIdx int) (domain.HistoryKind, int, error) {
	var reply domain.Reply
	err := r.db.Where("reply_idx = ? AND status = 'active'", replyIdx).First(&reply).Error
	if err != nil {
		return "", 0, err
	}
	return domain.HistoryKind(reply.FirstOriginType), reply.FirstOriginIdx, nil
}

// ThreadReplies returns every reply of an exchange the member took part in,
// oldest first (스레드는 대화처럼 위에서 아래로 읽는다).
func (r *historyRepository) ThreadReplies(memberIdx int, originKind domain.HistoryKind, originIdx int) ([]*domain.ReplyRecord, error) {
	var rows []*domain.ReplyRecord
	err := r.db.Table("reply").
		Select("reply.reply_idx, member.nickname AS sender_nickname, reply.content, reply.created_at").
		Joins("JOIN member ON member.member_idx = reply.replier_idx").
		Where("reply.first_origin_type = ? AND reply.first_origin_idx = ? AND reply.status = 'active'", string(originKind), originIdx).
		Where("reply.replier_idx = ? OR reply.receiver_idx = ?", memberIdx, memberIdx).
		Order("reply.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
