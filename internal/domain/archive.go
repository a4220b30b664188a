package domain

// CalendarType selects what decorates each day of the archive calendar:
// doneList는 누구나, emotion은 프리미엄 회원만 조회할 수 있다.
type CalendarType string

const (
	CalendarDoneList CalendarType = "doneList"
	CalendarEmotion  CalendarType = "emotion"
)

// ParseCalendarType validates the type query parameter.
func ParseCalendarType(s string) (CalendarType, bool) {
	switch CalendarType(s) {
	case CalendarDoneList, CalendarEmotion:
		return CalendarType(s), true
	default:
		return "", false
	}
}

// CalendarDay is one diary day in the monthly calendar view. Only the field
// matching the requested CalendarType is filled in.
type CalendarDay struct {
	DiaryIdx    int    `gorm:"column:diary_idx" json:"diary_idx"`
	DiaryDate   string `gorm:"column:diary_date" json:"diary_date"`
	EmotionIdx  int    `gorm:"column:emotion_idx" json:"emotion_idx,omitempty"`
	DoneListNum int    `gorm:"column:done_list_num" json:"done_list_num,omitempty"`
}

// ArchiveRecord is one of the member's own diaries as stored. Content may
// still be ciphertext at this level.
type ArchiveRecord struct {
	DiaryIdx    int    `gorm:"column:diary_idx"`
	DiaryDate   string `gorm:"column:diary_date"`
	EmotionIdx  int    `gorm:"column:emotion_idx"`
	Content     string `gorm:"column:content"`
	IsPublic    bool   `gorm:"column:is_public"`
	DoneListNum int    `gorm:"column:done_list_num"`
}

// ArchiveDiary is the decrypted API shape of one archived diary.
type ArchiveDiary struct {
	DiaryIdx    int    `json:"diary_idx"`
	DiaryDate   string `json:"diary_date"`
	EmotionIdx  int    `json:"emotion_idx"`
	Content     string `json:"content"`
	IsPublic    bool   `json:"is_public"`
	DoneListNum int    `json:"done_list_num"`
}

// DiaryMonthGroup groups archived diaries under their yyyy-MM month.
// 월 목록과 월 안의 일기 모두 최신순이다.
type DiaryMonthGroup struct {
	Month   string          `json:"month"`
	Diaries []*ArchiveDiary `json:"diary_list"`
}
