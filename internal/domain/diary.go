package domain

import "time"

// Row status values shared by every soft-deletable table.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Diary represents a journal entry (일기). Content is stored encrypted when
// the entry is not public.
type Diary struct {
	DiaryIdx   int       `gorm:"column:diary_idx;primaryKey;autoIncrement" json:"diary_idx"`
	MemberIdx  int       `gorm:"column:member_idx;index" json:"member_idx"`
	EmotionIdx int       `gorm:"column:emotion_idx" json:"emotion_idx"` // 0: 없음 / 1~8: 감정 이모티콘
	DiaryDate  string    `gorm:"column:diary_date;size:10" json:"diary_date"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	IsPublic   bool      `gorm:"column:is_public" json:"is_public"`
	Status     string    `gorm:"column:status;size:10;default:active" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Diary) TableName() string {
	return "diary"
}

// Done represents a checklist row attached to a diary (done list). Encrypted
// together with the diary content when the diary is private.
type Done struct {
	DoneIdx  int    `gorm:"column:done_idx;primaryKey;autoIncrement" json:"done_idx"`
	DiaryIdx int    `gorm:"column:diary_idx;index" json:"diary_idx"`
	Content  string `gorm:"column:content;size:255" json:"content"`
	Status   string `gorm:"column:status;size:10;default:active" json:"-"`
}

func (Done) TableName() string {
	return "diary_done"
}

// CreateDiaryRequest represents a diary creation request. Receivers are the
// member idxes the diary is delivered to (비공개여도 수신자는 열람 가능).
type CreateDiaryRequest struct {
	EmotionIdx int      `json:"emotion_idx"`
	DiaryDate  string   `json:"diary_date" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	IsPublic   bool     `json:"is_public"`
	DoneList   []string `json:"done_list"`
	Receivers  []int    `json:"receivers"`
}

// UpdateDiaryRequest represents a diary edit request
type UpdateDiaryRequest struct {
	EmotionIdx int      `json:"emotion_idx"`
	Content    string   `json:"content" binding:"required"`
	IsPublic   bool     `json:"is_public"`
	DoneList   []string `json:"done_list"`
}

// DiaryResponse represents a diary in API responses (content decrypted)
type DiaryResponse struct {
	DiaryIdx   int      `json:"diary_idx"`
	EmotionIdx int      `json:"emotion_idx"`
	DiaryDate  string   `json:"diary_date"`
	Content    string   `json:"content"`
	IsPublic   bool     `json:"is_public"`
	DoneList   []string `json:"done_list"`
	CreatedAt  string   `json:"created_at"`
}
