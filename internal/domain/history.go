package domain

import "time"

// HistoryKind discriminates the three record kinds merged into the history
// feed. Closed set: 일기 / 편지 / 답장.
type HistoryKind string

const (
	KindDiary  HistoryKind = "diary"
	KindLetter HistoryKind = "letter"
	KindReply  HistoryKind = "reply"
)

// HistoryFilter selects one of the three mutually exclusive feed modes.
type HistoryFilter string

const (
	FilterSender HistoryFilter = "sender" // 발신인별 묶음 (Diary, Letter, Reply)
	FilterDiary  HistoryFilter = "diary"  // 일기만
	FilterLetter HistoryFilter = "letter" // 편지만 (Letter + Reply)
)

// ParseHistoryFilter validates a filtering query value.
func ParseHistoryFilter(s string) (HistoryFilter, bool) {
	switch HistoryFilter(s) {
	case FilterSender, FilterDiary, FilterLetter:
		return HistoryFilter(s), true
	}
	return "", false
}

// ParseHistoryKind validates a history type path value.
func ParseHistoryKind(s string) (HistoryKind, bool) {
	switch HistoryKind(s) {
	case KindDiary, KindLetter, KindReply:
		return HistoryKind(s), true
	}
	return "", false
}

const (
	sendAtRawLayout = "2006-01-02 15:04:05"
	sendAtLayout    = "2006.01.02"
)

// HistoryItem is the unified shape every record kind is normalized into.
// EmotionIdx and DoneListNum carry meaning only for diaries and stay 0
// otherwise. Both timestamp forms derive from the single SentAt instant.
type HistoryItem struct {
	Kind           HistoryKind `json:"type"`
	Idx            int         `json:"idx"`
	SenderNickname string      `json:"sender_nickname"`
	Content        string      `json:"content"`
	EmotionIdx     int         `json:"emotion_idx"`
	DoneListNum    int         `json:"done_list_num"`
	SentAt         time.Time   `json:"-"`
	SendAtRaw      string      `json:"send_at_raw"` // yyyy-MM-dd HH:mm:ss
	SendAt         string      `json:"send_at"`     // yyyy.MM.dd 화면 출력용
}

// NewHistoryItem builds a HistoryItem, deriving both display timestamps from
// the one canonical instant.
func NewHistoryItem(kind HistoryKind, idx int, sender, content string, emotionIdx, doneListNum int, sentAt time.Time) *HistoryItem {
	return &HistoryItem{
		Kind:           kind,
		Idx:            idx,
		SenderNickname: sender,
		Content:        content,
		EmotionIdx:     emotionIdx,
		DoneListNum:    doneListNum,
		SentAt:         sentAt,
		SendAtRaw:      sentAt.Format(sendAtRawLayout),
		SendAt:         sentAt.Format(sendAtLayout),
	}
}

// SenderGroup is one row of the sender-grouped feed: everything one sender
// has ever sent this member, represented by the most recent item.
type SenderGroup struct {
	SenderNickname string       `json:"sender_nickname"`
	TotalCount     int          `json:"total_count"`
	Recent         *HistoryItem `json:"recent"`
}

// HistoryList is the unified feed result. Exactly one of Senders / Items is
// populated depending on the filter mode.
type HistoryList struct {
	Filter  HistoryFilter  `json:"filtering"`
	Senders []*SenderGroup `json:"senders,omitempty"`
	Items   []*HistoryItem `json:"items,omitempty"`
}

// ThreadItem is a history item inside a thread view. IsFocused marks the one
// item the caller asked to read.
type ThreadItem struct {
	HistoryItem
	IsFocused bool `json:"is_focused"`
}

// Thread is a reconstructed conversation: the diary or letter the exchange
// started from plus every reply, oldest first.
type Thread struct {
	Origin   *ThreadItem   `json:"origin"`
	DoneList []string      `json:"done_list,omitempty"` // origin이 일기인 경우만
	Replies  []*ThreadItem `json:"replies"`
}

// Projection rows returned by the history repository. Content is raw storage
// bytes: diary content may still be ciphertext at this level.

// DiaryRecord is a received-diary row joined with its sender and checklist count.
type DiaryRecord struct {
	DiaryIdx       int       `gorm:"column:diary_idx"`
	SenderNickname string    `gorm:"column:sender_nickname"`
	Content        string    `gorm:"column:content"`
	IsPublic       bool      `gorm:"column:is_public"`
	EmotionIdx     int       `gorm:"column:emotion_idx"`
	DoneListNum    int       `gorm:"column:done_list_num"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// LetterRecord is a received-letter row joined with its sender.
type LetterRecord struct {
	LetterIdx      int       `gorm:"column:letter_idx"`
	SenderNickname string    `gorm:"column:sender_nickname"`
	Content        string    `gorm:"column:content"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// ReplyRecord is a received-reply row joined with its sender.
type ReplyRecord struct {
	ReplyIdx       int       `gorm:"column:reply_idx"`
	SenderNickname string    `gorm:"column:sender_nickname"`
	Content        string    `gorm:"column:content"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}
