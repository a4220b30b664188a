package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SenderNicknames(receiverIdx int) ([]string, error) {
	args := m.Called(receiverIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) AllDiaries(receiverIdx int) ([]*domain.DiaryRecord, error) {
	args := m.Called(receiverIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DiaryRecord), args.Error(1)
}

func (m *MockHistoryRepository) AllLetters(receiverIdx int) ([]*domain.LetterRecord, error) {
	args := m.Called(receiverIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LetterRecord), args.Error(1)
}

func (m *MockHistoryRepository) AllReplies(receiverIdx int) ([]*domain.ReplyRecord, error) {
	args := m.Called(receiverIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReplyRecord), args.Error(1)
}

func (m *MockHistoryRepository) CountDiaries(receiverIdx int) (int64, error) {
	args := m.Called(receiverIdx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) DiaryPage(receiverIdx, offset, limit int) ([]*domain.DiaryRecord, error) {
	args := m.Called(receiverIdx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DiaryRecord), args.Error(1)
}

func (m *MockHistoryRepository) DiariesBySender(receiverIdx int, nickname string) ([]*domain.DiaryRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DiaryRecord), args.Error(1)
}

func (m *MockHistoryRepository) LettersBySender(receiverIdx int, nickname string) ([]*domain.LetterRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LetterRecord), args.Error(1)
}

func (m *MockHistoryRepository) RepliesBySender(receiverIdx int, nickname string) ([]*domain.ReplyRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReplyRecord), args.Error(1)
}

func (m *MockHistoryRepository) CountDiariesBySender(receiverIdx int, nickname string) (int64, error) {
	args := m.Called(receiverIdx, nickname)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) CountLettersBySender(receiverIdx int, nickname string) (int64, error) {
	args := m.Called(receiverIdx, nickname)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) CountRepliesBySender(receiverIdx int, nickname string) (int64, error) {
	args := m.Called(receiverIdx, nickname)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) LatestDiaryBySender(receiverIdx int, nickname string) (*domain.DiaryRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiaryRecord), args.Error(1)
}

func (m *MockHistoryRepository) LatestLetterBySender(receiverIdx int, nickname string) (*domain.LetterRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LetterRecord), args.Error(1)
}

func (m *MockHistoryRepository) LatestReplyBySender(receiverIdx int, nickname string) (*domain.ReplyRecord, error) {
	args := m.Called(receiverIdx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReplyRecord), args.Error(1)
}

func (m *MockHistoryRepository) DiaryOrigin(diaryIdx int) (*domain.DiaryRecord, error) {
	args := m.Called(diaryIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiaryRecord), args.Error(1)
}

func (m *MockHistoryRepository) LetterOrigin(letterIdx int) (*domain.LetterRecord, error) {
	args := m.Called(letterIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LetterRecord), args.Error(1)
}

func (m *MockHistoryRepository) DoneContents(diaryIdx int) ([]string, error) {
	args := m.Called(diaryIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHistoryRepository) ReplyOrigin(replyIdx int) (domain.HistoryKind, int, error) {
	args := m.Called(replyIdx)
	return args.Get(0).(domain.HistoryKind), args.Int(1), args.Error(2)
}

func (m *MockHistoryRepository) ThreadReplies(memberIdx int, originKind domain.HistoryKind, originIdx int) ([]*domain.ReplyRecord, error) {
	args := m.Called(memberIdx, originKind, originIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReplyRecord), args.Error(1)
}

// ---------------------------------------------------------------------------

const testContentKey = "0123456789abcdef"

func newTestService(t *testing.T, repo *MockHistoryRepository) HistoryService {
	t.Helper()
	return newTestServiceWithMembers(t, repo, new(MockMemberRepository))
}

func newTestServiceWithMembers(t *testing.T, repo *MockHistoryRepository, members *MockMemberRepository) HistoryService {
	t.Helper()
	c, err := cipher.New(testContentKey)
	require.NoError(t, err)
	return NewHistoryService(repo, members, c, 20)
}

func encrypt(t *testing.T, plain string) string {
	t.Helper()
	c, err := cipher.New(testContentKey)
	require.NoError(t, err)
	enc, err := c.Encrypt(plain)
	require.NoError(t, err)
	return enc
}

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestGetHistoryList_LetterOnly_SingleLetter(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("AllLetters", 1).Return([]*domain.LetterRecord{
		{LetterIdx: 10, SenderNickname: "Mina", Content: "see you soon", CreatedAt: at(6, 12)},
	}, nil)
	repo.On("AllReplies", 1).Return([]*domain.ReplyRecord{}, nil)

	svc := newTestService(t, repo)
	list, cursor, err := svc.GetHistoryList(1, domain.FilterLetter, "", 1)
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.Equal(t, domain.KindLetter, list.Items[0].Kind)
	assert.Equal(t, 10, list.Items[0].Idx)
	assert.Equal(t, "Mina", list.Items[0].SenderNickname)
	assert.Equal(t, "2024.01.06", list.Items[0].SendAt)
	assert.Equal(t, 1, cursor.TotalPages)
	assert.False(t, cursor.HasNext)
}

func TestGetHistoryList_LetterOnly_Pagination(t *testing.T) {
	letters := make([]*domain.LetterRecord, 0, 25)
	for i := 0; i < 25; i++ {
		letters = append(letters, &domain.LetterRecord{
			LetterIdx:      i + 1,
			SenderNickname: fmt.Sprintf("sender%d", i+1),
			Content:        "hello",
			CreatedAt:      at(1, 0).Add(time.Duration(i) * time.Hour),
		})
	}
	repo := new(MockHistoryRepository)
	repo.On("AllLetters", 1).Return(letters, nil)
	repo.On("AllReplies", 1).Return([]*domain.ReplyRecord{}, nil)

	svc := newTestService(t, repo)

	list, cursor, err := svc.GetHistoryList(1, domain.FilterLetter, "", 1)
	require.NoError(t, err)
	assert.Len(t, list.Items, 20)
	assert.Equal(t, int64(25), cursor.Total)
	assert.Equal(t, 2, cursor.TotalPages)
	assert.True(t, cursor.HasNext)

	list, cursor, err = svc.GetHistoryList(1, domain.FilterLetter, "", 2)
	require.NoError(t, err)
	assert.Len(t, list.Items, 5)
	assert.False(t, cursor.HasNext)

	_, _, err = svc.GetHistoryList(1, domain.FilterLetter, "", 3)
	assert.ErrorIs(t, err, common.ErrInvalidPage)
}

func TestGetHistoryList_LetterOnly_MergesRepliesSorted(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("AllLetters", 1).Return([]*domain.LetterRecord{
		{LetterIdx: 1, SenderNickname: "a", Content: "first", CreatedAt: at(1, 0)},
		{LetterIdx: 2, SenderNickname: "b", Content: "third", CreatedAt: at(3, 0)},
	}, nil)
	repo.On("AllReplies", 1).Return([]*domain.ReplyRecord{
		{ReplyIdx: 7, SenderNickname: "c", Content: "second", CreatedAt: at(2, 0)},
		{ReplyIdx: 8, SenderNickname: "d", Content: "fourth", CreatedAt: at(4, 0)},
	}, nil)

	svc := newTestService(t, repo)
	list, _, err := svc.GetHistoryList(1, domain.FilterLetter, "", 1)
	require.NoError(t, err)
	require.Len(t, list.Items, 4)

	// 최신순 정렬, sentAt은 단조 감소
	for i := 1; i < len(list.Items); i++ {
		assert.False(t, list.Items[i].SentAt.After(list.Items[i-1].SentAt))
	}
	assert.Equal(t, domain.KindReply, list.Items[0].Kind)
	assert.Equal(t, 8, list.Items[0].Idx)
}

func TestGetHistoryList_DiaryOnly_DecryptsPrivate(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("CountDiaries", 1).Return(int64(2), nil)
	repo.On("DiaryPage", 1, 0, 20).Return([]*domain.DiaryRecord{
		{DiaryIdx: 2, SenderNickname: "Yuna", Content: encrypt(t, "비밀 일기"), IsPublic: false, EmotionIdx: 3, DoneListNum: 2, CreatedAt: at(2, 0)},
		{DiaryIdx: 1, SenderNickname: "Yuna", Content: "공개 일기", IsPublic: true, CreatedAt: at(1, 0)},
	}, nil)

	svc := newTestService(t, repo)
	list, cursor, err := svc.GetHistoryList(1, domain.FilterDiary, "", 1)
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "비밀 일기", list.Items[0].Content)
	assert.Equal(t, 3, list.Items[0].EmotionIdx)
	assert.Equal(t, 2, list.Items[0].DoneListNum)
	assert.Equal(t, "공개 일기", list.Items[1].Content)
	for _, item := range list.Items {
		assert.Equal(t, domain.KindDiary, item.Kind)
		assert.GreaterOrEqual(t, item.DoneListNum, 0)
	}
	assert.Equal(t, 1, cursor.TotalPages)
}

func TestGetHistoryList_DiaryOnly_CorruptCiphertextFailsWhole(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("CountDiaries", 1).Return(int64(1), nil)
	repo.On("DiaryPage", 1, 0, 20).Return([]*domain.DiaryRecord{
		{DiaryIdx: 1, SenderNickname: "Yuna", Content: "not-ciphertext", IsPublic: false, CreatedAt: at(1, 0)},
	}, nil)

	svc := newTestService(t, repo)
	_, _, err := svc.GetHistoryList(1, domain.FilterDiary, "", 1)
	assert.ErrorIs(t, err, common.ErrContentCrypto)
}

func TestGetHistoryList_Search_CaseAndWhitespaceInsensitive(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("AllLetters", 1).Return([]*domain.LetterRecord{
		{LetterIdx: 1, SenderNickname: "a", Content: "helloworld", CreatedAt: at(1, 0)},
		{LetterIdx: 2, SenderNickname: "b", Content: "HELLO   WORLD", CreatedAt: at(2, 0)},
		{LetterIdx: 3, SenderNickname: "c", Content: "unrelated", CreatedAt: at(3, 0)},
	}, nil)
	repo.On("AllReplies", 1).Return([]*domain.ReplyRecord{}, nil)

	svc := newTestService(t, repo)
	list, cursor, err := svc.GetHistoryList(1, domain.FilterLetter, "Hello World", 1)
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	// 페이징은 검색 결과 개수 기준
	assert.Equal(t, int64(2), cursor.Total)
}

func TestGetHistoryList_Search_MatchesInsideEncryptedDiary(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("AllDiaries", 1).Return([]*domain.DiaryRecord{
		{DiaryIdx: 1, SenderNickname: "Yuna", Content: encrypt(t, "오늘 등산 다녀옴"), IsPublic: false, CreatedAt: at(1, 0)},
		{DiaryIdx: 2, SenderNickname: "Yuna", Content: "다른 이야기", IsPublic: true, CreatedAt: at(2, 0)},
	}, nil)

	svc := newTestService(t, repo)
	list, _, err := svc.GetHistoryList(1, domain.FilterDiary, "등산", 1)
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].Idx)
	assert.Equal(t, "오늘 등산 다녀옴", list.Items[0].Content)
}

func TestGetHistoryList_EmptyResult(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("AllLetters", 1).Return([]*domain.LetterRecord{}, nil)
	repo.On("AllReplies", 1).Return([]*domain.ReplyRecord{}, nil)

	svc := newTestService(t, repo)
	_, _, err := svc.GetHistoryList(1, domain.FilterLetter, "", 1)
	assert.ErrorIs(t, err, common.ErrEmptyResult)
}

func TestGetHistoryList_Sender_Groups(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("SenderNicknames", 1).Return([]string{"Mina", "Yuna"}, nil)

	// Mina : 일기 1 + 편지 2, 대표는 가장 최근 편지
	repo.On("CountDiariesBySender", 1, "Mina").Return(int64(1), nil)
	repo.On("LatestDiaryBySender", 1, "Mina").Return(&domain.DiaryRecord{
		DiaryIdx: 1, SenderNickname: "Mina", Content: "공개", IsPublic: true, CreatedAt: at(1, 0),
	}, nil)
	repo.On("CountLettersBySender", 1, "Mina").Return(int64(2), nil)
	repo.On("LatestLetterBySender", 1, "Mina").Return(&domain.LetterRecord{
		LetterIdx: 5, SenderNickname: "Mina", Content: "최근 편지", CreatedAt: at(9, 0),
	}, nil)
	repo.On("CountRepliesBySender", 1, "Mina").Return(int64(0), nil)

	// Yuna : 답장만 1
	repo.On("CountDiariesBySender", 1, "Yuna").Return(int64(0), nil)
	repo.On("CountLettersBySender", 1, "Yuna").Return(int64(0), nil)
	repo.On("CountRepliesBySender", 1, "Yuna").Return(int64(1), nil)
	repo.On("LatestReplyBySender", 1, "Yuna").Return(&domain.ReplyRecord{
		ReplyIdx: 3, SenderNickname: "Yuna", Content: "답장", CreatedAt: at(4, 0),
	}, nil)

	svc := newTestService(t, repo)
	list, cursor, err := svc.GetHistoryList(1, domain.FilterSender, "", 1)
	require.NoError(t, err)

	require.Len(t, list.Senders, 2)
	mina := list.Senders[0]
	assert.Equal(t, "Mina", mina.SenderNickname)
	assert.Equal(t, 3, mina.TotalCount)
	assert.Equal(t, domain.KindLetter, mina.Recent.Kind)
	assert.Equal(t, 5, mina.Recent.Idx)

	yuna := list.Senders[1]
	assert.Equal(t, 1, yuna.TotalCount)
	assert.Equal(t, domain.KindReply, yuna.Recent.Kind)

	assert.Equal(t, int64(2), cursor.Total)
	assert.False(t, cursor.HasNext)
}

func TestGetHistoryList_Sender_SearchProbesLatestPerKindOnly(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("SenderNicknames", 1).Return([]string{"Mina"}, nil)

	// 가장 최근 편지에는 검색어가 없고, 더 오래된 편지에만 있음 → 검색에서 제외
	repo.On("CountDiariesBySender", 1, "Mina").Return(int64(0), nil)
	repo.On("CountLettersBySender", 1, "Mina").Return(int64(2), nil)
	repo.On("LatestLetterBySender", 1, "Mina").Return(&domain.LetterRecord{
		LetterIdx: 9, SenderNickname: "Mina", Content: "최근 내용", CreatedAt: at(9, 0),
	}, nil)
	repo.On("CountRepliesBySender", 1, "Mina").Return(int64(0), nil)

	svc := newTestService(t, repo)
	_, _, err := svc.GetHistoryList(1, domain.FilterSender, "등산", 1)
	assert.ErrorIs(t, err, common.ErrEmptyResult)
}

func TestGetHistoryList_Sender_SearchMatchedGroup(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("SenderNicknames", 1).Return([]string{"Mina"}, nil)

	repo.On("CountDiariesBySender", 1, "Mina").Return(int64(1), nil)
	repo.On("LatestDiaryBySender", 1, "Mina").Return(&domain.DiaryRecord{
		DiaryIdx: 2, SenderNickname: "Mina", Content: encrypt(t, "등산 일기"), IsPublic: false, CreatedAt: at(8, 0),
	}, nil)
	repo.On("CountLettersBySender", 1, "Mina").Return(int64(1), nil)
	repo.On("LatestLetterBySender", 1, "Mina").Return(&domain.LetterRecord{
		LetterIdx: 4, SenderNickname: "Mina", Content: "등산 가자", CreatedAt: at(9, 0),
	}, nil)
	repo.On("CountRepliesBySender", 1, "Mina").Return(int64(0), nil)

	svc := newTestService(t, repo)
	list, _, err := svc.GetHistoryList(1, domain.FilterSender, "등산", 1)
	require.NoError(t, err)

	require.Len(t, list.Senders, 1)
	group := list.Senders[0]
	// 일치한 항목 수가 totalCount, 대표는 그중 최신
	assert.Equal(t, 2, group.TotalCount)
	assert.Equal(t, domain.KindLetter, group.Recent.Kind)
	assert.Equal(t, 4, group.Recent.Idx)
}

func TestGetSenderHistory_MergedAndPaged(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("DiariesBySender", 1, "Mina").Return([]*domain.DiaryRecord{
		{DiaryIdx: 1, SenderNickname: "Mina", Content: "공개 일기", IsPublic: true, CreatedAt: at(2, 0)},
	}, nil)
	repo.On("LettersBySender", 1, "Mina").Return([]*domain.LetterRecord{
		{LetterIdx: 2, SenderNickname: "Mina", Content: "편지", CreatedAt: at(3, 0)},
	}, nil)
	repo.On("RepliesBySender", 1, "Mina").Return([]*domain.ReplyRecord{
		{ReplyIdx: 3, SenderNickname: "Mina", Content: "답장", CreatedAt: at(1, 0)},
	}, nil)
	members := new(MockMemberRepository)
	members.On("FindByNickname", "Mina").Return(&domain.Member{MemberIdx: 2, Nickname: "Mina"}, nil)

	svc := newTestServiceWithMembers(t, repo, members)
	items, cursor, err := svc.GetSenderHistory(1, "Mina", "", 1)
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, domain.KindLetter, items[0].Kind)
	assert.Equal(t, domain.KindDiary, items[1].Kind)
	assert.Equal(t, domain.KindReply, items[2].Kind)
	assert.Equal(t, int64(3), cursor.Total)
}

func TestGetSenderHistory_Empty(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("DiariesBySender", 1, "Quiet").Return([]*domain.DiaryRecord{}, nil)
	repo.On("LettersBySender", 1, "Quiet").Return([]*domain.LetterRecord{}, nil)
	repo.On("RepliesBySender", 1, "Quiet").Return([]*domain.ReplyRecord{}, nil)
	members := new(MockMemberRepository)
	members.On("FindByNickname", "Quiet").Return(&domain.Member{MemberIdx: 3, Nickname: "Quiet"}, nil)

	svc := newTestServiceWithMembers(t, repo, members)
	_, _, err := svc.GetSenderHistory(1, "Quiet", "", 1)
	assert.ErrorIs(t, err, common.ErrEmptyResult)
}

func TestGetSenderHistory_UnknownSender(t *testing.T) {
	repo := new(MockHistoryRepository)
	members := new(MockMemberRepository)
	members.On("FindByNickname", "Nobody").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestServiceWithMembers(t, repo, members)
	_, _, err := svc.GetSenderHistory(1, "Nobody", "", 1)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	repo.AssertNotCalled(t, "DiariesBySender", mock.Anything, mock.Anything)
}

func TestGetThread_Diary(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("DiaryOrigin", 3).Return(&domain.DiaryRecord{
		DiaryIdx: 3, SenderNickname: "Mina", Content: encrypt(t, "비밀 일기"),
		IsPublic: false, EmotionIdx: 2, DoneListNum: 1, CreatedAt: at(1, 0),
	}, nil)
	repo.On("DoneContents", 3).Return([]string{encrypt(t, "운동하기")}, nil)
	repo.On("ThreadReplies", 1, domain.KindDiary, 3).Return([]*domain.ReplyRecord{
		{ReplyIdx: 7, SenderNickname: "Yuna", Content: "첫 답장", CreatedAt: at(2, 0)},
		{ReplyIdx: 8, SenderNickname: "Mina", Content: "둘째 답장", CreatedAt: at(3, 0)},
	}, nil)

	svc := newTestService(t, repo)
	thread, err := svc.GetThread(1, domain.KindDiary, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, thread.Origin.Idx)
	assert.Equal(t, "비밀 일기", thread.Origin.Content)
	assert.False(t, thread.Origin.IsFocused)
	assert.Equal(t, []string{"운동하기"}, thread.DoneList)

	require.Len(t, thread.Replies, 2)
	// 답장은 오래된 순, sentAt은 단조 증가
	for i := 1; i < len(thread.Replies); i++ {
		assert.False(t, thread.Replies[i].SentAt.Before(thread.Replies[i-1].SentAt))
	}
	for _, reply := range thread.Replies {
		assert.False(t, reply.IsFocused)
	}
}

func TestGetThread_Reply_FocusesRequested(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("ReplyOrigin", 7).Return(domain.KindDiary, 3, nil)
	repo.On("DiaryOrigin", 3).Return(&domain.DiaryRecord{
		DiaryIdx: 3, SenderNickname: "Mina", Content: "공개 일기", IsPublic: true, CreatedAt: at(1, 0),
	}, nil)
	repo.On("DoneContents", 3).Return([]string{}, nil)
	repo.On("ThreadReplies", 1, domain.KindDiary, 3).Return([]*domain.ReplyRecord{
		{ReplyIdx: 6, SenderNickname: "Yuna", Content: "먼저", CreatedAt: at(2, 0)},
		{ReplyIdx: 7, SenderNickname: "Mina", Content: "여기", CreatedAt: at(3, 0)},
	}, nil)

	svc := newTestService(t, repo)
	thread, err := svc.GetThread(1, domain.KindReply, 7)
	require.NoError(t, err)

	assert.Equal(t, 3, thread.Origin.Idx)
	assert.False(t, thread.Origin.IsFocused)

	focused := 0
	for _, reply := range thread.Replies {
		if reply.IsFocused {
			focused++
			assert.Equal(t, 7, reply.Idx)
		}
	}
	assert.Equal(t, 1, focused)
}

func TestGetThread_Reply_MissingFromOwnThread(t *testing.T) {
	repo := new(MockHistoryRepository)
	repo.On("ReplyOrigin", 7).Return(domain.KindLetter, 4, nil)
	repo.On("LetterOrigin", 4).Return(&domain.LetterRecord{
		LetterIdx: 4, SenderNickname: "Mina", Content: "편지", CreatedAt: at(1, 0),
	}, nil)
	repo.On("ThreadReplies", 1, domain.KindLetter, 4).Return([]*domain.ReplyRecord{
		{ReplyIdx: 99, SenderNickname: "Yuna", Content: "다른 답장", CreatedAt: at(2, 0)},
	}, nil)

	svc := newTestService(t, repo)
	_, err := svc.GetThread(1, domain.KindReply, 7)
	assert.ErrorIs(t, err, common.ErrDataIntegrity)
}
