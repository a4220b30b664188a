package service

import (
	"testing"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockDiaryRepository is a mock implementation of DiaryRepository
type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) Create(diary *domain.Diary, doneList []string, receivers []int) error {
	args := m.Called(diary, doneList, receivers)
	return args.Error(0)
}

func (m *MockDiaryRepository) Update(diary *domain.Diary, doneList []string) error {
	args := m.Called(diary, doneList)
	return args.Error(0)
}

func (m *MockDiaryRepository) FindByIdx(diaryIdx int) (*domain.Diary, error) {
	args := m.Called(diaryIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Diary), args.Error(1)
}

func (m *MockDiaryRepository) DoneContents(diaryIdx int) ([]string, error) {
	args := m.Called(diaryIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDiaryRepository) SoftDelete(diaryIdx, memberIdx int) error {
	args := m.Called(diaryIdx, memberIdx)
	return args.Error(0)
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByIdx(memberIdx int) (*domain.Member, error) {
	args := m.Called(memberIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(email string) (*domain.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByNickname(nickname string) (*domain.Member, error) {
	args := m.Called(nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func newTestDiaryService(t *testing.T, repo *MockDiaryRepository, memberRepo *MockMemberRepository) DiaryService {
	t.Helper()
	c, err := cipher.New(testContentKey)
	require.NoError(t, err)
	return NewDiaryService(repo, memberRepo, c)
}

func TestCreateDiary_PrivateContentStoredEncrypted(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	var stored *domain.Diary
	repo.On("Create", mock.AnythingOfType("*domain.Diary"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*domain.Diary)
		}).
		Return(nil)

	resp, err := svc.CreateDiary(1, &domain.CreateDiaryRequest{
		EmotionIdx: 3,
		DiaryDate:  "2024-01-05",
		Content:    "오늘은 비가 왔다",
		IsPublic:   false,
		DoneList:   []string{"산책"},
	})
	require.NoError(t, err)

	// 저장된 본문은 암호문, 응답은 평문
	assert.NotEqual(t, "오늘은 비가 왔다", stored.Content)
	assert.Equal(t, "오늘은 비가 왔다", resp.Content)

	c, err := cipher.New(testContentKey)
	require.NoError(t, err)
	plain, err := c.Decrypt(stored.Content)
	require.NoError(t, err)
	assert.Equal(t, "오늘은 비가 왔다", plain)
}

func TestCreateDiary_PublicContentStoredPlain(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	var stored *domain.Diary
	repo.On("Create", mock.AnythingOfType("*domain.Diary"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*domain.Diary)
		}).
		Return(nil)

	_, err := svc.CreateDiary(1, &domain.CreateDiaryRequest{
		DiaryDate: "2024-01-05",
		Content:   "sunny day",
		IsPublic:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "sunny day", stored.Content)
}

func TestCreateDiary_InvalidEmotion(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	_, err := svc.CreateDiary(1, &domain.CreateDiaryRequest{
		EmotionIdx: 9,
		DiaryDate:  "2024-01-05",
		Content:    "x",
	})
	assert.ErrorIs(t, err, common.ErrInvalidEmotion)
}

func TestCreateDiary_SelfReceiverRejected(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	_, err := svc.CreateDiary(1, &domain.CreateDiaryRequest{
		DiaryDate: "2024-01-05",
		Content:   "x",
		Receivers: []int{1},
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCreateDiary_UnknownReceiver(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	memberRepo.On("FindByIdx", 99).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateDiary(1, &domain.CreateDiaryRequest{
		DiaryDate: "2024-01-05",
		Content:   "x",
		Receivers: []int{99},
	})
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetDiary_PrivateForbiddenForOthers(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	repo.On("FindByIdx", 5).Return(&domain.Diary{
		DiaryIdx:  5,
		MemberIdx: 1,
		Content:   "cipher",
		IsPublic:  false,
	}, nil)

	_, err := svc.GetDiary(2, 5)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestGetDiary_OwnerGetsDecryptedContent(t *testing.T) {
	repo := new(MockDiaryRepository)
	memberRepo := new(MockMemberRepository)
	svc := newTestDiaryService(t, repo, memberRepo)

	c, err := cipher.New(testContentKey)
	require.NoError(t, err)
	encrypted, err := c.Encrypt("혼자 쓰는 일기")
	require.NoError(t, err)
	encryptedDone, err := c.Encrypt("운동")
	require.NoError(t, err)

	repo.On("FindByIdx", 5).Return(&domain.Diary{
		DiaryIdx:  5,
		MemberIdx: 1,
		Content:   encrypted,
		IsPublic:  false,
	}, nil)
	repo.On("DoneContents", 5).Return([]string{encryptedDone}, nil)

	resp, err := svc.GetDiary(1, 5)
	require.NoError(t, err)
	assert.Equal(t, "혼자 쓰는 일기", resp.Content)
	assert.Equal(t, []string{"운동"}, resp.DoneList)
}
