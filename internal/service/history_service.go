package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/dayletter/dayletter-backend/internal/common"
	"github.com/dayletter/dayletter-backend/internal/domain"
	"github.com/dayletter/dayletter-backend/internal/repository"
	"github.com/dayletter/dayletter-backend/pkg/cipher"
	"gorm.io/gorm"
)

// HistoryService merges diaries, letters and replies into the unified history
// feed, the per-sender feed and the thread view.
//
// History 목록 조회
// filtering = 1. sender : 발신인 (Diary, Letter, Reply) / 2. diary : 일기만 / 3. letter : 편지만 (Letter, Reply)
// 최신순 정렬 (보낸 시각 기준 내림차순), 페이징 처리 (무한 스크롤)
type HistoryService interface {
	GetHistoryList(memberIdx int, filter domain.HistoryFilter, search string, page int) (*domain.HistoryList, *common.PageCursor, error)
	GetSenderHistory(memberIdx int, senderNickname, search string, page int) ([]*domain.HistoryItem, *common.PageCursor, error)
	GetThread(memberIdx int, kind domain.HistoryKind, idx int) (*domain.Thread, error)
}

type historyService struct {
	repo       repository.HistoryRepository
	memberRepo repository.MemberRepository
	cipher     *cipher.AES
	pageSize   int
}

// NewHistoryService creates a new HistoryService. pageSize comes from
// configuration and is shared by every paginated operation.
func NewHistoryService(repo repository.HistoryRepository, memberRepo repository.MemberRepository, c *cipher.AES, pageSize int) HistoryService {
	return &historyService{repo: repo, memberRepo: memberRepo, cipher: c, pageSize: pageSize}
}

// GetHistoryList builds the unified feed for one of the three filter modes.
func (s *historyService) GetHistoryList(memberIdx int, filter domain.HistoryFilter, search string, page int) (*domain.HistoryList, *common.PageCursor, error) {
	switch filter {
	case domain.FilterSender:
		return s.senderGroups(memberIdx, search, page)
	case domain.FilterDiary:
		return s.diaryFeed(memberIdx, search, page)
	case domain.FilterLetter:
		return s.letterFeed(memberIdx, search, page)
	default:
		return nil, nil, common.ErrInvalidInput
	}
}

// senderGroups groups the feed by sender nickname. Without search every known
// sender appears; with search a sender survives only if the most recent item
// of at least one kind matches.
func (s *historyService) senderGroups(memberIdx int, search string, page int) (*domain.HistoryList, *common.PageCursor, error) {
	nicknames, err := s.repo.SenderNicknames(memberIdx)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}

	if search == "" {
		if len(nicknames) == 0 {
			return nil, nil, common.ErrEmptyResult
		}
		cursor, err := common.NewPageCursor(int64(len(nicknames)), s.pageSize, page)
		if err != nil {
			return nil, nil, err
		}
		start, end := cursor.Bounds(len(nicknames))

		groups := make([]*domain.SenderGroup, 0, end-start)
		for _, nickname := range nicknames[start:end] {
			group, err := s.buildSenderGroup(memberIdx, nickname)
			if err != nil {
				return nil, nil, err
			}
			if group != nil {
				groups = append(groups, group)
			}
		}
		return &domain.HistoryList{Filter: domain.FilterSender, Senders: groups}, cursor, nil
	}

	// 검색 시 : 발신인별로 종류마다 가장 최근 항목 하나씩만 본문 검색
	folded := foldText(search)
	var groups []*domain.SenderGroup
	for _, nickname := range nicknames {
		group, err := s.searchSenderGroup(memberIdx, nickname, folded)
		if err != nil {
			return nil, nil, err
		}
		if group != nil {
			groups = append(groups, group)
		}
	}

	if len(groups) == 0 {
		return nil, nil, common.ErrEmptyResult
	}
	cursor, err := common.NewPageCursor(int64(len(groups)), s.pageSize, page)
	if err != nil {
		return nil, nil, err
	}
	start, end := cursor.Bounds(len(groups))
	return &domain.HistoryList{Filter: domain.FilterSender, Senders: groups[start:end]}, cursor, nil
}

// buildSenderGroup assembles one sender row: representative item is the most
// recent of the sender's latest diary/letter/reply, total is the sum of
// per-kind counts.
func (s *historyService) buildSenderGroup(memberIdx int, nickname string) (*domain.SenderGroup, error) {
	var candidates []*domain.HistoryItem

	diaryCount, err := s.repo.CountDiariesBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if diaryCount > 0 {
		rec, err := s.repo.LatestDiaryBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil {
			item, err := s.diaryItem(rec)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, item)
		}
	}

	letterCount, err := s.repo.CountLettersBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if letterCount > 0 {
		rec, err := s.repo.LatestLetterBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil {
			candidates = append(candidates, letterItem(rec))
		}
	}

	replyCount, err := s.repo.CountRepliesBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if replyCount > 0 {
		rec, err := s.repo.LatestReplyBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil {
			candidates = append(candidates, replyItem(rec))
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}
	sortBySentAtDesc(candidates)

	return &domain.SenderGroup{
		SenderNickname: nickname,
		TotalCount:     int(diaryCount + letterCount + replyCount),
		Recent:         candidates[0],
	}, nil
}

// searchSenderGroup probes only the single most recent item per kind against
// the folded search text. Older matching items from the same sender are not
// visible to this mode.
func (s *historyService) searchSenderGroup(memberIdx int, nickname, folded string) (*domain.SenderGroup, error) {
	var matched []*domain.HistoryItem

	diaryCount, err := s.repo.CountDiariesBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if diaryCount > 0 {
		rec, err := s.repo.LatestDiaryBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil {
			// 검색은 반드시 복호화된 평문에서 수행한다
			item, err := s.diaryItem(rec)
			if err != nil {
				return nil, err
			}
			if containsFolded(item.Content, folded) {
				matched = append(matched, item)
			}
		}
	}

	letterCount, err := s.repo.CountLettersBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if letterCount > 0 {
		rec, err := s.repo.LatestLetterBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil && containsFolded(rec.Content, folded) {
			matched = append(matched, letterItem(rec))
		}
	}

	replyCount, err := s.repo.CountRepliesBySender(memberIdx, nickname)
	if err != nil {
		return nil, retrievalErr(err)
	}
	if replyCount > 0 {
		rec, err := s.repo.LatestReplyBySender(memberIdx, nickname)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if rec != nil && containsFolded(rec.Content, folded) {
			matched = append(matched, replyItem(rec))
		}
	}

	if len(matched) == 0 {
		return nil, nil
	}
	sortBySentAtDesc(matched)

	return &domain.SenderGroup{
		SenderNickname: nickname,
		TotalCount:     len(matched),
		Recent:         matched[0],
	}, nil
}

// diaryFeed returns diary items only.
func (s *historyService) diaryFeed(memberIdx int, search string, page int) (*domain.HistoryList, *common.PageCursor, error) {
	if search == "" {
		total, err := s.repo.CountDiaries(memberIdx)
		if err != nil {
			return nil, nil, retrievalErr(err)
		}
		if total == 0 {
			return nil, nil, common.ErrEmptyResult
		}
		cursor, err := common.NewPageCursor(total, s.pageSize, page)
		if err != nil {
			return nil, nil, err
		}

		rows, err := s.repo.DiaryPage(memberIdx, (page-1)*s.pageSize, s.pageSize)
		if err != nil {
			return nil, nil, retrievalErr(err)
		}
		items, err := s.diaryItems(rows)
		if err != nil {
			return nil, nil, err
		}
		return &domain.HistoryList{Filter: domain.FilterDiary, Items: items}, cursor, nil
	}

	// 검색 시 : 수신한 모든 일기를 복호화 후 본문 검색, 검색 결과를 페이징
	rows, err := s.repo.AllDiaries(memberIdx)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}
	items, err := s.diaryItems(rows)
	if err != nil {
		return nil, nil, err
	}
	items = filterFolded(items, foldText(search))

	items, cursor, err := paginateItems(items, s.pageSize, page)
	if err != nil {
		return nil, nil, err
	}
	return &domain.HistoryList{Filter: domain.FilterDiary, Items: items}, cursor, nil
}

// letterFeed merges letters and replies into one list.
func (s *historyService) letterFeed(memberIdx int, search string, page int) (*domain.HistoryList, *common.PageCursor, error) {
	letters, err := s.repo.AllLetters(memberIdx)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}
	replies, err := s.repo.AllReplies(memberIdx)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}

	items := make([]*domain.HistoryItem, 0, len(letters)+len(replies))
	for _, rec := range letters {
		items = append(items, letterItem(rec))
	}
	for _, rec := range replies {
		items = append(items, replyItem(rec))
	}
	if search != "" {
		items = filterFolded(items, foldText(search))
	}

	items, cursor, err := paginateItems(items, s.pageSize, page)
	if err != nil {
		return nil, nil, err
	}
	return &domain.HistoryList{Filter: domain.FilterLetter, Items: items}, cursor, nil
}

// GetSenderHistory returns every item (diary, letter, reply) received from one
// sender, merged and sorted, newest first.
func (s *historyService) GetSenderHistory(memberIdx int, senderNickname, search string, page int) ([]*domain.HistoryItem, *common.PageCursor, error) {
	// 존재하지 않는 발신인은 빈 결과가 아니라 조회 대상 오류로 구분한다
	if _, err := s.memberRepo.FindByNickname(senderNickname); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.ErrUserNotFound
		}
		return nil, nil, retrievalErr(err)
	}

	diaries, err := s.repo.DiariesBySender(memberIdx, senderNickname)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}
	letters, err := s.repo.LettersBySender(memberIdx, senderNickname)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}
	replies, err := s.repo.RepliesBySender(memberIdx, senderNickname)
	if err != nil {
		return nil, nil, retrievalErr(err)
	}

	items := make([]*domain.HistoryItem, 0, len(diaries)+len(letters)+len(replies))
	diaryItems, err := s.diaryItems(diaries)
	if err != nil {
		return nil, nil, err
	}
	items = append(items, diaryItems...)
	for _, rec := range letters {
		items = append(items, letterItem(rec))
	}
	for _, rec := range replies {
		items = append(items, replyItem(rec))
	}
	if search != "" {
		items = filterFolded(items, foldText(search))
	}

	return paginateItems(items, s.pageSize, page)
}

// GetThread reconstructs the conversation a record belongs to. For a reply
// the recorded origin is resolved first and the requested reply is flagged
// within the rebuilt thread.
func (s *historyService) GetThread(memberIdx int, kind domain.HistoryKind, idx int) (*domain.Thread, error) {
	switch kind {
	case domain.KindDiary, domain.KindLetter:
		return s.buildThread(memberIdx, kind, idx, 0)

	case domain.KindReply:
		originKind, originIdx, err := s.repo.ReplyOrigin(idx)
		if err != nil {
			return nil, retrievalErr(err)
		}
		thread, err := s.buildThread(memberIdx, originKind, originIdx, idx)
		if err != nil {
			return nil, err
		}
		// 요청한 답장이 재구성된 스레드에 없으면 저장 데이터가 깨진 것
		for _, reply := range thread.Replies {
			if reply.IsFocused {
				return thread, nil
			}
		}
		return nil, fmt.Errorf("%w: reply %d not in its recorded thread", common.ErrDataIntegrity, idx)

	default:
		return nil, common.ErrInvalidInput
	}
}

// buildThread loads the origin item, its checklist when the origin is a
// diary, and the replies in ascending send order. focusReplyIdx == 0 means
// the origin itself is being viewed and nothing is flagged.
func (s *historyService) buildThread(memberIdx int, originKind domain.HistoryKind, originIdx, focusReplyIdx int) (*domain.Thread, error) {
	thread := &domain.Thread{}

	switch originKind {
	case domain.KindDiary:
		rec, err := s.repo.DiaryOrigin(originIdx)
		if err != nil {
			return nil, retrievalErr(err)
		}
		item, err := s.diaryItem(rec)
		if err != nil {
			return nil, err
		}
		thread.Origin = &domain.ThreadItem{HistoryItem: *item}

		doneList, err := s.repo.DoneContents(originIdx)
		if err != nil {
			return nil, retrievalErr(err)
		}
		if !rec.IsPublic {
			for i, content := range doneList {
				plain, err := s.cipher.Decrypt(content)
				if err != nil {
					return nil, fmt.Errorf("%w: done list of diary %d: %v", common.ErrContentCrypto, originIdx, err)
				}
				doneList[i] = plain
			}
		}
		thread.DoneList = doneList

	case domain.KindLetter:
		rec, err := s.repo.LetterOrigin(originIdx)
		if err != nil {
			return nil, retrievalErr(err)
		}
		thread.Origin = &domain.ThreadItem{HistoryItem: *letterItem(rec)}

	default:
		return nil, fmt.Errorf("%w: reply origin kind %q", common.ErrDataIntegrity, originKind)
	}

	replies, err := s.repo.ThreadReplies(memberIdx, originKind, originIdx)
	if err != nil {
		return nil, retrievalErr(err)
	}
	thread.Replies = make([]*domain.ThreadItem, 0, len(replies))
	for _, rec := range replies {
		thread.Replies = append(thread.Replies, &domain.ThreadItem{
			HistoryItem: *replyItem(rec),
			IsFocused:   rec.ReplyIdx == focusReplyIdx,
		})
	}
	return thread, nil
}

// ---------------------------------------------------------------------------
// record normalization

// diaryItem converts a stored diary row, decrypting the content when the
// diary is not public. Letter/reply content is always plaintext and must
// never be passed through the cipher.
func (s *historyService) diaryItem(rec *domain.DiaryRecord) (*domain.HistoryItem, error) {
	content := rec.Content
	if !rec.IsPublic {
		plain, err := s.cipher.Decrypt(content)
		if err != nil {
			return nil, fmt.Errorf("%w: diary %d: %v", common.ErrContentCrypto, rec.DiaryIdx, err)
		}
		content = plain
	}
	return domain.NewHistoryItem(domain.KindDiary, rec.DiaryIdx, rec.SenderNickname,
		content, rec.EmotionIdx, rec.DoneListNum, rec.CreatedAt), nil
}

func (s *historyService) diaryItems(rows []*domain.DiaryRecord) ([]*domain.HistoryItem, error) {
	items := make([]*domain.HistoryItem, 0, len(rows))
	for _, rec := range rows {
		item, err := s.diaryItem(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func letterItem(rec *domain.LetterRecord) *domain.HistoryItem {
	return domain.NewHistoryItem(domain.KindLetter, rec.LetterIdx, rec.SenderNickname,
		rec.Content, 0, 0, rec.CreatedAt)
}

func replyItem(rec *domain.ReplyRecord) *domain.HistoryItem {
	return domain.NewHistoryItem(domain.KindReply, rec.ReplyIdx, rec.SenderNickname,
		rec.Content, 0, 0, rec.CreatedAt)
}

// ---------------------------------------------------------------------------
// search / sort / pagination helpers

// foldText lowercases and strips quotes and every whitespace rune, so
// "Hello World" matches content stored as "helloworld" or "HELLO   WORLD".
func foldText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == '"' || r == '\'' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsFolded(content, folded string) bool {
	return strings.Contains(foldText(content), folded)
}

func filterFolded(items []*domain.HistoryItem, folded string) []*domain.HistoryItem {
	kept := items[:0]
	for _, item := range items {
		if containsFolded(item.Content, folded) {
			kept = append(kept, item)
		}
	}
	return kept
}

// sortBySentAtDesc orders newest first. Items with the same instant keep no
// particular relative order.
func sortBySentAtDesc(items []*domain.HistoryItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].SentAt.After(items[j].SentAt)
	})
}

// paginateItems sorts candidates newest first and cuts the requested page.
func paginateItems(items []*domain.HistoryItem, pageSize, page int) ([]*domain.HistoryItem, *common.PageCursor, error) {
	if len(items) == 0 {
		return nil, nil, common.ErrEmptyResult
	}
	sortBySentAtDesc(items)

	cursor, err := common.NewPageCursor(int64(len(items)), pageSize, page)
	if err != nil {
		return nil, nil, err
	}
	start, end := cursor.Bounds(len(items))
	return items[start:end], cursor, nil
}

// retrievalErr maps storage failures: a missing row is a not-found, anything
// else surfaces as a retrieval failure.
func retrievalErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return fmt.Errorf("%w: %v", common.ErrRetrieval, err)
}
