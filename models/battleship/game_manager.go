package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type GameManager interface {
	CreateMatch(opts ...MatchOption) *Match
	FetchMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)
	MatchCount() int
}

type BattleshipGameManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		matches: make(map[string]*Match, 4),
	}
}

func (bgm *BattleshipGameManager) CreateMatch(opts ...MatchOption) *Match {
	matchUuid := uuid.NewString()[:6]
	match := NewMatch(matchUuid, opts...)

	bgm.mu.Lock()
	bgm.matches[matchUuid] = match
	bgm.mu.Unlock()

	return match
}

func (bgm *BattleshipGameManager) FetchMatch(matchUuid string) (*Match, error) {
	bgm.mu.RLock()
	match, prs := bgm.matches[matchUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchUuidNotExists(matchUuid)
	}

	return match, nil
}

func (bgm *BattleshipGameManager) TerminateMatch(matchUuid string) {
	bgm.mu.Lock()
	delete(bgm.matches, matchUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) MatchCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.matches)
}
