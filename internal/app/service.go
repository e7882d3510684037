package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaminalder/tictactoe-minimax/internal/domain"
	"github.com/jaminalder/tictactoe-minimax/internal/search"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("suggestion not found")
)

// Suggestion is one answered move request.
type Suggestion struct {
	ID       string
	Board    domain.Board
	Outcome  domain.Outcome
	Analysis search.Analysis
	Cached   bool
	Created  time.Time
}

// Move returns the suggested cell; ok is false on a full board.
func (s Suggestion) Move() (int, bool) { return s.Analysis.Move, s.Analysis.HasMove() }

func (s *Suggestion) clone() *Suggestion {
	cp := *s
	cp.Analysis.Scores = append([]search.MoveScore(nil), s.Analysis.Scores...)
	return &cp
}

// Options configures a Service.
type Options struct {
	Parallel  bool
	CacheSize int
	Logger    zerolog.Logger
}

// Service answers move requests and remembers recent answers.
type Service struct {
	mu       sync.Mutex
	opts     Options
	log      zerolog.Logger
	cache    map[domain.Board]search.Analysis
	boards   []domain.Board
	byID     map[string]*Suggestion
	order    []string
	analyzed int
}

// NewService creates a service with sequential search and a silent logger.
func NewService() *Service {
	return NewServiceWithOptions(Options{CacheSize: 1024, Logger: zerolog.Nop()})
}

// NewServiceWithOptions creates a service from opts. A non-positive cache
// size disables caching and keeps no history.
func NewServiceWithOptions(opts Options) *Service {
	return &Service{
		opts:  opts,
		log:   opts.Logger,
		cache: make(map[domain.Board]search.Analysis),
		byID:  make(map[string]*Suggestion),
	}
}

// Evaluate classifies b.
func (s *Service) Evaluate(b domain.Board) (domain.Outcome, error) {
	if err := b.Validate(); err != nil {
		return domain.Ongoing, err
	}
	return domain.Evaluate(b), nil
}

// Suggest picks the AI's move on b and records the answer.
func (s *Service) Suggest(ctx context.Context, b domain.Board) (*Suggestion, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	a, cached := s.cache[b]
	s.mu.Unlock()

	if !cached {
		var err error
		a, err = s.analyze(ctx, b)
		if err != nil {
			s.log.Warn().Err(err).Str("board", b.String()).Msg("search aborted")
			return nil, err
		}
	}

	sg := &Suggestion{
		ID:       uuid.NewString(),
		Board:    b,
		Outcome:  domain.Evaluate(b),
		Analysis: a,
		Cached:   cached,
		Created:  time.Now(),
	}

	s.mu.Lock()
	if !cached {
		s.analyzed++
	}
	s.storeLocked(sg)
	s.mu.Unlock()

	s.log.Info().
		Str("id", sg.ID).
		Str("board", b.String()).
		Int("move", a.Move).
		Bool("cached", cached).
		Int("nodes", a.Stats.Nodes).
		Msg("suggested move")
	return sg.clone(), nil
}

func (s *Service) analyze(ctx context.Context, b domain.Board) (search.Analysis, error) {
	if s.opts.Parallel {
		return search.AnalyzeParallel(s.log.WithContext(ctx), b)
	}
	if err := ctx.Err(); err != nil {
		return search.Analysis{Move: search.NoMove}, err
	}
	return search.Analyze(&b), nil
}

// storeLocked records sg and its analysis. Both the analysis cache and the
// history hold at most CacheSize entries and drop the oldest first.
func (s *Service) storeLocked(sg *Suggestion) {
	limit := s.opts.CacheSize
	if limit <= 0 {
		return
	}
	if _, ok := s.cache[sg.Board]; !ok {
		s.cache[sg.Board] = sg.Analysis
		s.boards = append(s.boards, sg.Board)
		for len(s.boards) > limit {
			delete(s.cache, s.boards[0])
			s.boards = s.boards[1:]
		}
	}

	s.byID[sg.ID] = sg
	s.order = append(s.order, sg.ID)
	for len(s.order) > limit {
		delete(s.byID, s.order[0])
		s.order = s.order[1:]
	}
}

// Get returns a copy of a stored suggestion if present.
func (s *Service) Get(id string) (*Suggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sg, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return sg.clone(), true
}

// Lookup is Get with ErrNotFound for unknown ids.
func (s *Service) Lookup(id string) (*Suggestion, error) {
	sg, ok := s.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return sg, nil
}

// Searches returns how many boards were searched rather than served from
// the cache.
func (s *Service) Searches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzed
}
