package notes

import (
	"context"
	"sync"
	"time"

	"holocron/internal/client/models"
)

// DefaultDebounce is the quiet period a search term must survive unchanged
// before a request is issued.
const DefaultDebounce = 300 * time.Millisecond

// Searcher issues debounced, superseding search requests.
//
// Each SetTerm cancels the pending quiet-period timer and schedules a new
// one, so a burst of term changes results in at most one request carrying the
// final term. Requests are tagged with a monotonically increasing sequence
// number; a response is delivered only while its sequence is still the
// latest, so a slow response for an old term can never overwrite the results
// of a newer one. In-flight HTTP requests are not cancelled; a superseded
// result is simply discarded on arrival.
type Searcher struct {
	repo     *Repository
	delay    time.Duration
	onResult func(term string, notes []models.Note)
	onError  func(term string, err error)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewSearcher(repo *Repository, delay time.Duration, onResult func(string, []models.Note), onError func(string, error)) *Searcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Searcher{
		repo:     repo,
		delay:    delay,
		onResult: onResult,
		onError:  onError,
	}
}

// SetTerm registers a change of the search term. The request fires after the
// quiet period, unless the term changes again first.
func (s *Searcher) SetTerm(ctx context.Context, term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, term, seq)
	})
}

// Stop cancels any pending request. Results of requests already in flight
// are still discarded by the sequence check once Stop bumps the sequence.
func (s *Searcher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Searcher) run(ctx context.Context, term string, seq uint64) {
	if !s.isCurrent(seq) {
		return
	}

	result, err := s.repo.List(ctx, term)

	// re-check: a newer term may have been issued while this request was in
	// flight, and its response may already be on screen
	if !s.isCurrent(seq) {
		return
	}

	if err != nil {
		if s.onError != nil {
			s.onError(term, err)
		}
		return
	}
	if s.onResult != nil {
		s.onResult(term, result)
	}
}

func (s *Searcher) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}
