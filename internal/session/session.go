// Package session holds the search/pagination state machine for one search
// session. It performs no I/O of its own: transitions return a Request that
// the caller fetches, and the result is handed back through Complete.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"prodsearch/internal/domain"
	"prodsearch/internal/i18n"
)

// Fetcher performs a single catalog request
type Fetcher interface {
	Fetch(ctx context.Context, req domain.PageRequest) (*domain.ResultPage, error)
}

// Publisher receives lifecycle events. eventbus.EventBus satisfies it.
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Option configures a Session
type Option func(*Session)

// WithTranslator sets the text lookup used for user-facing messages
func WithTranslator(t i18n.Translator) Option {
	return func(s *Session) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithPublisher attaches an event publisher
func WithPublisher(p Publisher) Option {
	return func(s *Session) {
		s.publisher = p
	}
}

// Session is the mutable state of one search session
type Session struct {
	id     string
	query  string
	region domain.Region
	limit  int

	page       int
	totalPages int
	totalCount int
	items      []domain.Product
	loading    bool
	message    string

	// seq is the generation of the latest issued request
	seq uint64
	// kind of the latest issued request
	pending Kind
	// set when a page response landed past the new last page
	refetch bool

	translator i18n.Translator
	publisher  Publisher
}

// New creates a session with the first region, the default page size and an empty query
func New(opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		region:     domain.DefaultRegion(),
		limit:      domain.DefaultPageSize,
		page:       1,
		translator: i18n.English,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) Query() string { return s.query }
func (s *Session) Region() domain.Region { return s.region }
func (s *Session) Limit() int { return s.limit }
func (s *Session) Page() int { return s.page }
func (s *Session) TotalPages() int { return s.totalPages }
func (s *Session) TotalCount() int { return s.totalCount }
func (s *Session) Items() []domain.Product { return s.items }
func (s *Session) Loading() bool { return s.loading }
func (s *Session) Message() string { return s.message }
func (s *Session) Seq() uint64 { return s.seq }
func (s *Session) Translator() i18n.Translator { return s.translator }

// Status derives the display state
func (s *Session) Status() Status {
	switch {
	case s.loading:
		return Loading
	case s.message != "":
		return Error
	case len(s.items) > 0:
		return Loaded
	default:
		return Idle
	}
}

// SetTranslator replaces the text lookup used for messages produced from now on
func (s *Session) SetTranslator(t i18n.Translator) {
	if t != nil {
		s.translator = t
	}
}

// SetQuery changes the query. It takes effect on the next search.
func (s *Session) SetQuery(q string) {
	s.query = q
}

// SetRegion changes the region by id. It takes effect on the next fetch.
func (s *Session) SetRegion(id string) error {
	r, ok := domain.RegionByID(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, id)
	}
	s.region = r
	return nil
}

// SetLimit changes the page size. It takes effect on the next fetch.
func (s *Session) SetLimit(n int) error {
	if !domain.ValidPageSize(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	s.limit = n
	return nil
}

// BeginSearch starts a search from page 1 with the current query, region and
// limit. An empty query is a no-op and reports false.
func (s *Session) BeginSearch() (Request, bool) {
	if s.query == "" {
		return Request{}, false
	}

	s.message = ""
	s.page = 1
	s.loading = true
	s.refetch = false
	s.seq++
	s.pending = KindSearch

	req := Request{
		Seq:  s.seq,
		Kind: KindSearch,
		Page: 1,
		PageRequest: domain.PageRequest{
			Query:    s.query,
			RegionID: s.region.ID,
			Offset:   0,
			Limit:    s.limit,
		},
	}
	s.publish(domain.SearchStartedEvent{SessionID: s.id, Seq: req.Seq, Request: req.PageRequest})
	return req, true
}

// BeginChangePage moves to page n using the current query, region and limit.
// n must lie in [1, TotalPages]; otherwise nothing changes. It is rejected
// while a search is in flight because TotalPages still belongs to the
// previous results.
func (s *Session) BeginChangePage(n int) (Request, error) {
	if s.loading && s.pending == KindSearch {
		return Request{}, ErrSearchInFlight
	}
	if n < 1 || n > s.totalPages {
		return Request{}, fmt.Errorf("%w: %d not in [1,%d]", ErrPageOutOfRange, n, s.totalPages)
	}

	s.page = n
	s.loading = true
	s.refetch = false
	s.seq++
	s.pending = KindPage

	req := Request{
		Seq:  s.seq,
		Kind: KindPage,
		Page: n,
		PageRequest: domain.PageRequest{
			Query:    s.query,
			RegionID: s.region.ID,
			Offset:   domain.Offset(n, s.limit),
			Limit:    s.limit,
		},
	}
	s.publish(domain.PageRequestedEvent{SessionID: s.id, Seq: req.Seq, Page: n, Request: req.PageRequest})
	return req, nil
}

// Complete applies the outcome of req. Responses to anything but the latest
// issued request are discarded and Complete reports false.
func (s *Session) Complete(req Request, page *domain.ResultPage, err error) bool {
	if req.Seq != s.seq {
		s.publish(domain.ResponseDiscardedEvent{SessionID: s.id, Seq: req.Seq, Current: s.seq})
		return false
	}
	defer func() { s.loading = false }()

	if err != nil || page == nil {
		key := i18n.FetchFailed
		if req.Kind == KindPage {
			key = i18n.PageFetchFailed
		} else {
			s.totalPages = 0
			s.totalCount = 0
		}
		s.message = s.translator.T(key)
		s.publish(domain.SearchFailedEvent{SessionID: s.id, Seq: req.Seq, Message: s.message, Err: err})
		return true
	}

	if page.TotalCount <= 0 {
		if req.Kind == KindSearch {
			s.totalPages = 0
			s.totalCount = 0
			s.message = s.translator.T(i18n.NoProductsFound)
			s.publish(domain.SearchFailedEvent{SessionID: s.id, Seq: req.Seq, Message: s.message})
		}
		return true
	}

	s.totalCount = page.TotalCount
	s.totalPages = domain.TotalPages(page.TotalCount, req.Limit)
	s.message = ""
	if s.page > s.totalPages {
		// The items came from an offset past the new end
		s.page = s.totalPages
		s.refetch = true
		s.publish(domain.SearchCompletedEvent{
			SessionID:  s.id,
			Seq:        req.Seq,
			Page:       s.page,
			TotalCount: s.totalCount,
			TotalPages: s.totalPages,
		})
		return true
	}
	s.items = page.Items
	s.publish(domain.SearchCompletedEvent{
		SessionID:  s.id,
		Seq:        req.Seq,
		Page:       s.page,
		TotalCount: s.totalCount,
		TotalPages: s.totalPages,
	})
	return true
}

// NeedsRefetch reports whether the last applied page response was beyond the
// last page. Page has already been clamped; the caller should fetch it again.
func (s *Session) NeedsRefetch() bool {
	return s.refetch
}

// Search runs a search synchronously against f. It reports false when the
// query is empty and no request was issued.
func (s *Session) Search(ctx context.Context, f Fetcher) bool {
	req, ok := s.BeginSearch()
	if !ok {
		return false
	}
	page, err := f.Fetch(ctx, req.PageRequest)
	s.Complete(req, page, err)
	return true
}

// ChangePage runs a page change synchronously against f
func (s *Session) ChangePage(ctx context.Context, f Fetcher, n int) error {
	req, err := s.BeginChangePage(n)
	if err != nil {
		return err
	}
	page, ferr := f.Fetch(ctx, req.PageRequest)
	s.Complete(req, page, ferr)
	if s.NeedsRefetch() {
		return s.ChangePage(ctx, f, s.page)
	}
	return nil
}

func (s *Session) publish(event domain.DomainEvent) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}
