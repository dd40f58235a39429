package session

import "prodsearch/internal/domain"

// Kind tells which transition issued a request
type Kind int

const (
	KindSearch Kind = iota
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindPage:
		return "page"
	default:
		return "unknown"
	}
}

// Request is a fetch issued by a transition, stamped with the session
// generation it belongs to
type Request struct {
	Seq  uint64
	Kind Kind
	Page int
	domain.PageRequest
}
