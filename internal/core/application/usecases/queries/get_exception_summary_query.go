package queries

import (
	"errors"

	"dockyard/internal/pkg/guard"
)

var ErrGetExceptionSummaryQueryIsNotConstructed = errors.New(
	"GetExceptionSummaryQuery must be created via NewGetExceptionSummaryQuery constructor",
)

// GetExceptionSummaryQuery retrieves counters of open and resolved
// operational issues. This is a parameterless query backing the exceptions
// dashboard header.
type GetExceptionSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetExceptionSummaryQuery creates an exception summary query.
func NewGetExceptionSummaryQuery() GetExceptionSummaryQuery {
	return GetExceptionSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetExceptionSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetExceptionSummaryQueryIsNotConstructed)
}

// GetExceptionSummaryQueryResponse holds per-status issue counters.
// Open is the sum of everything not yet resolved.
type GetExceptionSummaryQueryResponse struct {
	Pending    int
	InProgress int
	Escalated  int
	Resolved   int
	Open       int
}
