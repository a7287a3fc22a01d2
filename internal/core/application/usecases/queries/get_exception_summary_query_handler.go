package queries

import (
	"context"

	"dockyard/internal/core/domain/model/exception"
	"dockyard/internal/pkg/cache"

	"gorm.io/gorm"
)

const exceptionSummaryCacheKey = "exceptions:summary"

// GetExceptionSummaryQueryHandler counts exceptions per handling status.
type GetExceptionSummaryQueryHandler struct {
	db    *gorm.DB
	cache *cache.QueryCache
}

// NewGetExceptionSummaryQueryHandler creates a handler for summary queries.
func NewGetExceptionSummaryQueryHandler(db *gorm.DB, queryCache *cache.QueryCache) GetExceptionSummaryQueryHandler {
	return GetExceptionSummaryQueryHandler{db: db, cache: queryCache}
}

// Handle executes the query.
func (h GetExceptionSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetExceptionSummaryQuery,
) (GetExceptionSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetExceptionSummaryQueryResponse{}, err
	}

	if cached, ok := h.cache.Get(exceptionSummaryCacheKey); ok {
		if summary, castOK := cached.(GetExceptionSummaryQueryResponse); castOK {
			return summary, nil
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM truck_exceptions
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetExceptionSummaryQueryResponse{}, err
	}
	defer rows.Close()

	var summary GetExceptionSummaryQueryResponse
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetExceptionSummaryQueryResponse{}, err
		}

		switch exception.Status(status) {
		case exception.StatusPending:
			summary.Pending = count
		case exception.StatusInProgress:
			summary.InProgress = count
		case exception.StatusEscalated:
			summary.Escalated = count
		case exception.StatusResolved:
			summary.Resolved = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetExceptionSummaryQueryResponse{}, err
	}

	summary.Open = summary.Pending + summary.InProgress + summary.Escalated

	h.cache.Set(exceptionSummaryCacheKey, summary)

	return summary, nil
}
