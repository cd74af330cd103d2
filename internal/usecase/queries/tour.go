package queries

import (
	"context"
)

type TourReadStore interface {
	FindActive(ctx context.Context) ([]*TourView, error)
}

type TourQueries interface {
	ListActive(ctx context.Context) ([]*TourView, error)
}

type tourQueriesImpl struct {
	store TourReadStore
}

func NewTourQueries(store TourReadStore) TourQueries {
	return &tourQueriesImpl{store: store}
}

func (q *tourQueriesImpl) ListActive(ctx context.Context) ([]*TourView, error) {
	return q.store.FindActive(ctx)
}
