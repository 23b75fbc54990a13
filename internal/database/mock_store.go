package database

import (
	"context"

	"go.uber.org/mock/gomock"
)

// MockStore runs transactions against a MockQuerier and records how each one
// ended.
type MockStore struct {
	*MockQuerier

	Commits   int
	Rollbacks int
}

var _ Store = (*MockStore)(nil)

func NewMockStore(ctrl *gomock.Controller) *MockStore {
	return &MockStore{MockQuerier: NewMockQuerier(ctrl)}
}

func (s *MockStore) InTx(ctx context.Context, fn func(q Querier) error) error {
	if err := fn(s.MockQuerier); err != nil {
		s.Rollbacks++
		return err
	}
	s.Commits++
	return nil
}
