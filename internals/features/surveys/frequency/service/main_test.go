package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"cosmo_stats_backend/internals/features/surveys/submissions"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CountAnswers(ctx context.Context, q submissions.AnswerQuery) ([]submissions.AnswerCount, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]submissions.AnswerCount)
	return rows, args.Error(1)
}
