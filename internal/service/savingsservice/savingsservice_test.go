package savingsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		req           dto.SavingsRequestDTO
		prepareMock   func()
		expectedGoal  *domain.SavingsGoal
		expectedError error
	}{
		{
			name: "Created",
			req:  dto.SavingsRequestDTO{Name: " Laptop ", Target: 400000, Due: "2025-01-01"},
			prepareMock: func() {
				repo.EXPECT().
					CreateSavings(ctx, "1", domain.SavingsGoal{Name: "Laptop", Target: 400000, Deadline: "2025-01-01"}).
					Return(&domain.SavingsGoal{ID: "s1", Name: "Laptop", Target: 400000, Deadline: "2025-01-01"}, nil)
			},
			expectedGoal: &domain.SavingsGoal{ID: "s1", Name: "Laptop", Target: 400000, Deadline: "2025-01-01"},
		},
		{
			name:          "Missing name",
			req:           dto.SavingsRequestDTO{Target: 100},
			prepareMock:   func() {},
			expectedError: ErrInvalidName,
		},
		{
			name:          "Zero target",
			req:           dto.SavingsRequestDTO{Name: "Trip"},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Bad deadline",
			req:           dto.SavingsRequestDTO{Name: "Trip", Target: 100, Due: "next year"},
			prepareMock:   func() {},
			expectedError: ErrInvalidDeadline,
		},
		{
			name: "Repository failure",
			req:  dto.SavingsRequestDTO{Name: "Trip", Target: 100},
			prepareMock: func() {
				repo.EXPECT().CreateSavings(ctx, "1", gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedError: errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			goal, err := service.Create(ctx, "1", tt.req)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, goal)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedGoal, goal)
		})
	}
}

func TestAddMoney(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().
		AddToSavings(ctx, "1", "s1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID, savingsID string, amount decimal.Decimal) (*domain.SavingsGoal, error) {
			assert.True(t, amount.Equal(decimal.NewFromInt(2500)))
			return &domain.SavingsGoal{ID: "s1", Target: 10000, Current: 2500}, nil
		})
	goal, err := service.AddMoney(ctx, "1", "s1", 2500)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, goal.Progress())

	_, err = service.AddMoney(ctx, "1", "s1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	repo.EXPECT().AddToSavings(ctx, "1", "missing", gomock.Any()).Return(nil, domain.ErrNotFound)
	_, err = service.AddMoney(ctx, "1", "missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().ListSavings(ctx, "1").Return([]domain.SavingsGoal{{ID: "1"}}, nil)
	goals, err := service.List(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, goals, 1)

	repo.EXPECT().ListSavings(ctx, "1").Return(nil, errors.New("boom"))
	goals, err = service.List(ctx, "1")
	assert.Error(t, err)
	assert.Nil(t, goals)
}
