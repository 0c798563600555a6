package service

import (
	"testing"

	"hydromate/internal/testutil"
)

func TestStatsService_LogUsage(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "no profiles",
			count: 0,
		},
		{
			name:  "several profiles",
			count: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockProfileRepository)
			mockRepo.On("Count").Return(tt.count)

			service := NewStatsService(mockRepo, testutil.NewTestLogger())
			service.LogUsage()

			mockRepo.AssertExpectations(t)
		})
	}
}
