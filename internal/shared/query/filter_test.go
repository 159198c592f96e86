package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"litreview/internal/shared/constants"
)

func TestPageFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     PageFilter
		wantOffset int
		wantLimit  int
	}{
		{"zero value uses defaults", PageFilter{}, 0, constants.DefaultPageSize},
		{"second page", PageFilter{Page: 2, PageSize: 3}, 3, 3},
		{"negative page", PageFilter{Page: -4, PageSize: 10}, 0, 10},
		{"size capped", PageFilter{Page: 2, PageSize: 1000}, constants.MaxPageSize, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.filter.Offset())
			assert.Equal(t, tt.wantLimit, tt.filter.Limit())
		})
	}
}
