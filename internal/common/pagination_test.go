package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageCursor(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		pageSize   int
		page       int
		totalPages int
		hasNext    bool
		wantErr    error
	}{
		{name: "single partial page", total: 5, pageSize: 20, page: 1, totalPages: 1, hasNext: false},
		{name: "exact page boundary", total: 40, pageSize: 20, page: 1, totalPages: 2, hasNext: true},
		{name: "last page", total: 40, pageSize: 20, page: 2, totalPages: 2, hasNext: false},
		{name: "25 over 20 page 1", total: 25, pageSize: 20, page: 1, totalPages: 2, hasNext: true},
		{name: "25 over 20 page 2", total: 25, pageSize: 20, page: 2, totalPages: 2, hasNext: false},
		{name: "25 over 20 page 3", total: 25, pageSize: 20, page: 3, wantErr: ErrInvalidPage},
		{name: "zero total still one page", total: 0, pageSize: 20, page: 1, totalPages: 1, hasNext: false},
		{name: "zero total page 2", total: 0, pageSize: 20, page: 2, wantErr: ErrInvalidPage},
		{name: "page zero", total: 10, pageSize: 20, page: 0, wantErr: ErrInvalidPage},
		{name: "negative page", total: 10, pageSize: 20, page: -1, wantErr: ErrInvalidPage},
		{name: "bad page size", total: 10, pageSize: 0, page: 1, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, err := NewPageCursor(tt.total, tt.pageSize, tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.totalPages, cursor.TotalPages)
			assert.Equal(t, tt.hasNext, cursor.HasNext)
			assert.Equal(t, tt.total, cursor.Total)
		})
	}
}

func TestPageCursorBounds(t *testing.T) {
	cursor, err := NewPageCursor(25, 20, 2)
	require.NoError(t, err)

	start, end := cursor.Bounds(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	// 후보 수보다 큰 범위는 잘라낸다
	start, end = cursor.Bounds(21)
	assert.Equal(t, 20, start)
	assert.Equal(t, 21, end)
}
