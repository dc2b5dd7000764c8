package domain

import "testing"

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		wantLastPage int
	}{
		{name: "exact multiple", totalRecords: 20, page: 1, pageSize: 10, wantLastPage: 2},
		{name: "partial last page", totalRecords: 21, page: 1, pageSize: 10, wantLastPage: 3},
		{name: "empty result", totalRecords: 0, page: 1, pageSize: 10, wantLastPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := NewMetadata(tt.totalRecords, tt.page, tt.pageSize)

			if metadata.LastPage != tt.wantLastPage {
				t.Errorf("LastPage = %d, want %d", metadata.LastPage, tt.wantLastPage)
			}
			if metadata.FirstPage != 1 {
				t.Errorf("FirstPage = %d, want 1", metadata.FirstPage)
			}
			if metadata.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", metadata.CurrentPage, tt.page)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 25}

	if got := p.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
	if got := p.Limit(); got != 25 {
		t.Errorf("Limit() = %d, want 25", got)
	}
}
