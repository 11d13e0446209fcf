package pagination

import "testing"

func TestGetPageRangeBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page int
		want string
	}{
		{page: 0, want: "1-10"},
		{page: 1, want: "1-10"},
		{page: 10, want: "1-10"},
		{page: 11, want: "11-50"},
		{page: 50, want: "11-50"},
		{page: 51, want: "51-100"},
		{page: 100, want: "51-100"},
		{page: 101, want: "100+"},
	}

	for _, tt := range tests {
		if got := getPageRangeBucket(tt.page); got != tt.want {
			t.Errorf("getPageRangeBucket(%d) = %q, want %q", tt.page, got, tt.want)
		}
	}
}
