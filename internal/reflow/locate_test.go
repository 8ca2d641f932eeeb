package reflow

import "testing"

func TestLocate(t *testing.T) {
	t.Parallel()

	index := []int{3, 5, 9}
	cases := []struct {
		word int
		want int
	}{
		{word: 0, want: 0},
		{word: 2, want: 0},
		{word: 3, want: 1},
		{word: 4, want: 1},
		{word: 8, want: 2},
		{word: 9, want: 2},
		{word: 100, want: 2},
	}
	for _, tc := range cases {
		if got := Locate(tc.word, index); got != tc.want {
			t.Fatalf("Locate(%d) = %d, want %d", tc.word, got, tc.want)
		}
	}
	if got := Locate(4, nil); got != 0 {
		t.Fatalf("Locate on empty index = %d, want 0", got)
	}
}

func TestLocateSurvivesResize(t *testing.T) {
	t.Parallel()

	text := "one two three four five six seven eight nine ten eleven twelve\n"
	wide, err := Paginate(text, 30, 1)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	narrow, err := Paginate(text, 12, 2)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	for page := range wide.Pages {
		word := wide.PageStart(page)
		target := narrow.Locate(word)
		if start, end := narrow.PageStart(target), narrow.Index[target]; word < start || word >= end {
			t.Fatalf("word %d mapped to page %d covering [%d, %d)", word, target, start, end)
		}
	}
}

func TestPageStart(t *testing.T) {
	t.Parallel()

	layout := Layout{Index: []int{3, 5, 9}}
	cases := []struct {
		page int
		want int
	}{
		{page: -1, want: 0},
		{page: 0, want: 0},
		{page: 1, want: 3},
		{page: 2, want: 5},
		{page: 3, want: 9},
		{page: 10, want: 9},
	}
	for _, tc := range cases {
		if got := layout.PageStart(tc.page); got != tc.want {
			t.Fatalf("PageStart(%d) = %d, want %d", tc.page, got, tc.want)
		}
	}
	if got := (Layout{}).PageStart(2); got != 0 {
		t.Fatalf("PageStart on empty layout = %d, want 0", got)
	}
}
