package geometry

import (
	"errors"
	"testing"
)

func TestNewSpread(t *testing.T) {
	cases := []struct {
		name       string
		width      int
		height     int
		columns    int
		pageWidth  int
		pageHeight int
		textWidth  int
		textHeight int
	}{
		{name: "two columns", width: 80, height: 24, columns: 2, pageWidth: 35, pageHeight: 21, textWidth: 34, textHeight: 20},
		{name: "one column", width: 80, height: 24, columns: 1, pageWidth: 74, pageHeight: 21, textWidth: 73, textHeight: 20},
		{name: "three columns", width: 120, height: 40, columns: 3, pageWidth: 36, pageHeight: 37, textWidth: 35, textHeight: 36},
		{name: "smallest", width: 14, height: 5, columns: 1, pageWidth: 8, pageHeight: 2, textWidth: 7, textHeight: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSpread(tc.width, tc.height, tc.columns)
			if err != nil {
				t.Fatalf("NewSpread() error = %v", err)
			}
			if s.PageWidth != tc.pageWidth {
				t.Fatalf("page width mismatch: got %d want %d", s.PageWidth, tc.pageWidth)
			}
			if s.PageHeight != tc.pageHeight {
				t.Fatalf("page height mismatch: got %d want %d", s.PageHeight, tc.pageHeight)
			}
			if s.TextWidth() != tc.textWidth {
				t.Fatalf("text width mismatch: got %d want %d", s.TextWidth(), tc.textWidth)
			}
			if s.TextHeight() != tc.textHeight {
				t.Fatalf("text height mismatch: got %d want %d", s.TextHeight(), tc.textHeight)
			}
		})
	}
}

func TestNewSpreadErrors(t *testing.T) {
	cases := []struct {
		name    string
		width   int
		height  int
		columns int
		want    error
	}{
		{name: "no columns", width: 80, height: 24, columns: 0, want: ErrNoColumns},
		{name: "too narrow", width: 20, height: 24, columns: 3, want: ErrWindowTooSmall},
		{name: "too short", width: 80, height: 4, columns: 1, want: ErrWindowTooSmall},
	}
	for _, tc := range cases {
		if _, err := NewSpread(tc.width, tc.height, tc.columns); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, err, tc.want)
		}
	}
}

func TestSpreadUpdate(t *testing.T) {
	s, err := NewSpread(80, 24, 2)
	if err != nil {
		t.Fatalf("NewSpread() error = %v", err)
	}
	if err := s.Update(20, 24); !errors.Is(err, ErrWindowTooSmall) {
		t.Fatalf("shrink: got %v want %v", err, ErrWindowTooSmall)
	}
	if s.Fits() {
		t.Fatalf("spread of %dx%d should not fit", s.PageWidth, s.PageHeight)
	}
	if err := s.Update(100, 30); err != nil {
		t.Fatalf("grow: %v", err)
	}
	if s.PageWidth != 45 || s.PageHeight != 27 {
		t.Fatalf("page size mismatch: got %dx%d want 45x27", s.PageWidth, s.PageHeight)
	}
}

func TestAlign(t *testing.T) {
	cases := []struct {
		page    int
		columns int
		want    int
	}{
		{page: 0, columns: 2, want: 0},
		{page: 5, columns: 2, want: 4},
		{page: 4, columns: 2, want: 4},
		{page: 7, columns: 3, want: 6},
		{page: 7, columns: 1, want: 7},
		{page: 3, columns: 0, want: 0},
	}
	for _, tc := range cases {
		if got := Align(tc.page, tc.columns); got != tc.want {
			t.Fatalf("Align(%d, %d): got %d want %d", tc.page, tc.columns, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		page    int
		pages   int
		columns int
		want    float64
	}{
		{page: 4, pages: 10, columns: 2, want: 0.4},
		{page: 2, pages: 5, columns: 2, want: 0.5},
		{page: 4, pages: 5, columns: 2, want: 1},
		{page: 0, pages: 1, columns: 2, want: 0},
		{page: 0, pages: 0, columns: 1, want: 0},
	}
	for _, tc := range cases {
		if got := Progress(tc.page, tc.pages, tc.columns); got != tc.want {
			t.Fatalf("Progress(%d, %d, %d): got %v want %v", tc.page, tc.pages, tc.columns, got, tc.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		progress float64
		width    int
		want     string
	}{
		{progress: 0.5, width: 16, want: "#####-----50.0%"},
		{progress: 0, width: 12, want: "-------0.0%"},
		{progress: 1, width: 4, want: "100.0%"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.progress, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%v, %d): got %q want %q", tc.progress, tc.width, got, tc.want)
		}
	}
}
