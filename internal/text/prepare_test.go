package text

import "testing"

func TestPrepare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		opts Options
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "adds trailing newline", raw: "hello world", want: "hello world\n"},
		{name: "keeps trailing newline", raw: "hello\n", want: "hello\n"},
		{name: "drops trailing blanks", raw: "hello  \t", want: "hello\n"},
		{name: "line endings", raw: "line one\r\nline two\r", want: "line one\nline two\n"},
		{name: "composes accents", raw: "cafe\u0301", want: "caf\u00e9\n"},
		{name: "keeps single breaks", raw: "a\nb\n\nc", want: "a\nb\n\nc\n"},
		{name: "merges single breaks", raw: "a\nb\n\nc", opts: Options{MergeLines: true}, want: "a b\n\nc\n"},
		{name: "merges final break", raw: "a\nb\n", opts: Options{MergeLines: true}, want: "a b\n"},
		{name: "merges after carriage returns", raw: "a\r\nb\r\n\r\nc\r\n", opts: Options{MergeLines: true}, want: "a b\n\nc\n"},
		{name: "keeps indent after blank line", raw: "a\n\n    b", opts: Options{MergeLines: true}, want: "a\n\n    b\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Prepare(tc.raw, tc.opts); got != tc.want {
				t.Fatalf("Prepare(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
