package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/csheth/justread/internal/geometry"
	"github.com/csheth/justread/internal/reflow"
	"github.com/csheth/justread/internal/text"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	statusBarWidth = 30
)

type options struct {
	width      int
	height     int
	cols       int
	page       int
	word       int
	line       int
	appendPath string
	replace    string
	justify    bool
	mergeLines bool
	minWidth   int
	indentIn   int
	indentOut  int
	frame      bool
	index      bool
	all        bool
	verbose    bool
	path       string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "justread:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	raw, err := readInput(opts.path, stdin)
	if err != nil {
		return err
	}
	buf := text.NewBuffer(raw, text.Options{MergeLines: opts.mergeLines})
	if opts.replace != "" {
		if err := editBuffer(opts.replace, "replace", buf.Replace); err != nil {
			return err
		}
	}
	if opts.appendPath != "" {
		if err := editBuffer(opts.appendPath, "append", buf.Append); err != nil {
			return err
		}
	}

	width, height, err := pageSize(opts, stdout)
	if err != nil {
		return err
	}
	engine := reflow.New(reflow.Config{
		IndentIn:  opts.indentIn,
		IndentOut: opts.indentOut,
		MinWidth:  opts.minWidth,
		Logger:    logger,
	})
	if opts.justify {
		justified, err := engine.Justify(buf.Text(), width)
		if err != nil {
			return fmt.Errorf("justify %d: %w", width, err)
		}
		fmt.Fprint(stdout, justified)
		return nil
	}
	layout, err := engine.Paginate(buf.Text(), width, height)
	if err != nil {
		return fmt.Errorf("paginate %dx%d: %w", width, height, err)
	}

	if opts.index {
		for i, words := range layout.Index {
			fmt.Fprintf(stdout, "%d\t%d\n", i+1, words)
		}
		return nil
	}
	if len(layout.Pages) == 0 {
		return nil
	}

	target := opts.page - 1
	if opts.word >= 0 {
		target = layout.Locate(opts.word)
	}
	target = clamp(target, 0, len(layout.Pages)-1)
	first := geometry.Align(target, opts.cols)
	bookmark := layout.PageStart(first)
	if opts.line > 0 {
		bookmark = layout.WordAt(target, opts.line-1)
	}

	shown := layout.Pages[first:min(first+opts.cols, len(layout.Pages))]
	if opts.all {
		first, shown = 0, layout.Pages
	}
	if opts.frame {
		fmt.Fprint(stdout, renderFramed(shown, first, width, height))
	} else {
		fmt.Fprint(stdout, renderPlain(shown))
	}

	progress := geometry.Progress(first, len(layout.Pages), opts.cols)
	logger.Debug("spread shown",
		zap.Int("first", first),
		zap.Int("pages", len(shown)),
		zap.Float64("progress", progress),
	)
	fmt.Fprintf(stderr, "page %d/%d word %d %s\n", first+1, len(layout.Pages), bookmark, geometry.ProgressBar(progress, statusBarWidth))
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("justread", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: justread [flags] [file|-]")
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.width, "width", 0, "page text width in columns (default: from the terminal)")
	fs.IntVar(&opts.height, "height", 0, "page text height in lines (default: from the terminal)")
	fs.IntVar(&opts.cols, "cols", 2, "number of pages shown side by side")
	fs.IntVar(&opts.page, "page", 1, "first page to show (1-based)")
	fs.IntVar(&opts.word, "word", -1, "show the page holding this word offset instead of -page")
	fs.IntVar(&opts.line, "line", 0, "report the first word of this line (1-based) of the target page as the reading position")
	fs.StringVar(&opts.replace, "replace", "", "read this file instead of the input")
	fs.StringVar(&opts.appendPath, "append", "", "append the text of this file as a new paragraph")
	fs.BoolVar(&opts.justify, "justify", false, "print the text justified to -width without paging")
	fs.BoolVar(&opts.mergeLines, "merge-lines", false, "join lines separated by a single line break")
	fs.IntVar(&opts.minWidth, "min-width", reflow.DefaultMinWidth, "narrowest line closed without hyphenating the next word")
	fs.IntVar(&opts.indentIn, "indent-in", reflow.DefaultIndentIn, "input spaces per indent level")
	fs.IntVar(&opts.indentOut, "indent-out", reflow.DefaultIndentOut, "output columns per indent level")
	fs.BoolVar(&opts.frame, "frame", false, "draw a border and page number around each page")
	fs.BoolVar(&opts.index, "index", false, "print the word index (page, words consumed) and exit")
	fs.BoolVar(&opts.all, "all", false, "print every page")
	fs.BoolVar(&opts.verbose, "v", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		return options{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	opts.path = fs.Arg(0)
	if opts.cols < 1 {
		return options{}, fmt.Errorf("-cols: %w: got %d", geometry.ErrNoColumns, opts.cols)
	}
	return opts, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// editBuffer feeds the text of the file at path to a buffer edit.
func editBuffer(path, verb string, edit func(string) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := edit(string(data)); err != nil {
		return fmt.Errorf("%s %s: %w", verb, path, err)
	}
	return nil
}

// pageSize returns the text area of one page. Explicit flags win; the rest
// comes from carving the window into the requested columns.
func pageSize(opts options, stdout io.Writer) (int, int, error) {
	width, height := opts.width, opts.height
	if width > 0 && height > 0 {
		return width, height, nil
	}
	ww, wh := windowDims(stdout)
	spread, err := geometry.NewSpread(ww, wh, opts.cols)
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 {
		width = spread.TextWidth()
	}
	if height <= 0 {
		height = spread.TextHeight()
	}
	return width, height, nil
}

func windowDims(stdout io.Writer) (int, int) {
	if w, h, ok := windowSize(stdout); ok {
		return w, h
	}
	width, height := fallbackWidth, fallbackHeight
	if v, ok := envInt("COLUMNS"); ok {
		width = v
	}
	if v, ok := envInt("LINES"); ok {
		height = v
	}
	return width, height
}

var windowSize = func(out io.Writer) (int, int, bool) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
