// Package reflow lays plain text out as fixed-size pages of fully justified
// lines and keeps the word index needed to find a reading position again after
// the page geometry changes.
package reflow

import "go.uber.org/zap"

const (
	// DefaultIndentIn is the number of input spaces that make one indent level.
	DefaultIndentIn = 4
	// DefaultIndentOut is the number of output columns per indent level.
	DefaultIndentOut = 3
	// DefaultMinWidth lets any line holding a word close without hyphenating.
	DefaultMinWidth = 1
)

// Config tunes the engine. Zero values fall back to the defaults.
type Config struct {
	// IndentIn is the number of leading input spaces per indent level.
	IndentIn int
	// IndentOut is the number of output columns per indent level.
	IndentOut int
	// MinWidth is the narrowest line, in cells, that may be closed without
	// hyphenating the word that overflows it.
	MinWidth int
	Logger   *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.IndentIn <= 0 {
		c.IndentIn = DefaultIndentIn
	}
	if c.IndentOut <= 0 {
		c.IndentOut = DefaultIndentOut
	}
	if c.MinWidth <= 0 {
		c.MinWidth = DefaultMinWidth
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Engine paginates text. It keeps no state between calls and is safe for
// concurrent use.
type Engine struct {
	config Config
	logger *zap.Logger
}

// New returns an Engine configured with config.
func New(config Config) *Engine {
	config = config.withDefaults()
	return &Engine{
		config: config,
		logger: config.Logger.Named("reflow"),
	}
}

var defaultEngine = New(Config{})

// Paginate lays text out with the default configuration.
func Paginate(text string, width, height int) (Layout, error) {
	return defaultEngine.Paginate(text, width, height)
}
