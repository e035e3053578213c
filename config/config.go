package config

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/propgraph/core"
)

// Edge mutation modes accepted by Config.EdgeMutation.
const (
	EdgeMutationMirrored = "mirrored"
	EdgeMutationSingle   = "single"
)

// Log encodings accepted by LogConfig.Format.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds graph policy flags and logger settings.
type Config struct {
	Root          bool      `yaml:"root"`
	CascadeDelete bool      `yaml:"cascade_delete"`
	EdgeMutation  string    `yaml:"edge_mutation" validate:"required,oneof=mirrored single"`
	StrictEdgeIDs bool      `yaml:"strict_edge_ids"`
	AutoTouch     bool      `yaml:"auto_touch"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig selects the level and encoding of the graph logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=json console"`
}

// Default returns the configuration equivalent to core.NewGraph() with an
// info-level JSON logger.
func Default() *Config {
	return &Config{
		Root:         true,
		EdgeMutation: EdgeMutationMirrored,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatJSON,
		},
	}
}

// GraphOptions translates c into core options. A nil logger leaves the
// graph on its no-op default.
func (c *Config) GraphOptions(logger *zap.Logger) []core.GraphOption {
	opts := make([]core.GraphOption, 0, 6)
	if logger != nil {
		opts = append(opts, core.WithLogger(logger))
	}
	if !c.Root {
		opts = append(opts, core.WithoutRoot())
	}
	if c.CascadeDelete {
		opts = append(opts, core.WithCascadeDelete())
	}
	if c.EdgeMutation == EdgeMutationSingle {
		opts = append(opts, core.WithSingleSideMutation())
	}
	if c.StrictEdgeIDs {
		opts = append(opts, core.WithStrictEdgeIDs())
	}
	if c.AutoTouch {
		opts = append(opts, core.WithAutoTouch())
	}

	return opts
}

// NewGraph validates c, builds its logger and returns a configured Graph.
// extra options are applied after the configured ones.
func (c *Config) NewGraph(extra ...core.GraphOption) (*core.Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	return core.NewGraph(append(c.GraphOptions(logger), extra...)...), nil
}
