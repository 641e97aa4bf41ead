package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-sorted/telemetry"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of a merge run. It can be loaded from a YAML
// file; command-line flags override the file field by field.
type Config struct {
	// Strategy is one of lexical, natural, numeric or collate.
	Strategy string `yaml:"strategy"`
	// Locale is the BCP 47 tag used by the collate strategy.
	Locale     string `yaml:"locale"`
	IgnoreCase bool   `yaml:"ignoreCase"`
	Reverse    bool   `yaml:"reverse"`

	Unique bool `yaml:"unique"`
	// Strict rejects inputs that are not already sorted instead of sorting them.
	Strict bool `yaml:"strict"`
	// KeepGoing skips inputs that cannot be read instead of failing the run.
	KeepGoing bool `yaml:"keepGoing"`

	Output         string `yaml:"output"`
	InputEncoding  string `yaml:"inputEncoding"`
	OutputEncoding string `yaml:"outputEncoding"`
	// InputCharset names the character set of the inputs, or "auto" to
	// detect it per input. Empty means UTF-8.
	InputCharset string `yaml:"inputCharset"`
	// Confirm asks before an existing output file is overwritten.
	Confirm bool `yaml:"confirm"`
	// Summary prints a boxed run summary to stderr.
	Summary bool `yaml:"summary"`
	// InsecureTLS skips certificate verification for http(s) inputs.
	InsecureTLS bool `yaml:"insecureTLS"`

	// Checksum names the digest printed for the output, empty for none.
	Checksum    string `yaml:"checksum"`
	MetricsFile string `yaml:"metricsFile"`

	Workers   int `yaml:"workers"`
	ChunkSize int `yaml:"chunkSize"`

	Log     LogConfig        `yaml:"log"`
	Tracing telemetry.Config `yaml:"tracing"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func defaultConfig() Config {
	return Config{
		Strategy: "lexical",
		Locale:   "und",
		Output:   "-",
		Log:      LogConfig{Level: "info"},
		Tracing:  telemetry.Config{ServiceName: "sortedmerge"},
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path. An
// empty path yields the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	defer file.Close() //nolint:errcheck

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// flagValues mirrors Config for flag binding. Only flags the user actually
// set are copied over the loaded config.
type flagValues struct {
	Config

	configPath string
}

func (f *flagValues) register(flags *pflag.FlagSet) {
	defaults := defaultConfig()

	flags.StringVarP(&f.configPath, "config", "c", "", "YAML file with default settings")
	flags.StringVarP(&f.Strategy, "strategy", "s", defaults.Strategy, "ordering: lexical, natural, numeric or collate")
	flags.StringVar(&f.Locale, "locale", defaults.Locale, "BCP 47 language tag for the collate strategy")
	flags.BoolVarP(&f.IgnoreCase, "ignore-case", "i", false, "compare lines case-insensitively")
	flags.BoolVarP(&f.Reverse, "reverse", "r", false, "produce descending output")
	flags.BoolVarP(&f.Unique, "unique", "u", false, "drop lines that compare equal to the previous line")
	flags.BoolVar(&f.Strict, "strict", false, "fail when an input is not already sorted")
	flags.BoolVar(&f.KeepGoing, "keep-going", false, "skip unreadable inputs instead of failing")
	flags.StringVarP(&f.Output, "output", "o", defaults.Output, "output path, - for stdout")
	flags.StringVar(&f.InputEncoding, "input-encoding", "", "force the input compression (default: from extension)")
	flags.StringVar(&f.OutputEncoding, "output-encoding", "", "force the output compression (default: from extension)")
	flags.StringVar(&f.InputCharset, "input-charset", "", "character set of the inputs, or auto to detect it (default: utf-8)")
	flags.BoolVar(&f.Confirm, "confirm", false, "ask before overwriting an existing output file")
	flags.BoolVar(&f.Summary, "summary", false, "print a run summary to stderr")
	flags.BoolVar(&f.InsecureTLS, "insecure", false, "skip TLS verification for http(s) inputs")
	flags.StringVar(&f.Checksum, "checksum", "", "print a digest of the uncompressed output: xxh3, xxh64 or sha256")
	flags.StringVar(&f.MetricsFile, "metrics-file", "", "write prometheus metrics to this file")
	flags.IntVar(&f.Workers, "workers", 0, "parallel sort workers (default: GOMAXPROCS)")
	flags.IntVar(&f.ChunkSize, "chunk-size", 0, "lines per parallel sort chunk (default: 4096)")
	flags.StringVar(&f.Log.Level, "log-level", defaults.Log.Level, "debug, info, warn or error")
	flags.BoolVar(&f.Log.JSON, "log-json", false, "log as JSON")
	flags.StringVar(&f.Tracing.Endpoint, "trace-endpoint", "", "export OpenTelemetry traces to this OTLP/HTTP endpoint")
	flags.StringVar(&f.Tracing.LogsEndpoint, "logs-endpoint", "", "also export logs to this OTLP/HTTP endpoint (needs tracing)")
}

// resolve loads the config file, if any, and applies the flags that were set.
func (f *flagValues) resolve(flags *pflag.FlagSet) (Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	overrides := map[string]func(){
		"strategy":        func() { cfg.Strategy = f.Strategy },
		"locale":          func() { cfg.Locale = f.Locale },
		"ignore-case":     func() { cfg.IgnoreCase = f.IgnoreCase },
		"reverse":         func() { cfg.Reverse = f.Reverse },
		"unique":          func() { cfg.Unique = f.Unique },
		"strict":          func() { cfg.Strict = f.Strict },
		"keep-going":      func() { cfg.KeepGoing = f.KeepGoing },
		"output":          func() { cfg.Output = f.Output },
		"input-encoding":  func() { cfg.InputEncoding = f.InputEncoding },
		"output-encoding": func() { cfg.OutputEncoding = f.OutputEncoding },
		"input-charset":   func() { cfg.InputCharset = f.InputCharset },
		"confirm":         func() { cfg.Confirm = f.Confirm },
		"summary":         func() { cfg.Summary = f.Summary },
		"insecure":        func() { cfg.InsecureTLS = f.InsecureTLS },
		"checksum":        func() { cfg.Checksum = f.Checksum },
		"metrics-file":    func() { cfg.MetricsFile = f.MetricsFile },
		"workers":         func() { cfg.Workers = f.Workers },
		"chunk-size":      func() { cfg.ChunkSize = f.ChunkSize },
		"log-level":       func() { cfg.Log.Level = f.Log.Level },
		"log-json":        func() { cfg.Log.JSON = f.Log.JSON },
		"logs-endpoint":   func() { cfg.Tracing.LogsEndpoint = f.Tracing.LogsEndpoint },
		"trace-endpoint": func() {
			cfg.Tracing.Endpoint = f.Tracing.Endpoint
			cfg.Tracing.Enabled = f.Tracing.Endpoint != ""
		},
	}

	flags.Visit(func(flag *pflag.Flag) {
		if apply, ok := overrides[flag.Name]; ok {
			apply()
		}
	})

	return cfg, nil
}
