// Package config loads matching defaults from a project directory and
// turns them into explicit hooks for packages process and batch.
//
// Nothing in the scoring packages reads configuration on its own; a
// caller loads a Config and passes the built processor and scorers.
package config

import (
	"os"
	"path/filepath"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
	"github.com/standardbeagle/fuzzymatch/pkg/batch"
	"github.com/standardbeagle/fuzzymatch/pkg/fuzz"
	"github.com/standardbeagle/fuzzymatch/pkg/normalize"
	"github.com/standardbeagle/fuzzymatch/pkg/process"
)

// Configuration file names, in lookup order.
const (
	KDLFileName  = ".fuzzymatch.kdl"
	TOMLFileName = "fuzzymatch.toml"
)

// Unicode normal forms accepted by Processing.Unicode.
const (
	UnicodeNone  = ""
	UnicodeNFC   = "nfc"
	UnicodeNFKC  = "nfkc"
	UnicodeNFD   = "nfd"
	UnicodeNFKD  = "nfkd"
	UnicodeASCII = "ascii"
)

// Config holds the scorer, cutoff and preprocessing choices loaded from
// .fuzzymatch.kdl or fuzzymatch.toml.
type Config struct {
	Version    int        `toml:"version"`
	Extract    Extract    `toml:"extract"`
	Dedupe     Dedupe     `toml:"dedupe"`
	Processing Processing `toml:"processing"`
	Batch      Batch      `toml:"batch"`
}

// Extract configures candidate selection.
type Extract struct {
	Scorer      string `toml:"scorer"`       // Name from fuzz.ScorerNames
	ScoreCutoff int    `toml:"score_cutoff"` // 0-100
	Limit       int    `toml:"limit"`
}

// Dedupe configures duplicate removal.
type Dedupe struct {
	Scorer    string `toml:"scorer"`
	Threshold int    `toml:"threshold"` // 0-100
	Policy    string `toml:"policy"`    // "first" or "longest"
}

// Processing configures the normalizer applied to queries and choices.
type Processing struct {
	FullProcess    bool     `toml:"full_process"`
	ForceASCII     bool     `toml:"force_ascii"`
	Unicode        string   `toml:"unicode"` // Normal form applied before full processing
	Stem           bool     `toml:"stem"`
	StemMinLength  int      `toml:"stem_min_length"`
	StemExclusions []string `toml:"stem_exclusions"`
}

// Batch configures concurrent extraction.
type Batch struct {
	Workers int `toml:"workers"` // 0 = auto-detect (NumCPU-1)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Extract: Extract{
			Scorer:      fuzz.NameWRatio,
			ScoreCutoff: 0,
			Limit:       5,
		},
		Dedupe: Dedupe{
			Scorer:    fuzz.NameTokenSetRatio,
			Threshold: process.DefaultDedupeThreshold,
			Policy:    process.KeepLongest.String(),
		},
		Processing: Processing{
			FullProcess:   true,
			ForceASCII:    false,
			StemMinLength: normalize.DefaultStemMinLength,
		},
		Batch: Batch{
			Workers: batch.DefaultWorkers(),
		},
	}
}

// Load reads .fuzzymatch.kdl from dir, falling back to fuzzymatch.toml
// and then to Default. The result is validated before it is returned.
func Load(dir string) (*Config, error) {
	cfg, err := LoadKDL(dir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		if cfg, err = LoadTOML(dir); err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		debug.LogConfig("no configuration file in %s, using defaults\n", dir)
		cfg = Default()
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readIfExists returns nil content without error when path does not exist.
func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func configPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// Normalizer builds the preprocessing chain: Unicode form, full
// processing, then stemming. It returns normalize.Passthrough when every
// step is disabled.
func (c *Config) Normalizer() (normalize.Normalizer, error) {
	var steps []normalize.Normalizer

	if form := unicodeForm(c.Processing.Unicode); form != nil {
		steps = append(steps, form)
	}
	if c.Processing.FullProcess {
		steps = append(steps, normalize.Processor(c.Processing.ForceASCII))
	}
	if c.Processing.Stem {
		stemmer, err := normalize.NewStemmer(c.Processing.StemMinLength, c.Processing.StemExclusions...)
		if err != nil {
			return nil, err
		}
		steps = append(steps, stemmer)
	}

	switch len(steps) {
	case 0:
		return normalize.Passthrough, nil
	case 1:
		return steps[0], nil
	default:
		return normalize.Compose(steps...), nil
	}
}

// Processor returns the Normalizer as a process.Processor.
func (c *Config) Processor() (process.Processor, error) {
	n, err := c.Normalizer()
	if err != nil {
		return nil, err
	}
	return n.Normalize, nil
}

// ExtractScorer resolves Extract.Scorer with the processing flags.
func (c *Config) ExtractScorer() (process.Scorer, error) {
	return c.scorer(c.Extract.Scorer)
}

// DedupeScorer resolves Dedupe.Scorer with the processing flags.
func (c *Config) DedupeScorer() (process.Scorer, error) {
	return c.scorer(c.Dedupe.Scorer)
}

// DedupePolicy parses Dedupe.Policy.
func (c *Config) DedupePolicy() (process.Policy, error) {
	return process.ParsePolicy(c.Dedupe.Policy)
}

// Extractor builds a batch.Extractor from the processor, extract scorer
// and worker count.
func (c *Config) Extractor() (*batch.Extractor, error) {
	processor, err := c.Processor()
	if err != nil {
		return nil, err
	}
	scorer, err := c.ExtractScorer()
	if err != nil {
		return nil, err
	}
	return batch.New(c.Batch.Workers, processor, scorer), nil
}

func (c *Config) scorer(name string) (process.Scorer, error) {
	fn, err := fuzz.ScorerWithOptions(name, fuzz.Options{
		ForceASCII:  c.Processing.ForceASCII,
		FullProcess: c.Processing.FullProcess,
	})
	if err != nil {
		return nil, err
	}
	return fn, nil
}

func unicodeForm(name string) normalize.Normalizer {
	switch name {
	case UnicodeNFC:
		return normalize.FormC
	case UnicodeNFKC:
		return normalize.FormKC
	case UnicodeNFD:
		return normalize.FormD
	case UnicodeNFKD:
		return normalize.FormKD
	case UnicodeASCII:
		return normalize.UnicodeToASCII
	default:
		return nil
	}
}
