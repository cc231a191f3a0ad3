package config

import (
	"fmt"
	"strconv"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
	"github.com/standardbeagle/fuzzymatch/internal/version"
	fmerrors "github.com/standardbeagle/fuzzymatch/internal/errors"
	"github.com/standardbeagle/fuzzymatch/pkg/batch"
	"github.com/standardbeagle/fuzzymatch/pkg/fuzz"
	"github.com/standardbeagle/fuzzymatch/pkg/normalize"
	"github.com/standardbeagle/fuzzymatch/pkg/process"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults fills unset fields and then checks every
// section, reporting all problems at once.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setSmartDefaults(cfg)

	var errs []error
	if !version.SupportsConfig(cfg.Version) {
		errs = append(errs, fmerrors.NewConfigError("version", strconv.Itoa(cfg.Version),
			fmt.Errorf("%w: this build reads config version %d", fmerrors.ErrOutOfRange, version.ConfigVersion)))
	}
	errs = append(errs, v.validateExtractConfig(&cfg.Extract)...)
	errs = append(errs, v.validateDedupeConfig(&cfg.Dedupe)...)
	errs = append(errs, v.validateProcessingConfig(&cfg.Processing)...)
	errs = append(errs, v.validateBatchConfig(&cfg.Batch)...)

	return fmerrors.NewMultiError(errs).ErrorOrNil()
}

func (v *Validator) validateExtractConfig(extract *Extract) []error {
	var errs []error
	if _, err := fuzz.ScorerByName(extract.Scorer); err != nil {
		errs = append(errs, fmerrors.NewConfigError("extract.scorer", extract.Scorer, err))
	}
	if err := checkScore(extract.ScoreCutoff); err != nil {
		errs = append(errs, fmerrors.NewConfigError("extract.score_cutoff", strconv.Itoa(extract.ScoreCutoff), err))
	}
	if extract.Limit < 0 {
		errs = append(errs, fmerrors.NewConfigError("extract.limit", strconv.Itoa(extract.Limit),
			fmt.Errorf("%w: limit cannot be negative", fmerrors.ErrOutOfRange)))
	}
	return errs
}

func (v *Validator) validateDedupeConfig(dedupe *Dedupe) []error {
	var errs []error
	if _, err := fuzz.ScorerByName(dedupe.Scorer); err != nil {
		errs = append(errs, fmerrors.NewConfigError("dedupe.scorer", dedupe.Scorer, err))
	}
	if err := checkScore(dedupe.Threshold); err != nil {
		errs = append(errs, fmerrors.NewConfigError("dedupe.threshold", strconv.Itoa(dedupe.Threshold), err))
	}
	if _, err := process.ParsePolicy(dedupe.Policy); err != nil {
		errs = append(errs, fmerrors.NewConfigError("dedupe.policy", dedupe.Policy, err))
	}
	return errs
}

func (v *Validator) validateProcessingConfig(processing *Processing) []error {
	var errs []error
	if processing.Unicode != UnicodeNone && unicodeForm(processing.Unicode) == nil {
		errs = append(errs, fmerrors.NewConfigError("processing.unicode", processing.Unicode,
			fmt.Errorf("unknown normal form, expected one of nfc, nfkc, nfd, nfkd, ascii")))
	}
	if processing.StemMinLength < 0 {
		errs = append(errs, fmerrors.NewConfigError("processing.stem_min_length", strconv.Itoa(processing.StemMinLength),
			fmt.Errorf("%w: stem_min_length cannot be negative", fmerrors.ErrOutOfRange)))
	}
	return errs
}

func (v *Validator) validateBatchConfig(b *Batch) []error {
	if b.Workers < 0 {
		return []error{fmerrors.NewConfigError("batch.workers", strconv.Itoa(b.Workers),
			fmt.Errorf("%w: workers cannot be negative", fmerrors.ErrOutOfRange))}
	}
	return nil
}

// setSmartDefaults fills fields left empty or zero by a partial file
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if cfg.Extract.Scorer == "" {
		cfg.Extract.Scorer = fuzz.NameWRatio
	}

	if cfg.Dedupe.Scorer == "" {
		cfg.Dedupe.Scorer = fuzz.NameTokenSetRatio
	}

	if cfg.Dedupe.Policy == "" {
		cfg.Dedupe.Policy = process.KeepLongest.String()
	}

	if cfg.Processing.Stem && cfg.Processing.StemMinLength == 0 {
		cfg.Processing.StemMinLength = normalize.DefaultStemMinLength
	}

	// 0 workers means auto-detect
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = batch.DefaultWorkers()
		debug.LogConfig("batch.workers auto-detected as %d\n", cfg.Batch.Workers)
	}
}

func checkScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: %d is outside 0-100", fmerrors.ErrOutOfRange, score)
	}
	return nil
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	validator := NewValidator()
	return validator.ValidateAndSetDefaults(cfg)
}
