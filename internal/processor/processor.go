// Package processor runs decode cases and writes their reports.
package processor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sicxedecode/internal/batch"
	"github.com/retroenv/sicxedecode/internal/config"
	"github.com/retroenv/sicxedecode/internal/options"
	"github.com/retroenv/sicxedecode/internal/prompt"
	"github.com/retroenv/sicxedecode/internal/report"
	"github.com/retroenv/sicxedecode/internal/sicxe"
	"github.com/retroenv/sicxedecode/internal/translate"
)

// ErrCasesFailed is returned when at least one case could not be decoded.
var ErrCasesFailed = errors.New("decoding failed")

// Processor decodes cases with a shared decoder and writes their reports.
type Processor struct {
	logger     *log.Logger
	decoder    *sicxe.Decoder
	registers  sicxe.Registers
	report     *report.Writer
	translator *translate.Translator
	output     io.Writer
}

// New creates a processor for the given options. The machine profile is
// loaded once and the register defaults are resolved here, the decoder
// itself never applies defaults.
func New(logger *log.Logger, opts options.Program, output io.Writer) (*Processor, error) {
	profile := config.DefaultProfile()
	if opts.Profile != "" {
		var err error
		profile, err = config.LoadProfile(opts.Profile)
		if err != nil {
			return nil, fmt.Errorf("loading machine profile: %w", err)
		}
		logger.Debug("Loaded machine profile",
			log.String("file", opts.Profile),
			log.Int("opcodes", len(profile.Opcodes)),
			log.Int("memory", len(profile.Memory)))
	}

	var translator *translate.Translator
	if opts.Language != "" {
		translator = translate.New(opts.Language)
	} else {
		translator = translate.System(logger)
	}

	return &Processor{
		logger:     logger,
		decoder:    sicxe.New(logger, profile.Opcodes, profile.Memory),
		registers:  opts.Overrides.Apply(profile.Registers),
		report:     report.New(output, translator),
		translator: translator,
		output:     output,
	}, nil
}

// GetCasesToProcess returns the list of cases to decode based on options.
func GetCasesToProcess(opts options.Program) ([]batch.Case, error) {
	var cases []batch.Case
	if opts.Batch != "" {
		loaded, err := batch.LoadFile(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("loading batch file: %w", err)
		}
		cases = append(cases, loaded...)
	}
	for _, code := range opts.Codes {
		cases = append(cases, batch.Case{Hex: code})
	}
	return cases, nil
}

// Run decodes all cases in order. A failing case does not stop the
// processing of the following cases, ErrCasesFailed is returned at the end
// if any case failed.
func (p *Processor) Run(cases []batch.Case) error {
	var failed int
	for i, c := range cases {
		if len(cases) > 1 {
			if err := p.report.WriteHeader(i+1, c.Hex); err != nil {
				return err
			}
		}

		if err := p.ProcessCase(c); err != nil {
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				return err
			}
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", ErrCasesFailed, failed, len(cases))
	}
	return nil
}

// DecodeError is returned by ProcessCase when the hex code could not be decoded.
type DecodeError struct {
	Hex string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding '%s': %v", e.Hex, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ProcessCase decodes a single case and writes its report. Decode failures
// are written to the report output and returned as DecodeError.
func (p *Processor) ProcessCase(c batch.Case) error {
	hex := strings.TrimSpace(c.Hex)
	ins, err := p.decoder.Decode(hex, c.Registers(p.registers))
	if err != nil {
		p.logger.Debug("Decoding instruction failed", log.String("hex", hex), log.Err(err))
		if writeErr := p.report.WriteError(hex, err); writeErr != nil {
			return writeErr
		}
		return &DecodeError{Hex: hex, Err: err}
	}

	if ins.Unresolved != nil {
		p.logger.Warn("Target address not resolved",
			log.String("hex", ins.Hex),
			log.String("reason", ins.Unresolved.Error()))
	}

	if err := p.report.Write(ins); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Interactive reads hex codes from input until EOF and decodes each of them.
// Decode failures are reported and the loop continues.
func (p *Processor) Interactive(input io.Reader) error {
	pr := prompt.New(input, p.output, p.translator.Sprintf("Hex code: "))
	for {
		line, err := pr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading hex code: %w", err)
		}

		if _, err := fmt.Fprintln(p.output); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		err = p.ProcessCase(batch.Case{Hex: line})
		var decodeErr *DecodeError
		if err != nil && !errors.As(err, &decodeErr) {
			return err
		}
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("sicxedecode", log.String("version", buildinfo.Version(version, commit, date)))
}
