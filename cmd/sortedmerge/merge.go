package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hash"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/amp-labs/amp-sorted/bulk"
	"github.com/amp-labs/amp-sorted/charset"
	"github.com/amp-labs/amp-sorted/closer"
	"github.com/amp-labs/amp-sorted/compare"
	"github.com/amp-labs/amp-sorted/compression"
	sortederrors "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/hashing"
	"github.com/amp-labs/amp-sorted/http/transport"
	"github.com/amp-labs/amp-sorted/logger"
	"github.com/amp-labs/amp-sorted/metrics"
	"github.com/amp-labs/amp-sorted/ordering"
	"github.com/amp-labs/amp-sorted/sorted"
	"github.com/amp-labs/amp-sorted/telemetry"
	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"
)

const maxLineLength = 16 << 20

// errOverwriteDeclined is returned when the user refuses to replace the output.
var errOverwriteDeclined = errors.New("overwrite declined")

// summary describes a finished run.
type summary struct {
	Inputs    int
	Presorted int
	Resorted  int
	Skipped   int
	Lines     int
	Dropped   int
	Checksum  string
	Stats     sorted.Stats
}

// String renders the summary one field per line.
func (s summary) String() string {
	var out strings.Builder

	fmt.Fprintf(&out, "inputs: %d (presorted %d, resorted %d, skipped %d)\n",
		s.Inputs, s.Presorted, s.Resorted, s.Skipped)
	fmt.Fprintf(&out, "lines: %s (dropped %s)\n", humanize.Comma(int64(s.Lines)), humanize.Comma(int64(s.Dropped)))
	fmt.Fprintf(&out, "comparisons: %s\nmoves: %s",
		humanize.Comma(int64(s.Stats.Comparisons)), humanize.Comma(int64(s.Stats.Moves))) //nolint:gosec

	if s.Checksum != "" {
		fmt.Fprintf(&out, "\nchecksum: %s", s.Checksum)
	}

	return out.String()
}

// merger runs one merge of line files.
type merger struct {
	cfg      Config
	strategy ordering.Strategy[string]
	inputEnc compression.Encoding

	client *http.Client

	// Stand-ins for stdin and stdout when an input or the output is "-".
	stdin  io.Reader
	stdout io.Writer

	// confirm asks a yes/no question; it is consulted when cfg.Confirm is set.
	confirm func(label string) (bool, error)
}

func newMerger(cfg Config) (*merger, error) {
	strategy, err := resolveStrategy(cfg)
	if err != nil {
		return nil, err
	}

	inputEnc, err := compression.ParseEncoding(cfg.InputEncoding)
	if err != nil {
		return nil, err
	}

	if _, err := compression.ParseEncoding(cfg.OutputEncoding); err != nil {
		return nil, err
	}

	if _, _, err := charset.NewReader(strings.NewReader(""), cfg.InputCharset); err != nil {
		return nil, err
	}

	if cfg.Checksum != "" {
		if _, err := hashing.ParseAlgorithm(cfg.Checksum); err != nil {
			return nil, err
		}
	}

	return &merger{
		cfg:      cfg,
		strategy: strategy,
		inputEnc: inputEnc,
		client:   transport.NewClient(transport.Options{InsecureTLS: cfg.InsecureTLS}),
	}, nil
}

// run merges the inputs into cfg.Output. With no inputs it reads stdin.
func (m *merger) run(ctx context.Context, inputs []string) (result summary, err error) {
	if len(inputs) == 0 {
		inputs = []string{compression.Stdio}
	}

	ctx, span := telemetry.Start(ctx, "sortedmerge.run",
		attribute.Int("inputs", len(inputs)),
		attribute.String("strategy", m.cfg.Strategy))
	defer func() { telemetry.End(span, err) }()

	if err := m.confirmOverwrite(); err != nil {
		return result, err
	}

	result = summary{Inputs: len(inputs)}
	loaded := make([]*sorted.Sequence[string], 0, len(inputs))

	var failures sortederrors.Collection

	for _, input := range inputs {
		seq, err := m.load(ctx, input, &result)
		if err != nil {
			metrics.ObserveInput(metrics.OutcomeFailed)
			failures.Add(fmt.Errorf("%s: %w", input, err))

			continue
		}

		loaded = append(loaded, seq)
	}

	if failures.HasError() {
		if !m.cfg.KeepGoing {
			return result, failures.GetError()
		}

		result.Skipped = failures.Len()

		logger.Get(ctx).Warn("skipped unreadable inputs", "count", failures.Len(), "error", failures.GetError())
	}

	// MergeAll keeps lines from earlier inputs ahead of equal lines from later ones.
	merged := sorted.New(m.strategy)
	if len(loaded) > 0 {
		merged = sorted.MergeAll(loaded...)
	}

	result.Stats = merged.Stats()
	metrics.Report("merged", merged)

	if err := m.write(ctx, merged, &result); err != nil {
		return result, err
	}

	span.SetAttributes(
		attribute.Int("lines", result.Lines),
		attribute.Int64("comparisons", int64(result.Stats.Comparisons)), //nolint:gosec
		attribute.Int64("moves", int64(result.Stats.Moves)),             //nolint:gosec
	)

	logger.Get(ctx).Info("merge complete",
		"inputs", result.Inputs,
		"presorted", result.Presorted,
		"resorted", result.Resorted,
		"skipped", result.Skipped,
		"lines", result.Lines,
		"dropped", result.Dropped,
		"comparisons", result.Stats.Comparisons,
		"moves", result.Stats.Moves)

	if m.cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(m.cfg.MetricsFile); err != nil {
			return result, fmt.Errorf("writing metrics: %w", err)
		}
	}

	return result, nil
}

// load reads one input. Sorted inputs are kept as they are; others are
// sorted in parallel unless the run is strict.
func (m *merger) load(ctx context.Context, input string, result *summary) (seq *sorted.Sequence[string], err error) {
	ctx = logger.With(ctx, "input", input)

	ctx, span := telemetry.Start(ctx, "sortedmerge.load", attribute.String("input", input))
	defer func() { telemetry.End(span, err) }()

	lines, err := m.readLines(ctx, input)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("lines", len(lines)))

	if presorted, ok := sorted.FromSorted(lines, m.strategy).Get(); ok {
		result.Presorted++
		metrics.ObserveInput(metrics.OutcomePresorted)
		logger.Get(ctx).Debug("input already sorted", "lines", len(lines))

		return presorted, nil
	}

	if m.cfg.Strict {
		index, _ := ordering.FirstUnsorted(m.strategy, lines)

		return nil, logger.AnnotateError(
			fmt.Errorf("%w: line %d sorts before line %d", sortederrors.ErrNotSorted, index+1, index),
			"input", input, "line", index+1)
	}

	seq, err = bulk.Build(ctx, lines, m.strategy,
		bulk.WithWorkers(m.cfg.Workers),
		bulk.WithChunkSize(m.cfg.ChunkSize))
	if err != nil {
		return nil, err
	}

	result.Resorted++
	metrics.ObserveInput(metrics.OutcomeResorted)
	logger.Get(ctx).Debug("input sorted", "lines", len(lines))

	return seq, nil
}

func (m *merger) readLines(ctx context.Context, input string) ([]string, error) {
	reader, err := m.open(ctx, input)
	if err != nil {
		return nil, err
	}

	defer reader.Close() //nolint:errcheck

	text, name, err := charset.NewReader(reader, m.cfg.InputCharset)
	if err != nil {
		return nil, err
	}

	if name != charset.UTF8 {
		logger.Get(ctx).Debug("decoding input", "charset", name)
	}

	var lines []string

	scanner := bufio.NewScanner(text)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineLength)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, logger.AnnotateError(fmt.Errorf("reading: %w", err), "input", input, "line", len(lines)+1)
	}

	return lines, nil
}

// open returns the decompressed contents of input, which is a file path, an
// http(s) URL or "-". Without an explicit input encoding the compression is
// taken from the file or URL path extension.
func (m *merger) open(ctx context.Context, input string) (io.ReadCloser, error) {
	switch {
	case input == compression.Stdio && m.stdin != nil:
		return compression.NewReader(m.stdin, m.inputEnc)
	case transport.IsRemote(input):
		return m.openRemote(ctx, input)
	default:
		return compression.Open(input, m.inputEnc)
	}
}

func (m *merger) openRemote(ctx context.Context, input string) (io.ReadCloser, error) {
	enc := m.inputEnc
	if enc == "" {
		parsed, err := url.Parse(input)
		if err != nil {
			return nil, err
		}

		enc = compression.Detect(parsed.Path)
	}

	body, err := transport.Open(ctx, m.client, input)
	if err != nil {
		return nil, err
	}

	decoded, err := compression.NewReader(body, enc)
	if err != nil {
		_ = body.Close()

		return nil, err
	}

	return closer.ReadCloser(decoded, closer.NewCloser(decoded, body)), nil
}

// confirmOverwrite asks before replacing an existing output file.
func (m *merger) confirmOverwrite() error {
	if !m.cfg.Confirm || m.confirm == nil || m.cfg.Output == compression.Stdio {
		return nil
	}

	if _, err := os.Stat(m.cfg.Output); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	ok, err := m.confirm(fmt.Sprintf("Overwrite %s", m.cfg.Output))
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%s: %w", m.cfg.Output, errOverwriteDeclined)
	}

	return nil
}

// write streams merged to the output, dropping equal neighbours when
// cfg.Unique is set, and fills in the line counts and checksum.
func (m *merger) write(ctx context.Context, merged *sorted.Sequence[string], result *summary) (err error) {
	_, span := telemetry.Start(ctx, "sortedmerge.write", attribute.String("output", m.cfg.Output))
	defer func() { telemetry.End(span, err) }()

	outputEnc, err := compression.ParseEncoding(m.cfg.OutputEncoding)
	if err != nil {
		return err
	}

	var out io.WriteCloser
	if m.cfg.Output == compression.Stdio && m.stdout != nil {
		out, err = compression.NewWriter(m.stdout, outputEnc)
	} else {
		out, err = compression.Create(m.cfg.Output, outputEnc)
	}

	if err != nil {
		return err
	}

	closeOut := closer.CloseOnce(out)
	defer closeOut.Close() //nolint:errcheck

	var (
		digest hash.Hash
		dst    io.Writer = out
	)

	if m.cfg.Checksum != "" {
		alg, err := hashing.ParseAlgorithm(m.cfg.Checksum)
		if err != nil {
			return err
		}

		if digest, err = hashing.New(alg); err != nil {
			return err
		}

		dst = io.MultiWriter(out, digest)
	}

	writer := bufio.NewWriter(dst)

	var previous string

	for i, line := range merged.All() {
		if m.cfg.Unique && i > 0 && m.strategy.Compare(previous, line) == compare.Same {
			result.Dropped++

			continue
		}

		previous = line
		result.Lines++

		if _, err := writer.WriteString(line); err != nil {
			return err
		}

		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if err := closeOut.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if digest != nil {
		result.Checksum = hashing.Digest(digest)
	}

	return nil
}
