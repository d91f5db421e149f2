// Package catalog loads delimited item records into an in-memory catalog.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/model"
)

// DefaultDelimiter separates fields on a line.
const DefaultDelimiter = ","

// Options controls how catalog lines are parsed.
type Options struct {
	// Progress, when set, receives the number of bytes consumed per line.
	Progress   func(n int)
	Delimiter  string
	KeyField   int
	SkipHeader bool
}

// DefaultOptions returns comma-separated parsing with the key in field 1.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		KeyField:  model.DefaultKeyField,
	}
}

// LineError describes a line that could not be turned into a record.
type LineError struct {
	Err  error
	Text string
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of a load: the catalog plus the lines that were
// skipped because they were malformed.
type LoadResult struct {
	Catalog *model.Catalog
	Skipped []*LineError
}

// LoadFile opens path and loads it with opts.
func LoadFile(path string, opts Options) (*LoadResult, error) {
	f, err := os.Open(path) //nolint:gosec // catalog path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			common.LogError(cerr, "Failed to close catalog file", common.Fields{"path": path})
		}
	}()

	result, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return result, nil
}

// Load reads every line from r. Malformed lines are skipped and reported in
// the result rather than failing the load.
func Load(r io.Reader, opts Options) (*LoadResult, error) {
	if r == nil {
		return nil, errors.New("reader cannot be nil")
	}
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}
	if opts.KeyField < 0 {
		return nil, fmt.Errorf("%w: key field must be non-negative, got %d", common.ErrInvalidConfig, opts.KeyField)
	}

	reader := bufio.NewReader(r)
	var (
		records []model.Record
		skipped []*LineError
		lineNo  int
	)

	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
		if raw == "" && errors.Is(err, io.EOF) {
			break
		}

		lineNo++
		if opts.Progress != nil {
			opts.Progress(len(raw))
		}

		line := trimTerminator(raw)
		switch {
		case lineNo == 1 && opts.SkipHeader:
		case strings.TrimSpace(line) == "":
		default:
			rec := model.Record{
				Fields: strings.Split(line, opts.Delimiter),
				Line:   lineNo,
			}
			if verr := rec.Validate(opts.KeyField); verr != nil {
				lineErr := &LineError{
					Line: lineNo,
					Text: line,
					Err:  fmt.Errorf("%w: %w", common.ErrMalformedLine, verr),
				}
				skipped = append(skipped, lineErr)
				common.LogWarn("Skipping malformed catalog line", common.Fields{
					"line":  lineNo,
					"error": verr.Error(),
				})
				break
			}
			records = append(records, rec)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	slog.Debug("Catalog loaded", "records", len(records), "skipped", len(skipped))

	return &LoadResult{
		Catalog: model.NewCatalog(records, opts.KeyField),
		Skipped: skipped,
	}, nil
}

// ParseDelimiter accepts a literal delimiter or one of the names "tab",
// "comma", "semicolon", "pipe", and the escape `\t`.
func ParseDelimiter(s string) (string, error) {
	switch strings.ToLower(s) {
	case "":
		return DefaultDelimiter, nil
	case "tab", `\t`:
		return "\t", nil
	case "comma":
		return ",", nil
	case "semicolon":
		return ";", nil
	case "pipe":
		return "|", nil
	}
	if strings.ContainsAny(s, "\r\n") {
		return "", fmt.Errorf("%w: delimiter cannot contain a line break", common.ErrInvalidConfig)
	}
	return s, nil
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
