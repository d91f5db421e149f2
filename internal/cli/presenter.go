package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Veraticus/getitem/internal/common"
	"github.com/Veraticus/getitem/internal/match"
	"github.com/Veraticus/getitem/internal/model"
)

// ShowMoreToken asks for the full candidate list instead of a selection.
const ShowMoreToken = "-1"

// DefaultPageSize is how many candidates the short list shows.
const DefaultPageSize = 5

// Prompts shown to the user.
const (
	QueryPrompt         = "Enter a query:"
	SelectPrompt        = "Select a match (-1 for more):"
	SelectPromptNoMore  = "Select a match:"
	pickedFormat        = "Picked: (%d) %s"
	matchesHeaderFormat = "%d matches:"
)

// CandidateResolver turns a query into candidates.
type CandidateResolver interface {
	Resolve(query string) match.Resolution
}

// Selection is a resolved pick from the candidate list.
type Selection struct {
	Key   string
	Index int
}

// Presenter runs the console side of a lookup.
type Presenter struct {
	writer     io.Writer
	reader     *LineReader
	columns    []string
	pageSize   int
	showPrefix bool
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPageSize sets how many candidates the short list shows.
func WithPageSize(n int) PresenterOption {
	return func(p *Presenter) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

// WithColumns names record fields for the labelled record box.
func WithColumns(columns []string) PresenterOption {
	return func(p *Presenter) {
		p.columns = columns
	}
}

// WithPrefixDump toggles printing the raw prefix matches.
func WithPrefixDump(enabled bool) PresenterOption {
	return func(p *Presenter) {
		p.showPrefix = enabled
	}
}

// NewPresenter creates a presenter reading from reader and writing to writer.
func NewPresenter(reader io.Reader, writer io.Writer, opts ...PresenterOption) *Presenter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	p := &Presenter{
		writer:     writer,
		reader:     NewLineReader(reader),
		pageSize:   DefaultPageSize,
		showPrefix: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one full lookup: query, candidates, selection, record.
// A non-empty query skips the first prompt.
func (p *Presenter) Run(ctx context.Context, catalog *model.Catalog, resolver CandidateResolver, query string) (model.Record, error) {
	if query == "" {
		var err error
		query, err = p.PromptQuery(ctx)
		if err != nil {
			return model.Record{}, err
		}
	}

	res := resolver.Resolve(query)

	if p.showPrefix {
		if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render(fmt.Sprintf("%q", res.Prefix))); err != nil {
			return model.Record{}, fmt.Errorf("failed to write prefix matches: %w", err)
		}
	}

	if err := p.PresentShortList(res.Candidates); err != nil {
		return model.Record{}, err
	}
	if len(res.Candidates) == 0 {
		return model.Record{}, common.NewUserError("No matches found", common.ErrNoCandidates)
	}

	sel, err := p.PromptSelection(ctx, res.Candidates)
	if err != nil {
		return model.Record{}, err
	}

	return p.PrintSelected(sel, catalog)
}

// PromptQuery asks for the free-text query.
func (p *Presenter) PromptQuery(ctx context.Context) (string, error) {
	return p.prompt(ctx, QueryPrompt)
}

// PresentShortList prints the candidate count and the first page.
func (p *Presenter) PresentShortList(candidates []string) error {
	if _, err := fmt.Fprintf(p.writer, matchesHeaderFormat+"\n", len(candidates)); err != nil {
		return fmt.Errorf("failed to write match count: %w", err)
	}
	return p.writeCandidates(candidates[:min(p.pageSize, len(candidates))])
}

// PresentFullList prints every candidate.
func (p *Presenter) PresentFullList(candidates []string) error {
	return p.writeCandidates(candidates)
}

func (p *Presenter) writeCandidates(candidates []string) error {
	for i, key := range candidates {
		if _, err := fmt.Fprintln(p.writer, FormatCandidate(i+1, key)); err != nil {
			return fmt.Errorf("failed to write candidate: %w", err)
		}
	}
	return nil
}

// PromptSelection reads a pick from the user. ShowMoreToken prints the full
// list first. Invalid input is reported and asked for again until a valid
// pick is made or input runs out, in which case the last selection error is
// returned.
func (p *Presenter) PromptSelection(ctx context.Context, candidates []string) (Selection, error) {
	input, err := p.prompt(ctx, SelectPrompt)
	if err != nil {
		return Selection{}, err
	}

	var lastErr error
	for {
		if input == ShowMoreToken {
			if err := p.PresentFullList(candidates); err != nil {
				return Selection{}, err
			}
		} else {
			sel, err := ResolveSelection(input, candidates)
			if err == nil {
				slog.Debug("Selection resolved", "index", sel.Index, "key", sel.Key)
				return sel, nil
			}
			lastErr = err
			if _, werr := fmt.Fprintln(p.writer, FormatError(common.UserMessage(err))); werr != nil {
				slog.Warn("Failed to write selection error", "error", werr)
			}
		}

		input, err = p.prompt(ctx, SelectPromptNoMore)
		if err != nil {
			if errors.Is(err, io.EOF) && lastErr != nil {
				return Selection{}, lastErr
			}
			return Selection{}, err
		}
	}
}

// ResolveSelection maps 1-based input onto candidates.
func ResolveSelection(input string, candidates []string) (Selection, error) {
	trimmed := strings.TrimSpace(input)

	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return Selection{}, common.NewUserError(
			fmt.Sprintf("%q is not a number", trimmed),
			fmt.Errorf("%w: %w", common.ErrInvalidSelection, err))
	}
	if index < 1 || index > len(candidates) {
		return Selection{}, common.NewUserError(
			fmt.Sprintf("Selection %d is out of range (1-%d)", index, len(candidates)),
			fmt.Errorf("%w: index %d", common.ErrInvalidSelection, index))
	}

	return Selection{Index: index, Key: candidates[index-1]}, nil
}

// PrintSelected announces the pick and prints the first record carrying its
// key. When no record carries the key, a not-found message is printed and
// common.ErrNoMatch is returned.
func (p *Presenter) PrintSelected(sel Selection, catalog *model.Catalog) (model.Record, error) {
	picked := fmt.Sprintf(pickedFormat, sel.Index, model.DisplayKey(sel.Key))
	if _, err := fmt.Fprintln(p.writer, SuccessStyle.Render(picked)); err != nil {
		return model.Record{}, fmt.Errorf("failed to write selection: %w", err)
	}

	record, ok := catalog.Lookup(sel.Key)
	if !ok {
		err := common.NewUserError(fmt.Sprintf("No record found for %q", sel.Key), common.ErrNoMatch)
		if _, werr := fmt.Fprintln(p.writer, FormatWarning(common.UserMessage(err))); werr != nil {
			slog.Warn("Failed to write not-found message", "error", werr)
		}
		return model.Record{}, err
	}

	if _, err := fmt.Fprintln(p.writer, record.String()); err != nil {
		return model.Record{}, fmt.Errorf("failed to write record: %w", err)
	}

	if len(p.columns) > 0 {
		box := RenderBox(model.DisplayKey(sel.Key), RenderFields(p.columns, record.Fields))
		if _, err := fmt.Fprintln(p.writer, box); err != nil {
			return model.Record{}, fmt.Errorf("failed to write record box: %w", err)
		}
	}

	slog.Debug("Record printed", "key", sel.Key, "line", record.Line)
	return record, nil
}

func (p *Presenter) prompt(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(label)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input terminated: %w", err)
		}
		return "", err
	}
	return line, nil
}
