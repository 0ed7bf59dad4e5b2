// Package prompt reads comparison requests from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"PriceLens/internal/compare"
	"PriceLens/internal/fx"
	"PriceLens/internal/model"
	"PriceLens/internal/report"
)

// Prompter asks for series indices on an interactive stream.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, logger: logger}
}

// ReadIndex asks for one index of a series of length n. The bound is shown
// but not enforced here.
func (p *Prompter) ReadIndex(label string, n int) (int, error) {
	fmt.Fprintf(p.out, "Enter the index of the %s date to compare (0 to %d): ", label, n-1)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, err
	}
	return compare.ParseIndex(line)
}

// CompareOnce runs one comparison round: it reads two indices, compares
// the points and prints the result. Bad operator input is printed and
// swallowed, only I/O failures are returned.
func (p *Prompter) CompareOnce(series model.PriceSeries, conv fx.Converter) error {
	fmt.Fprintln(p.out)
	idx1, err := p.ReadIndex("first", series.Len())
	if err != nil {
		return p.reject(err)
	}
	idx2, err := p.ReadIndex("second", series.Len())
	if err != nil {
		return p.reject(err)
	}

	res, err := compare.Compare(series, idx1, idx2, conv)
	if err != nil {
		return p.reject(err)
	}
	p.logger.Debug("points compared", zap.Int("idx1", idx1), zap.Int("idx2", idx2))
	_, err = fmt.Fprintf(p.out, "\n%s", report.FormatComparison(res))
	return err
}

func (p *Prompter) reject(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		fmt.Fprintln(p.out, "\nInvalid input: please enter whole numbers for the indices.")
	case errors.Is(err, model.ErrIndexOutOfRange):
		fmt.Fprintf(p.out, "\nError: %v\n", err)
	case errors.Is(err, io.EOF):
		fmt.Fprintln(p.out, "\nNo input, skipping comparison.")
	default:
		return fmt.Errorf("read index: %w", err)
	}
	p.logger.Warn("comparison rejected", zap.Error(err))
	return nil
}
