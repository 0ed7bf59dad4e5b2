package report

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws data as a row of block characters, averaging the points
// that fall into each column when data is wider than width.
type Sparkline struct {
	data   []float64
	marks  []bool
	width  int
	color  lipgloss.Color
	accent lipgloss.Color
}

// NewSparkline creates a sparkline of the given width.
func NewSparkline(width int) *Sparkline {
	return &Sparkline{width: width, color: Cyan, accent: Red}
}

// SetData sets the data points for the sparkline.
func (s *Sparkline) SetData(data []float64) *Sparkline {
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// Mark highlights the columns holding the flagged points.
func (s *Sparkline) Mark(marks []bool) *Sparkline {
	s.marks = marks
	return s
}

// SetColor sets the color for the sparkline.
func (s *Sparkline) SetColor(c lipgloss.Color) *Sparkline {
	s.color = c
	return s
}

// View renders the sparkline.
func (s *Sparkline) View() string {
	cols, marked := s.columns()
	base := lipgloss.NewStyle().Foreground(s.color)
	hot := lipgloss.NewStyle().Foreground(s.accent)
	var b strings.Builder
	for i, c := range cols {
		if marked[i] {
			b.WriteString(hot.Render(string(c)))
			continue
		}
		b.WriteString(base.Render(string(c)))
	}
	return b.String()
}

// columns buckets the data into at most width columns.
func (s *Sparkline) columns() ([]rune, []bool) {
	n := len(s.data)
	if n == 0 || s.width <= 0 {
		return []rune(strings.Repeat("▁", max(s.width, 0))), make([]bool, max(s.width, 0))
	}
	w := min(n, s.width)
	vals := make([]float64, w)
	marked := make([]bool, w)
	for col := 0; col < w; col++ {
		lo, hi := col*n/w, (col+1)*n/w
		sum, cnt := 0.0, 0
		for i := lo; i < hi; i++ {
			if i < len(s.marks) && s.marks[i] {
				marked[col] = true
			}
			if math.IsNaN(s.data[i]) {
				continue
			}
			sum += s.data[i]
			cnt++
		}
		vals[col] = math.NaN()
		if cnt > 0 {
			vals[col] = sum / float64(cnt)
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]rune, w)
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
			out[i] = ' '
		case hi == lo:
			out[i] = '▄'
		default:
			idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkChars)-1)))
			out[i] = sparkChars[idx]
		}
	}
	return out, marked
}
