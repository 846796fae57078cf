package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/nao1215/weaponstats/internal/model"
)

// DefaultTitle is the banner printed at the top of a text report.
const DefaultTitle = "ELDEN RING WEAPON ANALYSIS"

// separatorWidth is the width of the "=" line between sections.
const separatorWidth = 40

// SimpleWriter outputs plain text reports.
// Each section has a labeled header; sections are separated by a line of "=".
type SimpleWriter struct {
	baseWriter

	// title is printed as "--- <title> ---" above the first section.
	title string
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTitle sets the banner title.
func WithTitle(title string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.title = title
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		title:      DefaultTitle,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in plain text.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- %s ---\n\n", w.title))

	if err := w.writeDistribution(&sb, report); err != nil {
		return 0, err
	}
	w.writeSeparator(&sb)

	if err := w.writeRanking(&sb, report.TopPhysical, report.Limit); err != nil {
		return 0, err
	}
	w.writeSeparator(&sb)

	if err := w.writeRanking(&sb, report.Heaviest, report.Limit); err != nil {
		return 0, err
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteRanking outputs a single ranking in plain text.
func (w *SimpleWriter) WriteRanking(ranking model.Ranking) (int, error) {
	var sb strings.Builder
	if err := w.writeRanking(&sb, ranking, len(ranking.Entries)); err != nil {
		return 0, err
	}
	return w.output.Write([]byte(sb.String()))
}

// writeDistribution writes the category distribution section.
func (w *SimpleWriter) writeDistribution(sb *strings.Builder, report *model.Report) error {
	d := report.Distribution
	sb.WriteString(fmt.Sprintf("Total Weapons: %d\n", d.Total))
	sb.WriteString(fmt.Sprintf("Unique Weapon Types: %d\n", d.Unique))
	sb.WriteString("Most Common Types:\n")

	return renderTable(sb, []string{"Type", "Count"}, typeRows(d.MostCommon(report.Limit)))
}

// writeRanking writes a ranking section with Name, Type and the metric column.
func (w *SimpleWriter) writeRanking(sb *strings.Builder, ranking model.Ranking, limit int) error {
	sb.WriteString(rankingTitle(ranking, limit))
	sb.WriteString(":\n")

	return renderTable(sb, []string{"Name", "Type", ranking.Metric}, rankingRows(ranking))
}

// writeSeparator writes the visual break between sections.
func (w *SimpleWriter) writeSeparator(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", separatorWidth))
	sb.WriteString("\n\n")
}

// renderTable renders an aligned table into sb.
// Header cells are printed verbatim so column names like Phy_Attack survive.
func renderTable(sb *strings.Builder, header []string, rows [][]string) error {
	table := tablewriter.NewTable(sb, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header(toCells(header)...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// toCells converts strings to the variadic cell form tablewriter expects.
func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
