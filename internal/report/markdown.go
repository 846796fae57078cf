package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/weaponstats/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeDistribution(md, report)
	w.writeRanking(md, report.TopPhysical, report.Limit)
	w.writeRanking(md, report.Heaviest, report.Limit)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteRanking outputs a single ranking in Markdown format.
func (w *MarkdownWriter) WriteRanking(ranking model.Ranking) (int, error) {
	md := markdown.NewMarkdown(w.output)
	w.writeRanking(md, ranking, len(ranking.Entries))
	return len(md.String()), md.Build()
}

// writeHeader writes the report title and source information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Elden Ring Weapon Analysis")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Total Weapons", strconv.Itoa(report.Distribution.Total)},
			{"Unique Weapon Types", strconv.Itoa(report.Distribution.Unique)},
		},
	})
	md.PlainText("")
}

// writeDistribution writes the most common types and a pie chart of them.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, report *model.Report) {
	md.H2("Most Common Types")
	md.PlainText("")

	counts := report.Distribution.MostCommon(report.Limit)
	if len(counts) == 0 {
		md.Note("The data file has no weapons.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: []string{"Type", "Count"},
		Rows:   typeRows(counts),
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Weapon Types"),
		piechart.WithShowData(true),
	)
	for _, c := range counts {
		chart.LabelAndIntValue(c.Type, uint64(c.Count)) //nolint:gosec // counts are never negative
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRanking writes one ranking table.
func (w *MarkdownWriter) writeRanking(md *markdown.Markdown, ranking model.Ranking, limit int) {
	md.H2(rankingTitle(ranking, limit))
	md.PlainText("")

	if len(ranking.Entries) == 0 {
		md.Note("No weapons to rank.")
		md.PlainText("")
		return
	}

	md.Table(markdown.TableSet{
		Header: []string{"Name", "Type", ranking.Metric},
		Rows:   rankingRows(ranking),
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("*Generated by weaponstats*")
}
