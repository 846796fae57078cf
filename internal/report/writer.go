package report

import (
	"io"
	"strconv"

	"github.com/nao1215/weaponstats/internal/model"
)

// Writer defines the interface for report output.
// Implementations write analysis results in various formats.
type Writer interface {
	// Write outputs the full report: distribution and both rankings.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)

	// WriteRanking outputs a single ranking.
	WriteRanking(ranking model.Ranking) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// formatNumber prints v without trailing zeros ("12.5", "141").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rankingTitle returns the section title of a ranking.
func rankingTitle(r model.Ranking, limit int) string {
	switch r.Metric {
	case "Phy_Attack":
		return "TOP " + strconv.Itoa(limit) + " WEAPONS BY PHYSICAL DAMAGE"
	case "Wgt":
		return "HEAVIEST WEAPONS"
	default:
		return "TOP " + strconv.Itoa(limit) + " WEAPONS BY " + r.Metric
	}
}

// rankingRows converts ranking entries into table rows of Name, Type and value.
func rankingRows(r model.Ranking) [][]string {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{e.Name, e.Type, formatNumber(e.Value)}
	}
	return rows
}

// typeRows converts type counts into table rows.
func typeRows(counts []model.TypeCount) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Type, strconv.Itoa(c.Count)}
	}
	return rows
}
