// Package report renders analysis results.
//
// Writers implement one output format each:
//   - SimpleWriter: aligned text tables for the terminal
//   - JSONWriter: JSON for other tools, also used by the export command
//   - MarkdownWriter: GitHub Flavored Markdown with a mermaid pie chart
//
// Report data lives in the model package; writers only format it.
package report
