package pipeline

import (
	"github.com/nao1215/weaponstats/internal/dataset"
	"github.com/nao1215/weaponstats/internal/model"
)

// State carries data between pipeline steps.
type State struct {
	// Source is the path of the data file.
	Source string

	// Table is the raw table, set by LoadStep and renamed by NormalizeStep.
	Table *dataset.Table

	// Weapons are the typed rows, set by CoerceStep. Read-only afterwards.
	Weapons []model.Weapon

	// Report collects the query results.
	Report *model.Report

	// Rankings collects rankings requested through RankStep.
	Rankings []model.Ranking

	// PerformedSteps lists the names of steps that completed.
	PerformedSteps []string
}

// NewState creates a State for the given data file.
// limit is the N of every top-N query; non-positive values use the default.
func NewState(source string, limit int) *State {
	return &State{
		Source: source,
		Report: model.NewReport(source, limit),
	}
}
