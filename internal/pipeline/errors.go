package pipeline

import "errors"

// errNoTable is returned when a step runs before LoadStep.
var errNoTable = errors.New("no table loaded")
