package stats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/weaponstats/internal/dataset"
	"github.com/nao1215/weaponstats/internal/model"
)

// ErrUnknownMetric is returned by ParseMetric for unsupported column names.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric is a numeric weapon column that can be ranked.
type Metric string

// Supported metrics. Values are the normalized column names.
const (
	MetricPhyAttack   Metric = dataset.PhyAttack
	MetricMagAttack   Metric = dataset.MagAttack
	MetricFireAttack  Metric = dataset.FireAttack
	MetricLightAttack Metric = dataset.LightAttack
	MetricHolyAttack  Metric = dataset.HolyAttack
	MetricPhyGuard    Metric = dataset.PhyGuard
	MetricMagGuard    Metric = dataset.MagGuard
	MetricFireGuard   Metric = dataset.FireGuard
	MetricLightGuard  Metric = dataset.LightGuard
	MetricHolyGuard   Metric = dataset.HolyGuard
	MetricWeight      Metric = dataset.ColumnWeight
	MetricCritical    Metric = dataset.ColumnCritical

	// MetricTotalAttack is the sum of the five attack columns.
	MetricTotalAttack Metric = "Total_Attack"
)

// metricSpec binds a metric to its accessor and SQLite column.
type metricSpec struct {
	value  func(model.Weapon) float64
	column string
}

var metrics = map[Metric]metricSpec{
	MetricPhyAttack:   {func(w model.Weapon) float64 { return w.Attack.Physical }, "phy_attack"},
	MetricMagAttack:   {func(w model.Weapon) float64 { return w.Attack.Magic }, "mag_attack"},
	MetricFireAttack:  {func(w model.Weapon) float64 { return w.Attack.Fire }, "fire_attack"},
	MetricLightAttack: {func(w model.Weapon) float64 { return w.Attack.Lightning }, "light_attack"},
	MetricHolyAttack:  {func(w model.Weapon) float64 { return w.Attack.Holy }, "holy_attack"},
	MetricPhyGuard:    {func(w model.Weapon) float64 { return w.Guard.Physical }, "phy_guard"},
	MetricMagGuard:    {func(w model.Weapon) float64 { return w.Guard.Magic }, "mag_guard"},
	MetricFireGuard:   {func(w model.Weapon) float64 { return w.Guard.Fire }, "fire_guard"},
	MetricLightGuard:  {func(w model.Weapon) float64 { return w.Guard.Lightning }, "light_guard"},
	MetricHolyGuard:   {func(w model.Weapon) float64 { return w.Guard.Holy }, "holy_guard"},
	MetricWeight:      {func(w model.Weapon) float64 { return w.Weight }, "weight"},
	MetricCritical:    {func(w model.Weapon) float64 { return w.Critical }, "critical"},
	MetricTotalAttack: {func(w model.Weapon) float64 { return w.Attack.Total() }, "total_attack"},
}

// Metrics returns all supported metrics in a stable order.
func Metrics() []Metric {
	return []Metric{
		MetricPhyAttack, MetricMagAttack, MetricFireAttack, MetricLightAttack, MetricHolyAttack,
		MetricPhyGuard, MetricMagGuard, MetricFireGuard, MetricLightGuard, MetricHolyGuard,
		MetricWeight, MetricCritical, MetricTotalAttack,
	}
}

// ParseMetric resolves a column name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	for _, m := range Metrics() {
		if strings.EqualFold(string(m), name) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Value returns the metric value of w.
func (m Metric) Value(w model.Weapon) float64 {
	spec, ok := metrics[m]
	if !ok {
		return 0
	}
	return spec.value(w)
}

// String returns the column name.
func (m Metric) String() string {
	return string(m)
}
