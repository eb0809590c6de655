package explorer

import (
	"github.com/arl/hpaexplore/frontier"
	"github.com/arl/hpaexplore/planner"
)

// Options are the Explorer API's recognized options, per §6. Field tags
// let the demo CLI collaborator load them straight out of an explore.yml
// file without a separate config struct.
type Options struct {
	SensorRange          int               `yaml:"sensorRange"`          // 5..30, default 15
	StepSize             float64           `yaml:"stepSize"`             // 0.5..2.0, default 1.0
	MaxIter              int               `yaml:"maxIter"`              // 100..50000, default 10000
	CoverageThreshold    float64           `yaml:"coverageThreshold"`    // 80..100 (percent), default 100
	UseWFD               bool              `yaml:"useWFD"`               // default true
	FrontierStrategy     frontier.Strategy `yaml:"frontierStrategy"`     // default StrategyMedian
	TargetSwitchCooldown int               `yaml:"targetSwitchCooldown"` // 0..20, default 5
	Scan360              bool              `yaml:"scan360"`              // default true
	DelayMs              int               `yaml:"delayMs"`               // default 50
	RegionSize           int               `yaml:"regionSize"`           // default 16
	Heuristic            planner.Heuristic `yaml:"heuristicType"`        // default planner.Manhattan
}

// DefaultOptions returns the Explorer API's documented defaults (§6).
func DefaultOptions() Options {
	return Options{
		SensorRange:          15,
		StepSize:             1.0,
		MaxIter:              10000,
		CoverageThreshold:    100,
		UseWFD:               true,
		FrontierStrategy:     frontier.StrategyMedian,
		TargetSwitchCooldown: 5,
		Scan360:              true,
		DelayMs:              50,
		RegionSize:           16,
		Heuristic:            planner.Manhattan,
	}
}
