package line

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Plan is the equipment sizing computed from one set of Inputs.
type Plan struct {
	Inputs Inputs `yaml:"inputs"`

	// I. Dumpling line
	LineThroughput   float64 `yaml:"line_throughput_t_per_h"`
	DumplingMachines int     `yaml:"dumpling_machines"`

	// II. Dough preparation line
	DoughLineThroughput float64 `yaml:"dough_line_throughput_t_per_h"`
	DoughMixers         int     `yaml:"dough_mixers"`

	// III. Filling preparation line
	FillingShare          float64 `yaml:"filling_share_percent"`
	FillingLineThroughput float64 `yaml:"filling_line_throughput_t_per_h"`
	Cutters               int     `yaml:"cutters"`
}

// Compute validates in and runs the three stages in order. It returns no plan
// if any input is invalid.
func Compute(in Inputs) (*Plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := &Plan{Inputs: in}
	var err error

	// I. Dumpling line
	if p.LineThroughput, err = LineThroughput(in.DailyOutput, in.ShiftHours); err != nil {
		return nil, fmt.Errorf("dumpling line: %w", err)
	}
	if p.DumplingMachines, err = MachineCount(p.LineThroughput, in.DumplingMachineRate); err != nil {
		return nil, fmt.Errorf("dumpling line: %w", err)
	}
	logrus.Debugf("dumpling line: %.4f t/h, %d machines", p.LineThroughput, p.DumplingMachines)

	// II. Dough preparation line
	if p.DoughLineThroughput, err = DoughLineThroughput(p.LineThroughput, in.DoughShare); err != nil {
		return nil, fmt.Errorf("dough line: %w", err)
	}
	if p.DoughMixers, err = MachineCount(p.DoughLineThroughput, in.DoughMixerRate); err != nil {
		return nil, fmt.Errorf("dough line: %w", err)
	}
	logrus.Debugf("dough line: %.4f t/h, %d mixers", p.DoughLineThroughput, p.DoughMixers)

	// III. Filling preparation line
	if p.FillingShare, err = FillingShare(in.MeatShare, in.EggShare, in.SaltShare, in.SpiceShare); err != nil {
		return nil, fmt.Errorf("filling line: %w", err)
	}
	if p.FillingLineThroughput, err = FillingLineThroughput(p.LineThroughput, p.FillingShare); err != nil {
		return nil, fmt.Errorf("filling line: %w", err)
	}
	if p.Cutters, err = MachineCount(p.FillingLineThroughput, in.CutterRate); err != nil {
		return nil, fmt.Errorf("filling line: %w", err)
	}
	logrus.Debugf("filling line: share %.2f%%, %.4f t/h, %d cutters", p.FillingShare, p.FillingLineThroughput, p.Cutters)

	return p, nil
}
