package line

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Print writes the human-readable report: the inputs, one section per line and
// a summary of machine counts.
func (p *Plan) Print(w io.Writer) {
	in := p.Inputs
	fmt.Fprintln(w, "=== Input Data ===")
	fmt.Fprintf(w, "Daily output                : %.4f t\n", in.DailyOutput)
	fmt.Fprintf(w, "Shift duration              : %.2f h\n", in.ShiftHours)
	fmt.Fprintf(w, "Dough share                 : %.2f %%\n", in.DoughShare)
	fmt.Fprintf(w, "Meat share                  : %.2f %%\n", in.MeatShare)
	fmt.Fprintf(w, "Egg share                   : %.2f %%\n", in.EggShare)
	fmt.Fprintf(w, "Salt share                  : %.2f %%\n", in.SaltShare)
	fmt.Fprintf(w, "Spice share                 : %.2f %%\n", in.SpiceShare)
	fmt.Fprintf(w, "Dumpling machine rate       : %.4f t/h\n", in.DumplingMachineRate)
	fmt.Fprintf(w, "Dough mixer rate            : %.4f t/h\n", in.DoughMixerRate)
	fmt.Fprintf(w, "Cutter rate                 : %.4f t/h\n", in.CutterRate)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== I. Dumpling Line ===")
	fmt.Fprintf(w, "Line throughput             : %.4f t/h\n", p.LineThroughput)
	fmt.Fprintf(w, "Dumpling machines           : %d\n", p.DumplingMachines)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== II. Dough Preparation Line ===")
	fmt.Fprintf(w, "Line throughput             : %.4f t/h\n", p.DoughLineThroughput)
	fmt.Fprintf(w, "Dough mixers                : %d\n", p.DoughMixers)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== III. Filling Preparation Line ===")
	fmt.Fprintf(w, "Filling share               : %.2f %%\n", p.FillingShare)
	fmt.Fprintf(w, "Line throughput             : %.4f t/h\n", p.FillingLineThroughput)
	fmt.Fprintf(w, "Cutters                     : %d\n", p.Cutters)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "Dumpling machines           : %d\n", p.DumplingMachines)
	fmt.Fprintf(w, "Dough mixers                : %d\n", p.DoughMixers)
	fmt.Fprintf(w, "Cutters                     : %d\n", p.Cutters)
}

// WriteYAML writes the plan as a YAML document.
func (p *Plan) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}
