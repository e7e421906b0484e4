package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/pelmeni-line/linecalc/line"
)

// inputField binds one line.Inputs quantity to its flag, input file key and prompt.
type inputField struct {
	flag   string
	usage  string
	unit   string
	target func(*line.Inputs) *float64
	file   func(*InputFile) **float64
}

// inputFields lists the quantities in the order they are prompted for.
var inputFields = []inputField{
	{"q-sut", "Daily output of finished product", "t",
		func(in *line.Inputs) *float64 { return &in.DailyOutput }, func(f *InputFile) **float64 { return &f.DailyOutput }},
	{"t", "Shift duration", "h",
		func(in *line.Inputs) *float64 { return &in.ShiftHours }, func(f *InputFile) **float64 { return &f.ShiftHours }},
	{"a-t", "Dough mass share", "%",
		func(in *line.Inputs) *float64 { return &in.DoughShare }, func(f *InputFile) **float64 { return &f.DoughShare }},
	{"a-m", "Meat mass share", "%",
		func(in *line.Inputs) *float64 { return &in.MeatShare }, func(f *InputFile) **float64 { return &f.MeatShare }},
	{"a-ya", "Egg mass share", "%",
		func(in *line.Inputs) *float64 { return &in.EggShare }, func(f *InputFile) **float64 { return &f.EggShare }},
	{"a-s", "Salt mass share", "%",
		func(in *line.Inputs) *float64 { return &in.SaltShare }, func(f *InputFile) **float64 { return &f.SaltShare }},
	{"a-sp", "Spice mass share", "%",
		func(in *line.Inputs) *float64 { return &in.SpiceShare }, func(f *InputFile) **float64 { return &f.SpiceShare }},
	{"p-pa", "Dumpling machine rate", "t/h",
		func(in *line.Inputs) *float64 { return &in.DumplingMachineRate }, func(f *InputFile) **float64 { return &f.DumplingMachineRate }},
	{"p-tm", "Dough mixer rate", "t/h",
		func(in *line.Inputs) *float64 { return &in.DoughMixerRate }, func(f *InputFile) **float64 { return &f.DoughMixerRate }},
	{"p-k", "Cutter rate", "t/h",
		func(in *line.Inputs) *float64 { return &in.CutterRate }, func(f *InputFile) **float64 { return &f.CutterRate }},
}

// InputFile is the YAML input document accepted by --input. Absent keys stay nil
// so that they can still be prompted for; an explicit 0 is a value.
type InputFile struct {
	DailyOutput         *float64 `yaml:"q_sut,omitempty"`
	ShiftHours          *float64 `yaml:"t,omitempty"`
	DoughShare          *float64 `yaml:"a_t,omitempty"`
	MeatShare           *float64 `yaml:"a_m,omitempty"`
	EggShare            *float64 `yaml:"a_ya,omitempty"`
	SaltShare           *float64 `yaml:"a_s,omitempty"`
	SpiceShare          *float64 `yaml:"a_sp,omitempty"`
	DumplingMachineRate *float64 `yaml:"p_pa,omitempty"`
	DoughMixerRate      *float64 `yaml:"p_tm,omitempty"`
	CutterRate          *float64 `yaml:"p_k,omitempty"`
}

// newInputFile returns an InputFile with every key set from in.
func newInputFile(in line.Inputs) *InputFile {
	f := &InputFile{}
	for _, field := range inputFields {
		v := *field.target(&in)
		*field.file(f) = &v
	}
	return f
}

// loadInputFile parses an input YAML file holding one document. Unknown keys
// are rejected so that a misspelled quantity is not silently prompted for.
func loadInputFile(path string) (*InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file %q: %w", path, err)
	}
	var f InputFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse input file %q: %w", path, err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse input file %q: expected a single YAML document", path)
	}
	return &f, nil
}

// prompter asks for missing quantities one line at a time.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

// ask prints the prompt for field and returns the trimmed answer. A missing
// answer is an error; there is no retry.
func (p *prompter) ask(field inputField) (string, error) {
	fmt.Fprintf(p.w, "%s, %s: ", field.usage, field.unit)
	answer, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", fmt.Errorf("read %s (--%s): %w", strings.ToLower(field.usage), field.flag, err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("no value entered for %s (--%s)", strings.ToLower(field.usage), field.flag)
	}
	return answer, nil
}

// resolveInputs fills every quantity not set on the command line, first from file
// (may be nil), then by prompting. Prompt answers go through the flag's own
// parser so that both sources accept the same syntax. A nil prompter turns a
// missing quantity into an error.
func resolveInputs(flags *pflag.FlagSet, in *line.Inputs, file *InputFile, p *prompter) error {
	for _, field := range inputFields {
		if flags.Changed(field.flag) {
			logrus.Debugf("--%s = %v (flag)", field.flag, *field.target(in))
			continue
		}
		if file != nil {
			if v := *field.file(file); v != nil {
				*field.target(in) = *v
				logrus.Debugf("--%s = %v (input file)", field.flag, *v)
				continue
			}
		}
		if p == nil {
			return fmt.Errorf("%s not provided; pass --%s or set it in the input file", strings.ToLower(field.usage), field.flag)
		}
		answer, err := p.ask(field)
		if err != nil {
			return err
		}
		if err := flags.Set(field.flag, answer); err != nil {
			return fmt.Errorf("invalid %s %q: %w", strings.ToLower(field.usage), answer, err)
		}
		logrus.Debugf("--%s = %v (prompt)", field.flag, *field.target(in))
	}
	return nil
}
