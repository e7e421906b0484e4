package line

// Inputs holds the ten quantities a plan is computed from.
type Inputs struct {
	DailyOutput float64 `yaml:"q_sut"` // finished product per day, t
	ShiftHours  float64 `yaml:"t"`     // shift duration, h

	DoughShare float64 `yaml:"a_t"`  // dough mass share, %
	MeatShare  float64 `yaml:"a_m"`  // meat mass share, %
	EggShare   float64 `yaml:"a_ya"` // egg mass share, %
	SaltShare  float64 `yaml:"a_s"`  // salt mass share, %
	SpiceShare float64 `yaml:"a_sp"` // spice mass share, %

	DumplingMachineRate float64 `yaml:"p_pa"` // dumpling machine rate, t/h
	DoughMixerRate      float64 `yaml:"p_tm"` // dough mixer rate, t/h
	CutterRate          float64 `yaml:"p_k"`  // bowl cutter rate, t/h
}

// ReferenceInputs returns the worked example used in the process documentation:
// 5 t/day over 8 h shifts with a 60/40 dough to filling split.
func ReferenceInputs() Inputs {
	return Inputs{
		DailyOutput:         5,
		ShiftHours:          8,
		DoughShare:          60,
		MeatShare:           30,
		EggShare:            5,
		SaltShare:           2,
		SpiceShare:          3,
		DumplingMachineRate: 0.2,
		DoughMixerRate:      0.15,
		CutterRate:          0.1,
	}
}

// Validate checks every input against its domain before any stage runs.
func (in Inputs) Validate() error {
	if err := validateNonNegative("daily output", in.DailyOutput); err != nil {
		return err
	}
	if err := validatePositive("shift duration", in.ShiftHours); err != nil {
		return err
	}
	if err := validatePercent("dough share", in.DoughShare); err != nil {
		return err
	}
	if _, err := FillingShare(in.MeatShare, in.EggShare, in.SaltShare, in.SpiceShare); err != nil {
		return err
	}
	rates := []struct {
		name string
		val  float64
	}{
		{"dumpling machine rate", in.DumplingMachineRate},
		{"dough mixer rate", in.DoughMixerRate},
		{"cutter rate", in.CutterRate},
	}
	for _, r := range rates {
		if err := validatePositive(r.name, r.val); err != nil {
			return err
		}
	}
	return nil
}
