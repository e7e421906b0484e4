package line

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ShiftsPerDay is the number of working shifts the primary line runs per day.
const ShiftsPerDay = 2

// ceilTolerance absorbs float noise in quotients like 1.1/0.1 so that an exact
// multiple is not rounded up to one machine too many. It is a fraction of one
// machine, independent of the size of the quotient.
const ceilTolerance = 1e-9

// maxMachineCount is the largest count whose float quotient is still exact.
const maxMachineCount = 1 << 53

// ErrInvalidInput is wrapped by every domain validation error.
var ErrInvalidInput = errors.New("invalid input")

// LineThroughput returns the primary line throughput in t/h for a daily output of
// dailyOutput tonnes and shifts of shiftHours hours.
func LineThroughput(dailyOutput, shiftHours float64) (float64, error) {
	if err := validateNonNegative("daily output", dailyOutput); err != nil {
		return 0, err
	}
	if err := validatePositive("shift duration", shiftHours); err != nil {
		return 0, err
	}
	return dailyOutput / (ShiftsPerDay * shiftHours), nil
}

// MachineCount returns the number of machines of the given unit rate (t/h) needed
// to process throughput (t/h). The count is always rounded up; a zero throughput
// needs zero machines.
func MachineCount(throughput, unitRate float64) (int, error) {
	if err := validateNonNegative("throughput", throughput); err != nil {
		return 0, err
	}
	if err := validatePositive("machine rate", unitRate); err != nil {
		return 0, err
	}
	q := throughput / unitRate
	if q > maxMachineCount {
		return 0, fmt.Errorf("%w: throughput %g t/h needs more than %d machines of %g t/h", ErrInvalidInput, throughput, int64(maxMachineCount), unitRate)
	}
	return ceilCount(q), nil
}

// DoughLineThroughput returns the dough preparation line throughput in t/h.
func DoughLineThroughput(lineThroughput, doughShare float64) (float64, error) {
	return shareOf(lineThroughput, "dough share", doughShare)
}

// FillingShare returns the filling share of the product mass in percent, the sum
// of its four ingredients.
func FillingShare(meat, eggs, salt, spices float64) (float64, error) {
	parts := []struct {
		name  string
		value float64
	}{
		{"meat share", meat},
		{"egg share", eggs},
		{"salt share", salt},
		{"spice share", spices},
	}
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		if err := validatePercent(p.name, p.value); err != nil {
			return 0, err
		}
		values = append(values, p.value)
	}
	sum := floats.Sum(values)
	if sum > 100+ceilTolerance {
		return 0, fmt.Errorf("%w: filling ingredient shares must not exceed 100%%, got %g%%", ErrInvalidInput, sum)
	}
	return sum, nil
}

// FillingLineThroughput returns the filling preparation line throughput in t/h.
func FillingLineThroughput(lineThroughput, fillingShare float64) (float64, error) {
	return shareOf(lineThroughput, "filling share", fillingShare)
}

func shareOf(lineThroughput float64, name string, share float64) (float64, error) {
	if err := validateNonNegative("line throughput", lineThroughput); err != nil {
		return 0, err
	}
	if err := validatePercent(name, share); err != nil {
		return 0, err
	}
	return lineThroughput * share / 100, nil
}

func ceilCount(q float64) int {
	n := int(math.Ceil(q))
	if q-math.Floor(q) <= ceilTolerance {
		n = int(math.Floor(q))
	}
	// A partial machine still needs a whole one.
	if n == 0 && q > 0 {
		return 1
	}
	return n
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidInput, name, val)
	}
	return nil
}

func validatePositive(name string, val float64) error {
	if err := validateFinite(name, val); err != nil {
		return err
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, name, val)
	}
	return nil
}

func validateNonNegative(name string, val float64) error {
	if err := validateFinite(name, val); err != nil {
		return err
	}
	if val < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidInput, name, val)
	}
	return nil
}

func validatePercent(name string, val float64) error {
	if err := validateFinite(name, val); err != nil {
		return err
	}
	if val < 0 || val > 100 {
		return fmt.Errorf("%w: %s must be in [0, 100], got %g", ErrInvalidInput, name, val)
	}
	return nil
}
