package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-affordability/pkg/constants"
)

// Range describes an ordered axis of values from Min to Max in Step
// increments.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Values expands the range into its ordered sequence. Max is included when
// it lands on a step boundary; the boundary check carries a small epsilon so
// float error in Min + k*Step never drops Max from the axis. A Max that
// falls between steps is not overshot.
func (r Range) Values() ([]float64, error) {
	if r.Step <= 0 {
		return nil, fmt.Errorf("range step must be positive, got %v", r.Step)
	}
	if r.Max < r.Min {
		return nil, fmt.Errorf("range max %v is below min %v", r.Max, r.Min)
	}

	if count := (r.Max-r.Min)/r.Step + 1; count > constants.MaxAxisValues {
		return nil, fmt.Errorf("range expands to %.0f values, exceeding the limit of %d",
			count, constants.MaxAxisValues)
	}

	eps := r.Step * constants.RateTolerance
	var values []float64
	for i := 0; ; i++ {
		value := r.Min + float64(i)*r.Step
		if value > r.Max+eps {
			break
		}
		values = append(values, value)
	}
	return values, nil
}
