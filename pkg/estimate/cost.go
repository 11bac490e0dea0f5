package estimate

import "math"

// Rates holds the pricing inputs for a cost estimate
type Rates struct {
	FilamentPerKG  float64
	MachinePerHour float64
	MarginPercent  float64
}

// DefaultRates returns typical hobby-market PLA rates in EUR
func DefaultRates() Rates {
	return Rates{
		FilamentPerKG:  25.0,
		MachinePerHour: 1.50,
		MarginPercent:  20.0,
	}
}

// CostBreakdown contains the line items of a print-cost estimate
type CostBreakdown struct {
	Material float64 `json:"material"`
	Machine  float64 `json:"machine"`
	Margin   float64 `json:"margin"`
	Total    float64 `json:"total"`
}

// Cost derives a print-cost breakdown from print statistics and rates:
// material cost from estimated weight, machine cost from estimated
// duration, margin on top of both. Every line item is rounded to cents
// once, at the end.
func Cost(stats PrintStatistics, rates Rates) CostBreakdown {
	material := stats.WeightGrams / 1000.0 * rates.FilamentPerKG
	machine := float64(stats.PrintMinutes) / 60.0 * rates.MachinePerHour
	margin := (material + machine) * rates.MarginPercent / 100.0

	return CostBreakdown{
		Material: roundCents(material),
		Machine:  roundCents(machine),
		Margin:   roundCents(margin),
		Total:    roundCents(material + machine + margin),
	}
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
