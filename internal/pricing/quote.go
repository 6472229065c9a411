package pricing

import (
	"math"

	"cncquote/internal/apperrors"
)

const (
	// SetupCost is the fixed per-job cost amortized over the order quantity.
	SetupCost = 50.0

	// MachiningRate is the cost per cm3 of material removed.
	MachiningRate = 0.5

	// MaxQuantity bounds the order size so amortization and totals stay sane.
	MaxQuantity = 1_000_000
)

// Geometry is the volumetric input to a quote, in cm3.
type Geometry struct {
	PartVolumeCm3  float64
	StockVolumeCm3 float64
}

// Quote is the priced result, both values rounded to 2 decimal places.
type Quote struct {
	UnitPrice  float64
	TotalPrice float64
}

// ComputeQuote prices one part from its geometry and the selected material,
// tolerance class, finish and quantity. Pure function of its inputs and the
// static tables.
func ComputeQuote(geo Geometry, materialKey, toleranceKey, finishKey string, quantity int) (Quote, error) {
	material, ok := MaterialFor(materialKey)
	if !ok {
		return Quote{}, apperrors.UnknownSelection("material", materialKey)
	}

	tolerance, ok := ToleranceFor(toleranceKey)
	if !ok {
		return Quote{}, apperrors.UnknownSelection("tolerance", toleranceKey)
	}

	finish, ok := FinishFor(finishKey)
	if !ok {
		return Quote{}, apperrors.UnknownSelection("finish", finishKey)
	}

	if quantity < 1 || quantity > MaxQuantity {
		return Quote{}, apperrors.InvalidQuantity(quantity)
	}

	if geo.PartVolumeCm3 < 0 || geo.StockVolumeCm3 < 0 {
		return Quote{}, apperrors.NewBadRequestError("geometry volumes must be non-negative")
	}

	materialCost := geo.StockVolumeCm3 * material.BaseCostPerCm3

	// Degenerate geometry can report a part larger than its stock; clamp the
	// removal to zero instead of pricing negative machining time.
	removedVolume := geo.StockVolumeCm3 - geo.PartVolumeCm3
	if removedVolume < 0 {
		removedVolume = 0
	}
	machiningCost := removedVolume * material.MachinabilityFactor * MachiningRate

	unitPrice := (materialCost+machiningCost)*tolerance.Multiplier +
		finish.Surcharge + SetupCost/float64(quantity)

	// Totals derive from the rounded unit price so the returned pair is
	// always self-consistent: total == round2(unit * quantity).
	unit := round2(unitPrice)
	return Quote{
		UnitPrice:  unit,
		TotalPrice: round2(unit * float64(quantity)),
	}, nil
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
