package model

import "math"

// PurchasePlan holds the results of a paint purchasing calculation for one
// paint product.
type PurchasePlan struct {
	GallonsNeeded    float64 `json:"gallons_needed"`    // Exact decimal demand
	FiveGallonPails  int     `json:"five_gallon_pails"` // 5-gallon buckets to buy
	SingleGallons    int     `json:"single_gallons"`    // 1-gallon cans to buy
	GallonsPurchased float64 `json:"gallons_purchased"` // 5*pails + singles
	LeftoverGallons  float64 `json:"leftover_gallons"`  // Purchased minus needed
}

// CalculatePaintPurchase converts a decimal gallon demand into a bucket
// purchase plan. Five-gallon pails are always prioritized; the remainder
// is rounded up to whole single gallons so the purchase always covers the
// demand. Zero or negative demand yields an all-zero plan.
func CalculatePaintPurchase(gallons float64) PurchasePlan {
	gallons = SafeNumber(gallons, 0)
	if gallons <= 0 {
		return PurchasePlan{}
	}

	pails := int(math.Floor(gallons / 5))
	singles := int(math.Ceil(gallons - 5*float64(pails)))
	// A remainder just under 5 ceils to a full pail's worth of singles.
	if singles == 5 {
		pails++
		singles = 0
	}

	purchased := 5*float64(pails) + float64(singles)
	return PurchasePlan{
		GallonsNeeded:    gallons,
		FiveGallonPails:  pails,
		SingleGallons:    singles,
		GallonsPurchased: purchased,
		LeftoverGallons:  purchased - gallons,
	}
}

// CalculatePaintCost prices a gallon demand using the bucket breakdown.
// When no 5-gallon price is configured the product is only sold by the
// gallon and the whole demand is priced per ceil'd gallon.
func CalculatePaintCost(gallons, pricePerGallon, pricePer5Gallon float64) float64 {
	gallons = SafeNumber(gallons, 0)
	if gallons <= 0 {
		return 0
	}
	pricePerGallon = NonNegative(pricePerGallon)

	if pricePer5Gallon <= 0 {
		return math.Ceil(gallons) * pricePerGallon
	}

	plan := CalculatePaintPurchase(gallons)
	return NonNegative(float64(plan.FiveGallonPails)*pricePer5Gallon +
		float64(plan.SingleGallons)*pricePerGallon)
}
