package services

import (
	"fulfillment/internal/core/domain/model/report"
	"fulfillment/internal/core/domain/model/stage"
)

// QuantityResolver derives the canonical kilogram quantity for a product
// from whichever workflow stage recorded one.
//
// The fallback order is fixed: collection assignment (stage 1), then the
// pricing stage's net weight (stage 4), then the routing stage's parsed
// gross weight (stage 3), then the packaging stage's picked quantity
// (stage 2). The first positive value wins; later stages are ignored
// even when they also carry data. When every stage yields zero the
// resolved quantity is 0 with SourceNone, which callers report as a
// zero-quantity line rather than an error.
type QuantityResolver struct{}

// NewQuantityResolver creates a QuantityResolver.
func NewQuantityResolver() QuantityResolver {
	return QuantityResolver{}
}

// quantityCandidate is one step of the fallback chain: the stage it
// represents and an accessor producing its value for a product.
type quantityCandidate struct {
	source report.QuantitySource
	read   func() (float64, bool)
}

// resolveChain walks candidates in order and takes the first hit.
func resolveChain(candidates []quantityCandidate) (float64, report.QuantitySource) {
	for _, c := range candidates {
		if v, ok := c.read(); ok {
			return v, c.source
		}
	}
	return 0, report.SourceNone
}

// Resolve returns the canonical quantity for a product across all four
// stages of one order. The stage-1 figure is the sum of assigned
// quantities over the product's collection lines (box counts are tracked
// separately and never summed into kilograms).
func (r QuantityResolver) Resolve(
	product string,
	stage1Items []stage.Stage1Item,
	stage2Items []stage.Stage2Item,
	stage3Items []stage.Stage3Item,
	stage4Items []stage.Stage4Item,
) (float64, report.QuantitySource) {
	return resolveChain([]quantityCandidate{
		{report.SourceStage1, func() (float64, bool) {
			total := 0.0
			for _, item := range stage1Items {
				if MatchProduct(item.Product, product) {
					total += item.AssignedQty
				}
			}
			return total, total > 0
		}},
		r.stage4Candidate(product, stage4Items),
		r.stage3Candidate(product, stage3Items),
		r.stage2Candidate(product, stage2Items),
	})
}

// ResolveLine returns the quantity for one collection-assignment line.
// The line's own assigned quantity takes the stage-1 slot of the chain,
// so two lines of the same product from different entities each keep
// their own weight.
func (r QuantityResolver) ResolveLine(
	line stage.Stage1Item,
	stage2Items []stage.Stage2Item,
	stage3Items []stage.Stage3Item,
	stage4Items []stage.Stage4Item,
) (float64, report.QuantitySource) {
	return resolveChain([]quantityCandidate{
		{report.SourceStage1, func() (float64, bool) {
			return line.AssignedQty, line.AssignedQty > 0
		}},
		r.stage4Candidate(line.Product, stage4Items),
		r.stage3Candidate(line.Product, stage3Items),
		r.stage2Candidate(line.Product, stage2Items),
	})
}

func (r QuantityResolver) stage4Candidate(product string, items []stage.Stage4Item) quantityCandidate {
	return quantityCandidate{report.SourceStage4, func() (float64, bool) {
		for _, item := range items {
			if !MatchProduct(item.Product, product) {
				continue
			}
			if w := item.EffectiveNetWeight(); w > 0 {
				return w, true
			}
		}
		return 0, false
	}}
}

func (r QuantityResolver) stage3Candidate(product string, items []stage.Stage3Item) quantityCandidate {
	return quantityCandidate{report.SourceStage3, func() (float64, bool) {
		for _, item := range items {
			if !MatchProduct(item.Product, product) {
				continue
			}
			if w := item.GrossWeightKg(); w > 0 {
				return w, true
			}
		}
		return 0, false
	}}
}

func (r QuantityResolver) stage2Candidate(product string, items []stage.Stage2Item) quantityCandidate {
	return quantityCandidate{report.SourceStage2, func() (float64, bool) {
		for _, item := range items {
			if !MatchProduct(item.Product, product) {
				continue
			}
			if item.PickedQuantity > 0 {
				return item.PickedQuantity, true
			}
		}
		return 0, false
	}}
}
