// Package stage provides the domain model for the four fulfillment
// workflow stages of an order and the parsers that normalize their
// semi-structured payloads.
//
// The stages are:
//
//	Stage 1 - collection assignment (which farmer/supplier provides what)
//	Stage 2 - packaging and quality (wastage, reuse, picked quantities)
//	Stage 3 - delivery routing (weights, packages, airports, drivers)
//	Stage 4 - pricing (market and final per-kg prices, net weights)
//
// Upstream workflow steps persist each stage as loosely structured JSON,
// sometimes double-serialized as a string. The parsers in this package
// tolerate both forms and treat malformed payloads as "stage not yet
// completed", returning empty data instead of an error. Quantity and
// price fields arrive as numbers or numeric strings depending on which
// form screen wrote them, so decoding accepts either.
package stage
