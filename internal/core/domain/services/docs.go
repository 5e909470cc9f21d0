// Package services contains the domain services of the reconciliation
// pipeline: product matching, cross-stage quantity resolution, driver
// grouping, and pricing. All services are pure functions of their inputs;
// given identical stage data they produce identical results, which the
// report builders depend on for byte-identical repeated output.
package services
