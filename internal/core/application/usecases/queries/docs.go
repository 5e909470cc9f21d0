// Package queries contains the read operations of the reconciliation
// pipeline, following the Query pattern of the CQRS architecture: each
// query is a validated value object and each handler derives report rows
// from the external store's stage payloads.
//
// Handlers are stateless; every Handle call fetches fresh stage data and
// rebuilds its rows, so repeated invocation on identical stage data
// yields identical output.
package queries
