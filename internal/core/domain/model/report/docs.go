// Package report holds the derived row types the reconciliation pipeline
// produces: resolved product lines, driver buckets, entity amounts, and
// bill lines.
//
// Everything in this package is ephemeral. Rows are computed from the
// stage payloads of an order during one report run, handed to a consumer
// (JSON response, spreadsheet export), and discarded; nothing here is
// persisted. Repeated runs over identical stage data yield identical
// rows, which the export tests rely on.
package report
