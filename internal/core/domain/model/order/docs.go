// Package order provides the read model for customer orders as held by
// the external order-management store.
//
// Orders are created, updated, and paid for outside this system. The
// reporting core reads them for three things only: the order date that
// anchors bill rows, the payment status that routes amounts between the
// paid and outstanding columns, and the ordered product lines that report
// headers display.
package order
