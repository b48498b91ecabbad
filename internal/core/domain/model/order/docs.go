// Package order contains the Order aggregate and its value objects.
//
// The package models the order ledger side of the system:
//   - Order: aggregate root holding identity, line items, delivery details,
//     lifecycle status, and the transient drone assignment
//   - Status: closed enumeration with forward-only progression and
//     cancellation edges; delivered and cancelled are terminal
//   - Item: order line with a validated subtotal invariant
//   - DeliveryAddress, ContactInfo: destination and recipient snapshots
//
// Monetary amounts are integer currency units throughout, so total validation
// is exact. Reported totals are validated against line sums, never recomputed,
// so client/server mismatches are caught rather than papered over.
package order
