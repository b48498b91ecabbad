// Package kernel contains shared value objects used across all domain aggregates.
//
// The kernel provides:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - GeoLocation: validated WGS84 latitude/longitude pair for delivery
//     destinations and drone telemetry
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants. Zero values fail validation.
package kernel
