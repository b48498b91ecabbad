// Package drone contains the Drone aggregate and its value objects.
//
// The package models the fleet registry side of the system:
//   - Drone: aggregate root holding identity, static capabilities, battery
//     state, and operational status
//   - Status: closed enumeration with an explicit transition table; the
//     Retired status is terminal
//   - Battery: value object enforcing 0 ≤ current ≤ maxCapacity
//   - Capacity, Specifications: static airframe characteristics
//
// Illegal states are unrepresentable: statuses are a closed tagged set rather
// than validated strings, battery bounds are enforced on every mutation, and
// aggregates can only be created through their constructors.
package drone
