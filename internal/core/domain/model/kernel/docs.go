// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates in other packages compose:
// currently the UUID identifier type.
//
// Kernel types are immutable value objects: constructed through factory
// functions, validated at the boundary, and safe to copy and compare.
package kernel
