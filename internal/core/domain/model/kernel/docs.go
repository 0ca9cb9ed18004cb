// Package kernel provides the value objects shared by every aggregate of the
// order management domain.
//
// The package includes:
//   - UUID: identifier value object with validation and stable ordering
//   - Money: exact two-digit fixed point amount built on shopspring/decimal
//
// Both are immutable and safe for concurrent use. Zero values are invalid and
// are rejected by Validate.
package kernel
