// Package kernel contains shared domain primitives used across aggregates.
//
// It provides the UUID identifier value object and the Money fixed-point
// monetary value object. Both are immutable, validate themselves, and can
// only be created through their constructor functions.
package kernel
