// Package order contains the order aggregate: the immutable, priced record
// produced by checkout, its lines with unit-price snapshots, the delivery
// destination variant, guest payment details, and the lifecycle status
// state machine.
package order
