// Package cart contains the cart aggregate: the per-customer mutable
// staging area of desired products and quantities prior to order creation.
package cart
