// Package product holds the read-side catalog snapshot consumed by the cart
// and checkout flows. Catalog management is out of scope; only resolution of
// product id to current price and display data is modeled here.
package product
