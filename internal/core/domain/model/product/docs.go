// Package product provides the Product entity referenced by order items.
//
// A Product is identified by a stable integer ID. Two products are the same
// product when their IDs are equal; the name is descriptive only and never
// takes part in comparisons. Orders read products but never modify them.
package product
