// Package kernel holds the domain primitives shared by the ordering aggregates.
//
// UUID is the identity of an order inside the application layer. It wraps
// github.com/google/uuid and treats the nil UUID as "not constructed".
package kernel
