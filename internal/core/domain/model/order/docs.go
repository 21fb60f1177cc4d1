// Package order provides the Order aggregate and its line items.
//
// The package includes:
//   - Item: one product at one unit price with a quantity
//   - Order: the aggregate root owning an insertion-ordered list of items
//   - IncorrectItemError: the validation failure returned by Order.AddItem
//
// Key business rules:
//   - An item is accepted only if its price is >= 0 and its quantity is > 0
//   - No two items of an order share the same merge key (product ID, price)
//   - Adding an item with an existing merge key increases the quantity of the
//     stored item instead of appending a new line
//   - Items are never removed and keep their insertion position
//
// Prices are compared exactly unless the order was created with
// WithPriceTolerance. The aggregate is not safe for concurrent mutation;
// callers serialize access per order.
package order
