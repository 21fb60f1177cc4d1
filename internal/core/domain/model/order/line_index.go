package order

import (
	"math"

	"ordering/internal/core/domain/model/product"

	"github.com/tidwall/btree"
)

// lineEntry is one item in the merge-key index. seq is the insertion position
// and breaks ties so that entries never collide inside the tree.
type lineEntry struct {
	productID product.ID
	price     float64
	seq       int
	item      *Item
}

// lineIndex orders items by (product ID, price, seq) so a lookup only walks the
// entries whose price can match the candidate.
type lineIndex struct {
	tree *btree.BTreeG[lineEntry]
}

func newLineIndex() lineIndex {
	return lineIndex{
		tree: btree.NewBTreeG(func(a, b lineEntry) bool {
			if a.productID != b.productID {
				return a.productID < b.productID
			}
			if a.price != b.price {
				return a.price < b.price
			}
			return a.seq < b.seq
		}),
	}
}

func (x lineIndex) insert(item *Item, seq int) {
	x.tree.Set(lineEntry{
		productID: item.product.ID(),
		price:     item.price,
		seq:       seq,
		item:      item,
	})
}

// find returns the earliest inserted item with the candidate's product ID whose
// price lies within tolerance of price. A zero tolerance means exact equality,
// which also covers +Inf where the difference is NaN.
func (x lineIndex) find(productID product.ID, price, tolerance float64) (*Item, bool) {
	var (
		match    *Item
		matchSeq = math.MaxInt
	)

	pivot := lineEntry{productID: productID, price: price - tolerance, seq: math.MinInt}
	x.tree.Ascend(pivot, func(e lineEntry) bool {
		if e.productID != productID || e.price > price+tolerance {
			return false
		}
		if priceMatches(e.price, price, tolerance) && e.seq < matchSeq {
			match, matchSeq = e.item, e.seq
		}
		return true
	})

	return match, match != nil
}

func priceMatches(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return tolerance > 0 && math.Abs(a-b) <= tolerance
}
