package services

// MatchProduct reports whether two product labels refer to the same
// product. Matching is exact string equality of the label; a product
// renamed between stages will not match. Every cross-stage join in the
// pipeline goes through this function so a normalized product-key join
// can replace the convention in one place.
func MatchProduct(a, b string) bool {
	return a == b
}
