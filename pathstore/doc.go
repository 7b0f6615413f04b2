// Package pathstore implements a forest of integer-valued nodes addressed by
// index, where each node holds one chosen column value and a parent index.
// A node's path is the sequence of values from the node up to (but not
// including) its root, reversed.
//
// The forest is reference-counted by children rather than by external
// holders: deleting a leaf decrements its parent's child count and, when that
// count reaches zero, cascades the deletion up the ancestor chain. Deleted
// indices return to a free list for reuse, so storage is bounded by the
// current live frontier plus surviving back-pointers rather than by
// cumulative enumeration.
//
// The index-based parent-pointer layout is the same shape as a disjoint-set
// forest (parent/rank arrays indexed by element), generalized from "set
// membership" to "owning ancestor chain of a search path".
package pathstore
