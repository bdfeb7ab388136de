// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all zy values.
package cell

// I (cell) is the basic unit of storage in zy. Every value the reader can
// produce or the evaluator can return is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
