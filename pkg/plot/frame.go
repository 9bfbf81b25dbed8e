package plot

import "github.com/raykavin/plotspec/pkg/core"

// Frame is the tabular input of the compiler. *core.Table implements it.
// Column must return a copy the caller is free to modify.
type Frame interface {
	Len() int
	Has(name string) bool
	Column(name string) ([]any, bool)
	Kind(name string) core.Kind
	GroupBy(name string) ([]core.Group, error)
}

var _ Frame = (*core.Table)(nil)
