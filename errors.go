package xmldoc

import "fmt"

var (
	ErrNilSymbol = fmt.Errorf("symbol cannot be nil")
)
