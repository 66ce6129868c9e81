package parse

import (
	"github.com/hashicorp/hcl/v2"
)

// Data contains raw HCL config bytes together with their source location,
// used for diagnostics
type Data struct {
	Hcl      []byte
	Filename string
	Pos      hcl.Pos
}

func NewData(hclBytes []byte, filename string) *Data {
	return &Data{
		Hcl:      hclBytes,
		Filename: filename,
		Pos:      hcl.Pos{Line: 1, Column: 1},
	}
}
