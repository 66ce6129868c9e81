package parse

// Config is the interface all HCL-configurable structs must implement
type Config interface {
	Identifier() string
	Validate() error
}
