package dao

// Parameter is a named List filter
type Parameter struct {
	Name  string
	Value interface{}
}

// NewParameter creates a filter parameter
func NewParameter(name string, value interface{}) *Parameter {
	return &Parameter{Name: name, Value: value}
}
