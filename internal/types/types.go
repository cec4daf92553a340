package types

import "fmt"

// Counter is a named integer counter
type Counter struct {
	Name  string `json:"name" yaml:"name"`
	Count int64  `json:"count" yaml:"count"`
}

// NewCounter returns a counter with the given name and a zero count
func NewCounter(name string) Counter {
	return Counter{Name: name}
}

// String renders the counter the way the list shows it
func (c Counter) String() string {
	return fmt.Sprintf("%d: %s", c.Count, c.Name)
}

// Sign is the direction of an adjustment entered by the user
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Apply returns value with the sign applied
func (s Sign) Apply(value int64) int64 {
	if s == Negative {
		return -value
	}
	return value
}

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}
