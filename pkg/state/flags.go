package state

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Flags is a set of named booleans. A flag that was never set reads as false.
// The zero value is ready to use.
type Flags struct {
	values map[string]bool
}

// IsSet reports whether the flag exists and is true.
func (f *Flags) IsSet(name string) bool {
	return f.values[name]
}

// Set marks the flag true.
func (f *Flags) Set(name string) {
	f.SetAs(name, true)
}

// SetAs stores val for the flag.
func (f *Flags) SetAs(name string, val bool) {
	if f.values == nil {
		f.values = make(map[string]bool)
	}
	f.values[name] = val
}

// Names returns the sorted names of all flags that are currently true.
func (f *Flags) Names() []string {
	names := make([]string, 0, len(f.values))
	for name, val := range f.values {
		if val {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (f Flags) MarshalJSON() ([]byte, error) {
	if f.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f.values)
}

// UnmarshalJSON accepts either a map of flag values or an array of set flag names.
func (f *Flags) UnmarshalJSON(data []byte) error {
	var asMap map[string]bool
	if err := json.Unmarshal(data, &asMap); err == nil {
		f.values = asMap
		return nil
	}
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		f.values = make(map[string]bool, len(asArray))
		for _, name := range asArray {
			f.values[name] = true
		}
		return nil
	}
	return fmt.Errorf("flags: not a map or array: %s", string(data))
}
