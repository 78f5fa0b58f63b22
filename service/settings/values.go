package settings

import (
	"strconv"
	"sync"

	"github.com/viant/toolbox"
)

// Values holds settings as strings and converts them on read
type Values struct {
	mux    sync.RWMutex
	values map[string]string
}

func (v *Values) lookup(key string) (string, bool) {
	v.mux.RLock()
	defer v.mux.RUnlock()
	value, ok := v.values[key]
	return value, ok && value != ""
}

// Bool returns a boolean setting
func (v *Values) Bool(key string, defaultValue bool) bool {
	value, ok := v.lookup(key)
	if !ok {
		return defaultValue
	}
	return toolbox.AsBoolean(value)
}

// String returns a string setting
func (v *Values) String(key string, defaultValue string) string {
	value, ok := v.lookup(key)
	if !ok {
		return defaultValue
	}
	return value
}

// Number returns a numeric setting
func (v *Values) Number(key string, defaultValue float64) float64 {
	value, ok := v.lookup(key)
	if !ok {
		return defaultValue
	}
	return toolbox.AsFloat(value)
}

// Put stores a raw value
func (v *Values) Put(key string, value interface{}) {
	v.mux.Lock()
	defer v.mux.Unlock()
	switch actual := value.(type) {
	case float64:
		v.values[key] = strconv.FormatFloat(actual, 'f', -1, 64)
	default:
		v.values[key] = toolbox.AsString(value)
	}
}

// Snapshot returns a copy of all values
func (v *Values) Snapshot() map[string]interface{} {
	v.mux.RLock()
	defer v.mux.RUnlock()
	ret := make(map[string]interface{}, len(v.values))
	for key, value := range v.values {
		ret[key] = value
	}
	return ret
}

// NewValues creates values seeded from an arbitrary map
func NewValues(seed map[string]interface{}) *Values {
	ret := &Values{values: map[string]string{}}
	for key, value := range seed {
		if value == nil {
			continue
		}
		ret.Put(key, value)
	}
	return ret
}
