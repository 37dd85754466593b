package candihelper

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MultiError collect error per key, used for config, struct and json schema validation result
type MultiError interface {
	Append(key string, err error) MultiError
	HasError() bool
	IsNil() bool
	Clear()
	ToMap() map[string]string
	Merge(MultiError) MultiError
	Error() string
}

type multiError struct {
	lock sync.Mutex
	errs map[string]string
}

// NewMultiError constructor
func NewMultiError() MultiError {
	return &multiError{errs: make(map[string]string)}
}

// Append error to multierror, nil error is ignored
func (m *multiError) Append(key string, err error) MultiError {
	m.lock.Lock()
	defer m.lock.Unlock()
	if err != nil {
		m.errs[key] = err.Error()
	}
	return m
}

// HasError check if err is exist
func (m *multiError) HasError() bool {
	return len(m.errs) != 0
}

// IsNil check if err is nil
func (m *multiError) IsNil() bool {
	return len(m.errs) == 0
}

// Clear make empty list of errors
func (m *multiError) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.errs = map[string]string{}
}

// ToMap return list map of error
func (m *multiError) ToMap() map[string]string {
	return m.errs
}

// Merge from another multi error
func (m *multiError) Merge(e MultiError) MultiError {
	for k, v := range e.ToMap() {
		m.Append(k, errors.New(v))
	}
	return m
}

// Error implement error from multiError, keys sorted for stable output
func (m *multiError) Error() string {
	keys := make([]string, 0, len(m.errs))
	for k := range m.errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var str []string
	for _, k := range keys {
		str = append(str, fmt.Sprintf("%s: %s", k, m.errs[k]))
	}
	return strings.Join(str, "\n")
}
