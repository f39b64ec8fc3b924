package types

import (
	"fmt"
	"sort"
	"strings"
)

// Record is an immutable bag of named attributes. Records are the
// building blocks of states, observations and actions: once built they
// are never mutated, and their hash is derived from the sorted
// key/value pairs so that two records built from the same attributes
// compare and index identically regardless of construction order.
type Record struct {
	attrs map[string]interface{}
	keys  []string
	hash  string
}

func newRecord(attrs map[string]interface{}) Record {
	copied := make(map[string]interface{}, len(attrs))
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		copied[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Record{
		attrs: copied,
		keys:  keys,
		hash:  hashPairs(copied, keys),
	}
}

func hashPairs(attrs map[string]interface{}, keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%#v", k, attrs[k])
	}
	return strings.Join(parts, ", ")
}

// Keys returns the attribute names in sorted order. Iterating a record
// through Keys is deterministic, which the memory combinators rely on
// when they enumerate attributes into synthetic actions.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *Record) Has(key string) bool {
	_, ok := r.attrs[key]
	return ok
}

func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// Attr returns the value of the named attribute. Accessing a missing
// attribute indicates a desynchronization between the action producer
// and the record, so it panics rather than returning a zero value.
func (r *Record) Attr(key string) interface{} {
	v, ok := r.attrs[key]
	if !ok {
		panic(fmt.Sprintf("record has no attribute %q", key))
	}
	return v
}

func (r *Record) IntAttr(key string) int {
	v, ok := r.Attr(key).(int)
	if !ok {
		panic(fmt.Sprintf("attribute %q is not an int", key))
	}
	return v
}

func (r *Record) StringAttr(key string) string {
	v, ok := r.Attr(key).(string)
	if !ok {
		panic(fmt.Sprintf("attribute %q is not a string", key))
	}
	return v
}

// AsMap returns a copy of the attributes. The copy belongs to the
// caller; mutating it does not affect the record.
func (r *Record) AsMap() map[string]interface{} {
	copied := make(map[string]interface{}, len(r.attrs))
	for k, v := range r.attrs {
		copied[k] = v
	}
	return copied
}

// State is an observation or full state of an environment.
type State struct {
	Record
}

func NewState(attrs map[string]interface{}) *State {
	return &State{Record: newRecord(attrs)}
}

// Hash is the canonical string key of the state, stable across
// construction order.
func (s *State) Hash() string {
	return "(" + s.hash + ")"
}

func (s *State) Eq(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.hash == other.hash
}

func (s *State) String() string {
	return "State" + s.Hash()
}

// Action is a named record. The name discriminates action kinds (move
// directions, gate/store/retrieve) and participates in the hash ahead
// of the attributes.
type Action struct {
	Record
	Name string
}

func NewAction(name string, attrs map[string]interface{}) *Action {
	return &Action{Record: newRecord(attrs), Name: name}
}

func (a *Action) Hash() string {
	if len(a.keys) == 0 {
		return a.Name
	}
	return a.Name + "(" + a.hash + ")"
}

func (a *Action) Eq(other *Action) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name && a.hash == other.hash
}

func (a *Action) String() string {
	return a.Hash()
}

// ContainsAction reports whether the action is a member of the list,
// compared structurally.
func ContainsAction(actions []*Action, a *Action) bool {
	for _, other := range actions {
		if a.Eq(other) {
			return true
		}
	}
	return false
}
