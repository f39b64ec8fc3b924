package types

import (
	"fmt"
	"strings"
)

// Attribute-name prefixes reserved by the memory combinators. The
// prefixes tag augmented attributes on states and observations and
// keep them apart from the wrapped environment's own attributes.
const (
	MemoryPrefix = "memory_"
	WMPrefix     = "wm_"
	LTMPrefix    = "ltm_"
)

// AugmentState strips any attributes carrying the prefix from the
// state and reattaches one attribute per memory slot, named
// <prefix><index>. Stripping first makes repeated augmentation
// idempotent: augmenting an already-augmented state replaces the slot
// attributes instead of duplicating them.
func AugmentState(state *State, memories []interface{}, prefix string) *State {
	if state == nil {
		return nil
	}
	attrs := state.AsMap()
	for key := range attrs {
		if strings.HasPrefix(key, prefix) {
			delete(attrs, key)
		}
	}
	for i, value := range memories {
		attrs[fmt.Sprintf("%s%d", prefix, i)] = value
	}
	return NewState(attrs)
}

// GateAction moves the value of an observable attribute into a gating
// memory slot.
func GateAction(slot int, attribute string) *Action {
	return NewAction("gate", map[string]interface{}{"slot": slot, "attribute": attribute})
}

// StoreAction moves the value of an observable attribute into a
// long-term memory slot.
func StoreAction(slot int, attribute string) *Action {
	return NewAction("store", map[string]interface{}{"slot": slot, "attribute": attribute})
}

// RetrieveAction copies a long-term memory slot into a working memory
// slot.
func RetrieveAction(wmSlot, ltmSlot int) *Action {
	return NewAction("retrieve", map[string]interface{}{"wm_slot": wmSlot, "ltm_slot": ltmSlot})
}

func emptySlots(n int) []interface{} {
	return make([]interface{}, n)
}

// GatingMemory wraps an Environment with a fixed number of memory
// slots the agent controls through gate actions. Gated values are
// sourced from the wrapped environment's observation, never from its
// state, so wrapping cannot leak hidden information to the agent.
type GatingMemory struct {
	base     Environment
	reward   float64
	memories []interface{}
}

var _ Environment = &GatingMemory{}

// NewGatingMemory wraps base with slots gating memory slots. Internal
// gate actions yield the given reward instead of one from the base.
func NewGatingMemory(base Environment, slots int, reward float64) *GatingMemory {
	if base == nil {
		panic("gating memory: nil wrapped environment")
	}
	if slots < 1 {
		panic("gating memory: need at least one slot")
	}
	return &GatingMemory{
		base:     base,
		reward:   reward,
		memories: emptySlots(slots),
	}
}

func (g *GatingMemory) GetState() *State {
	return AugmentState(g.base.GetState(), g.memories, MemoryPrefix)
}

func (g *GatingMemory) GetObservation() *State {
	return AugmentState(g.base.GetObservation(), g.memories, MemoryPrefix)
}

// GetActions appends one gate action per slot per non-memory
// observable attribute. A terminal base state stays terminal: no
// synthetic actions are added to an empty base action set.
func (g *GatingMemory) GetActions() []*Action {
	actions := g.base.GetActions()
	if len(actions) == 0 {
		return actions
	}
	observation := g.base.GetObservation()
	if observation == nil {
		return actions
	}
	for slot := range g.memories {
		for _, attr := range observation.Keys() {
			if strings.HasPrefix(attr, MemoryPrefix) {
				continue
			}
			actions = append(actions, GateAction(slot, attr))
		}
	}
	return actions
}

func (g *GatingMemory) EndOfEpisode() bool {
	return g.base.EndOfEpisode()
}

func (g *GatingMemory) Reset() {
	g.base.Reset()
	g.memories = emptySlots(len(g.memories))
}

func (g *GatingMemory) StartNewEpisode() {
	g.base.StartNewEpisode()
	g.memories = emptySlots(len(g.memories))
}

func (g *GatingMemory) React(action *Action) float64 {
	if action.Name == "gate" {
		observation := g.base.GetObservation()
		g.memories[action.IntAttr("slot")] = observation.Attr(action.StringAttr("attribute"))
		return g.reward
	}
	return g.base.React(action)
}

// FixedLongTermMemory wraps an Environment with working memory and
// long-term memory slot vectors of fixed size. Store actions copy an
// observable attribute into long-term memory; retrieve actions copy a
// long-term slot into working memory. Only working memory is visible
// in the observation; the state additionally exposes long-term memory.
type FixedLongTermMemory struct {
	base   Environment
	reward float64
	wm     []interface{}
	ltm    []interface{}
}

var _ Environment = &FixedLongTermMemory{}

func NewFixedLongTermMemory(base Environment, wmSlots, ltmSlots int, reward float64) *FixedLongTermMemory {
	if base == nil {
		panic("long-term memory: nil wrapped environment")
	}
	if wmSlots < 1 || ltmSlots < 1 {
		panic("long-term memory: need at least one slot of each kind")
	}
	return &FixedLongTermMemory{
		base:   base,
		reward: reward,
		wm:     emptySlots(wmSlots),
		ltm:    emptySlots(ltmSlots),
	}
}

func (f *FixedLongTermMemory) GetState() *State {
	state := AugmentState(f.base.GetState(), f.wm, WMPrefix)
	return AugmentState(state, f.ltm, LTMPrefix)
}

func (f *FixedLongTermMemory) GetObservation() *State {
	return AugmentState(f.base.GetObservation(), f.wm, WMPrefix)
}

// GetActions appends store actions for every long-term slot and
// non-working-memory observable attribute, and retrieve actions for
// the full working-memory x long-term-memory slot product, regardless
// of current slot contents.
func (f *FixedLongTermMemory) GetActions() []*Action {
	actions := f.base.GetActions()
	if len(actions) == 0 {
		return actions
	}
	observation := f.base.GetObservation()
	if observation == nil {
		return actions
	}
	for slot := range f.ltm {
		for _, attr := range observation.Keys() {
			if strings.HasPrefix(attr, WMPrefix) {
				continue
			}
			actions = append(actions, StoreAction(slot, attr))
		}
	}
	for wmSlot := range f.wm {
		for ltmSlot := range f.ltm {
			actions = append(actions, RetrieveAction(wmSlot, ltmSlot))
		}
	}
	return actions
}

func (f *FixedLongTermMemory) EndOfEpisode() bool {
	return f.base.EndOfEpisode()
}

func (f *FixedLongTermMemory) Reset() {
	f.base.Reset()
	f.wm = emptySlots(len(f.wm))
	f.ltm = emptySlots(len(f.ltm))
}

func (f *FixedLongTermMemory) StartNewEpisode() {
	f.base.StartNewEpisode()
	f.wm = emptySlots(len(f.wm))
	f.ltm = emptySlots(len(f.ltm))
}

func (f *FixedLongTermMemory) React(action *Action) float64 {
	switch action.Name {
	case "store":
		observation := f.base.GetObservation()
		f.ltm[action.IntAttr("slot")] = observation.Attr(action.StringAttr("attribute"))
		return f.reward
	case "retrieve":
		f.wm[action.IntAttr("wm_slot")] = f.ltm[action.IntAttr("ltm_slot")]
		return f.reward
	default:
		return f.base.React(action)
	}
}
