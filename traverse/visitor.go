package traverse

import (
	"errors"

	"github.com/oasgraph/oasast/oaserrors"
)

// Hook is the signature every registered callback implements: inspect the
// node at path and decide how the engine should proceed.
type Hook func(path *NodePath, node any) (Action, error)

// Visitor is a registry of callbacks keyed by node kind (e.g. "Operation",
// "Schema"), plus two hooks that fire for every node regardless of kind.
// A zero-value Visitor is usable; NewVisitor is a convenience constructor.
type Visitor struct {
	// EnterAny fires before any kind-specific hook, for every node visited.
	EnterAny Hook
	// LeaveAny fires after any kind-specific leave hook, for every node
	// visited. Only a Break return has meaning here.
	LeaveAny Hook

	enter map[string]Hook
	on    map[string]Hook
	leave map[string]Hook
}

// NewVisitor returns an empty, ready-to-register Visitor.
func NewVisitor() *Visitor {
	return &Visitor{
		enter: make(map[string]Hook),
		on:    make(map[string]Hook),
		leave: make(map[string]Hook),
	}
}

func (v *Visitor) ensureMaps() {
	if v.enter == nil {
		v.enter = make(map[string]Hook)
	}
	if v.on == nil {
		v.on = make(map[string]Hook)
	}
	if v.leave == nil {
		v.leave = make(map[string]Hook)
	}
}

// OnEnter registers a hook that fires for kind before its main hook, after
// EnterAny. Returns v for chaining.
func (v *Visitor) OnEnter(kind string, fn Hook) *Visitor {
	v.ensureMaps()
	v.enter[kind] = fn
	return v
}

// On registers kind's main hook, fired after OnEnter and before children are
// walked. Most visitors only need this one.
func (v *Visitor) On(kind string, fn Hook) *Visitor {
	v.ensureMaps()
	v.on[kind] = fn
	return v
}

// OnLeave registers a hook that fires for kind after its children have been
// walked, before LeaveAny. Only a Break return has meaning here.
func (v *Visitor) OnLeave(kind string, fn Hook) *Visitor {
	v.ensureMaps()
	v.leave[kind] = fn
	return v
}

func runHook(fn Hook, path *NodePath) (Action, error) {
	if fn == nil {
		return Continue, nil
	}
	action, err := fn(path, path.Node)
	if err != nil {
		var ve *oaserrors.VisitorError
		if !errors.As(err, &ve) {
			err = &oaserrors.VisitorError{Path: path.FormatPath(JSONPointer), Cause: err}
		}
		return Break, err
	}
	if !action.IsValid() {
		action = Continue
	}
	return action, nil
}

// MergeVisitors composes several visitors into one. At every hook point the
// composite calls each member in turn: if any member answers Break, the
// composite answers Break immediately (remaining members are not offered
// this hook, and the whole traversal stops); otherwise if any member asked
// to skip this node's children, the composite does too. A member is offered
// every hook for as long as the traversal runs - there is no per-member
// retirement - so a Break from one member ends the run for all of them.
func MergeVisitors(members ...*Visitor) *Visitor {
	composite := NewVisitor()
	composite.EnterAny = mergeStage(func(m *Visitor) Hook { return m.EnterAny }, members)
	composite.LeaveAny = mergeStage(func(m *Visitor) Hook { return m.LeaveAny }, members)

	kinds := make(map[string]bool)
	for _, m := range members {
		for k := range m.enter {
			kinds[k] = true
		}
		for k := range m.on {
			kinds[k] = true
		}
		for k := range m.leave {
			kinds[k] = true
		}
	}
	for kind := range kinds {
		k := kind
		composite.enter[k] = mergeStage(func(m *Visitor) Hook { return m.enter[k] }, members)
		composite.on[k] = mergeStage(func(m *Visitor) Hook { return m.on[k] }, members)
		composite.leave[k] = mergeStage(func(m *Visitor) Hook { return m.leave[k] }, members)
	}
	return composite
}

func mergeStage(pick func(*Visitor) Hook, members []*Visitor) Hook {
	return func(path *NodePath, node any) (Action, error) {
		skip := false
		for _, member := range members {
			action, err := runHook(pick(member), path)
			if err != nil {
				return Break, err
			}
			if action == Break {
				return Break, nil
			}
			if action == SkipChildren {
				skip = true
			}
		}
		if skip {
			return SkipChildren, nil
		}
		return Continue, nil
	}
}
