package traverse

import "github.com/oasgraph/oasast/source"

// dispatch runs the six-step hook sequence for one node: generic enter,
// kind-specific enter, kind-specific main hook, children (via walkChildren,
// unless a prior step asked to skip), kind-specific leave, generic leave.
//
// A Break at any step stops immediately: no later step for this node runs,
// children are not walked, and the caller propagates the stop without
// running its own remaining steps either (including its leave hooks) -
// dispatch reports this by returning stopped=true.
func dispatch(path *NodePath, kind string, v *Visitor, walkChildren func() (stopped bool, err error)) (stopped bool, err error) {
	if v == nil {
		if walkChildren == nil {
			return false, nil
		}
		return walkChildren()
	}

	skip := false

	action, err := runHook(v.EnterAny, path)
	if err != nil || action == Break {
		return true, err
	}
	if action == SkipChildren {
		skip = true
	}

	if fn, ok := v.enter[kind]; ok {
		action, err = runHook(fn, path)
		if err != nil || action == Break {
			return true, err
		}
		if action == SkipChildren {
			skip = true
		}
	}

	if fn, ok := v.on[kind]; ok {
		action, err = runHook(fn, path)
		if err != nil || action == Break {
			return true, err
		}
		if action == SkipChildren {
			skip = true
		}
	}

	if !skip && walkChildren != nil {
		stopped, err := walkChildren()
		if err != nil || stopped {
			return true, err
		}
	}

	if fn, ok := v.leave[kind]; ok {
		action, err = runHook(fn, path)
		if err != nil || action == Break {
			return true, err
		}
	}

	action, err = runHook(v.LeaveAny, path)
	if err != nil || action == Break {
		return true, err
	}

	return false, nil
}

// visitOptional dispatches an optional single-object field (a
// FieldSource[*T]-backed slot) when present, under the given field name.
func visitOptional[T any](path *NodePath, v *Visitor, fieldName, kind string, value *T, walk func(*NodePath, *T, *Visitor) (bool, error)) (bool, error) {
	if value == nil {
		return false, nil
	}
	child := path.CreateChild(value, kind, fieldName, nil)
	return walk(child, value, v)
}

// visitList dispatches every element of a slice field under fieldName, each
// addressed by its index.
func visitList[T any](path *NodePath, v *Visitor, fieldName, kind string, items []T, walk func(*NodePath, T, *Visitor) (bool, error)) (bool, error) {
	for i, item := range items {
		child := path.CreateChild(item, kind, fieldName, i)
		stopped, err := walk(child, item, v)
		if err != nil || stopped {
			return true, err
		}
	}
	return false, nil
}

// visitOrderedMap dispatches every entry of an ordered-map field under
// fieldName, each addressed by its string key.
func visitOrderedMap[T any](path *NodePath, v *Visitor, fieldName, kind string, m source.OrderedMap[T], walk func(*NodePath, T, *Visitor) (bool, error)) (bool, error) {
	for _, entry := range m {
		child := path.CreateChild(entry.Value, kind, fieldName, entry.Key.Value)
		stopped, err := walk(child, entry.Value, v)
		if err != nil || stopped {
			return true, err
		}
	}
	return false, nil
}

// visitTransparentMap dispatches every entry of an ordered-map field that is
// itself a pure-wrapper object (Paths, Callback): the wrapper contributes no
// field-name token of its own, so children chain directly off path with only
// a key token appended.
func visitTransparentMap[T any](path *NodePath, v *Visitor, kind string, m source.OrderedMap[T], walk func(*NodePath, T, *Visitor) (bool, error)) (bool, error) {
	for _, entry := range m {
		child := path.CreateChild(entry.Value, kind, "", entry.Key.Value)
		stopped, err := walk(child, entry.Value, v)
		if err != nil || stopped {
			return true, err
		}
	}
	return false, nil
}

// visitRef dispatches a $ref-or-inline-value slot: the Reference when the
// slot holds one, otherwise the inline value, under a single field position
// (the slot contributes exactly one child node either way).
func visitRef[R any, T any](path *NodePath, v *Visitor, fieldName, refKind, valueKind string, slot *source.Referenceable[R, T], walkRef func(*NodePath, *R, *Visitor) (bool, error), walkValue func(*NodePath, *T, *Visitor) (bool, error)) (bool, error) {
	if slot == nil {
		return false, nil
	}
	if slot.IsReference() {
		child := path.CreateChild(slot.Ref, refKind, fieldName, nil)
		return walkRef(child, slot.Ref, v)
	}
	if slot.Value == nil {
		return false, nil
	}
	child := path.CreateChild(slot.Value, valueKind, fieldName, nil)
	return walkValue(child, slot.Value, v)
}

// visitRefList dispatches a list of $ref-or-inline slots under fieldName,
// each addressed by its index.
func visitRefList[R any, T any](path *NodePath, v *Visitor, fieldName, refKind, valueKind string, slots []*source.Referenceable[R, T], walkRef func(*NodePath, *R, *Visitor) (bool, error), walkValue func(*NodePath, *T, *Visitor) (bool, error)) (bool, error) {
	for i, slot := range slots {
		if slot == nil {
			continue
		}
		var child *NodePath
		var stopped bool
		var err error
		if slot.IsReference() {
			child = path.CreateChild(slot.Ref, refKind, fieldName, i)
			stopped, err = walkRef(child, slot.Ref, v)
		} else if slot.Value != nil {
			child = path.CreateChild(slot.Value, valueKind, fieldName, i)
			stopped, err = walkValue(child, slot.Value, v)
		}
		if err != nil || stopped {
			return true, err
		}
	}
	return false, nil
}

// visitRefMap dispatches an ordered map of $ref-or-inline slots under
// fieldName, each addressed by its string key.
func visitRefMap[R any, T any](path *NodePath, v *Visitor, fieldName, refKind, valueKind string, m source.OrderedMap[*source.Referenceable[R, T]], walkRef func(*NodePath, *R, *Visitor) (bool, error), walkValue func(*NodePath, *T, *Visitor) (bool, error)) (bool, error) {
	for _, entry := range m {
		slot := entry.Value
		if slot == nil {
			continue
		}
		var child *NodePath
		var stopped bool
		var err error
		if slot.IsReference() {
			child = path.CreateChild(slot.Ref, refKind, fieldName, entry.Key.Value)
			stopped, err = walkRef(child, slot.Ref, v)
		} else if slot.Value != nil {
			child = path.CreateChild(slot.Value, valueKind, fieldName, entry.Key.Value)
			stopped, err = walkValue(child, slot.Value, v)
		}
		if err != nil || stopped {
			return true, err
		}
	}
	return false, nil
}
