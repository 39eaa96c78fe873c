package container

import (
	"reflect"

	"github.com/armature-go/armature/framework/reflection"
)

// resolve is the recursive resolution algorithm. The caller must hold
// resolveMu; nested dependencies recurse here directly.
//
// transient skips the singleton store for id itself (Make semantics);
// nested dependencies always take the cached path.
func (c *Container) resolve(id string, overrides map[string]any, transient bool) (any, error) {
	if !transient {
		c.mu.RLock()
		inst, ok := c.instances[id]
		c.mu.RUnlock()
		if ok {
			return inst, nil
		}
	}

	info, known := c.types.Describe(id)
	if !known {
		// A deferred loader may have bound an instance instead of
		// registering a type.
		if !transient {
			c.mu.RLock()
			inst, ok := c.instances[id]
			c.mu.RUnlock()
			if ok {
				return inst, nil
			}
		}
		return nil, &NotFoundError{ID: id}
	}

	if _, busy := c.resolving[id]; busy {
		return nil, &CircularDependencyError{ID: id}
	}
	c.resolving[id] = struct{}{}
	// Released on every exit path, so a failed resolution never poisons
	// future attempts at the same identifier.
	defer delete(c.resolving, id)

	if !info.Instantiable() {
		return nil, &ContainerError{ID: id, Reason: "declared type " + info.Type().String() + " is not instantiable"}
	}

	args, err := c.arguments(info.Params(), overrides)
	if err != nil {
		return nil, err
	}

	instance, err := info.Construct(args)
	if err != nil {
		return nil, err
	}

	if !transient {
		c.mu.Lock()
		c.instances[id] = instance
		c.mu.Unlock()
	}
	return instance, nil
}

// arguments assembles the positional argument list for a parameter set.
//
// Per-parameter precedence: caller override by exact name, then recursive
// resolution of a constructible declared type (through the singleton
// path, no overrides), then a declared default. A parameter with none of
// the three ends the list — the construction call itself then raises Go's
// native wrong-arity failure, which is not converted into a container
// error.
func (c *Container) arguments(params []reflection.Param, overrides map[string]any) ([]reflect.Value, error) {
	args := make([]reflect.Value, 0, len(params))
	for _, p := range params {
		if p.Name != "" {
			if v, ok := overrides[p.Name]; ok {
				// Caller-supplied values are trusted as-is.
				args = append(args, argValue(v, p.Type))
				continue
			}
		}
		if p.ID != "" {
			dep, err := c.resolve(p.ID, nil, false)
			if err != nil {
				return nil, err
			}
			args = append(args, argValue(dep, p.Type))
			continue
		}
		if p.HasDefault {
			args = append(args, argValue(p.Default, p.Type))
			continue
		}
		break
	}
	return args, nil
}

// argValue wraps v for a reflect call. Only an untyped nil for a nilable
// parameter is normalized to the parameter type's zero value; everything
// else passes through verbatim.
func argValue(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
