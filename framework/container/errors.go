package container

import "strconv"

// NotFoundError reports an identifier that names no bound instance and no
// registered constructible type. It is raised for the top-level Get/Make
// target and for any nested dependency discovered during resolution.
type NotFoundError struct{ ID string }

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	// Example: container: no binding or constructible type for "mailer"
	return "container: no binding or constructible type for " + strconv.Quote(e.ID)
}

// CircularDependencyError reports an identifier re-entered while its own
// resolution was still in progress.
type CircularDependencyError struct{ ID string }

// Error implements the error interface.
func (e *CircularDependencyError) Error() string {
	// Example: Circular dependency detected while resolving "TypeA"
	return "Circular dependency detected while resolving " + strconv.Quote(e.ID)
}

// ContainerError reports a container-level resolution failure that is
// neither a missing identifier nor a dependency cycle — an abstract
// declaration that cannot be constructed, a malformed callable shape, a
// missing method.
type ContainerError struct {
	ID     string
	Reason string
}

// Error implements the error interface.
func (e *ContainerError) Error() string {
	// Example: container: cannot resolve "Queue": declared type main.Queue is not instantiable
	return "container: cannot resolve " + strconv.Quote(e.ID) + ": " + e.Reason
}
