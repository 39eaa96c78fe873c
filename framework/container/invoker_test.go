package container_test

import (
	"errors"
	"testing"

	"github.com/armature-go/armature/framework/container"
	"github.com/armature-go/armature/framework/reflection"
)

// ── fixture callables ─────────────────────────────────────────────────────────

type ReportService struct{ DB *Database }

func NewReportService(db *Database) *ReportService { return &ReportService{DB: db} }

// Render mixes an injectable dependency with a named scalar.
func (s *ReportService) Render(db *Database, title string) string {
	return title + "@" + db.DSN
}

func (s *ReportService) Fail() error { return errFlaky }

// Label is registered as a static method of "reports".
func Label(db *Database, prefix string) string {
	return prefix + "/" + db.DSN
}

// Tagger is never registered as a type — its instances are only ever
// bound with Set.
type Tagger struct{ Prefix string }

func (t *Tagger) Tag(db *Database) string { return t.Prefix + db.DSN }

func newInvokerContainer(t *testing.T) *container.Container {
	t.Helper()
	c := newContainer(t)
	c.Types().MustRegister("db", NewDatabase)
	c.Types().MustRegister("reports", NewReportService,
		reflection.Method("Render", "db", "title"),
		reflection.Static("Label", Label, "db", "prefix"),
	)
	return c
}

// ── "Class::Method" shape ─────────────────────────────────────────────────────

func TestCall_ActionString_InstanceMethod(t *testing.T) {
	c := newInvokerContainer(t)

	got, err := c.Call("reports::Render", map[string]any{"title": "Q3"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "Q3@sqlite::memory:" {
		t.Errorf("got %q — injectable parameter or override not applied", got)
	}
}

func TestCall_ActionString_ResolvesReceiverThroughSingletonPath(t *testing.T) {
	c := newInvokerContainer(t)

	if _, err := c.Call("reports::Render", map[string]any{"title": "x"}); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !c.Resolved("reports") {
		t.Error("calling an instance method should cache the receiver like Get()")
	}
	svc := mustGet(t, c, "reports").(*ReportService)
	db := mustGet(t, c, "db").(*Database)
	if svc.DB != db {
		t.Error("the receiver's dependencies should come from the singleton store")
	}
}

func TestCall_ActionString_StaticMethod(t *testing.T) {
	c := newInvokerContainer(t)

	got, err := c.Call("reports::Label", map[string]any{"prefix": "v1"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "v1/sqlite::memory:" {
		t.Errorf("got %q", got)
	}
	if c.Resolved("reports") {
		t.Error("a static method must not construct an instance of the class")
	}
}

func TestCall_ActionString_UnknownClass(t *testing.T) {
	c := newInvokerContainer(t)

	_, err := c.Call("NoSuchClass::Render")
	var nf *container.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("got %v, want *NotFoundError", err)
	}
}

func TestCall_ActionString_UnknownMethod(t *testing.T) {
	c := newInvokerContainer(t)

	_, err := c.Call("reports::NoSuchMethod")
	var ce *container.ContainerError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want *ContainerError", err)
	}
}

func TestCall_ActionString_Malformed(t *testing.T) {
	c := newInvokerContainer(t)

	for _, action := range []string{"reports", "::Render", "reports::"} {
		_, err := c.Call(action)
		var ce *container.ContainerError
		if !errors.As(err, &ce) {
			t.Errorf("Call(%q): got %v, want *ContainerError", action, err)
		}
	}
}

func TestCall_ActionString_InstanceBoundWithSet(t *testing.T) {
	// An identifier bound only via Set() is still callable: the receiver
	// resolves through the same path Get() uses.
	c := newInvokerContainer(t)
	c.Set("svc", &ReportService{DB: &Database{DSN: "handmade"}})

	got, err := c.Call("svc::Render", map[string]any{"title": "set"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	// Method metadata applies because *ReportService is a registered type;
	// the db parameter injects from the container.
	if got != "set@sqlite::memory:" {
		t.Errorf("got %q", got)
	}
}

func TestCall_ActionString_SetInstanceOfUnregisteredType(t *testing.T) {
	c := newInvokerContainer(t)
	c.Set("tagger", &Tagger{Prefix: "env="})

	got, err := c.Call("tagger::Tag")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "env=sqlite::memory:" {
		t.Errorf("got %q — type injection should work without registered metadata", got)
	}
}

func TestCall_ActionString_SetInstanceUnknownMethod(t *testing.T) {
	c := newInvokerContainer(t)
	c.Set("svc", &ReportService{})

	_, err := c.Call("svc::Nope")
	var ce *container.ContainerError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want *ContainerError", err)
	}
}

// ── Bound shape ───────────────────────────────────────────────────────────────

func TestCall_BoundInstanceMethod(t *testing.T) {
	c := newInvokerContainer(t)
	svc := &ReportService{DB: &Database{DSN: "handmade"}}

	got, err := c.Call(container.Bound{Instance: svc, Method: "Render"},
		map[string]any{"title": "bound"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	// The receiver is the supplied instance; the db parameter still
	// injects from the container.
	if got != "bound@sqlite::memory:" {
		t.Errorf("got %q", got)
	}
}

func TestCall_BoundUnknownMethod(t *testing.T) {
	c := newInvokerContainer(t)

	_, err := c.Call(container.Bound{Instance: &Database{}, Method: "Nope"})
	var ce *container.ContainerError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want *ContainerError", err)
	}
}

// ── Func / closure shapes ─────────────────────────────────────────────────────

func TestCall_ClosureWithNamedParams(t *testing.T) {
	c := newInvokerContainer(t)

	got, err := c.Call(container.Fn(func(db *Database, label string) string {
		return label + ":" + db.DSN
	}, "db", "label"), map[string]any{"label": "primary"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "primary:sqlite::memory:" {
		t.Errorf("got %q", got)
	}
}

func TestCall_BareFuncTypeInjection(t *testing.T) {
	c := newInvokerContainer(t)

	got, err := c.Call(func(db *Database) string { return db.DSN })
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "sqlite::memory:" {
		t.Errorf("got %q", got)
	}
}

func TestCall_NotACallable(t *testing.T) {
	c := newInvokerContainer(t)

	_, err := c.Call(42)
	var ce *container.ContainerError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want *ContainerError", err)
	}
}

// ── Return and error plumbing ─────────────────────────────────────────────────

func TestCall_ErrorReturnPropagates(t *testing.T) {
	c := newInvokerContainer(t)

	_, err := c.Call("reports::Fail")
	if !errors.Is(err, errFlaky) {
		t.Errorf("got %v, want the method's own error", err)
	}
}

func TestCall_NoReturnValue(t *testing.T) {
	c := newInvokerContainer(t)

	ran := false
	got, err := c.Call(func() { ran = true })
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil for a void callable", got)
	}
	if !ran {
		t.Error("callable should have run")
	}
}

func TestCall_NilErrorReturnYieldsValue(t *testing.T) {
	c := newInvokerContainer(t)

	got, err := c.Call(func(db *Database) (string, error) { return db.DSN, nil })
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "sqlite::memory:" {
		t.Errorf("got %q", got)
	}
}

func TestCall_NestedResolutionCircularGuardApplies(t *testing.T) {
	c := newContainer(t)
	c.Types().MustRegister("TypeA", NewTypeA)
	c.Types().MustRegister("TypeB", NewTypeB)

	_, err := c.Call(func(a *TypeA) string { return "never" })
	var cd *container.CircularDependencyError
	if !errors.As(err, &cd) {
		t.Errorf("got %v, want *CircularDependencyError from nested resolution", err)
	}
}
