package container_test

import (
	"errors"
	"testing"

	"github.com/armature-go/armature/framework/container"
	"github.com/armature-go/armature/framework/reflection"
)

// ── fixture types ─────────────────────────────────────────────────────────────

type Database struct{ DSN string }

func NewDatabase() *Database { return &Database{DSN: "sqlite::memory:"} }

type Repo struct{ DB *Database }

func NewRepo(db *Database) *Repo { return &Repo{DB: db} }

type Service struct{ Repo *Repo }

func NewService(repo *Repo) *Service { return &Service{Repo: repo} }

type Mailer struct {
	From    string
	Retries int
}

func NewMailer(from string, retries int) *Mailer {
	return &Mailer{From: from, Retries: retries}
}

// TypeA and TypeB need each other — the canonical dependency cycle.
type TypeA struct{ B *TypeB }
type TypeB struct{ A *TypeA }

func NewTypeA(b *TypeB) *TypeA { return &TypeA{B: b} }
func NewTypeB(a *TypeA) *TypeB { return &TypeB{A: a} }

// Queue is only ever declared abstract in tests.
type Queue interface{ Push(job string) }

type Flaky struct{}

var errFlaky = errors.New("flaky constructor blew up")

func NewFlaky() (*Flaky, error) { return nil, errFlaky }

// ── helpers ───────────────────────────────────────────────────────────────────

// withMailerParams declares NewMailer's scalar parameters: (from, retries=0).
func withMailerParams() []reflection.Option {
	return []reflection.Option{
		reflection.Params("from", "retries"),
		reflection.Defaults(map[string]any{"retries": 0}),
	}
}

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	return container.New(reflection.NewRegistry())
}

func mustGet(t *testing.T, c *container.Container, id string) any {
	t.Helper()
	v, err := c.Get(id)
	if err != nil {
		t.Fatalf("Get(%q): unexpected error: %v", id, err)
	}
	return v
}
