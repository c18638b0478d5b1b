package registry

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type dotShape struct {
	kind string
}

func (d *dotShape) Kind() string                 { return d.kind }
func (d *dotShape) Title() string                { return "Dot " + d.kind }
func (d *dotShape) Decode(node *yaml.Node) error { return nil }
func (d *dotShape) Draw(c *Canvas) error         { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-dot", func() Shape { return &dotShape{kind: "test-dot"} })

	if !Exists("test-dot") {
		t.Fatal("Exists(test-dot) = false after Register")
	}

	s, err := Create("test-dot")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.Kind() != "test-dot" {
		t.Errorf("Kind() = %q, expected test-dot", s.Kind())
	}

	var found bool
	for _, info := range List() {
		if info.Kind == "test-dot" {
			found = true
			if info.Title != "Dot test-dot" {
				t.Errorf("Title = %q, expected %q", info.Title, "Dot test-dot")
			}
		}
	}
	if !found {
		t.Error("List() does not include test-dot")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-twice", func() Shape { return &dotShape{kind: "test-twice"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() did not panic")
		}
	}()
	Register("test-twice", func() Shape { return &dotShape{kind: "test-twice"} })
}

func TestCreateUnknown(t *testing.T) {
	if Exists("test-missing") {
		t.Fatal("Exists(test-missing) = true")
	}
	_, err := Create("test-missing")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Create() error = %v, expected ErrUnknownKind", err)
	}
	if !strings.HasPrefix(err.Error(), "registry: ") {
		t.Errorf("Create() error = %q, expected the registry: prefix", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Shape { return &dotShape{kind: "test-b"} })
	Register("test-a", func() Shape { return &dotShape{kind: "test-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Kind > list[i].Kind {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Kind, list[i].Kind)
		}
	}
}
