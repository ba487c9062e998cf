// Package builtins describes the global declarations every program can refer to, like NaN or parseInt.
//
// The declarations are kept in an Artifact, a YAML file generated offline from a
// TypeScript declaration file by package dts and embedded in the binary.
// Types are stored structurally, so loading the artifact does not parse any TypeScript.
package builtins

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"github.com/benbjohnson/immutable"
	"github.com/cottand/tsck/frontend/infer"
	"github.com/cottand/tsck/frontend/types"
	"github.com/cottand/tsck/internal/log"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
	"sync"
)

var logger = log.DefaultLogger.With("section", "builtins")

//go:embed builtins.yaml
var embedded []byte

// Artifact is the serialised form of a set of global declarations
type Artifact struct {
	// Source is the declaration file the artifact was generated from
	Source  string   `yaml:"source,omitempty"`
	Globals []Global `yaml:"globals"`
}

// Global is a single declaration
type Global struct {
	Name string    `yaml:"name"`
	Kind string    `yaml:"kind"`
	Type *TypeNode `yaml:"type"`
}

// Decode reads an Artifact from YAML. Unknown fields are rejected, and so are
// globals whose type does not describe exactly one types.Type
func Decode(data []byte) (*Artifact, error) {
	artifact := &Artifact{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(artifact); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode builtins: %w", err)
	}
	for i, g := range artifact.Globals {
		if g.Name == "" {
			return nil, fmt.Errorf("decode builtins: global %d has no name", i)
		}
		switch g.Kind {
		case "", "const", "let", "var", "function":
		default:
			return nil, fmt.Errorf("decode builtins: global '%s' has unknown kind '%s'", g.Name, g.Kind)
		}
		if _, err := g.Type.Type(); err != nil {
			return nil, fmt.Errorf("decode builtins: global '%s': %w", g.Name, err)
		}
	}
	return artifact, nil
}

// Marshal writes the Artifact as YAML
func (a *Artifact) Marshal() ([]byte, error) {
	sb := &strings.Builder{}
	enc := yaml.NewEncoder(sb)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return nil, fmt.Errorf("encode builtins: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode builtins: %w", err)
	}
	return []byte(sb.String()), nil
}

// Bind builds the type of every global. When a name repeats, the first declaration wins
func (a *Artifact) Bind() (*Namespace, error) {
	ns := &Namespace{globals: immutable.NewSortedMap[string, types.Type](nil)}
	for _, g := range a.Globals {
		if _, ok := ns.globals.Get(g.Name); ok {
			logger.Debug("skipping redeclaration", "name", g.Name)
			continue
		}
		t, err := g.Type.Type()
		if err != nil {
			return nil, fmt.Errorf("bind builtins: global '%s': %w", g.Name, err)
		}
		ns.globals = ns.globals.Set(g.Name, t)
	}
	logger.Debug("bound builtins", "source", a.Source, "globals", ns.Len())
	return ns, nil
}

// Namespace holds the resolved types of a set of globals
type Namespace struct {
	globals *immutable.SortedMap[string, types.Type]
}

func (n *Namespace) Lookup(name string) (types.Type, bool) {
	if n == nil {
		return nil, false
	}
	return n.globals.Get(name)
}

func (n *Namespace) Len() int {
	if n == nil {
		return 0
	}
	return n.globals.Len()
}

// Names returns the names of the globals, sorted
func (n *Namespace) Names() []string {
	if n == nil {
		return nil
	}
	names := make([]string, 0, n.globals.Len())
	itr := n.globals.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		names = append(names, name)
	}
	return names
}

// Env returns a scope declaring every global, on top of outer
func (n *Namespace) Env(outer *infer.Env) *infer.Env {
	env := outer
	if env == nil {
		env = infer.NewEnv()
	}
	if n == nil {
		return env
	}
	itr := n.globals.Iterator()
	for !itr.Done() {
		name, t, _ := itr.Next()
		env = env.Declare(name, t)
	}
	return env
}

var loadEmbedded = sync.OnceValues(func() (*Namespace, error) {
	artifact, err := Decode(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded builtins: %w", err)
	}
	return artifact.Bind()
})

// Load returns the Namespace of the builtins embedded in the binary.
// It is only bound once, and the result is shared
func Load() (*Namespace, error) {
	return loadEmbedded()
}
