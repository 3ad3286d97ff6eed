package charset

import (
	"sort"
)

// UnicodeLabel is the label of the unicode side of every supported pair.
const UnicodeLabel = "utf-8"

// Pair names the legacy encoding and its unicode counterpart.
type Pair struct {
	Legacy  string
	Unicode string
}

// Registry maps the command-line encoding names to their label pairs.
type Registry interface {
	Register(name string, pair Pair)
	Lookup(name string) (Pair, bool)
	Names() []string
}

type registry struct {
	pairs map[string]Pair
}

// NewRegistry creates a registry pre-filled with cp1251, koi8r and cp866
func NewRegistry() Registry {
	r := &registry{
		pairs: make(map[string]Pair),
	}

	r.Register("cp1251", Pair{Legacy: "windows-1251", Unicode: UnicodeLabel})
	r.Register("koi8r", Pair{Legacy: "koi8-r", Unicode: UnicodeLabel})
	r.Register("cp866", Pair{Legacy: "ibm866", Unicode: UnicodeLabel})

	return r
}

// Register registers a pair with a name
func (r *registry) Register(name string, pair Pair) {
	r.pairs[name] = pair
}

// Lookup retrieves a pair by its exact name
func (r *registry) Lookup(name string) (Pair, bool) {
	pair, ok := r.pairs[name]
	return pair, ok
}

// Names returns the registered names in sorted order
func (r *registry) Names() []string {
	names := make([]string, 0, len(r.pairs))
	for name := range r.pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
