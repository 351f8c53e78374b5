// Package font describes fonts by family, size and symbolic traits and
// derives bold or italic variants through a family catalog.
package font

import (
	"fmt"
	"strings"
	"sync"
)

// SymbolicTraits is a set of stylistic font traits.
type SymbolicTraits uint32

const (
	Italic       SymbolicTraits = 1 << 0
	Bold         SymbolicTraits = 1 << 1
	Expanded     SymbolicTraits = 1 << 5
	Condensed    SymbolicTraits = 1 << 6
	MonoSpace    SymbolicTraits = 1 << 10
	Vertical     SymbolicTraits = 1 << 11
	UIOptimized  SymbolicTraits = 1 << 12
	TightLeading SymbolicTraits = 1 << 15
	LooseLeading SymbolicTraits = 1 << 16
)

var traitNames = []struct {
	trait SymbolicTraits
	name  string
}{
	{Italic, "italic"},
	{Bold, "bold"},
	{Expanded, "expanded"},
	{Condensed, "condensed"},
	{MonoSpace, "monospace"},
	{Vertical, "vertical"},
	{UIOptimized, "uiOptimized"},
	{TightLeading, "tightLeading"},
	{LooseLeading, "looseLeading"},
}

// Contains reports whether every trait of other is in t.
func (t SymbolicTraits) Contains(other SymbolicTraits) bool {
	return t&other == other
}

func (t SymbolicTraits) String() string {
	var names []string
	for _, tn := range traitNames {
		if t.Contains(tn.trait) {
			names = append(names, tn.name)
		}
	}
	if len(names) == 0 {
		return "regular"
	}
	return strings.Join(names, "|")
}

// Family is a font family and the traits its faces can carry.
type Family struct {
	Name      string
	Supported SymbolicTraits
}

var (
	mu       sync.RWMutex
	families = map[string]Family{}
)

func init() {
	for _, f := range []Family{
		{Name: "System", Supported: Italic | Bold | Expanded | Condensed | MonoSpace | UIOptimized | TightLeading | LooseLeading},
		{Name: "Helvetica Neue", Supported: Italic | Bold | Condensed},
		{Name: "Courier", Supported: Italic | Bold | MonoSpace},
		{Name: "Menlo", Supported: Italic | Bold | MonoSpace},
		{Name: "Georgia", Supported: Italic | Bold},
		{Name: "Zapfino"},
	} {
		Register(f)
	}
}

// Register adds or replaces a family in the catalog.
func Register(f Family) {
	mu.Lock()
	defer mu.Unlock()
	families[strings.ToLower(f.Name)] = f
}

// Lookup finds a registered family by name, ignoring case.
func Lookup(name string) (Family, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := families[strings.ToLower(name)]
	return f, ok
}

// Descriptor identifies one face of a family at a point size.
type Descriptor struct {
	Family string
	Size   float64
	Traits SymbolicTraits
}

// WithSymbolicTraits returns the descriptor with its traits replaced. It
// reports false when the family is unknown, lacks one of the traits, or the
// traits contradict each other.
func (d Descriptor) WithSymbolicTraits(traits SymbolicTraits) (Descriptor, bool) {
	if traits.Contains(Expanded|Condensed) || traits.Contains(TightLeading|LooseLeading) {
		return Descriptor{}, false
	}

	family, ok := Lookup(d.Family)
	if !ok || !family.Supported.Contains(traits) {
		return Descriptor{}, false
	}

	d.Family = family.Name
	d.Traits = traits
	return d, true
}

// Font is a resolved descriptor.
type Font struct {
	descriptor Descriptor
}

// New returns a regular face of a registered family.
func New(family string, size float64) (Font, bool) {
	d, ok := Descriptor{Family: family, Size: size}.WithSymbolicTraits(0)
	if !ok {
		return Font{}, false
	}
	return Font{descriptor: d}, true
}

func (f Font) Descriptor() Descriptor { return f.descriptor }

func (f Font) Family() string { return f.descriptor.Family }

func (f Font) Size() float64 { return f.descriptor.Size }

func (f Font) Traits() SymbolicTraits { return f.descriptor.Traits }

// WithTraits returns the same family and size with traits replacing the
// current ones.
func (f Font) WithTraits(traits SymbolicTraits) (Font, bool) {
	d, ok := f.descriptor.WithSymbolicTraits(traits)
	if !ok {
		return Font{}, false
	}
	return Font{descriptor: d}, true
}

// Bold returns the bold face. Other traits are dropped.
func (f Font) Bold() (Font, bool) { return f.WithTraits(Bold) }

// Italic returns the italic face. Other traits are dropped.
func (f Font) Italic() (Font, bool) { return f.WithTraits(Italic) }

func (f Font) String() string {
	return fmt.Sprintf("%s %gpt %s", f.descriptor.Family, f.descriptor.Size, f.descriptor.Traits)
}
