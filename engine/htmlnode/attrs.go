package htmlnode

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Attributes is a mapping of attribute names to values, which remembers the
// order of insertion. Re-setting an existing name keeps its original position.
//
// A nil *Attributes is a valid, empty set of attributes.
type Attributes struct {
	m *linkedhashmap.Map
}

// NewAttributes creates a set of attributes from name/value pairs, i.e.
//
//     NewAttributes("src", "/img.png", "alt", "an image")
//
// A trailing name without a value is ignored.
func NewAttributes(kv ...string) *Attributes {
	attrs := &Attributes{m: linkedhashmap.New()}
	for i := 0; i+1 < len(kv); i += 2 {
		attrs.m.Put(kv[i], kv[i+1])
	}
	return attrs
}

// Set sets the value of attribute name.
func (attrs *Attributes) Set(name, value string) {
	if attrs.m == nil {
		attrs.m = linkedhashmap.New()
	}
	attrs.m.Put(name, value)
}

// Get returns the value of attribute name and whether it is set.
func (attrs *Attributes) Get(name string) (string, bool) {
	if attrs == nil || attrs.m == nil {
		return "", false
	}
	v, found := attrs.m.Get(name)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of attributes.
func (attrs *Attributes) Len() int {
	if attrs == nil || attrs.m == nil {
		return 0
	}
	return attrs.m.Size()
}

// Names returns the attribute names in insertion order.
func (attrs *Attributes) Names() []string {
	if attrs.Len() == 0 {
		return nil
	}
	keys := attrs.m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Each calls f for every attribute, in insertion order.
func (attrs *Attributes) Each(f func(name, value string)) {
	if attrs.Len() == 0 {
		return
	}
	it := attrs.m.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// String renders the attributes the way they appear within a start tag.
func (attrs *Attributes) String() string {
	return PropsToHTML(attrs)
}

// PropsToHTML renders each attribute as ` name="value"`, in insertion order.
// It returns an empty string for nil or empty attributes.
func PropsToHTML(attrs *Attributes) string {
	if attrs.Len() == 0 {
		return ""
	}
	var b strings.Builder
	writeProps(&b, attrs)
	return b.String()
}

func writeProps(b *strings.Builder, attrs *Attributes) {
	attrs.Each(func(name, value string) {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(value)
		b.WriteByte('"')
	})
}
