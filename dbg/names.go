// Package dbg gives things readable names, so that pieces of a scene are easy
// to tell apart in logs and command line output.
package dbg

import (
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func init() {
	// Names are handed out in order of demand, so they are made
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

var title = cases.Title(language.English)

// Hands out a distinct name per key. Keys must be comparable, and are usually
// pointers. Names are never forgotten, so a Namer should live about as long as
// the things it names.
type Namer struct {
	mu    sync.Mutex
	names map[any]string
	used  map[string]bool
}

func NewNamer() *Namer {
	return &Namer{names: map[any]string{}, used: map[string]bool{}}
}

func (n *Namer) Name(key any) string {
	if isNil(key) {
		return "Ø"
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if name, ok := n.names[key]; ok {
		return name
	}
	name := n.fresh()
	n.names[key] = name
	n.used[name] = true
	return name
}

// Number of keys named so far
func (n *Namer) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.names)
}

func (n *Namer) fresh() string {
	words := 2
	for attempt := 0; ; attempt++ {
		// Widen the name if the two word space is getting crowded
		if attempt > 0 && attempt%8 == 0 {
			words++
		}
		name := title.String(petname.Generate(words, " "))
		name = removeSpaces(name)
		if !n.used[name] {
			return name
		}
	}
}

func removeSpaces(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}

func isNil(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

var defaultNamer = NewNamer()

// Name using a process wide Namer.
func Name(key any) string {
	return defaultNamer.Name(key)
}
