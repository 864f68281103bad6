package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts mesh ids into random readable names. Ids are small integers
// that all look alike in a log; a name like "BraveOtter" is much easier to
// follow through a sequence of flips. It flagrantly leaks memory but generates
// the names lazily, so it's not a problem unless you're actually using it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for key. Keys of different types never share
// a name, so TriangleID(3) and EdgeID(3) are told apart.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

// Forget drops every memoized name. Useful between two triangulations in the
// same process, since ids are reused.
func Forget() {
	memo = make(map[interface{}]string)
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
