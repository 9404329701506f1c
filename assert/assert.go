package assert

import "github.com/oomph-ac/slide/oerror"

// IsTrue panics with a formatted oerror if ok is false. It guards programmer errors such as
// a simulator built without its adapters, never runtime conditions.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
