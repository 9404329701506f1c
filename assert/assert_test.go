package assert

import (
	"testing"

	"github.com/oomph-ac/slide/oerror"
)

func TestIsTruePanicsWithSlideError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(*oerror.SlideError)
		if !ok {
			t.Fatalf("expected *oerror.SlideError, got %T", r)
		}
		if err.Error() != "missing body for player steve" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}()
	IsTrue(false, "missing body for player %s", "steve")
}

func TestIsTrueNoPanic(t *testing.T) {
	IsTrue(true, "never")
}
