package grapher

import (
	"errors"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test010DefineAndLookupWithFallthrough(t *testing.T) {

	cv.Convey(`Lookup should search the frame itself, then fall through parent links to the root`, t, func() {

		env := NewInterp()
		glob := env.GlobalFrame()
		glob.Define("x", SexpInt(5))

		child := env.NewFrame(glob, "child")
		grandchild := env.NewFrame(child, "grandchild")

		val, err := grandchild.Lookup("x")
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(val, cv.ShouldResemble, SexpInt(5))

		cv.So(grandchild.Depth(), cv.ShouldEqual, 3)
	})
}

func Test011ShadowingNeverTouchesAncestors(t *testing.T) {

	cv.Convey(`Defining a name in a child frame shadows the ancestor binding without altering it`, t, func() {

		env := NewInterp()
		glob := env.GlobalFrame()
		glob.Define("x", SexpInt(1))

		child := env.NewFrame(glob, "child")
		child.Define("x", SexpInt(2))

		inChild, err := child.Lookup("x")
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(inChild, cv.ShouldResemble, SexpInt(2))

		inGlob, err := glob.Lookup("x")
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(inGlob, cv.ShouldResemble, SexpInt(1))
	})
}

func Test012UnboundLookupFails(t *testing.T) {

	cv.Convey(`Looking up a never-defined symbol in the rootmost frame should fail with UnboundSymbolError`, t, func() {

		env := NewInterp()
		_, err := env.GlobalFrame().Lookup("zebra")
		var unbound *UnboundSymbolError
		cv.So(errors.As(err, &unbound), cv.ShouldBeTrue)
		cv.So(unbound.Name, cv.ShouldEqual, "zebra")
	})
}

func Test013RedefinitionLeavesOneBinding(t *testing.T) {

	cv.Convey(`Redefining the same symbol twice in one frame leaves exactly one binding holding the second value`, t, func() {

		env := NewInterp()
		glob := env.GlobalFrame()
		before := len(glob.Bindings)

		glob.Define("x", SexpInt(1))
		glob.Define("x", SexpInt(2))

		cv.So(len(glob.Bindings), cv.ShouldEqual, before+1)
		val, err := glob.Lookup("x")
		cv.So(err, cv.ShouldEqual, nil)
		cv.So(val, cv.ShouldResemble, SexpInt(2))
	})
}

func Test014UpdateSymbolRebindsNearestOnly(t *testing.T) {

	cv.Convey(`UpdateSymbol should rebind the nearest existing binding on the chain, and refuse to create one`, t, func() {

		env := NewInterp()
		glob := env.GlobalFrame()
		glob.Define("x", SexpInt(1))
		child := env.NewFrame(glob, "child")

		err := child.UpdateSymbol("x", SexpInt(9))
		cv.So(err, cv.ShouldEqual, nil)
		inGlob, _ := glob.Lookup("x")
		cv.So(inGlob, cv.ShouldResemble, SexpInt(9))
		_, inChildMap := child.Bindings["x"]
		cv.So(inChildMap, cv.ShouldBeFalse)

		err = child.UpdateSymbol("nope", SexpInt(3))
		var unbound *UnboundSymbolError
		cv.So(errors.As(err, &unbound), cv.ShouldBeTrue)
	})
}
