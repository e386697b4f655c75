package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sinkhole/internal/engine"
	"github.com/san-kum/sinkhole/internal/field"
	"github.com/san-kum/sinkhole/internal/palette"
	"github.com/san-kum/sinkhole/internal/render"
)

var _ = Describe("Controller", func() {
	var ctrl *engine.Controller

	BeforeEach(func() {
		ctrl = engine.New(field.DefaultPadding, palette.Bright)
		ctrl.Resize(40, 30)
	})

	It("builds a chain for the viewport on resize", func() {
		c := ctrl.Chain()
		Expect(c.Root()).To(Equal(field.Field{X: 0, Y: 0, W: 40, H: 30, FG: palette.Red, BG: palette.Yellow}))
		Expect(c.Len()).To(Equal(4))
		Expect(ctrl.Dirty()).To(BeTrue())
	})

	It("renders only when something changed", func() {
		first := ctrl.Frame(30)
		Expect(first).To(HaveLen(30))
		Expect(ctrl.Dirty()).To(BeFalse())

		Expect(ctrl.Pointer(20, 15)).To(BeTrue())
		Expect(ctrl.Dirty()).To(BeTrue())
		ctrl.Frame(30)

		Expect(ctrl.Pointer(20, 15)).To(BeFalse())
		Expect(ctrl.Dirty()).To(BeFalse())
	})

	It("clamps the first nested field to the padding at the origin", func() {
		ctrl.Pointer(0, 0)
		c := ctrl.Chain()
		Expect(c.Fields[1].X).To(Equal(field.DefaultPadding))
		Expect(c.Fields[1].Y).To(Equal(field.DefaultPadding))
	})

	It("recolors on every tick and returns after a full cycle", func() {
		before := ctrl.Chain()
		for i := 0; i < palette.Bright.Len(); i++ {
			Expect(ctrl.Tick()).To(BeTrue())
		}
		Expect(ctrl.Chain().Fields).To(Equal(before.Fields))
	})

	It("discards moved state on resize", func() {
		ctrl.Pointer(0, 0)
		ctrl.Frame(30)
		ctrl.Resize(40, 30)

		Expect(ctrl.Dirty()).To(BeTrue())
		Expect(ctrl.Chain().Fields[1].X).To(Equal(2 * field.DefaultPadding))
	})

	It("degrades to a single field on tiny viewports", func() {
		ctrl.Resize(12, 8)
		Expect(ctrl.Chain().Len()).To(Equal(1))
		Expect(ctrl.Pointer(5, 5)).To(BeFalse())
	})

	It("produces full-width rows in the view", func() {
		rows := ctrl.Frame(30)
		for _, r := range rows {
			Expect(render.Width(r)).To(Equal(40))
		}
		Expect(ctrl.View(30)).NotTo(BeEmpty())
	})

	It("does not mutate the returned chain copy", func() {
		c := ctrl.Chain()
		c.Fields[1].X = 99
		Expect(ctrl.Chain().Fields[1].X).NotTo(Equal(99))
	})
})
