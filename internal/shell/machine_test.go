package shell_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eggburst/internal/shell"
)

var _ = Describe("Machine", func() {
	var (
		m       *shell.Machine
		notices []bool
	)

	record := func() {
		notices = nil
		m.OnOpenChange(func(open bool) { notices = append(notices, open) })
	}

	Context("one-way variant", func() {
		BeforeEach(func() {
			m = shell.NewMachine(shell.OneWay)
			record()
		})

		It("starts idle and inactive", func() {
			Expect(m.State()).To(Equal(shell.Idle))
			Expect(m.Snapshot()).To(Equal(shell.Snapshot{}))
			Expect(m.Active()).To(BeFalse())
			Expect(m.HoverEnabled()).To(BeTrue())
		})

		It("highlights both shells on pointer enter", func() {
			Expect(m.Fire(shell.PointerEnter)).To(BeTrue())
			Expect(m.State()).To(Equal(shell.Hovered))
			Expect(m.Snapshot().Hovered).To(BeTrue())
			Expect(notices).To(BeEmpty())
		})

		It("returns to idle on pointer leave", func() {
			m.Fire(shell.PointerEnter)
			Expect(m.Fire(shell.PointerLeave)).To(BeTrue())
			Expect(m.State()).To(Equal(shell.Idle))
		})

		It("ignores leave while idle", func() {
			Expect(m.Fire(shell.PointerLeave)).To(BeFalse())
			Expect(m.State()).To(Equal(shell.Idle))
		})

		It("opens from hovered and notifies once", func() {
			m.Fire(shell.PointerEnter)
			Expect(m.Fire(shell.Click)).To(BeTrue())
			Expect(m.Snapshot()).To(Equal(shell.Snapshot{Hovered: false, Open: true}))
			Expect(m.Active()).To(BeTrue())
			Expect(notices).To(Equal([]bool{true}))
		})

		It("opens straight from idle", func() {
			Expect(m.Fire(shell.Click)).To(BeTrue())
			Expect(m.State()).To(Equal(shell.Open))
		})

		It("stays open and drops hover input afterwards", func() {
			m.Fire(shell.PointerEnter)
			m.Fire(shell.Click)

			for _, ev := range []shell.Event{shell.PointerEnter, shell.PointerLeave, shell.Click, shell.PointerEnter} {
				Expect(m.Fire(ev)).To(BeFalse(), "event %s", ev)
			}
			Expect(m.Snapshot()).To(Equal(shell.Snapshot{Open: true}))
			Expect(m.HoverEnabled()).To(BeFalse())
			Expect(notices).To(HaveLen(1))
		})
	})

	Context("toggle variant", func() {
		BeforeEach(func() {
			m = shell.NewMachine(shell.Toggle)
			record()
		})

		It("closes on a second click and re-enables hover", func() {
			m.Fire(shell.Click)
			Expect(m.Fire(shell.PointerEnter)).To(BeFalse())

			Expect(m.Fire(shell.Click)).To(BeTrue())
			Expect(m.State()).To(Equal(shell.Idle))
			Expect(m.Active()).To(BeFalse())
			Expect(m.HoverEnabled()).To(BeTrue())
			Expect(notices).To(Equal([]bool{true, false}))

			Expect(m.Fire(shell.PointerEnter)).To(BeTrue())
			Expect(m.State()).To(Equal(shell.Hovered))
		})
	})

	DescribeTable("ParseVariant",
		func(in string, want shell.Variant, ok bool) {
			got, err := shell.ParseVariant(in)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("empty defaults to one-way", "", shell.OneWay, true),
		Entry("oneway", "oneway", shell.OneWay, true),
		Entry("toggle", "Toggle", shell.Toggle, true),
		Entry("unknown", "flip", shell.OneWay, false),
	)
})
