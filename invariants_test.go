package vec_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unsafeptr/vec"
)

var _ = Describe("Vec", func() {
	Describe("a new vector", func() {
		It("is empty with no allocation", func() {
			v := vec.New[int]()
			Expect(v.Len()).To(BeZero())
			Expect(v.Cap()).To(BeZero())
			Expect(v.IsEmpty()).To(BeTrue())
		})

		It("signals emptiness on Pop rather than panicking", func() {
			v := vec.New[int]()
			_, ok := v.Pop()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("length accounting", func() {
		It("always equals insertions minus removals and never exceeds capacity", func() {
			v := vec.New[int]()
			defer v.Release()

			inserted, removed := 0, 0
			for i := 0; i < 200; i++ {
				switch {
				case i%7 == 3 && v.Len() > 0:
					v.Remove(0)
					removed++
				case i%5 == 1:
					v.Insert(v.Len()/2, i)
					inserted++
				default:
					v.Push(i)
					inserted++
				}
				Expect(v.Len()).To(Equal(inserted - removed))
				Expect(v.Len()).To(BeNumerically("<=", v.Cap()))
			}
		})
	})

	Describe("order preservation", func() {
		It("reads back an insert at its index with neighbors shifted right", func() {
			v := vec.New[int]()
			defer v.Release()

			for _, x := range []int{10, 20, 30, 40} {
				v.Push(x)
			}
			v.Insert(2, 25)

			Expect(v.Get(2)).To(Equal(25))
			Expect(v.Slice()).To(Equal([]int{10, 20, 25, 30, 40}))
		})

		It("removing a fresh insert restores the prior state", func() {
			v := vec.New[int]()
			defer v.Release()
			for _, x := range []int{10, 20, 30} {
				v.Push(x)
			}
			before := slices.Clone(v.Slice())

			v.Insert(1, 99)
			Expect(v.Remove(1)).To(Equal(99))

			Expect(v.Len()).To(Equal(len(before)))
			Expect(v.Slice()).To(Equal(before))
		})
	})

	Describe("ownership transfer", func() {
		It("delivers every element exactly once across pops, removes, and a drain", func() {
			v := vec.New[int]()
			defer v.Release()

			inputs := make([]int, 60)
			for i := range inputs {
				inputs[i] = i
				v.Push(i)
			}

			var outputs []int
			for i := 0; i < 10; i++ {
				outputs = append(outputs, v.Remove(0))
			}
			for i := 0; i < 10; i++ {
				x, ok := v.Pop()
				Expect(ok).To(BeTrue())
				outputs = append(outputs, x)
			}
			for x := range v.Drain() {
				outputs = append(outputs, x)
			}

			Expect(outputs).To(ConsistOf(inputs))
			Expect(v.IsEmpty()).To(BeTrue())
		})
	})

	Describe("growth", func() {
		It("preserves contents and indices across reallocation", func() {
			v := vec.New[string]()
			defer v.Release()

			words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
			for i, w := range words {
				v.Push(w)
				for j := 0; j <= i; j++ {
					Expect(v.Get(j)).To(Equal(words[j]))
				}
			}
		})

		It("walks capacities 0, 1, 2, 4, 8, 16", func() {
			v := vec.New[int]()
			defer v.Release()

			caps := []int{v.Cap()}
			for i := 0; i < 16; i++ {
				v.Push(i)
				if c := v.Cap(); c != caps[len(caps)-1] {
					caps = append(caps, c)
				}
			}
			Expect(caps).To(Equal([]int{0, 1, 2, 4, 8, 16}))
		})
	})

	Describe("boundary scenarios", func() {
		It("starts at length zero and pops emptiness", func() {
			v := vec.New[int]()
			defer v.Release()
			Expect(v.Len()).To(BeZero())
			_, ok := v.Pop()
			Expect(ok).To(BeFalse())
		})

		It("yields three pushes back in order", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Push(1)
			v.Push(2)
			v.Push(3)

			Expect(v.Len()).To(Equal(3))
			var got []int
			for x := range v.Values() {
				got = append(got, x)
			}
			Expect(got).To(Equal([]int{1, 2, 3}))
		})

		It("builds [0 1 2] from two front inserts and a push", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Insert(0, 1)
			v.Insert(0, 0)
			v.Push(2)

			Expect(v.Slice()).To(Equal([]int{0, 1, 2}))
		})

		It("removes the head and shifts the rest left", func() {
			v := vec.New[int]()
			defer v.Release()
			for _, x := range []int{0, 1, 2} {
				v.Push(x)
			}

			Expect(v.Remove(0)).To(Equal(0))
			Expect(v.Len()).To(Equal(2))
			Expect(v.Slice()).To(Equal([]int{1, 2}))
		})

		It("rejects an insert past the length and stays unchanged", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Push(1)
			v.Push(2)

			Expect(func() { v.Insert(5, 99) }).To(PanicWith(ContainSubstring("out of range")))
			Expect(v.Len()).To(Equal(2))
			Expect(v.Slice()).To(Equal([]int{1, 2}))
		})

		It("keeps all elements in order after each doubling", func() {
			v := vec.New[int]()
			defer v.Release()

			var want []int
			for i := 1; i <= 16; i++ {
				v.Push(i)
				want = append(want, i)
				Expect(v.Slice()).To(Equal(want))
			}
		})
	})

	Describe("out of range conditions", func() {
		It("panics on Get at the length", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Push(1)
			Expect(func() { v.Get(1) }).To(PanicWith(ContainSubstring("out of range")))
		})

		It("panics on Set with a negative index", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Push(1)
			Expect(func() { v.Set(-1, 9) }).To(PanicWith(ContainSubstring("out of range")))
		})

		It("panics on Remove from an empty vector", func() {
			v := vec.New[int]()
			defer v.Release()
			Expect(func() { v.Remove(0) }).To(PanicWith(ContainSubstring("out of range")))
		})
	})

	Describe("release", func() {
		It("is idempotent", func() {
			v := vec.New[int]()
			v.Push(1)
			v.Release()
			Expect(v.Release).NotTo(Panic())
			Expect(v.Len()).To(BeZero())
			Expect(v.Cap()).To(BeZero())
		})

		It("rejects further mutation", func() {
			v := vec.New[int]()
			v.Push(1)
			v.Release()
			Expect(func() { v.Push(2) }).To(PanicWith(ContainSubstring("use after Release")))
		})
	})

	Describe("iteration", func() {
		It("is restartable while each walk is single-pass", func() {
			v := vec.New[int]()
			defer v.Release()
			for i := 0; i < 4; i++ {
				v.Push(i)
			}

			first := 0
			for range v.Values() {
				first++
			}
			second := 0
			for range v.Values() {
				second++
			}
			Expect(first).To(Equal(4))
			Expect(second).To(Equal(4))
		})

		It("drains eagerly and delivers each element once", func() {
			v := vec.New[int]()
			defer v.Release()
			v.Push(7)
			v.Push(8)

			d := v.Drain()
			Expect(v.Len()).To(BeZero(), "ownership transfers at the Drain call")

			var got []int
			for x := range d {
				got = append(got, x)
			}
			for x := range d {
				got = append(got, x)
			}
			Expect(got).To(Equal([]int{7, 8}))
		})
	})
})
