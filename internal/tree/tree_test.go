package tree_test

import (
	"errors"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collatree/internal/collatz"
	"github.com/san-kum/collatree/internal/tree"
)

// countingRand records how many draws a pass makes.
type countingRand struct{ calls int }

func (c *countingRand) Int63n(n int64) int64 {
	c.calls++
	return 0
}

var _ = Describe("Build", func() {
	var params collatz.Params

	BeforeEach(func() {
		params = collatz.DefaultParams()
	})

	It("produces one item per start", func() {
		scene, err := tree.Build(params, rand.New(rand.NewSource(1)))
		Expect(err).NotTo(HaveOccurred())
		Expect(scene.Items).To(HaveLen(params.NumSequences))
		Expect(scene.FontSize).To(Equal(params.FontSize))
		Expect(scene.Origin.X).To(BeZero())
		Expect(scene.Origin.Y).To(BeZero())
	})

	It("keeps every path length equal to its trajectory length", func() {
		scene, err := tree.Build(params, rand.New(rand.NewSource(2)))
		Expect(err).NotTo(HaveOccurred())

		for _, item := range scene.Items {
			seq, err := collatz.Sequence(item.Start, params.MaxDepth)
			Expect(err).NotTo(HaveOccurred())
			Expect(item.Path).To(HaveLen(len(seq)))
			Expect(item.Steps).To(Equal(len(seq)))
			Expect(item.Steps).To(BeNumerically("<=", params.MaxDepth+1))
			for _, seg := range item.Path {
				Expect(seg.Length()).To(BeNumerically("~", params.BranchLength, 1e-9))
			}
		}
	})

	It("flags trajectories cut by the depth cap", func() {
		scene, err := tree.Build(params, rand.New(rand.NewSource(3)))
		Expect(err).NotTo(HaveOccurred())

		for _, item := range scene.Items {
			Expect(item.Truncated).To(Equal(collatz.Truncated(item.Start, params.MaxDepth)))
		}
	})

	It("is reproducible with identically seeded sources", func() {
		a, err := tree.Build(params, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())
		b, err := tree.Build(params, rand.New(rand.NewSource(42)))
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("rejects an odd sequence count before sampling", func() {
		params.NumSequences = 7
		rng := &countingRand{}

		scene, err := tree.Build(params, rng)
		Expect(scene).To(BeNil())
		Expect(errors.Is(err, collatz.ErrValidation)).To(BeTrue())
		Expect(rng.calls).To(BeZero())
	})

	It("reports a start range that is too small", func() {
		params.MaxStart = 4
		params.NumSequences = 10

		scene, err := tree.Build(params, rand.New(rand.NewSource(1)))
		Expect(scene).To(BeNil())
		Expect(errors.Is(err, collatz.ErrInsufficientRange)).To(BeTrue())

		var rangeErr *collatz.InsufficientRangeError
		Expect(errors.As(err, &rangeErr)).To(BeTrue())
		Expect(rangeErr.Parity).To(Equal(collatz.Even))
	})

	It("accepts a depth cap far beyond any orbit length", func() {
		params.MaxDepth = 1 << 47

		scene, err := tree.Build(params, rand.New(rand.NewSource(4)))
		Expect(err).NotTo(HaveOccurred())
		for _, item := range scene.Items {
			Expect(item.Truncated).To(BeFalse())
			Expect(item.Path[len(item.Path)-1].To).To(Equal(item.Label.Pos))
		}
	})

	It("rejects a max_start above the int64-safe limit", func() {
		params.MaxStart = math.MaxInt64
		rng := &countingRand{}

		scene, err := tree.Build(params, rng)
		Expect(scene).To(BeNil())
		var vErr *collatz.ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Field).To(Equal("max_start"))
		Expect(rng.calls).To(BeZero())
	})

	It("labels every path at its final endpoint", func() {
		scene, err := tree.Build(params, rand.New(rand.NewSource(5)))
		Expect(err).NotTo(HaveOccurred())

		for _, item := range scene.Items {
			Expect(item.Label).NotTo(BeNil())
			end := item.Path[len(item.Path)-1].To
			Expect(item.Label.Pos).To(Equal(end))
			want := math.Atan2(end.Y, end.X)*180/math.Pi - 90
			Expect(item.Label.Rotation).To(BeNumerically("~", want, 1e-9))
		}
	})
})

var _ = Describe("Generator", func() {
	It("keeps the previous scene when a pass fails", func() {
		gen := tree.NewGenerator(rand.New(rand.NewSource(9)))
		Expect(gen.Scene()).To(BeNil())

		good := collatz.DefaultParams()
		first, err := gen.Regenerate(good)
		Expect(err).NotTo(HaveOccurred())
		Expect(gen.Passes()).To(Equal(1))

		bad := good
		bad.NumSequences = 7
		scene, err := gen.Regenerate(bad)
		Expect(err).To(HaveOccurred())
		Expect(scene).To(BeIdenticalTo(first))
		Expect(gen.Scene()).To(BeIdenticalTo(first))
		Expect(gen.Params()).To(Equal(good))
		Expect(gen.Passes()).To(Equal(1))
	})

	It("replaces the scene on every successful pass", func() {
		gen := tree.NewGenerator(rand.New(rand.NewSource(10)))
		first, err := gen.Regenerate(collatz.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		second, err := gen.Regenerate(collatz.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(second).NotTo(BeIdenticalTo(first))
		Expect(gen.Scene()).To(BeIdenticalTo(second))
	})
})
