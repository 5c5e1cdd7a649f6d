package logistic

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Evaluate", func() {
	Context("with the default growth parameters", func() {
		It("matches the worked example", func() {
			series, err := Evaluate(Params{N0: 100, R: 0.5, K: 500, TMax: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(HaveLen(3))
			Expect(series[0].N).To(BeNumerically("~", 100.0, 1e-9))
			Expect(series[1].N).To(BeNumerically("~", 145.94, 0.01))
			Expect(series[2].N).To(BeNumerically("~", 202.30, 0.01))
		})

		It("numbers the points 0..tMax without gaps", func() {
			series, err := Evaluate(DefaultParams())
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(HaveLen(11))
			for i, pt := range series {
				Expect(pt.T).To(Equal(i))
				Expect(pt.Defined).To(BeTrue())
			}
		})
	})

	Context("when r > 0 and K > N0", func() {
		It("rises strictly inside (N0, K)", func() {
			// e^(-10) keeps N(20) visibly below K in float64.
			series, err := Evaluate(Params{N0: 100, R: 0.5, K: 500, TMax: 20})
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(series); i++ {
				Expect(series[i].N).To(BeNumerically(">", series[i-1].N))
				Expect(series[i].N).To(BeNumerically(">", 100.0))
				Expect(series[i].N).To(BeNumerically("<", 500.0))
			}
		})

		It("converges to K", func() {
			series, err := Evaluate(Params{N0: 100, R: 0.5, K: 500, TMax: 100})
			Expect(err).NotTo(HaveOccurred())
			last, ok := series.Final()
			Expect(ok).To(BeTrue())
			Expect(last.N).To(BeNumerically("~", 500.0, 1e-6))
		})
	})

	Context("with a zero horizon", func() {
		It("returns the single initial point", func() {
			series, err := Evaluate(Params{N0: 37, R: 1.2, K: 900, TMax: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(HaveLen(1))
			Expect(series[0].T).To(Equal(0))
			Expect(series[0].N).To(BeNumerically("~", 37.0, 1e-9))
		})
	})

	Context("when r < 0 and K < N0", func() {
		It("refuses to compute", func() {
			series, err := Evaluate(Params{N0: 100, R: -0.1, K: 50, TMax: 10})
			Expect(series).To(BeNil())
			Expect(err).To(MatchError(ErrParameterDomain))

			de, ok := AsDomainError(err)
			Expect(ok).To(BeTrue())
			Expect(de.Error()).To(ContainSubstring("r < 0 and K < N0"))
			Expect(de.Explain()).To(ContainSubstring("r ≥ 0"))
			Expect(de.Explain()).To(ContainSubstring("K ≥ N₀"))
		})

		It("reports the blow-up time in the explanation", func() {
			p := Params{N0: 100, R: -0.1, K: 50, TMax: 10}
			ts, ok := p.CriticalTime()
			Expect(ok).To(BeTrue())
			// 1 - 0.5 e^(0.1 t) = 0  =>  t = 10 ln 2
			Expect(ts).To(BeNumerically("~", 10*math.Ln2, 1e-9))

			_, err := Evaluate(p)
			de, _ := AsDomainError(err)
			Expect(de.Explain()).To(ContainSubstring("6.931"))
		})
	})

	Context("when r < 0 but K >= N0", func() {
		It("decays toward zero", func() {
			series, err := Evaluate(Params{N0: 100, R: -0.1, K: 500, TMax: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(HaveLen(11))
			for i := 1; i < len(series); i++ {
				Expect(series[i].N).To(BeNumerically("<", series[i-1].N))
			}

			long, err := Evaluate(Params{N0: 100, R: -0.1, K: 500, TMax: 1000})
			Expect(err).NotTo(HaveOccurred())
			last, _ := long.Final()
			Expect(last.N).To(BeNumerically("<", 1e-6))
		})

		It("stays at K when K == N0 even if the exponential overflows", func() {
			series, err := Evaluate(Params{N0: 400, R: -5, K: 400, TMax: 1000})
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Undefined()).To(Equal(0))
			for _, pt := range series {
				Expect(pt.N).To(Equal(400.0))
			}
		})
	})

	Context("with r > 0 and K < N0", func() {
		It("decreases toward K from above", func() {
			series, err := Evaluate(Params{N0: 800, R: 0.5, K: 500, TMax: 60})
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(series); i++ {
				Expect(series[i].N).To(BeNumerically("<=", series[i-1].N))
				Expect(series[i].N).To(BeNumerically(">=", 500.0))
			}
			last, _ := series.Final()
			Expect(last.N).To(BeNumerically("~", 500.0, 1e-6))
		})
	})

	Context("with r == 0", func() {
		It("holds the population constant", func() {
			series, err := Evaluate(Params{N0: 250, R: 0, K: 1000, TMax: 5})
			Expect(err).NotTo(HaveOccurred())
			for _, pt := range series {
				Expect(pt.N).To(BeNumerically("~", 250.0, 1e-9))
			}
		})
	})

	Context("with a non-positive denominator that slips past the guard", func() {
		It("marks the affected points undefined", func() {
			// K = 0 gives A = -1, so the denominator is exactly zero at t = 0.
			series, err := Evaluate(Params{N0: 10, R: 1, K: 0, TMax: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(series).To(HaveLen(4))
			Expect(series[0].Defined).To(BeFalse())
			Expect(math.IsNaN(series[0].N)).To(BeTrue())
			for _, pt := range series[1:] {
				Expect(pt.Defined).To(BeTrue())
				Expect(pt.N).To(BeNumerically("~", 0.0, 1e-12))
			}
			Expect(series.Undefined()).To(Equal(1))
		})

		It("marks every point undefined when K is negative and r is zero", func() {
			series, err := Evaluate(Params{N0: 10, R: 0, K: -5, TMax: 4})
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Undefined()).To(Equal(5))
			for _, v := range series.Values() {
				Expect(math.IsNaN(v)).To(BeTrue())
			}
		})
	})

	Context("with invalid preconditions", func() {
		It("rejects N0 == 0", func() {
			series, err := Evaluate(Params{N0: 0, R: 0.5, K: 500, TMax: 10})
			Expect(series).To(BeNil())
			Expect(errors.Is(err, ErrZeroPopulation)).To(BeTrue())
		})

		It("rejects a negative horizon", func() {
			_, err := Evaluate(Params{N0: 10, R: 0.5, K: 500, TMax: -1})
			Expect(err).To(MatchError(ErrNegativeHorizon))
		})
	})
})

var _ = Describe("Series", func() {
	It("has no final point when empty", func() {
		_, ok := Series(nil).Final()
		Expect(ok).To(BeFalse())
	})

	It("exposes NaN for undefined values", func() {
		s := Series{{T: 0, N: 1, Defined: true}, {T: 1, N: math.NaN()}}
		vals := s.Values()
		Expect(vals[0]).To(Equal(1.0))
		Expect(math.IsNaN(vals[1])).To(BeTrue())
	})
})
