package units_test

import (
	"math/big"
	"strings"

	"marketsync/internal/errs"
	"marketsync/internal/units"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	Describe("ToSmallestUnit", func() {
		DescribeTable("valid amounts",
			func(in, want string) {
				out, err := units.ToSmallestUnit(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal(want))
			},
			Entry("one", "1.0", "1000000000000000000"),
			Entry("whole number", "3", "3000000000000000000"),
			Entry("fraction", "0.5", "500000000000000000"),
			Entry("leading dot", ".25", "250000000000000000"),
			Entry("smallest unit", "0.000000000000000001", "1"),
			Entry("zero", "0", "0"),
			Entry("surrounding spaces", " 2.5 ", "2500000000000000000"),
		)

		DescribeTable("invalid amounts",
			func(in string) {
				_, err := units.ToSmallestUnit(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
				Expect(err).To(MatchError(errs.ErrValidation))
			},
			Entry("empty", ""),
			Entry("negative", "-1"),
			Entry("letters", "abc"),
			Entry("exponent", "1e18"),
			Entry("infinity", "Inf"),
			Entry("too precise", "0.0000000000000000001"),
		)
	})

	Describe("ToDecimalString", func() {
		DescribeTable("valid amounts",
			func(in, want string) {
				out, err := units.ToDecimalString(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal(want))
			},
			Entry("one", "1000000000000000000", "1.0"),
			Entry("fraction", "1500000000000000000", "1.5"),
			Entry("zero", "0", "0.0"),
			Entry("one wei", "1", "0.000000000000000001"),
			Entry("beyond uint64", "123456789000000000000000000", "123456789.0"),
		)

		It("rejects non-integers", func() {
			for _, in := range []string{"", "1.5", "-3", "0x10"} {
				_, err := units.ToDecimalString(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
			}
		})
	})

	Describe("ledger range", func() {
		const (
			maxUint256    = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
			twoPow256     = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
			twoPow256Plus = "115792089237316195423570985008687907853269984665640564039457584007913129639937"
		)

		It("accepts the largest storable amount", func() {
			v, err := units.ParseInteger(maxUint256)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(units.MaxAmount))

			v, err = units.ParseDecimal("115792089237316195423570985008687907853269984665640564039457.584007913129639935")
			Expect(err).NotTo(HaveOccurred())
			Expect(v.String()).To(Equal(maxUint256))
		})

		DescribeTable("rejects integers that would wrap",
			func(in string) {
				_, err := units.ParseInteger(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
				_, err = units.ToDecimalString(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
			},
			Entry("2^256", twoPow256),
			Entry("2^256+1", twoPow256Plus),
		)

		DescribeTable("rejects decimals that would wrap",
			func(in string) {
				_, err := units.ParseDecimal(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
				Expect(err).To(MatchError(errs.ErrValidation))
			},
			Entry("2^256", "115792089237316195423570985008687907853269984665640564039457.584007913129639936"),
			Entry("2^256+1", "115792089237316195423570985008687907853269984665640564039457.584007913129639937"),
			Entry("far beyond", "1"+strings.Repeat("0", 80)),
		)

		It("checks raw values", func() {
			Expect(units.InRange(big.NewInt(0))).To(BeTrue())
			Expect(units.InRange(units.MaxAmount)).To(BeTrue())
			Expect(units.InRange(new(big.Int).Add(units.MaxAmount, big.NewInt(1)))).To(BeFalse())
			Expect(units.InRange(big.NewInt(-1))).To(BeFalse())
			Expect(units.InRange(nil)).To(BeFalse())
		})
	})

	Describe("round trip", func() {
		It("returns the original canonical decimal", func() {
			for _, x := range []string{"1.0", "0.5", "42.0", "0.000000000000000001", "1234567.891", "0.0"} {
				smallest, err := units.ToSmallestUnit(x)
				Expect(err).NotTo(HaveOccurred())
				back, err := units.ToDecimalString(smallest)
				Expect(err).NotTo(HaveOccurred())
				Expect(back).To(Equal(x))
			}
		})
	})

	Describe("Display", func() {
		It("rounds to the requested places", func() {
			Expect(units.Display("1234500000000000000", 4)).To(Equal("1.2345"))
			Expect(units.Display("1000000000000000000", 4)).To(Equal("1.0000"))
			Expect(units.Display("99999", 2)).To(Equal("0.00"))
		})

		It("falls back to zero on bad input", func() {
			Expect(units.Display("not-a-number", 4)).To(Equal("0.0000"))
			Expect(units.Display("", 2)).To(Equal("0.00"))
		})
	})

	Describe("fees", func() {
		It("computes basis points in integer space", func() {
			price := big.NewInt(1_000_000)
			Expect(units.Fee(price, 250)).To(Equal(big.NewInt(25_000)))
			Expect(units.NetOfFee(price, 250)).To(Equal(big.NewInt(975_000)))
		})

		It("truncates fractional fees", func() {
			Expect(units.Fee(big.NewInt(39), 250)).To(Equal(big.NewInt(0)))
			Expect(units.NetOfFee(big.NewInt(39), 250)).To(Equal(big.NewInt(39)))
		})

		It("converts percentages to basis points", func() {
			bps, err := units.PercentToBasisPoints("2.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(bps).To(Equal(uint64(250)))

			_, err = units.PercentToBasisPoints("0.001")
			Expect(err).To(MatchError(errs.ErrInvalidAmount))

			_, err = units.PercentToBasisPoints("101")
			Expect(err).To(MatchError(errs.ErrInvalidAmount))
		})

		DescribeTable("accepts only plain decimal percentages",
			func(in string) {
				_, err := units.PercentToBasisPoints(in)
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
			},
			Entry("fraction", "1/2"),
			Entry("exponent", "2.5e0"),
			Entry("hex", "0x10"),
			Entry("negative", "-1"),
			Entry("empty", ""),
		)
	})
})
