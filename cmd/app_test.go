package cmd_test

import (
	"bytes"
	"io"

	"marketsync/cmd"
	"marketsync/internal/errs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/urfave/cli/v2"
)

var _ = Describe("App", func() {
	var (
		app *cli.App
		out *bytes.Buffer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		app = cmd.NewApp()
		app.Writer = out
		app.ErrWriter = io.Discard
	})

	run := func(args ...string) error {
		return app.Run(append([]string{"marketsync"}, args...))
	}

	Describe("convert", func() {
		It("converts a decimal to the smallest unit", func() {
			Expect(run("convert", "to-smallest", "1.5")).To(Succeed())
			Expect(out.String()).To(Equal("1500000000000000000\n"))
		})

		It("converts the smallest unit to a canonical decimal", func() {
			Expect(run("convert", "to-decimal", "1000000000000000000")).To(Succeed())
			Expect(out.String()).To(Equal("1.0\n"))
		})

		It("rejects malformed amounts", func() {
			err := run("convert", "to-decimal", "1.5")
			Expect(err).To(MatchError(errs.ErrInvalidAmount))
			Expect(out.String()).To(BeEmpty())
		})
	})

	Describe("argument checks", func() {
		It("requires a numeric product id for download", func() {
			Expect(run("download", "abc")).To(MatchError(ContainSubstring(`product id "abc"`)))
		})

		It("requires an address for purchases", func() {
			Expect(run("purchases", "not-an-address")).To(MatchError(ContainSubstring("expected exactly one address")))
		})

		It("requires a uri for probe", func() {
			Expect(run("probe")).To(MatchError(ContainSubstring("expected exactly one uri")))
		})

		It("rejects a fee above 100% before dialing", func() {
			Expect(run("admin", "set-fee", "101")).To(MatchError(errs.ErrInvalidAmount))
		})
	})
})
