package gateway_test

import (
	"marketsync/internal/errs"
	"marketsync/internal/gateway"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseURI", func() {
	It("parses a bare cid", func() {
		loc, err := gateway.ParseURI("ipfs://" + testCID)
		Expect(err).NotTo(HaveOccurred())
		Expect(loc.Direct).To(BeFalse())
		Expect(loc.CID.String()).To(Equal(testCID))
		Expect(loc.URL("https://dweb.link/")).To(Equal("https://dweb.link/ipfs/" + testCID))
		Expect(loc.LastSegment()).To(BeEmpty())
	})

	It("keeps the path", func() {
		loc, err := gateway.ParseURI("ipfs://" + testCID + "/album/track01.flac")
		Expect(err).NotTo(HaveOccurred())
		Expect(loc.Path).To(Equal("album/track01.flac"))
		Expect(loc.URL("https://ipfs.io")).To(Equal("https://ipfs.io/ipfs/" + testCID + "/album/track01.flac"))
		Expect(loc.LastSegment()).To(Equal("track01.flac"))
	})

	It("tolerates the legacy ipfs://ipfs/ prefix", func() {
		loc, err := gateway.ParseURI("ipfs://ipfs/" + testCID)
		Expect(err).NotTo(HaveOccurred())
		Expect(loc.CID.String()).To(Equal(testCID))
	})

	It("passes http locations through", func() {
		loc, err := gateway.ParseURI("https://example.com/files/My%20Report.pdf")
		Expect(err).NotTo(HaveOccurred())
		Expect(loc.Direct).To(BeTrue())
		Expect(loc.URL("https://ipfs.io")).To(Equal("https://example.com/files/My%20Report.pdf"))
		Expect(loc.LastSegment()).To(Equal("My Report.pdf"))
	})

	DescribeTable("rejects",
		func(uri string, want error) {
			_, err := gateway.ParseURI(uri)
			Expect(err).To(MatchError(want))
		},
		Entry("empty", "", errs.ErrNoURIProvided),
		Entry("scheme only", "ipfs://", errs.ErrNoURIProvided),
		Entry("bad cid", "ipfs://hello", errs.ErrValidation),
		Entry("unknown scheme", "ftp://example.com/a", errs.ErrValidation),
	)
})
