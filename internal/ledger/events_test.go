package ledger_test

import (
	"math/big"

	"marketsync/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeEvent", func() {
	var (
		contract common.Address
		seller   common.Address
		buyer    common.Address
	)

	BeforeEach(func() {
		contract = common.HexToAddress("0x52e244B0aAcB70DD7F1eD68DF7D965BE8f62193A")
		seller = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	})

	It("decodes a creation", func() {
		ev, err := ledger.DecodeEvent(*createdLog(contract, 5, "Sample pack", big.NewInt(1234), seller))
		Expect(err).NotTo(HaveOccurred())
		created, ok := ev.(ledger.ProductCreated)
		Expect(ok).To(BeTrue())
		Expect(created.ProductID).To(Equal(uint64(5)))
		Expect(created.Name).To(Equal("Sample pack"))
		Expect(created.Price).To(Equal(big.NewInt(1234)))
		Expect(created.Seller).To(Equal(seller))
	})

	It("decodes an update", func() {
		data, err := ledger.MarketplaceABI.Events[ledger.EventProductUpdated].Inputs.NonIndexed().Pack("Renamed", big.NewInt(99))
		Expect(err).NotTo(HaveOccurred())
		ev, err := ledger.DecodeEvent(types.Log{
			Address: contract,
			Topics: []common.Hash{
				ledger.TopicProductUpdated,
				common.BigToHash(big.NewInt(5)),
				common.BytesToHash(seller.Bytes()),
			},
			Data: data,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(ev).To(BeAssignableToTypeOf(ledger.ProductUpdated{}))
		Expect(ev.(ledger.ProductUpdated).Name).To(Equal("Renamed"))
	})

	It("decodes a purchase from its topics", func() {
		ev, err := ledger.DecodeEvent(types.Log{
			Address: contract,
			Topics: []common.Hash{
				ledger.TopicProductPurchased,
				common.BigToHash(big.NewInt(8)),
				common.BytesToHash(seller.Bytes()),
				common.BytesToHash(buyer.Bytes()),
			},
			TxHash: common.HexToHash("0xabc"),
		})
		Expect(err).NotTo(HaveOccurred())
		purchased := ev.(ledger.ProductPurchased)
		Expect(purchased.ProductID).To(Equal(uint64(8)))
		Expect(purchased.Seller).To(Equal(seller))
		Expect(purchased.Buyer).To(Equal(buyer))
		Expect(purchased.Raw.TxHash).To(Equal(common.HexToHash("0xabc")))
	})

	It("rejects foreign logs", func() {
		_, err := ledger.DecodeEvent(types.Log{Topics: []common.Hash{common.HexToHash("0xdead")}})
		Expect(err).To(MatchError(ledger.ErrUnknownEvent))

		_, err = ledger.DecodeEvent(types.Log{})
		Expect(err).To(MatchError(ledger.ErrUnknownEvent))
	})
})
