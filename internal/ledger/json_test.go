package ledger_test

import (
	"encoding/json"
	"math/big"
	"time"

	"marketsync/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON encoding", func() {
	price, _ := new(big.Int).SetString("1234567890123456789", 10)

	It("sends product amounts as exact strings", func() {
		raw, err := json.Marshal(ledger.Product{
			ID:         7,
			Name:       "Loops",
			Price:      price,
			Seller:     common.HexToAddress("0x01"),
			SalesCount: big.NewInt(3),
		})
		Expect(err).NotTo(HaveOccurred())

		var fields map[string]any
		Expect(json.Unmarshal(raw, &fields)).To(Succeed())
		Expect(fields["price"]).To(Equal("1234567890123456789"))
		Expect(fields["priceDecimal"]).To(Equal("1.234567890123456789"))
		Expect(fields["salesCount"]).To(Equal("3"))
		Expect(fields["id"]).To(BeNumerically("==", 7))
	})

	It("reads back what it writes", func() {
		in := ledger.Product{ID: 7, Name: "Loops", Price: price, SalesCount: big.NewInt(3)}
		raw, err := json.Marshal(in)
		Expect(err).NotTo(HaveOccurred())

		var out ledger.Product
		Expect(json.Unmarshal(raw, &out)).To(Succeed())
		Expect(out.Price).To(Equal(price))
		Expect(out.SalesCount).To(Equal(big.NewInt(3)))
		Expect(out.Name).To(Equal("Loops"))
	})

	It("encodes a missing price as zero", func() {
		raw, err := json.Marshal(ledger.Product{ID: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring(`"price":"0"`))
		Expect(string(raw)).To(ContainSubstring(`"priceDecimal":"0.0"`))
	})

	It("sends purchase amounts as exact strings", func() {
		raw, err := json.Marshal(ledger.PurchaseEvent{
			ProductID:      2,
			Amount:         price,
			BlockNumber:    42,
			BlockTimestamp: time.Unix(1_700_000_000, 0).UTC(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring(`"amount":"1234567890123456789"`))
		Expect(string(raw)).To(ContainSubstring(`"amountDecimal":"1.234567890123456789"`))

		var out ledger.PurchaseEvent
		Expect(json.Unmarshal(raw, &out)).To(Succeed())
		Expect(out.Amount).To(Equal(price))
		Expect(out.BlockNumber).To(Equal(uint64(42)))
	})

	It("sends stats as exact strings", func() {
		raw, err := json.Marshal(ledger.Stats{
			TotalProducts:      big.NewInt(5),
			TotalSales:         big.NewInt(9),
			TotalFeesCollected: price,
			FeeBasisPoints:     big.NewInt(250),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring(`"totalFeesCollected":"1234567890123456789"`))
		Expect(string(raw)).To(ContainSubstring(`"feeBasisPoints":"250"`))
	})
})
