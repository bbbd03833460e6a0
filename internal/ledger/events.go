package ledger

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrUnknownEvent = errors.New("unknown marketplace event")

// DecodeEvent turns a contract log into a ProductCreated, ProductUpdated or
// ProductPurchased value.
func DecodeEvent(log types.Log) (any, error) {
	if len(log.Topics) == 0 {
		return nil, ErrUnknownEvent
	}

	switch log.Topics[0] {
	case TopicProductCreated:
		id, seller, name, price, err := decodeListingEvent(EventProductCreated, log)
		if err != nil {
			return nil, err
		}
		return ProductCreated{ProductID: id, Name: name, Price: price, Seller: seller, Raw: log}, nil
	case TopicProductUpdated:
		id, seller, name, price, err := decodeListingEvent(EventProductUpdated, log)
		if err != nil {
			return nil, err
		}
		return ProductUpdated{ProductID: id, Name: name, Price: price, Seller: seller, Raw: log}, nil
	case TopicProductPurchased:
		purchased, err := DecodePurchase(log)
		if err != nil {
			return nil, err
		}
		return purchased, nil
	default:
		return nil, fmt.Errorf("%w: topic %s", ErrUnknownEvent, log.Topics[0].Hex())
	}
}

// DecodePurchase decodes a ProductPurchased log. All of its fields are indexed.
func DecodePurchase(log types.Log) (ProductPurchased, error) {
	if len(log.Topics) != 4 || log.Topics[0] != TopicProductPurchased {
		return ProductPurchased{}, fmt.Errorf("%w: not a purchase log", ErrUnknownEvent)
	}
	id, err := topicID(log.Topics[1])
	if err != nil {
		return ProductPurchased{}, err
	}
	return ProductPurchased{
		ProductID: id,
		Seller:    common.BytesToAddress(log.Topics[2].Bytes()),
		Buyer:     common.BytesToAddress(log.Topics[3].Bytes()),
		Raw:       log,
	}, nil
}

func decodeListingEvent(name string, log types.Log) (uint64, common.Address, string, *big.Int, error) {
	if len(log.Topics) != 3 {
		return 0, common.Address{}, "", nil, fmt.Errorf("%s: expected 3 topics, got %d", name, len(log.Topics))
	}

	values, err := MarketplaceABI.Unpack(name, log.Data)
	if err != nil {
		return 0, common.Address{}, "", nil, fmt.Errorf("unpacking %s: %w", name, err)
	}
	if len(values) != 2 {
		return 0, common.Address{}, "", nil, fmt.Errorf("%s: expected 2 values, got %d", name, len(values))
	}
	title, ok := values[0].(string)
	if !ok {
		return 0, common.Address{}, "", nil, fmt.Errorf("%s: name is %T", name, values[0])
	}
	price, ok := values[1].(*big.Int)
	if !ok {
		return 0, common.Address{}, "", nil, fmt.Errorf("%s: price is %T", name, values[1])
	}

	id, err := topicID(log.Topics[1])
	if err != nil {
		return 0, common.Address{}, "", nil, err
	}
	return id, common.BytesToAddress(log.Topics[2].Bytes()), title, price, nil
}

func topicID(topic common.Hash) (uint64, error) {
	id := new(big.Int).SetBytes(topic.Bytes())
	if !id.IsUint64() {
		return 0, fmt.Errorf("product id %s overflows", id)
	}
	return id.Uint64(), nil
}
