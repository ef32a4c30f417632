package token

import (
	"time"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/decode"
	"github.com/x-xyz/gallery/domain"
)

type TokenTransfer struct {
	TransactionHash domain.TxHash    `json:"transactionHash"`
	RegistryAddress domain.Address   `json:"registryAddress"`
	FromAddress     domain.Address   `json:"fromAddress"`
	ToAddress       domain.Address   `json:"toAddress"`
	OperatorAddress *domain.Address  `json:"operatorAddress"`
	TokenId         domain.TokenId   `json:"tokenId"`
	Token           CollectionToken  `json:"token"`
	Amount          domain.BigInt    `json:"amount"`
	Value           domain.BigInt    `json:"value"`
	GasLimit        int64            `json:"gasLimit"`
	GasPrice        domain.BigInt    `json:"gasPrice"`
	GasUsed         int64            `json:"gasUsed"`
	BlockNumber     int64            `json:"blockNumber"`
	BlockHash       domain.BlockHash `json:"blockHash"`
	BlockDate       time.Time        `json:"blockDate"`
	IsMultiAddress  bool             `json:"isMultiAddress"`
	IsInterstitial  bool             `json:"isInterstitial"`
	IsSwap          bool             `json:"isSwap"`
	IsBatch         bool             `json:"isBatch"`
	// relative to the account the transfers were queried for
	IsOutbound *bool `json:"isOutbound"`
}

func TokenTransferFromObject(obj decode.Object) (*TokenTransfer, error) {
	d := decode.New(obj)
	t := &TokenTransfer{
		TransactionHash: domain.TxHash(d.String("transactionHash")),
		RegistryAddress: domain.Address(d.String("registryAddress")),
		FromAddress:     domain.Address(d.String("fromAddress")),
		ToAddress:       domain.Address(d.String("toAddress")),
		OperatorAddress: domain.OptAddress(d.OptString("operatorAddress")),
		TokenId:         domain.TokenId(d.String("tokenId")),
		Amount:          domain.NewBigInt(d.BigInt("amount")),
		Value:           domain.NewBigInt(d.BigInt("value")),
		GasLimit:        d.Int("gasLimit"),
		GasPrice:        domain.NewBigInt(d.BigInt("gasPrice")),
		GasUsed:         d.Int("gasUsed"),
		BlockNumber:     d.Int("blockNumber"),
		BlockHash:       domain.BlockHash(d.String("blockHash")),
		BlockDate:       d.Time("blockDate"),
		IsMultiAddress:  d.Bool("isMultiAddress"),
		IsInterstitial:  d.Bool("isInterstitial"),
		IsSwap:          d.Bool("isSwap"),
		IsBatch:         d.Bool("isBatch"),
		IsOutbound:      d.OptBool("isOutbound"),
	}
	if tok := decode.Nested(d, "token", CollectionTokenFromObject); tok != nil {
		t.Token = *tok
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

type TransferAction string

const (
	TransferActionSwapped TransferAction = "Swapped"
	TransferActionMinted  TransferAction = "Minted"
	TransferActionBurned  TransferAction = "Burned"
	TransferActionGave    TransferAction = "Gave"
	TransferActionGiven   TransferAction = "Given"
	TransferActionSold    TransferAction = "Sold"
	TransferActionBought  TransferAction = "Bought"
)

// ClassifyTransfer labels a transfer from the viewer's side. First match wins:
// swap or multi address, mint, burn, zero value gift, sale.
func ClassifyTransfer(t TokenTransfer, viewer *domain.Address) TransferAction {
	isSender := viewer != nil && t.FromAddress.Equals(*viewer)
	switch {
	case t.IsSwap || t.IsMultiAddress:
		return TransferActionSwapped
	case t.FromAddress.IsZero():
		return TransferActionMinted
	case t.ToAddress.IsZero():
		return TransferActionBurned
	case t.Value.Sign() == 0:
		if isSender {
			return TransferActionGave
		}
		return TransferActionGiven
	case isSender:
		return TransferActionSold
	default:
		return TransferActionBought
	}
}

// LabeledTransfer is a transfer with its action as seen by a viewer
type LabeledTransfer struct {
	TokenTransfer
	Action TransferAction `json:"action"`
}

type TransferUsecase interface {
	// GetTokenTransfers labels the token's transfers for viewer, which may be nil
	GetTokenTransfers(c ctx.Ctx, registry domain.Address, tokenId domain.TokenId, viewer *domain.Address) ([]LabeledTransfer, error)
}
