package app

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (weave.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "transaction without a message")
	}

	// make sure to cover all messages defined in protobuf
	switch t := sum.(type) {
	case *Tx_SendMsg:
		return t.SendMsg, nil
	case *Tx_UpgradeSchemaMsg:
		return t.UpgradeSchemaMsg, nil
	case *Tx_CreateBannerMsg:
		return t.CreateBannerMsg, nil
	case *Tx_TransferBannerMsg:
		return t.TransferBannerMsg, nil
	case *Tx_SetImageUrlMsg:
		return t.SetImageUrlMsg, nil
	case *Tx_StartAuctionMsg:
		return t.StartAuctionMsg, nil
	case *Tx_BidMsg:
		return t.BidMsg, nil
	}
	return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", sum)
}

// GetSignBytes returns the bytes to sign. The sign bytes come from the
// transaction content only, never from previous signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	tx.Signatures = sigs
	return bz, err
}
