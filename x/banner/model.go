package banner

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Banner{}, migration.NoModification)
}

var _ orm.CloneableData = (*Banner)(nil)

// Validate ensures the Banner is valid. A banner that is not biddable must
// hold neutral auction fields, a biddable one must hold a complete set.
func (b *Banner) Validate() error {
	if err := b.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if b.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(b.Name) > maxNameSize {
		return errors.Wrapf(errors.ErrInput, "name longer than %d characters", maxNameSize)
	}
	if len(b.ImageURL) > maxImageURLSize {
		return errors.Wrapf(errors.ErrInput, "image url longer than %d characters", maxImageURLSize)
	}
	if len(b.Description) > maxDescriptionSize {
		return errors.Wrapf(errors.ErrInput, "description longer than %d characters", maxDescriptionSize)
	}
	if b.Biddable {
		if err := validatePrice(b.CurrentPrice); err != nil {
			return err
		}
		if err := b.CurrentBidder.Validate(); err != nil {
			return errors.Wrap(err, "current bidder")
		}
		if b.BidEndHeight <= 0 {
			return errors.Wrap(errors.ErrInput, "bid end height is required")
		}
		return nil
	}
	if b.CurrentPrice != nil {
		return errors.Wrap(errors.ErrState, "price set on idle banner")
	}
	if b.CurrentBidder != nil {
		return errors.Wrap(errors.ErrState, "bidder set on idle banner")
	}
	if b.BidEndHeight != 0 {
		return errors.Wrap(errors.ErrState, "bid end height set on idle banner")
	}
	return nil
}

// Copy makes a deep copy of the banner.
func (b *Banner) Copy() orm.CloneableData {
	cpy := &Banner{
		Metadata:     b.Metadata.Copy(),
		Name:         b.Name,
		ImageURL:     b.ImageURL,
		Description:  b.Description,
		Biddable:     b.Biddable,
		BidEndHeight: b.BidEndHeight,
	}
	if b.CurrentPrice != nil {
		price := *b.CurrentPrice
		cpy.CurrentPrice = &price
	}
	if b.CurrentBidder != nil {
		cpy.CurrentBidder = b.CurrentBidder.Clone()
	}
	return cpy
}

func NewBucket() orm.ModelBucket {
	b := orm.NewModelBucket("banner", &Banner{})
	return migration.NewModelBucket("banner", b)
}
