package banner

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateBannerMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferBannerMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetImageURLMsg{}, migration.NoModification)
	migration.MustRegister(1, &StartAuctionMsg{}, migration.NoModification)
	migration.MustRegister(1, &BidMsg{}, migration.NoModification)
}

const (
	pathCreateBanner = "banner/create"
	pathTransfer     = "banner/transfer"
	pathSetImageURL  = "banner/set_image_url"
	pathStartAuction = "banner/start_auction"
	pathBid          = "banner/bid"

	maxNameSize        int = 64
	maxImageURLSize    int = 256
	maxDescriptionSize int = 512

	// Banner ids are sha256 digests.
	idSize int = 32
)

var _ weave.Msg = (*CreateBannerMsg)(nil)
var _ weave.Msg = (*TransferBannerMsg)(nil)
var _ weave.Msg = (*SetImageURLMsg)(nil)
var _ weave.Msg = (*StartAuctionMsg)(nil)
var _ weave.Msg = (*BidMsg)(nil)

// ROUTING, Path method fulfills weave.Msg interface to allow routing

func (CreateBannerMsg) Path() string {
	return pathCreateBanner
}

func (TransferBannerMsg) Path() string {
	return pathTransfer
}

func (SetImageURLMsg) Path() string {
	return pathSetImageURL
}

func (StartAuctionMsg) Path() string {
	return pathStartAuction
}

func (BidMsg) Path() string {
	return pathBid
}

// VALIDATION, Validate method makes sure basic rules are enforced upon input data and fulfills weave.Msg interface

func (m *CreateBannerMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(m.Name) > maxNameSize {
		return errors.Wrapf(errors.ErrInput, "name longer than %d characters", maxNameSize)
	}
	if len(m.ImageURL) > maxImageURLSize {
		return errors.Wrapf(errors.ErrInput, "image url longer than %d characters", maxImageURLSize)
	}
	if len(m.Description) > maxDescriptionSize {
		return errors.Wrapf(errors.ErrInput, "description longer than %d characters", maxDescriptionSize)
	}
	return nil
}

func (m *TransferBannerMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateBannerID(m.BannerID); err != nil {
		return err
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

func (m *SetImageURLMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateBannerID(m.BannerID); err != nil {
		return err
	}
	if len(m.ImageURL) > maxImageURLSize {
		return errors.Wrapf(errors.ErrInput, "image url longer than %d characters", maxImageURLSize)
	}
	return nil
}

func (m *StartAuctionMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateBannerID(m.BannerID); err != nil {
		return err
	}
	return validatePrice(m.StartingPrice)
}

func (m *BidMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateBannerID(m.BannerID); err != nil {
		return err
	}
	return validatePrice(m.Price)
}

func validateBannerID(id []byte) error {
	if len(id) != idSize {
		return errors.Wrapf(errors.ErrInput, "banner id must be exactly %d bytes", idSize)
	}
	return nil
}

// validatePrice makes sure a price is set, well formed and not negative. A
// zero price is allowed so that an auction can be opened for free and any
// positive bid accepted.
func validatePrice(c *coin.Coin) error {
	if c == nil {
		return errors.Wrap(errors.ErrEmpty, "price")
	}
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "price")
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative price")
	}
	return nil
}
