package banner

import (
	"github.com/iov-one/weave/errors"
)

// ABCI Response Codes
// bannerd reserves 1100 ~ 1199.
var (
	// ErrNoAuction is returned when bidding on a banner that is not up
	// for auction.
	ErrNoAuction = errors.Register(1100, "banner not up for auction")

	// ErrAuctionRunning is returned when starting an auction on a banner
	// that already has one open.
	ErrAuctionRunning = errors.Register(1101, "auction already running")

	// ErrOwnBid is returned when the banner owner bids on its own open
	// auction.
	ErrOwnBid = errors.Register(1102, "cannot bid on own banner")

	// ErrBidTooLow is returned when a bid does not strictly exceed the
	// current price.
	ErrBidTooLow = errors.Register(1103, "bid must be greater than current price")
)
