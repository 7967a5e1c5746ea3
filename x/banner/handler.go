package banner

import (
	"crypto/sha256"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createBannerCost int64 = 300
	transferCost     int64 = 100
	setImageURLCost  int64 = 50
	startAuctionCost int64 = 150
	bidCost          int64 = 200

	// An auction round stays open for roughly one day of block
	// production.
	auctionDuration int64 = 24 * 600
)

// Tag values published with every delivered banner operation.
const (
	tagAction   = "banner:action"
	tagBannerID = "banner:id"
	tagPrice    = "banner:price"
	tagBidder   = "banner:bidder"
	tagFrom     = "banner:from"
	tagTo       = "banner:to"

	actionCreate       = "create"
	actionTransfer     = "transfer"
	actionStartAuction = "start-auction"
	actionBid          = "bid"
	actionDeal         = "deal"
	actionAbort        = "abort"
)

var bannerSeq = orm.NewSequence("banner", "nonce")

// CashController is the subset of the cash functionality used to settle
// bids. The full cash controller satisfies it.
type CashController interface {
	MoveCoins(store weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("banner", r)
	bucket := NewBucket()
	reg := NewRegistry()

	r.Handle(&CreateBannerMsg{}, CreateBannerHandler{auth, bucket, reg})
	r.Handle(&TransferBannerMsg{}, TransferBannerHandler{auth, bucket, reg})
	r.Handle(&SetImageURLMsg{}, SetImageURLHandler{auth, bucket, reg})
	r.Handle(&StartAuctionMsg{}, StartAuctionHandler{auth, bucket, reg})
	r.Handle(&BidMsg{}, BidHandler{auth, bucket, reg, ctrl})
}

// RegisterQuery will register the banner bucket as "/banners" and the
// ownership lookup as "/banners/owner".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("banners", qr)
	NewRegistry().RegisterQuery(qr)
}

func actionTags(action string, id []byte) []common.KVPair {
	return []common.KVPair{
		{Key: []byte(tagAction), Value: []byte(action)},
		{Key: []byte(tagBannerID), Value: id},
	}
}

func transferTags(id []byte, from, to weave.Address) []common.KVPair {
	return append(actionTags(actionTransfer, id),
		common.KVPair{Key: []byte(tagFrom), Value: []byte(from.String())},
		common.KVPair{Key: []byte(tagTo), Value: []byte(to.String())},
	)
}

// CreateBannerHandler mints a brand new banner for the main signer.
type CreateBannerHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	reg    *Registry
}

var _ weave.Handler = CreateBannerHandler{}

func (h CreateBannerHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createBannerCost}, nil
}

func (h CreateBannerHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	sender := x.AnySigner(ctx, h.auth)
	if sender == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	owner := sender.Address()

	id, err := newBannerID(ctx, db, owner)
	if err != nil {
		return nil, errors.Wrap(err, "cannot derive banner id")
	}
	if err := h.reg.Mint(db, id, owner); err != nil {
		return nil, err
	}

	banner := &Banner{
		Metadata:    &weave.Metadata{Schema: 1},
		Name:        msg.Name,
		ImageURL:    msg.ImageURL,
		Description: msg.Description,
	}
	if _, err := h.bucket.Put(db, id, banner); err != nil {
		return nil, errors.Wrap(err, "cannot store banner")
	}

	res := &weave.DeliverResult{Data: id}
	res.Tags = append(res.Tags, actionTags(actionCreate, id)...)
	return res, nil
}

func (h CreateBannerHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateBannerMsg, error) {
	var msg CreateBannerMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

// newBannerID derives a fresh banner id from the latest application hash,
// the creator address and an ever growing nonce. The nonce guarantees
// uniqueness within a block, the hash makes ids unpredictable ahead of
// time.
func newBannerID(ctx weave.Context, db weave.KVStore, creator weave.Address) ([]byte, error) {
	nonce, err := bannerSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	sum := sha256.New()
	if header, ok := weave.GetHeader(ctx); ok {
		_, _ = sum.Write(header.AppHash)
	}
	_, _ = sum.Write(creator)
	_, _ = sum.Write(nonce)
	return sum.Sum(nil), nil
}

// TransferBannerHandler moves a banner to another owner. Banners with an
// open auction cannot be given away, the settlement path owns them until
// the round is resolved.
type TransferBannerHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	reg    *Registry
}

var _ weave.Handler = TransferBannerHandler{}

func (h TransferBannerHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferBannerHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.reg.Transfer(db, owner, msg.Destination, msg.BannerID); err != nil {
		return nil, err
	}
	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, transferTags(msg.BannerID, owner, msg.Destination)...)
	return res, nil
}

func (h TransferBannerHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferBannerMsg, weave.Address, error) {
	var msg TransferBannerMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var banner Banner
	if err := h.bucket.One(db, msg.BannerID, &banner); err != nil {
		return nil, nil, err
	}
	owner, err := h.reg.OwnerOf(db, msg.BannerID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the banner owner")
	}
	if banner.Biddable {
		return nil, nil, errors.Wrap(ErrAuctionRunning, "cannot transfer during auction")
	}
	if owner.Equals(msg.Destination) {
		return nil, nil, errors.Wrap(errors.ErrInput, "destination is the current owner")
	}
	return &msg, owner, nil
}

// SetImageURLHandler updates the image of an owned banner in place.
type SetImageURLHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	reg    *Registry
}

var _ weave.Handler = SetImageURLHandler{}

func (h SetImageURLHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: setImageURLCost}, nil
}

func (h SetImageURLHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, banner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	banner.ImageURL = msg.ImageURL
	if _, err := h.bucket.Put(db, msg.BannerID, banner); err != nil {
		return nil, errors.Wrap(err, "cannot store banner")
	}
	return &weave.DeliverResult{}, nil
}

func (h SetImageURLHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetImageURLMsg, *Banner, error) {
	var msg SetImageURLMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var banner Banner
	if err := h.bucket.One(db, msg.BannerID, &banner); err != nil {
		return nil, nil, err
	}
	owner, err := h.reg.OwnerOf(db, msg.BannerID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the banner owner")
	}
	return &msg, &banner, nil
}

// StartAuctionHandler opens an auction round on an idle banner. The owner
// is recorded as a placeholder bidder at the starting price so that the
// first real bid has a previous party to refund.
type StartAuctionHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	reg    *Registry
}

var _ weave.Handler = StartAuctionHandler{}

func (h StartAuctionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: startAuctionCost}, nil
}

func (h StartAuctionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, banner, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	height, _ := weave.GetHeight(ctx)

	banner.Biddable = true
	banner.CurrentPrice = msg.StartingPrice
	banner.CurrentBidder = owner
	banner.BidEndHeight = height + auctionDuration
	if _, err := h.bucket.Put(db, msg.BannerID, banner); err != nil {
		return nil, errors.Wrap(err, "cannot store banner")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, actionTags(actionStartAuction, msg.BannerID)...)
	res.Tags = append(res.Tags, common.KVPair{Key: []byte(tagPrice), Value: []byte(msg.StartingPrice.String())})
	return res, nil
}

func (h StartAuctionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*StartAuctionMsg, *Banner, weave.Address, error) {
	var msg StartAuctionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var banner Banner
	if err := h.bucket.One(db, msg.BannerID, &banner); err != nil {
		return nil, nil, nil, err
	}
	owner, err := h.reg.OwnerOf(db, msg.BannerID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the banner owner")
	}
	if banner.Biddable {
		return nil, nil, nil, errors.Wrap(ErrAuctionRunning, "already up for auction")
	}
	return &msg, &banner, owner, nil
}

// BidHandler processes bids on an open auction. Before the deadline a bid
// must strictly outbid the current price; the previous bidder is refunded
// and the owner receives the increment immediately. The first bid past the
// deadline settles the round instead, its price is ignored.
type BidHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	reg    *Registry
	ctrl   CashController
}

var _ weave.Handler = BidHandler{}

func (h BidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: bidCost}, nil
}

func (h BidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, banner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	owner, err := h.reg.OwnerOf(db, msg.BannerID)
	if err != nil {
		return nil, err
	}

	if height, _ := weave.GetHeight(ctx); banner.BidEndHeight > height {
		return h.placeBid(ctx, db, msg, banner, owner)
	}
	return h.settle(db, msg, banner, owner)
}

func (h BidHandler) placeBid(ctx weave.Context, db weave.KVStore, msg *BidMsg, banner *Banner, owner weave.Address) (*weave.DeliverResult, error) {
	sender := x.AnySigner(ctx, h.auth)
	if sender == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	bidder := sender.Address()

	if owner.Equals(bidder) {
		return nil, errors.Wrap(ErrOwnBid, "owner cannot outbid")
	}
	if !msg.Price.SameType(*banner.CurrentPrice) {
		return nil, errors.Wrapf(errors.ErrCurrency, "expected %s", banner.CurrentPrice.Ticker)
	}
	if msg.Price.Compare(*banner.CurrentPrice) <= 0 {
		return nil, errors.Wrapf(ErrBidTooLow, "current price %s", banner.CurrentPrice)
	}

	// The new bidder covers the whole price: the previous bidder gets
	// its stake back, the owner collects the difference.
	if banner.CurrentPrice.IsPositive() {
		if err := h.ctrl.MoveCoins(db, bidder, banner.CurrentBidder, *banner.CurrentPrice); err != nil {
			return nil, errors.Wrap(err, "cannot refund previous bidder")
		}
	}
	increment, err := msg.Price.Subtract(*banner.CurrentPrice)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute increment")
	}
	if increment.IsPositive() {
		if err := h.ctrl.MoveCoins(db, bidder, owner, increment); err != nil {
			return nil, errors.Wrap(err, "cannot pay owner")
		}
	}

	banner.CurrentPrice = msg.Price
	banner.CurrentBidder = bidder
	if _, err := h.bucket.Put(db, msg.BannerID, banner); err != nil {
		return nil, errors.Wrap(err, "cannot store banner")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, actionTags(actionBid, msg.BannerID)...)
	res.Tags = append(res.Tags,
		common.KVPair{Key: []byte(tagPrice), Value: []byte(msg.Price.String())},
		common.KVPair{Key: []byte(tagBidder), Value: []byte(bidder.String())},
	)
	return res, nil
}

// settle resolves an expired auction round. The triggering bid price is
// discarded. When no real bid arrived the round is aborted, otherwise the
// banner moves to the highest bidder who already paid during bidding.
func (h BidHandler) settle(db weave.KVStore, msg *BidMsg, banner *Banner, owner weave.Address) (*weave.DeliverResult, error) {
	winner := banner.CurrentBidder
	finalPrice := *banner.CurrentPrice

	banner.Biddable = false
	banner.CurrentPrice = nil
	banner.CurrentBidder = nil
	banner.BidEndHeight = 0
	if _, err := h.bucket.Put(db, msg.BannerID, banner); err != nil {
		return nil, errors.Wrap(err, "cannot store banner")
	}

	res := &weave.DeliverResult{}
	if winner.Equals(owner) {
		res.Tags = append(res.Tags, actionTags(actionAbort, msg.BannerID)...)
		return res, nil
	}
	if err := h.reg.Transfer(db, owner, winner, msg.BannerID); err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, transferTags(msg.BannerID, owner, winner)...)
	res.Tags = append(res.Tags, actionTags(actionDeal, msg.BannerID)...)
	res.Tags = append(res.Tags,
		common.KVPair{Key: []byte(tagPrice), Value: []byte(finalPrice.String())},
		common.KVPair{Key: []byte(tagBidder), Value: []byte(winner.String())},
	)
	return res, nil
}

func (h BidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BidMsg, *Banner, error) {
	var msg BidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var banner Banner
	if err := h.bucket.One(db, msg.BannerID, &banner); err != nil {
		return nil, nil, err
	}
	if !banner.Biddable {
		return nil, nil, errors.Wrap(ErrNoAuction, "banner is idle")
	}
	return &msg, &banner, nil
}
