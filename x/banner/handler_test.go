package banner_test

import (
	"context"
	"testing"

	"github.com/iov-one/bannerd/x/banner"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

// auctionBlocks mirrors the auction round length configured in the
// handlers: a day of six second blocks.
const auctionBlocks int64 = 24 * 600

type testEnv struct {
	router        *app.Router
	authenticator *weavetest.CtxAuth
	bank          cash.Bucket
	bucket        orm.ModelBucket
	reg           *banner.Registry
}

func newTestEnv() *testEnv {
	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	banner.RegisterRoutes(r, auth, ctrl)

	return &testEnv{
		router:        r,
		authenticator: authenticator,
		bank:          bank,
		bucket:        banner.NewBucket(),
		reg:           banner.NewRegistry(),
	}
}

func (e *testEnv) setBalance(t *testing.T, db weave.KVStore, addr weave.Address, c coin.Coin) {
	t.Helper()
	acct, err := cash.WalletWith(addr, &c)
	assert.Nil(t, err)
	assert.Nil(t, e.bank.Save(db, acct))
}

func (e *testEnv) balance(t *testing.T, db weave.KVStore, addr weave.Address) coin.Coins {
	t.Helper()
	acct, err := e.bank.Get(db, addr)
	assert.Nil(t, err)
	return cash.AsCoins(acct)
}

func (e *testEnv) ctxAs(height int64, cond weave.Condition) weave.Context {
	ctx := weave.WithHeight(context.Background(), height)
	return e.authenticator.SetConditions(ctx, cond)
}

func (e *testEnv) createBanner(t *testing.T, db weave.KVStore, ctx weave.Context, name string) []byte {
	t.Helper()
	tx := &weavetest.Tx{Msg: &banner.CreateBannerMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Name:     name,
		ImageURL: "https://cdn.example.com/banner.png",
	}}
	res, err := e.router.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 32, len(res.Data))
	return res.Data
}

func (e *testEnv) loadBanner(t *testing.T, db weave.KVStore, id []byte) *banner.Banner {
	t.Helper()
	var b banner.Banner
	assert.Nil(t, e.bucket.One(db, id, &b))
	return &b
}

func hasAction(res *weave.DeliverResult, action string) bool {
	for _, tag := range res.Tags {
		if string(tag.Key) == "banner:action" && string(tag.Value) == action {
			return true
		}
	}
	return false
}

func tagValue(res *weave.DeliverResult, key string) string {
	for _, tag := range res.Tags {
		if string(tag.Key) == key {
			return string(tag.Value)
		}
	}
	return ""
}

func TestCreateBannerHandler(t *testing.T) {
	alice := weavetest.NewCondition()

	env := newTestEnv()
	db := store.MemStore()
	migration.MustInitPkg(db, "banner", "cash")

	ctx := env.ctxAs(100, alice)
	tx := &weavetest.Tx{Msg: &banner.CreateBannerMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Name:        "spring sale",
		ImageURL:    "https://cdn.example.com/spring.png",
		Description: "front page banner",
	}}

	if _, err := env.router.Check(ctx, db, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	res, err := env.router.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 32, len(res.Data))
	assert.Equal(t, true, hasAction(res, "create"))

	b := env.loadBanner(t, db, res.Data)
	assert.Equal(t, "spring sale", b.Name)
	assert.Equal(t, "https://cdn.example.com/spring.png", b.ImageURL)
	assert.Equal(t, false, b.Biddable)

	owner, err := env.reg.OwnerOf(db, res.Data)
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), owner)

	total, err := env.reg.TotalCount(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), total)

	// Identical payload yields a fresh id thanks to the nonce.
	res2, err := env.router.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	if string(res.Data) == string(res2.Data) {
		t.Fatal("expected a unique banner id per mint")
	}

	// Unauthenticated creation is rejected.
	noAuth := weave.WithHeight(context.Background(), 100)
	if _, err := env.router.Deliver(noAuth, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
}

func TestTransferBannerHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	price := coin.NewCoin(0, 100, "IOV")

	cases := map[string]struct {
		setup   func(t *testing.T, env *testEnv, db weave.KVStore) []byte
		signer  weave.Condition
		dest    weave.Address
		wantErr *errors.Error
	}{
		"owner moves the banner": {
			signer: alice,
			dest:   bob.Address(),
		},
		"non owner is rejected": {
			signer:  pete,
			dest:    pete.Address(),
			wantErr: errors.ErrUnauthorized,
		},
		"transfer to self is rejected": {
			signer:  alice,
			dest:    alice.Address(),
			wantErr: errors.ErrInput,
		},
		"open auction blocks the transfer": {
			setup: func(t *testing.T, env *testEnv, db weave.KVStore) []byte {
				id := env.createBanner(t, db, env.ctxAs(100, alice), "auctioned")
				tx := &weavetest.Tx{Msg: &banner.StartAuctionMsg{
					Metadata:      &weave.Metadata{Schema: 1},
					BannerID:      id,
					StartingPrice: &price,
				}}
				_, err := env.router.Deliver(env.ctxAs(100, alice), db, tx)
				assert.Nil(t, err)
				return id
			},
			signer:  alice,
			dest:    bob.Address(),
			wantErr: banner.ErrAuctionRunning,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv()
			db := store.MemStore()
			migration.MustInitPkg(db, "banner", "cash")

			var id []byte
			if tc.setup != nil {
				id = tc.setup(t, env, db)
			} else {
				id = env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")
			}

			tx := &weavetest.Tx{Msg: &banner.TransferBannerMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				BannerID:    id,
				Destination: tc.dest,
			}}
			res, err := env.router.Deliver(env.ctxAs(200, tc.signer), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, true, hasAction(res, "transfer"))
			assert.Equal(t, alice.Address().String(), tagValue(res, "banner:from"))
			assert.Equal(t, tc.dest.String(), tagValue(res, "banner:to"))
			owner, err := env.reg.OwnerOf(db, id)
			assert.Nil(t, err)
			assert.Equal(t, tc.dest, owner)
		})
	}
}

func TestSetImageURLHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	cases := map[string]struct {
		signer  weave.Condition
		wantErr *errors.Error
	}{
		"owner updates the image": {
			signer: alice,
		},
		"non owner is rejected": {
			signer:  pete,
			wantErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv()
			db := store.MemStore()
			migration.MustInitPkg(db, "banner", "cash")

			id := env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")

			tx := &weavetest.Tx{Msg: &banner.SetImageURLMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: id,
				ImageURL: "https://cdn.example.com/summer.png",
			}}
			_, err := env.router.Deliver(env.ctxAs(200, tc.signer), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			b := env.loadBanner(t, db, id)
			assert.Equal(t, "https://cdn.example.com/summer.png", b.ImageURL)
		})
	}
}

func TestStartAuctionHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	pete := weavetest.NewCondition()

	price := coin.NewCoin(0, 100, "IOV")

	env := newTestEnv()
	db := store.MemStore()
	migration.MustInitPkg(db, "banner", "cash")

	id := env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")

	tx := &weavetest.Tx{Msg: &banner.StartAuctionMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		BannerID:      id,
		StartingPrice: &price,
	}}

	// Only the owner can open the round.
	if _, err := env.router.Deliver(env.ctxAs(100, pete), db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}

	res, err := env.router.Deliver(env.ctxAs(100, alice), db, tx)
	assert.Nil(t, err)
	assert.Equal(t, true, hasAction(res, "start-auction"))
	assert.Equal(t, price.String(), tagValue(res, "banner:price"))

	b := env.loadBanner(t, db, id)
	assert.Equal(t, true, b.Biddable)
	assert.Equal(t, true, b.CurrentPrice.Equals(price))
	assert.Equal(t, alice.Address(), b.CurrentBidder)
	assert.Equal(t, int64(100)+auctionBlocks, b.BidEndHeight)

	// A second start on the same banner is rejected while the round is
	// open.
	if _, err := env.router.Deliver(env.ctxAs(101, alice), db, tx); !banner.ErrAuctionRunning.Is(err) {
		t.Fatalf("want auction running, got %+v", err)
	}
}

func TestBidHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carl := weavetest.NewCondition()

	startPrice := coin.NewCoin(0, 100, "IOV")

	setup := func(t *testing.T) (*testEnv, weave.CacheableKVStore, []byte) {
		env := newTestEnv()
		db := store.MemStore()
		migration.MustInitPkg(db, "banner", "cash")

		env.setBalance(t, db, bob.Address(), coin.NewCoin(10, 0, "IOV"))
		env.setBalance(t, db, carl.Address(), coin.NewCoin(10, 0, "IOV"))

		id := env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")
		tx := &weavetest.Tx{Msg: &banner.StartAuctionMsg{
			Metadata:      &weave.Metadata{Schema: 1},
			BannerID:      id,
			StartingPrice: &startPrice,
		}}
		_, err := env.router.Deliver(env.ctxAs(100, alice), db, tx)
		assert.Nil(t, err)
		return env, db, id
	}

	bid := func(p coin.Coin, id []byte) *weavetest.Tx {
		return &weavetest.Tx{Msg: &banner.BidMsg{
			Metadata: &weave.Metadata{Schema: 1},
			BannerID: id,
			Price:    &p,
		}}
	}

	t.Run("first bid pays the owner the whole price", func(t *testing.T) {
		env, db, id := setup(t)

		res, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		assert.Nil(t, err)
		assert.Equal(t, true, hasAction(res, "bid"))
		assert.Equal(t, coin.NewCoin(0, 150, "IOV").String(), tagValue(res, "banner:price"))
		assert.Equal(t, bob.Address().String(), tagValue(res, "banner:bidder"))

		b := env.loadBanner(t, db, id)
		assert.Equal(t, bob.Address(), b.CurrentBidder)
		assert.Equal(t, true, b.CurrentPrice.Equals(coin.NewCoin(0, 150, "IOV")))

		// The starting price "refund" and the increment both land with
		// alice who was owner and placeholder bidder at once.
		assert.Equal(t, true, env.balance(t, db, alice.Address()).Equals(mustCoins(t, coin.NewCoin(0, 150, "IOV"))))
		assert.Equal(t, true, env.balance(t, db, bob.Address()).Equals(mustCoins(t, coin.NewCoin(9, 999999850, "IOV"))))
	})

	t.Run("outbid refunds the previous bidder", func(t *testing.T) {
		env, db, id := setup(t)

		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		assert.Nil(t, err)
		_, err = env.router.Deliver(env.ctxAs(600, carl), db, bid(coin.NewCoin(0, 225, "IOV"), id))
		assert.Nil(t, err)

		b := env.loadBanner(t, db, id)
		assert.Equal(t, carl.Address(), b.CurrentBidder)

		// Bob is made whole, carl is down by his full bid, alice holds
		// the running price.
		assert.Equal(t, true, env.balance(t, db, bob.Address()).Equals(mustCoins(t, coin.NewCoin(10, 0, "IOV"))))
		assert.Equal(t, true, env.balance(t, db, carl.Address()).Equals(mustCoins(t, coin.NewCoin(9, 999999775, "IOV"))))
		assert.Equal(t, true, env.balance(t, db, alice.Address()).Equals(mustCoins(t, coin.NewCoin(0, 225, "IOV"))))
	})

	t.Run("owner cannot bid", func(t *testing.T) {
		env, db, id := setup(t)
		_, err := env.router.Deliver(env.ctxAs(500, alice), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		if !banner.ErrOwnBid.Is(err) {
			t.Fatalf("want own bid error, got %+v", err)
		}
	})

	t.Run("equal bid is too low", func(t *testing.T) {
		env, db, id := setup(t)
		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 100, "IOV"), id))
		if !banner.ErrBidTooLow.Is(err) {
			t.Fatalf("want bid too low, got %+v", err)
		}
	})

	t.Run("wrong currency is rejected", func(t *testing.T) {
		env, db, id := setup(t)
		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "BTC"), id))
		if !errors.ErrCurrency.Is(err) {
			t.Fatalf("want currency error, got %+v", err)
		}
	})

	t.Run("bid without funds fails and leaves no trace", func(t *testing.T) {
		env, db, id := setup(t)
		pete := weavetest.NewCondition()

		cache := db.CacheWrap()
		_, err := env.router.Deliver(env.ctxAs(500, pete), cache, bid(coin.NewCoin(0, 150, "IOV"), id))
		if !errors.ErrEmpty.Is(err) {
			t.Fatalf("want empty account error, got %+v", err)
		}
		cache.Discard()

		b := env.loadBanner(t, db, id)
		assert.Equal(t, alice.Address(), b.CurrentBidder)
		assert.Equal(t, true, b.CurrentPrice.Equals(startPrice))
	})

	t.Run("bid on idle banner is rejected", func(t *testing.T) {
		env := newTestEnv()
		db := store.MemStore()
		migration.MustInitPkg(db, "banner", "cash")
		id := env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")

		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		if !banner.ErrNoAuction.Is(err) {
			t.Fatalf("want no auction, got %+v", err)
		}
	})
}

func TestAuctionSettlement(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carl := weavetest.NewCondition()

	startPrice := coin.NewCoin(0, 100, "IOV")

	setup := func(t *testing.T) (*testEnv, weave.KVStore, []byte) {
		env := newTestEnv()
		db := store.MemStore()
		migration.MustInitPkg(db, "banner", "cash")

		env.setBalance(t, db, bob.Address(), coin.NewCoin(10, 0, "IOV"))
		env.setBalance(t, db, carl.Address(), coin.NewCoin(10, 0, "IOV"))

		id := env.createBanner(t, db, env.ctxAs(100, alice), "spring sale")
		tx := &weavetest.Tx{Msg: &banner.StartAuctionMsg{
			Metadata:      &weave.Metadata{Schema: 1},
			BannerID:      id,
			StartingPrice: &startPrice,
		}}
		_, err := env.router.Deliver(env.ctxAs(100, alice), db, tx)
		assert.Nil(t, err)
		return env, db, id
	}

	bid := func(p coin.Coin, id []byte) *weavetest.Tx {
		return &weavetest.Tx{Msg: &banner.BidMsg{
			Metadata: &weave.Metadata{Schema: 1},
			BannerID: id,
			Price:    &p,
		}}
	}

	t.Run("late bid settles the deal for the leader", func(t *testing.T) {
		env, db, id := setup(t)

		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		assert.Nil(t, err)

		// Carl arrives after the deadline. His price is discarded, he
		// pays nothing and the banner goes to bob.
		deadline := int64(100) + auctionBlocks
		res, err := env.router.Deliver(env.ctxAs(deadline, carl), db, bid(coin.NewCoin(5, 0, "IOV"), id))
		assert.Nil(t, err)
		assert.Equal(t, true, hasAction(res, "deal"))
		// The settlement runs the ownership transfer, so both
		// notifications are published with the winning bid data.
		assert.Equal(t, true, hasAction(res, "transfer"))
		assert.Equal(t, alice.Address().String(), tagValue(res, "banner:from"))
		assert.Equal(t, bob.Address().String(), tagValue(res, "banner:to"))
		assert.Equal(t, bob.Address().String(), tagValue(res, "banner:bidder"))
		assert.Equal(t, coin.NewCoin(0, 150, "IOV").String(), tagValue(res, "banner:price"))

		owner, err := env.reg.OwnerOf(db, id)
		assert.Nil(t, err)
		assert.Equal(t, bob.Address(), owner)

		b := env.loadBanner(t, db, id)
		assert.Equal(t, false, b.Biddable)
		if b.CurrentPrice != nil || b.CurrentBidder != nil || b.BidEndHeight != 0 {
			t.Fatalf("auction fields not reset: %+v", b)
		}

		assert.Equal(t, true, env.balance(t, db, carl.Address()).Equals(mustCoins(t, coin.NewCoin(10, 0, "IOV"))))
		assert.Equal(t, true, env.balance(t, db, bob.Address()).Equals(mustCoins(t, coin.NewCoin(9, 999999850, "IOV"))))
	})

	t.Run("round without bids is aborted", func(t *testing.T) {
		env, db, id := setup(t)

		deadline := int64(100) + auctionBlocks
		res, err := env.router.Deliver(env.ctxAs(deadline+50, bob), db, bid(coin.NewCoin(5, 0, "IOV"), id))
		assert.Nil(t, err)
		assert.Equal(t, true, hasAction(res, "abort"))
		assert.Equal(t, false, hasAction(res, "transfer"))

		owner, err := env.reg.OwnerOf(db, id)
		assert.Nil(t, err)
		assert.Equal(t, alice.Address(), owner)

		b := env.loadBanner(t, db, id)
		assert.Equal(t, false, b.Biddable)
		assert.Equal(t, true, env.balance(t, db, bob.Address()).Equals(mustCoins(t, coin.NewCoin(10, 0, "IOV"))))
	})

	t.Run("settlement closes the round exactly once", func(t *testing.T) {
		env, db, id := setup(t)

		_, err := env.router.Deliver(env.ctxAs(500, bob), db, bid(coin.NewCoin(0, 150, "IOV"), id))
		assert.Nil(t, err)

		deadline := int64(100) + auctionBlocks
		_, err = env.router.Deliver(env.ctxAs(deadline, carl), db, bid(coin.NewCoin(5, 0, "IOV"), id))
		assert.Nil(t, err)

		// The banner is idle again, another late bid finds no auction.
		_, err = env.router.Deliver(env.ctxAs(deadline+1, carl), db, bid(coin.NewCoin(5, 0, "IOV"), id))
		if !banner.ErrNoAuction.Is(err) {
			t.Fatalf("want no auction, got %+v", err)
		}

		// The new owner can open the next round.
		tx := &weavetest.Tx{Msg: &banner.StartAuctionMsg{
			Metadata:      &weave.Metadata{Schema: 1},
			BannerID:      id,
			StartingPrice: &startPrice,
		}}
		_, err = env.router.Deliver(env.ctxAs(deadline+2, bob), db, tx)
		assert.Nil(t, err)
	})
}

func mustCoins(t *testing.T, cs ...coin.Coin) coin.Coins {
	t.Helper()
	combined, err := coin.CombineCoins(cs...)
	if err != nil {
		t.Fatalf("cannot combine coins: %+v", err)
	}
	return combined
}
