package banner_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/iov-one/bannerd/x/banner"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func bannerID(seed byte) []byte {
	sum := sha256.Sum256([]byte{seed})
	return sum[:]
}

func TestRegistryMint(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	db := store.MemStore()
	reg := banner.NewRegistry()

	ids := [][]byte{bannerID(1), bannerID(2), bannerID(3)}
	assert.Nil(t, reg.Mint(db, ids[0], alice))
	assert.Nil(t, reg.Mint(db, ids[1], alice))
	assert.Nil(t, reg.Mint(db, ids[2], bob))

	total, err := reg.TotalCount(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), total)

	owned, err := reg.OwnedCount(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), owned)

	owned, err = reg.OwnedCount(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), owned)

	// Global enumeration preserves mint order.
	for i, want := range ids {
		got, err := reg.BannerAt(db, int64(i))
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	owner, err := reg.OwnerOf(db, ids[1])
	assert.Nil(t, err)
	assert.Equal(t, alice, owner)

	if err := reg.Mint(db, ids[0], bob); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %+v", err)
	}
	if _, err := reg.OwnerOf(db, bannerID(99)); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestRegistryTransferSwapAndPop(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	db := store.MemStore()
	reg := banner.NewRegistry()

	ids := [][]byte{bannerID(1), bannerID(2), bannerID(3)}
	for _, id := range ids {
		assert.Nil(t, reg.Mint(db, id, alice))
	}

	// Move the middle banner away. The tail must take its slot so that
	// the enumeration stays dense.
	assert.Nil(t, reg.Transfer(db, alice, bob, ids[1]))

	owner, err := reg.OwnerOf(db, ids[1])
	assert.Nil(t, err)
	assert.Equal(t, bob, owner)

	owned, err := reg.OwnedCount(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), owned)

	got, err := reg.OwnedBannerAt(db, alice, 0)
	assert.Nil(t, err)
	assert.Equal(t, ids[0], got)
	got, err = reg.OwnedBannerAt(db, alice, 1)
	assert.Nil(t, err)
	assert.Equal(t, ids[2], got)
	if _, err := reg.OwnedBannerAt(db, alice, 2); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found past the tail, got %+v", err)
	}

	got, err = reg.OwnedBannerAt(db, bob, 0)
	assert.Nil(t, err)
	assert.Equal(t, ids[1], got)

	// The global enumeration is untouched by transfers.
	total, err := reg.TotalCount(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), total)
	for i, want := range ids {
		got, err := reg.BannerAt(db, int64(i))
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRegistryTransferTail(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	db := store.MemStore()
	reg := banner.NewRegistry()

	ids := [][]byte{bannerID(1), bannerID(2)}
	for _, id := range ids {
		assert.Nil(t, reg.Mint(db, id, alice))
	}

	// Moving the tail itself must not resurrect the popped slot.
	assert.Nil(t, reg.Transfer(db, alice, bob, ids[1]))

	owned, err := reg.OwnedCount(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), owned)
	got, err := reg.OwnedBannerAt(db, alice, 0)
	assert.Nil(t, err)
	assert.Equal(t, ids[0], got)
	if _, err := reg.OwnedBannerAt(db, alice, 1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found past the tail, got %+v", err)
	}
}

func TestRegistryTransferAuthority(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	carl := weavetest.NewCondition().Address()

	db := store.MemStore()
	reg := banner.NewRegistry()

	id := bannerID(1)
	assert.Nil(t, reg.Mint(db, id, alice))

	if err := reg.Transfer(db, bob, carl, id); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	if err := reg.Transfer(db, alice, bob, bannerID(99)); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	// A banner never has more than one owner: after a chain of transfers
	// only the last destination can move it.
	assert.Nil(t, reg.Transfer(db, alice, bob, id))
	assert.Nil(t, reg.Transfer(db, bob, carl, id))
	if err := reg.Transfer(db, bob, alice, id); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %+v", err)
	}
	owner, err := reg.OwnerOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, carl, owner)
}

func TestRegistryConservation(t *testing.T) {
	owners := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}

	db := store.MemStore()
	reg := banner.NewRegistry()

	var ids [][]byte
	for i := byte(1); i <= 9; i++ {
		id := bannerID(i)
		ids = append(ids, id)
		assert.Nil(t, reg.Mint(db, id, owners[int(i)%len(owners)]))
	}
	assert.Nil(t, reg.Transfer(db, owners[1], owners[0], bannerID(1)))
	assert.Nil(t, reg.Transfer(db, owners[2], owners[0], bannerID(2)))
	assert.Nil(t, reg.Transfer(db, owners[0], owners[1], bannerID(3)))

	// Per owner counts sum up to the total and every enumerated id maps
	// back to the owner enumerating it.
	total, err := reg.TotalCount(db)
	assert.Nil(t, err)
	var sum int64
	for _, owner := range owners {
		cnt, err := reg.OwnedCount(db, owner)
		assert.Nil(t, err)
		for pos := int64(0); pos < cnt; pos++ {
			id, err := reg.OwnedBannerAt(db, owner, pos)
			assert.Nil(t, err)
			got, err := reg.OwnerOf(db, id)
			assert.Nil(t, err)
			assert.Equal(t, owner, got)
		}
		sum += cnt
	}
	assert.Equal(t, total, sum)

	// Every minted id is still enumerated exactly once globally.
	seen := make(map[string]bool)
	for pos := int64(0); pos < total; pos++ {
		id, err := reg.BannerAt(db, pos)
		assert.Nil(t, err)
		seen[string(id)] = true
	}
	for _, id := range ids {
		if !seen[string(id)] {
			t.Fatalf("banner %x missing from global enumeration", id)
		}
	}
}

func TestRegistryQuery(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	db := store.MemStore()
	reg := banner.NewRegistry()
	id := bannerID(1)
	assert.Nil(t, reg.Mint(db, id, alice))

	models, err := reg.Query(db, weave.KeyQueryMod, id)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	if !bytes.Equal(models[0].Value, alice) {
		t.Fatalf("unexpected owner: %x", models[0].Value)
	}

	models, err = reg.Query(db, weave.KeyQueryMod, bannerID(99))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))
}
