package banner

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Key prefixes of the custody structures. Positions and counts are stored
// as 8 byte big endian integers so that they sort and compare the same way
// the sequence package encodes them.
const (
	prefixOwner    = "_banner.owner:"
	prefixAll      = "_banner.all:"
	prefixAllIdx   = "_banner.allidx:"
	prefixOwned    = "_banner.owned:"
	prefixOwnedIdx = "_banner.ownedidx:"

	keyAllCount = "_banner.allcnt"
)

// Registry maintains banner custody: the id to owner mapping, a dense
// global enumeration of all banner ids and a dense per owner enumeration.
// Every mutation keeps the three structures consistent. The Banner model
// itself lives in the bucket, not here.
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

// encodeCount encodes a position or count as 8 byte big endian, the layout
// the orm sequences use as well.
func encodeCount(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

// decodeCount reads an 8 byte big endian value, treating a missing entry
// as zero.
func decodeCount(raw []byte) int64 {
	if raw == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}

func ownerKey(id []byte) []byte {
	return append([]byte(prefixOwner), id...)
}

func allKey(pos int64) []byte {
	return append([]byte(prefixAll), encodeCount(pos)...)
}

func allIdxKey(id []byte) []byte {
	return append([]byte(prefixAllIdx), id...)
}

func ownedKey(owner weave.Address, pos int64) []byte {
	k := append([]byte(prefixOwned), owner...)
	return append(k, encodeCount(pos)...)
}

func ownedCountKey(owner weave.Address) []byte {
	return append([]byte(prefixOwned+"cnt:"), owner...)
}

func ownedIdxKey(id []byte) []byte {
	return append([]byte(prefixOwnedIdx), id...)
}

// RegisterQuery exposes the ownership lookup. Queried by banner id, the
// response value is the raw owner address.
func (r *Registry) RegisterQuery(qr weave.QueryRouter) {
	qr.Register("/banners/owner", r)
}

var _ weave.QueryHandler = (*Registry)(nil)

func (r *Registry) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		owner, err := r.OwnerOf(db, data)
		if errors.ErrNotFound.Is(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []weave.Model{{Key: ownerKey(data), Value: owner}}, nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// OwnerOf returns the current owner of a banner or ErrNotFound when the id
// was never minted.
func (r *Registry) OwnerOf(db weave.ReadOnlyKVStore, id []byte) (weave.Address, error) {
	raw, err := db.Get(ownerKey(id))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no such banner")
	}
	return weave.Address(raw), nil
}

// TotalCount returns how many banners exist overall.
func (r *Registry) TotalCount(db weave.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get([]byte(keyAllCount))
	if err != nil {
		return 0, err
	}
	return decodeCount(raw), nil
}

// OwnedCount returns how many banners the given address owns.
func (r *Registry) OwnedCount(db weave.ReadOnlyKVStore, owner weave.Address) (int64, error) {
	raw, err := db.Get(ownedCountKey(owner))
	if err != nil {
		return 0, err
	}
	return decodeCount(raw), nil
}

// BannerAt returns the banner id stored at the given position of the
// global enumeration. Positions run from 0 to TotalCount-1.
func (r *Registry) BannerAt(db weave.ReadOnlyKVStore, pos int64) ([]byte, error) {
	raw, err := db.Get(allKey(pos))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no banner at position %d", pos)
	}
	return raw, nil
}

// OwnedBannerAt returns the banner id stored at the given position of the
// owner enumeration. Positions run from 0 to OwnedCount-1.
func (r *Registry) OwnedBannerAt(db weave.ReadOnlyKVStore, owner weave.Address, pos int64) ([]byte, error) {
	raw, err := db.Get(ownedKey(owner, pos))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no banner at position %d", pos)
	}
	return raw, nil
}

// Mint registers a brand new banner id under the given owner, appending it
// to both enumerations. It fails with ErrDuplicate when the id is already
// in custody and with ErrOverflow when a counter cannot grow.
func (r *Registry) Mint(db weave.KVStore, id []byte, owner weave.Address) error {
	existing, err := db.Get(ownerKey(id))
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Wrap(errors.ErrDuplicate, "banner id already taken")
	}

	total, err := r.TotalCount(db)
	if err != nil {
		return err
	}
	if total == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "total banner count")
	}
	owned, err := r.OwnedCount(db, owner)
	if err != nil {
		return err
	}
	if owned == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "owned banner count")
	}

	if err := db.Set(ownerKey(id), owner); err != nil {
		return err
	}
	if err := db.Set(allKey(total), id); err != nil {
		return err
	}
	if err := db.Set(allIdxKey(id), encodeCount(total)); err != nil {
		return err
	}
	if err := db.Set([]byte(keyAllCount), encodeCount(total+1)); err != nil {
		return err
	}
	if err := db.Set(ownedKey(owner, owned), id); err != nil {
		return err
	}
	if err := db.Set(ownedIdxKey(id), encodeCount(owned)); err != nil {
		return err
	}
	return db.Set(ownedCountKey(owner), encodeCount(owned+1))
}

// Transfer moves a banner from one owner to another. The source owner
// enumeration is compacted with a swap and pop so that it stays dense, the
// banner is appended to the destination enumeration. The global
// enumeration is untouched.
func (r *Registry) Transfer(db weave.KVStore, from, to weave.Address, id []byte) error {
	owner, err := r.OwnerOf(db, id)
	if err != nil {
		return err
	}
	if !owner.Equals(from) {
		return errors.Wrap(errors.ErrUnauthorized, "not the banner owner")
	}

	fromCount, err := r.OwnedCount(db, from)
	if err != nil {
		return err
	}
	if fromCount == 0 {
		return errors.Wrap(errors.ErrHuman, "owner count out of sync")
	}
	toCount, err := r.OwnedCount(db, to)
	if err != nil {
		return err
	}
	if toCount == math.MaxInt64 {
		return errors.Wrap(errors.ErrOverflow, "owned banner count")
	}

	posRaw, err := db.Get(ownedIdxKey(id))
	if err != nil {
		return err
	}
	if posRaw == nil {
		return errors.Wrap(errors.ErrHuman, "owner index out of sync")
	}
	pos := decodeCount(posRaw)
	last := fromCount - 1

	// Swap and pop: when the departing banner is not the tail of the
	// source enumeration, move the tail into its slot.
	if pos != last {
		tail, err := db.Get(ownedKey(from, last))
		if err != nil {
			return err
		}
		if tail == nil {
			return errors.Wrap(errors.ErrHuman, "owner enumeration out of sync")
		}
		if err := db.Set(ownedKey(from, pos), tail); err != nil {
			return err
		}
		if err := db.Set(ownedIdxKey(tail), encodeCount(pos)); err != nil {
			return err
		}
	}
	if err := db.Delete(ownedKey(from, last)); err != nil {
		return err
	}
	if err := db.Set(ownedCountKey(from), encodeCount(last)); err != nil {
		return err
	}

	if err := db.Set(ownedKey(to, toCount), id); err != nil {
		return err
	}
	if err := db.Set(ownedIdxKey(id), encodeCount(toCount)); err != nil {
		return err
	}
	if err := db.Set(ownedCountKey(to), encodeCount(toCount+1)); err != nil {
		return err
	}
	return db.Set(ownerKey(id), to)
}
