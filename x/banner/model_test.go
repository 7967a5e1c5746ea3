package banner_test

import (
	"testing"

	"github.com/iov-one/bannerd/x/banner"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestBannerValidate(t *testing.T) {
	bidder := weavetest.NewCondition().Address()
	price := coin.NewCoin(0, 100, "IOV")

	cases := map[string]struct {
		model   banner.Banner
		wantErr *errors.Error
	}{
		"valid idle banner": {
			model: banner.Banner{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "spring sale",
				ImageURL: "https://cdn.example.com/spring.png",
			},
		},
		"valid biddable banner": {
			model: banner.Banner{
				Metadata:      &weave.Metadata{Schema: 1},
				Name:          "spring sale",
				Biddable:      true,
				CurrentPrice:  &price,
				CurrentBidder: bidder,
				BidEndHeight:  14500,
			},
		},
		"missing metadata": {
			model: banner.Banner{
				Name: "spring sale",
			},
			wantErr: errors.ErrMetadata,
		},
		"missing name": {
			model: banner.Banner{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"biddable without price": {
			model: banner.Banner{
				Metadata:      &weave.Metadata{Schema: 1},
				Name:          "spring sale",
				Biddable:      true,
				CurrentBidder: bidder,
				BidEndHeight:  14500,
			},
			wantErr: errors.ErrEmpty,
		},
		"biddable without bidder": {
			model: banner.Banner{
				Metadata:     &weave.Metadata{Schema: 1},
				Name:         "spring sale",
				Biddable:     true,
				CurrentPrice: &price,
				BidEndHeight: 14500,
			},
			wantErr: errors.ErrEmpty,
		},
		"biddable without deadline": {
			model: banner.Banner{
				Metadata:      &weave.Metadata{Schema: 1},
				Name:          "spring sale",
				Biddable:      true,
				CurrentPrice:  &price,
				CurrentBidder: bidder,
			},
			wantErr: errors.ErrInput,
		},
		"idle banner with leftover price": {
			model: banner.Banner{
				Metadata:     &weave.Metadata{Schema: 1},
				Name:         "spring sale",
				CurrentPrice: &price,
			},
			wantErr: errors.ErrState,
		},
		"idle banner with leftover bidder": {
			model: banner.Banner{
				Metadata:      &weave.Metadata{Schema: 1},
				Name:          "spring sale",
				CurrentBidder: bidder,
			},
			wantErr: errors.ErrState,
		},
		"idle banner with leftover deadline": {
			model: banner.Banner{
				Metadata:     &weave.Metadata{Schema: 1},
				Name:         "spring sale",
				BidEndHeight: 14500,
			},
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.model.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestBannerCopy(t *testing.T) {
	bidder := weavetest.NewCondition().Address()
	price := coin.NewCoin(0, 100, "IOV")
	original := &banner.Banner{
		Metadata:      &weave.Metadata{Schema: 1},
		Name:          "spring sale",
		ImageURL:      "https://cdn.example.com/spring.png",
		Description:   "front page banner",
		Biddable:      true,
		CurrentPrice:  &price,
		CurrentBidder: bidder,
		BidEndHeight:  14500,
	}

	cpy := original.Copy().(*banner.Banner)
	assert.Equal(t, original, cpy)

	cpy.CurrentPrice.Whole = 9
	cpy.CurrentBidder[0] ^= 0xff
	assert.Equal(t, int64(0), original.CurrentPrice.Whole)
	assert.Equal(t, bidder, original.CurrentBidder)
}
