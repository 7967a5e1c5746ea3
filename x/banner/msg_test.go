package banner_test

import (
	"strings"
	"testing"

	"github.com/iov-one/bannerd/x/banner"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateBannerMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     banner.CreateBannerMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: banner.CreateBannerMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "spring sale",
				ImageURL:    "https://cdn.example.com/spring.png",
				Description: "front page banner",
			},
		},
		"missing metadata": {
			msg: banner.CreateBannerMsg{
				Name: "spring sale",
			},
			wantErr: errors.ErrMetadata,
		},
		"missing name": {
			msg: banner.CreateBannerMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"name too long": {
			msg: banner.CreateBannerMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     strings.Repeat("x", 65),
			},
			wantErr: errors.ErrInput,
		},
		"image url too long": {
			msg: banner.CreateBannerMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "spring sale",
				ImageURL: strings.Repeat("x", 257),
			},
			wantErr: errors.ErrInput,
		},
		"description too long": {
			msg: banner.CreateBannerMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "spring sale",
				Description: strings.Repeat("x", 513),
			},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestTransferBannerMsgValidate(t *testing.T) {
	dest := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     banner.TransferBannerMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: banner.TransferBannerMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				BannerID:    make([]byte, 32),
				Destination: dest,
			},
		},
		"short banner id": {
			msg: banner.TransferBannerMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				BannerID:    []byte("too-short"),
				Destination: dest,
			},
			wantErr: errors.ErrInput,
		},
		"missing destination": {
			msg: banner.TransferBannerMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
			},
			wantErr: errors.ErrEmpty,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestSetImageURLMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     banner.SetImageURLMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: banner.SetImageURLMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
				ImageURL: "https://cdn.example.com/summer.png",
			},
		},
		"clearing the image is allowed": {
			msg: banner.SetImageURLMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
			},
		},
		"image url too long": {
			msg: banner.SetImageURLMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
				ImageURL: strings.Repeat("x", 257),
			},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestStartAuctionMsgValidate(t *testing.T) {
	price := coin.NewCoin(0, 100, "IOV")
	negative := coin.NewCoin(-1, 0, "IOV")

	cases := map[string]struct {
		msg     banner.StartAuctionMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: banner.StartAuctionMsg{
				Metadata:      &weave.Metadata{Schema: 1},
				BannerID:      make([]byte, 32),
				StartingPrice: &price,
			},
		},
		"missing price": {
			msg: banner.StartAuctionMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
			},
			wantErr: errors.ErrEmpty,
		},
		"negative price": {
			msg: banner.StartAuctionMsg{
				Metadata:      &weave.Metadata{Schema: 1},
				BannerID:      make([]byte, 32),
				StartingPrice: &negative,
			},
			wantErr: errors.ErrAmount,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestBidMsgValidate(t *testing.T) {
	price := coin.NewCoin(0, 150, "IOV")

	cases := map[string]struct {
		msg     banner.BidMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: banner.BidMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
				Price:    &price,
			},
		},
		"missing price": {
			msg: banner.BidMsg{
				Metadata: &weave.Metadata{Schema: 1},
				BannerID: make([]byte, 32),
			},
			wantErr: errors.ErrEmpty,
		},
		"missing banner id": {
			msg: banner.BidMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Price:    &price,
			},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
