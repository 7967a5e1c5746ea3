/*
Package banner implements a registry of banner advertisement assets with a
built in English auction.

Every banner has exactly one owner. Banners are enumerable both globally
and per owner through dense zero based indices that are compacted with a
swap and pop on every ownership change, so a position is only stable until
the next transfer.

An owner can put a banner up for auction at a starting price. Bids must
strictly outbid the current price and are settled immediately: the previous
bidder gets its stake back and the owner collects the difference, so at any
moment the owner holds the full current price and only the leading bidder
has money at stake. No scheduler watches the deadline. The first bid that
arrives after the deadline settles the round instead of competing in it,
handing the banner to the highest bidder or aborting when nobody bid.
*/
package banner
