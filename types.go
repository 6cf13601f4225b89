package bubblegum

// TreeConfig describes the capacity of a new concurrent merkle tree.
// MaxDepth bounds how many leaves the tree can hold (2^MaxDepth) and
// MaxBufferSize how many concurrent writes it absorbs per slot; both must
// be one of the depth/buffer pairs the compression program supports.
type TreeConfig struct {
	MaxDepth      uint32
	MaxBufferSize uint32
	Public        bool
}

// Creator is one royalty recipient of a compressed NFT. Share is a
// percentage; shares across the creator list must sum to 100, which the
// on-chain program enforces.
type Creator struct {
	Address  string // base58 public key
	Verified bool
	Share    uint8
}

// MetadataArgs is the metadata of a compressed NFT, constructed fresh per
// mint call. Collection, if set, is the base58 address of the collection
// mint; Uses, if set, caps on-chain uses (remaining = total = *Uses).
type MetadataArgs struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16 // 500 = 5%
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8
	Creators             []Creator
	Collection           *string
	Uses                 *uint64
}
