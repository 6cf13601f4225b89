package mpl_bubblegum

import (
	"github.com/blocto/solana-go-sdk/common"
	"github.com/near/borsh-go"
)

// TokenProgramVersion values.
const (
	TokenProgramVersionOriginal  borsh.Enum = 0
	TokenProgramVersionToken2022 borsh.Enum = 1
)

// TokenStandard values.
const (
	TokenStandardNonFungible        borsh.Enum = 0
	TokenStandardFungibleAsset      borsh.Enum = 1
	TokenStandardFungible           borsh.Enum = 2
	TokenStandardNonFungibleEdition borsh.Enum = 3
)

// UseMethod values.
const (
	UseMethodBurn     borsh.Enum = 0
	UseMethodMultiple borsh.Enum = 1
	UseMethodSingle   borsh.Enum = 2
)

// Creator is one royalty recipient of a leaf. Shares across a leaf's
// creator list must sum to 100; the program enforces that.
type Creator struct {
	Address  common.PublicKey
	Verified bool
	Share    uint8
}

// Collection points a leaf at its collection NFT. Verified must be false on
// mint; the program flips it during the collection CPI.
type Collection struct {
	Verified bool
	Key      common.PublicKey
}

// Uses caps how often the NFT can be "used" on-chain.
type Uses struct {
	UseMethod borsh.Enum
	Remaining uint64
	Total     uint64
}

// Metadata is the Borsh argument struct of mint instructions. Field order
// is the wire layout and must not change.
type Metadata struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *uint8
	TokenStandard        *borsh.Enum
	Collection           *Collection
	Uses                 *Uses
	TokenProgramVersion  borsh.Enum
	Creators             []Creator
}
