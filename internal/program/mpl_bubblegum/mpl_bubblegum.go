// Package mpl_bubblegum carries the account and instruction layout of the
// Metaplex Bubblegum compressed-NFT program. The SDK ships no binding for
// Bubblegum, so instructions are assembled by hand with explicit account
// metas, the same way ATA instructions are built where the SDK falls short.
package mpl_bubblegum

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
)

var (
	// ProgramID is the mainnet/devnet deployment of mpl-bubblegum.
	ProgramID = common.PublicKeyFromString("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")

	// CompressionProgramID owns the concurrent merkle tree accounts.
	CompressionProgramID = common.PublicKeyFromString("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")

	// NoopProgramID is the spl-noop log wrapper.
	NoopProgramID = common.PublicKeyFromString("noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV")
)

// collectionCPISeed is the fixed seed of the PDA Bubblegum signs
// token-metadata CPIs with.
var collectionCPISeed = []byte("collection_cpi")

// TreeAuthority derives the tree config PDA for a merkle tree account.
func TreeAuthority(merkleTree common.PublicKey) (common.PublicKey, error) {
	pk, _, err := common.FindProgramAddress([][]byte{merkleTree.Bytes()}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive tree authority: %w", err)
	}
	return pk, nil
}

// CollectionCPISigner derives the PDA that co-signs collection verification
// during mint_to_collection_v1.
func CollectionCPISigner() (common.PublicKey, error) {
	pk, _, err := common.FindProgramAddress([][]byte{collectionCPISeed}, ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("derive collection cpi signer: %w", err)
	}
	return pk, nil
}

// TreeAccountSize returns the byte size of a concurrent merkle tree account
// for the given parameters: the two-part header, the tree struct
// (sequence number, active index, buffer size, change log ring, rightmost
// proof path) and the canopy cache.
func TreeAccountSize(maxDepth, maxBufferSize, canopyDepth uint32) uint64 {
	const headerSize = 2 + 54

	node := uint64(32)
	changeLog := node + node*uint64(maxDepth) + 8 // root + path + index/padding
	path := node*uint64(maxDepth) + node + 8      // proof + leaf + index/padding
	tree := 24 + uint64(maxBufferSize)*changeLog + path

	canopy := (uint64(1)<<(canopyDepth+1) - 2) * node

	return headerSize + tree + canopy
}
