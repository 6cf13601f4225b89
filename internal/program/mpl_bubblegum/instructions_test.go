package mpl_bubblegum

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTree      = common.PublicKeyFromString("So11111111111111111111111111111111111111112")
	testPayer     = common.PublicKeyFromString("4fYNw3dojWmQ4dXtSGE9epjRGy9pFSx62YypT7avPYvA")
	testAuthority = common.PublicKeyFromString("HrW5zEfe4dqbJchYVaS6WzkE18UD4NB7JFEmdL93UdFd")
)

func TestCreateTreeInstruction(t *testing.T) {
	ix, err := CreateTree(CreateTreeParam{
		TreeAuthority: testAuthority,
		MerkleTree:    testTree,
		Payer:         testPayer,
		TreeCreator:   testPayer,
		MaxDepth:      14,
		MaxBufferSize: 64,
		Public:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, ProgramID, ix.ProgramID)
	require.True(t, len(ix.Data) > 8)
	assert.Equal(t, createTreeDiscriminator, ix.Data[:8])

	var args createTreeArgs
	require.NoError(t, borsh.Deserialize(&args, ix.Data[8:]))
	assert.Equal(t, uint32(14), args.MaxDepth)
	assert.Equal(t, uint32(64), args.MaxBufferSize)
	require.NotNil(t, args.Public)
	assert.True(t, *args.Public)

	require.Len(t, ix.Accounts, 7)
	assert.Equal(t, testAuthority, ix.Accounts[0].PubKey)
	assert.True(t, ix.Accounts[0].IsWritable)
	// the merkle tree account co-signs its own initialization
	assert.Equal(t, testTree, ix.Accounts[1].PubKey)
	assert.True(t, ix.Accounts[1].IsSigner)
	assert.True(t, ix.Accounts[1].IsWritable)
	assert.True(t, ix.Accounts[2].IsSigner)
	assert.True(t, ix.Accounts[3].IsSigner)
	assert.Equal(t, NoopProgramID, ix.Accounts[4].PubKey)
	assert.Equal(t, CompressionProgramID, ix.Accounts[5].PubKey)
	assert.Equal(t, common.SystemProgramID, ix.Accounts[6].PubKey)
}

func TestMintToCollectionV1Instruction(t *testing.T) {
	tokenStandard := TokenStandardNonFungible
	meta := Metadata{
		Name:                 "A",
		Symbol:               "B",
		Uri:                  "C",
		SellerFeeBasisPoints: 500,
		IsMutable:            true,
		TokenStandard:        &tokenStandard,
		TokenProgramVersion:  TokenProgramVersionOriginal,
	}

	ix, err := MintToCollectionV1(MintToCollectionV1Param{
		TreeAuthority:       testAuthority,
		LeafOwner:           testPayer,
		LeafDelegate:        testPayer,
		MerkleTree:          testTree,
		Payer:               testPayer,
		TreeDelegate:        testPayer,
		CollectionAuthority: testPayer,
		Metadata:            meta,
	})
	require.NoError(t, err)

	assert.Equal(t, ProgramID, ix.ProgramID)
	assert.Equal(t, mintToCollectionV1Discriminator, ix.Data[:8])

	// Borsh layout of the metadata args, field by field.
	want := []byte{
		1, 0, 0, 0, 'A', // name
		1, 0, 0, 0, 'B', // symbol
		1, 0, 0, 0, 'C', // uri
		244, 1, // seller_fee_basis_points = 500
		0,          // primary_sale_happened
		1,          // is_mutable
		0,          // edition_nonce: none
		1, 0,       // token_standard: some NonFungible
		0,          // collection: none
		0,          // uses: none
		0,          // token_program_version: Original
		0, 0, 0, 0, // creators: empty vec
	}
	assert.Equal(t, want, ix.Data[8:])

	require.Len(t, ix.Accounts, 16)
	assert.True(t, ix.Accounts[0].IsWritable) // tree authority
	assert.True(t, ix.Accounts[3].IsWritable) // merkle tree
	assert.True(t, ix.Accounts[4].IsSigner)   // payer
	assert.True(t, ix.Accounts[5].IsSigner)   // tree delegate
	assert.True(t, ix.Accounts[6].IsSigner)   // collection authority
	// absent collection authority record is the program's own id
	assert.Equal(t, ProgramID, ix.Accounts[7].PubKey)
	assert.True(t, ix.Accounts[9].IsWritable) // collection metadata
	assert.Equal(t, common.MetaplexTokenMetaProgramID, ix.Accounts[14].PubKey)
	assert.Equal(t, common.SystemProgramID, ix.Accounts[15].PubKey)
}

func TestMintMetadataWithCreatorsAndCollection(t *testing.T) {
	tokenStandard := TokenStandardNonFungible
	meta := Metadata{
		Name:                "N",
		TokenStandard:       &tokenStandard,
		Collection:          &Collection{Verified: false, Key: testTree},
		Uses:                &Uses{UseMethod: UseMethodMultiple, Remaining: 3, Total: 3},
		TokenProgramVersion: TokenProgramVersionOriginal,
		Creators: []Creator{
			{Address: testPayer, Verified: true, Share: 60},
			{Address: testTree, Verified: false, Share: 40},
		},
	}

	data, err := borsh.Serialize(meta)
	require.NoError(t, err)

	var got Metadata
	require.NoError(t, borsh.Deserialize(&got, data))
	assert.Equal(t, meta, got)
}

func TestTransferInstruction(t *testing.T) {
	newOwner := common.PublicKeyFromString("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")

	ix, err := Transfer(TransferParam{
		TreeAuthority: testAuthority,
		LeafOwner:     testPayer,
		LeafDelegate:  testPayer,
		NewLeafOwner:  newOwner,
		MerkleTree:    testTree,
		Nonce:         7,
		Index:         7,
	})
	require.NoError(t, err)

	assert.Equal(t, ProgramID, ix.ProgramID)
	assert.Equal(t, transferDiscriminator, ix.Data[:8])
	// root + data hash + creator hash + nonce + index
	assert.Len(t, ix.Data, 8+32*3+8+4)

	var args transferArgs
	require.NoError(t, borsh.Deserialize(&args, ix.Data[8:]))
	assert.Equal(t, uint64(7), args.Nonce)
	assert.Equal(t, uint32(7), args.Index)

	require.Len(t, ix.Accounts, 8)
	// ownership is asserted through the proof args, not a leaf owner signature
	assert.False(t, ix.Accounts[1].IsSigner)
	assert.Equal(t, newOwner, ix.Accounts[3].PubKey)
	assert.True(t, ix.Accounts[4].IsWritable)
	assert.Equal(t, common.SystemProgramID, ix.Accounts[7].PubKey)
}
