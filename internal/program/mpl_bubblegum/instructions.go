package mpl_bubblegum

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
)

// Anchor instruction discriminators: first 8 bytes of
// sha256("global:<instruction_name>").
var (
	createTreeDiscriminator         = []byte{165, 83, 136, 142, 89, 202, 47, 220}
	mintToCollectionV1Discriminator = []byte{153, 18, 178, 47, 197, 158, 86, 15}
	transferDiscriminator           = []byte{163, 52, 200, 231, 140, 3, 69, 186}
)

type createTreeArgs struct {
	MaxDepth      uint32
	MaxBufferSize uint32
	Public        *bool
}

type transferArgs struct {
	Root        [32]uint8
	DataHash    [32]uint8
	CreatorHash [32]uint8
	Nonce       uint64
	Index       uint32
}

func instructionData(discriminator []byte, args interface{}) ([]byte, error) {
	body, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("serialize instruction args: %w", err)
	}
	data := make([]byte, 0, len(discriminator)+len(body))
	data = append(data, discriminator...)
	return append(data, body...), nil
}

type CreateTreeParam struct {
	TreeAuthority common.PublicKey
	MerkleTree    common.PublicKey
	Payer         common.PublicKey
	TreeCreator   common.PublicKey
	MaxDepth      uint32
	MaxBufferSize uint32
	Public        bool
}

// CreateTree builds the create_tree instruction. The merkle tree account
// must already exist, rent-exempt and owned by the compression program;
// it co-signs here.
func CreateTree(param CreateTreeParam) (types.Instruction, error) {
	public := param.Public
	data, err := instructionData(createTreeDiscriminator, createTreeArgs{
		MaxDepth:      param.MaxDepth,
		MaxBufferSize: param.MaxBufferSize,
		Public:        &public,
	})
	if err != nil {
		return types.Instruction{}, err
	}

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.TreeAuthority, IsSigner: false, IsWritable: true},
			{PubKey: param.MerkleTree, IsSigner: true, IsWritable: true},
			{PubKey: param.Payer, IsSigner: true, IsWritable: true},
			{PubKey: param.TreeCreator, IsSigner: true, IsWritable: false},
			{PubKey: NoopProgramID, IsSigner: false, IsWritable: false},
			{PubKey: CompressionProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

type MintToCollectionV1Param struct {
	TreeAuthority           common.PublicKey
	LeafOwner               common.PublicKey
	LeafDelegate            common.PublicKey
	MerkleTree              common.PublicKey
	Payer                   common.PublicKey
	TreeDelegate            common.PublicKey
	CollectionAuthority     common.PublicKey
	CollectionMint          common.PublicKey
	CollectionMetadata      common.PublicKey
	CollectionMasterEdition common.PublicKey
	BubblegumSigner         common.PublicKey
	Metadata                Metadata
}

// MintToCollectionV1 builds the mint_to_collection_v1 instruction. The
// optional collection authority record account is not supported; the
// program expects its own id in that slot when the record is absent.
func MintToCollectionV1(param MintToCollectionV1Param) (types.Instruction, error) {
	data, err := instructionData(mintToCollectionV1Discriminator, param.Metadata)
	if err != nil {
		return types.Instruction{}, err
	}

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.TreeAuthority, IsSigner: false, IsWritable: true},
			{PubKey: param.LeafOwner, IsSigner: false, IsWritable: false},
			{PubKey: param.LeafDelegate, IsSigner: false, IsWritable: false},
			{PubKey: param.MerkleTree, IsSigner: false, IsWritable: true},
			{PubKey: param.Payer, IsSigner: true, IsWritable: false},
			{PubKey: param.TreeDelegate, IsSigner: true, IsWritable: false},
			{PubKey: param.CollectionAuthority, IsSigner: true, IsWritable: false},
			{PubKey: ProgramID, IsSigner: false, IsWritable: false}, // collection authority record: none
			{PubKey: param.CollectionMint, IsSigner: false, IsWritable: false},
			{PubKey: param.CollectionMetadata, IsSigner: false, IsWritable: true},
			{PubKey: param.CollectionMasterEdition, IsSigner: false, IsWritable: false},
			{PubKey: param.BubblegumSigner, IsSigner: false, IsWritable: false},
			{PubKey: NoopProgramID, IsSigner: false, IsWritable: false},
			{PubKey: CompressionProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.MetaplexTokenMetaProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

type TransferParam struct {
	TreeAuthority common.PublicKey
	LeafOwner     common.PublicKey
	LeafDelegate  common.PublicKey
	NewLeafOwner  common.PublicKey
	MerkleTree    common.PublicKey
	Root          [32]uint8
	DataHash      [32]uint8
	CreatorHash   [32]uint8
	Nonce         uint64
	Index         uint32
}

// Transfer builds the transfer instruction. Merkle proof accounts would
// follow the fixed account list; proof retrieval is the caller's concern
// and none are appended here.
func Transfer(param TransferParam) (types.Instruction, error) {
	data, err := instructionData(transferDiscriminator, transferArgs{
		Root:        param.Root,
		DataHash:    param.DataHash,
		CreatorHash: param.CreatorHash,
		Nonce:       param.Nonce,
		Index:       param.Index,
	})
	if err != nil {
		return types.Instruction{}, err
	}

	return types.Instruction{
		ProgramID: ProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: param.TreeAuthority, IsSigner: false, IsWritable: false},
			{PubKey: param.LeafOwner, IsSigner: false, IsWritable: false},
			{PubKey: param.LeafDelegate, IsSigner: false, IsWritable: false},
			{PubKey: param.NewLeafOwner, IsSigner: false, IsWritable: false},
			{PubKey: param.MerkleTree, IsSigner: false, IsWritable: true},
			{PubKey: NoopProgramID, IsSigner: false, IsWritable: false},
			{PubKey: CompressionProgramID, IsSigner: false, IsWritable: false},
			{PubKey: common.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}
