package bubblegum

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	"github.com/MeowFi/RustyBubble/internal/program/mpl_bubblegum"
)

// solanaRPC is the slice of the RPC client the submitter uses. Satisfied by
// *client.Client; stubbed in tests.
type solanaRPC interface {
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataLen uint64) (uint64, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
}

// rpcSubmitter signs and submits real transactions. Each call opens its own
// client and fetches a fresh blockhash; nothing is cached or reused, so a
// timed-out call is retried by calling again, never by resending.
type rpcSubmitter struct {
	newRPC func(rpcURL string) solanaRPC
}

func newRPCSubmitter() *rpcSubmitter {
	return &rpcSubmitter{
		newRPC: func(rpcURL string) solanaRPC { return client.NewClient(rpcURL) },
	}
}

func (s *rpcSubmitter) CreateTreeConfig(ctx context.Context, payerKeypair string, maxDepth, maxBufferSize, canopyDepth uint32, public bool, rpcURL string) (string, error) {
	payer, err := accountFromBase58(payerKeypair)
	if err != nil {
		return "", err
	}

	c := s.newRPC(rpcURL)
	tree := types.NewAccount()

	treeAuthority, err := mpl_bubblegum.TreeAuthority(tree.PublicKey)
	if err != nil {
		return "", &SubmitError{Op: "create_tree", Reason: err.Error()}
	}

	// The tree account holds the concurrent merkle tree itself; the config
	// PDA is created by the program. Allocate it rent-exempt first.
	space := mpl_bubblegum.TreeAccountSize(maxDepth, maxBufferSize, canopyDepth)
	rent, err := c.GetMinimumBalanceForRentExemption(ctx, space)
	if err != nil {
		return "", &SubmitError{Op: "create_tree", Reason: fmt.Sprintf("GetMinimumBalanceForRentExemption: %v", err)}
	}

	treeIx, err := mpl_bubblegum.CreateTree(mpl_bubblegum.CreateTreeParam{
		TreeAuthority: treeAuthority,
		MerkleTree:    tree.PublicKey,
		Payer:         payer.PublicKey,
		TreeCreator:   payer.PublicKey,
		MaxDepth:      maxDepth,
		MaxBufferSize: maxBufferSize,
		Public:        public,
	})
	if err != nil {
		return "", &SubmitError{Op: "create_tree", Reason: err.Error()}
	}

	sig, err := s.send(ctx, c, "create_tree", []types.Account{payer, tree}, payer.PublicKey, []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     payer.PublicKey,
			New:      tree.PublicKey,
			Owner:    mpl_bubblegum.CompressionProgramID,
			Lamports: rent,
			Space:    space,
		}),
		treeIx,
	})
	if err != nil {
		return "", err
	}

	log.Printf("[bubblegum] create_tree submitted tree=%s tx=%s", maskShort(tree.PublicKey.ToBase58()), maskShort(sig))

	return successJSON(map[string]string{
		"tree_pubkey": tree.PublicKey.ToBase58(),
		"signature":   sig,
	})
}

func (s *rpcSubmitter) MintToCollection(ctx context.Context, payerKeypair, treePubkey, collectionPubkey string, meta MetadataArgs, rpcURL string) (string, error) {
	payer, err := accountFromBase58(payerKeypair)
	if err != nil {
		return "", err
	}

	c := s.newRPC(rpcURL)
	merkleTree := common.PublicKeyFromString(treePubkey)
	collectionMint := common.PublicKeyFromString(collectionPubkey)

	treeAuthority, err := mpl_bubblegum.TreeAuthority(merkleTree)
	if err != nil {
		return "", &SubmitError{Op: "mint_to_collection_v1", Reason: err.Error()}
	}
	bubblegumSigner, err := mpl_bubblegum.CollectionCPISigner()
	if err != nil {
		return "", &SubmitError{Op: "mint_to_collection_v1", Reason: err.Error()}
	}
	collectionMetadata, err := token_metadata.GetTokenMetaPubkey(collectionMint)
	if err != nil {
		return "", &SubmitError{Op: "mint_to_collection_v1", Reason: fmt.Sprintf("GetTokenMetaPubkey: %v", err)}
	}
	collectionEdition, err := token_metadata.GetMasterEdition(collectionMint)
	if err != nil {
		return "", &SubmitError{Op: "mint_to_collection_v1", Reason: fmt.Sprintf("GetMasterEdition: %v", err)}
	}

	mintIx, err := mpl_bubblegum.MintToCollectionV1(mpl_bubblegum.MintToCollectionV1Param{
		TreeAuthority:           treeAuthority,
		LeafOwner:               payer.PublicKey,
		LeafDelegate:            payer.PublicKey,
		MerkleTree:              merkleTree,
		Payer:                   payer.PublicKey,
		TreeDelegate:            payer.PublicKey,
		CollectionAuthority:     payer.PublicKey,
		CollectionMint:          collectionMint,
		CollectionMetadata:      collectionMetadata,
		CollectionMasterEdition: collectionEdition,
		BubblegumSigner:         bubblegumSigner,
		Metadata:                toProgramMetadata(meta),
	})
	if err != nil {
		return "", &SubmitError{Op: "mint_to_collection_v1", Reason: err.Error()}
	}

	sig, err := s.send(ctx, c, "mint_to_collection_v1", []types.Account{payer}, payer.PublicKey, []types.Instruction{mintIx})
	if err != nil {
		return "", err
	}

	log.Printf("[bubblegum] mint_to_collection_v1 submitted tree=%s collection=%s tx=%s",
		maskShort(treePubkey), maskShort(collectionPubkey), maskShort(sig))

	return successJSON(map[string]string{"signature": sig})
}

func (s *rpcSubmitter) Transfer(ctx context.Context, payerKeypair, treePubkey, leafOwner, newOwner, assetID, rpcURL string) (string, error) {
	payer, err := accountFromBase58(payerKeypair)
	if err != nil {
		return "", err
	}

	c := s.newRPC(rpcURL)
	merkleTree := common.PublicKeyFromString(treePubkey)
	owner := common.PublicKeyFromString(leafOwner)

	treeAuthority, err := mpl_bubblegum.TreeAuthority(merkleTree)
	if err != nil {
		return "", &SubmitError{Op: "transfer", Reason: err.Error()}
	}

	transferIx, err := mpl_bubblegum.Transfer(mpl_bubblegum.TransferParam{
		TreeAuthority: treeAuthority,
		LeafOwner:     owner,
		LeafDelegate:  owner,
		NewLeafOwner:  common.PublicKeyFromString(newOwner),
		MerkleTree:    merkleTree,
	})
	if err != nil {
		return "", &SubmitError{Op: "transfer", Reason: err.Error()}
	}

	sig, err := s.send(ctx, c, "transfer", []types.Account{payer}, payer.PublicKey, []types.Instruction{transferIx})
	if err != nil {
		return "", err
	}

	log.Printf("[bubblegum] transfer submitted asset=%s to=%s tx=%s",
		maskShort(assetID), maskShort(newOwner), maskShort(sig))

	return successJSON(map[string]string{"signature": sig})
}

// send assembles, signs and submits a transaction over a fresh blockhash.
func (s *rpcSubmitter) send(ctx context.Context, c solanaRPC, op string, signers []types.Account, feePayer common.PublicKey, ins []types.Instruction) (string, error) {
	recent, err := c.GetLatestBlockhash(ctx)
	if err != nil {
		return "", &SubmitError{Op: op, Reason: fmt.Sprintf("GetLatestBlockhash: %v", err)}
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer,
			RecentBlockhash: recent.Blockhash,
			Instructions:    ins,
		}),
	})
	if err != nil {
		return "", &SubmitError{Op: op, Reason: fmt.Sprintf("NewTransaction: %v", err)}
	}

	sig, err := c.SendTransaction(ctx, tx)
	if err != nil {
		return "", &SubmitError{Op: op, Reason: err.Error()}
	}
	return sig, nil
}

// toProgramMetadata maps the caller-facing metadata onto the program's
// Borsh argument struct. Collection verified is always false on mint; the
// program verifies it during the CPI. Uses defaults to the Multiple method
// with remaining = total.
func toProgramMetadata(meta MetadataArgs) mpl_bubblegum.Metadata {
	creators := make([]mpl_bubblegum.Creator, 0, len(meta.Creators))
	for _, cr := range meta.Creators {
		creators = append(creators, mpl_bubblegum.Creator{
			Address:  common.PublicKeyFromString(cr.Address),
			Verified: cr.Verified,
			Share:    cr.Share,
		})
	}

	var collection *mpl_bubblegum.Collection
	if meta.Collection != nil {
		collection = &mpl_bubblegum.Collection{
			Verified: false,
			Key:      common.PublicKeyFromString(*meta.Collection),
		}
	}

	var uses *mpl_bubblegum.Uses
	if meta.Uses != nil {
		uses = &mpl_bubblegum.Uses{
			UseMethod: mpl_bubblegum.UseMethodMultiple,
			Remaining: *meta.Uses,
			Total:     *meta.Uses,
		}
	}

	tokenStandard := mpl_bubblegum.TokenStandardNonFungible

	return mpl_bubblegum.Metadata{
		Name:                 meta.Name,
		Symbol:               meta.Symbol,
		Uri:                  meta.URI,
		SellerFeeBasisPoints: meta.SellerFeeBasisPoints,
		PrimarySaleHappened:  meta.PrimarySaleHappened,
		IsMutable:            meta.IsMutable,
		EditionNonce:         meta.EditionNonce,
		TokenStandard:        &tokenStandard,
		Collection:           collection,
		Uses:                 uses,
		TokenProgramVersion:  mpl_bubblegum.TokenProgramVersionOriginal,
		Creators:             creators,
	}
}

func successJSON(fields map[string]string) (string, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return "", &ParseError{Err: fmt.Errorf("encode result payload: %w", err)}
	}
	return string(b), nil
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
