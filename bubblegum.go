// Package bubblegum is a thin client for the Metaplex Bubblegum program on
// Solana: create a compressed-NFT merkle tree, mint into a collection,
// transfer a leaf. Every operation is a single synchronous call — sign,
// submit, decode — with no local state, retries or caching; calls are
// independent and safe to issue concurrently.
package bubblegum

import (
	"context"
	"os"
	"strings"

	"github.com/blocto/solana-go-sdk/rpc"
)

// DefaultRPCEndpoint is the public devnet endpoint used when no override
// is given.
const DefaultRPCEndpoint = rpc.DevnetRPCEndpoint

// Submitter is the signer/submission capability behind the facade. The
// production implementation submits real transactions; hosts may substitute
// their own for testing. A success return is the raw JSON payload of the
// confirmed operation.
type Submitter interface {
	CreateTreeConfig(ctx context.Context, payerKeypair string, maxDepth, maxBufferSize, canopyDepth uint32, public bool, rpcURL string) (string, error)
	MintToCollection(ctx context.Context, payerKeypair, treePubkey, collectionPubkey string, meta MetadataArgs, rpcURL string) (string, error)
	Transfer(ctx context.Context, payerKeypair, treePubkey, leafOwner, newOwner, assetID, rpcURL string) (string, error)
}

// Option adjusts a single call.
type Option func(*callOptions)

type callOptions struct {
	rpcURL string
}

// WithRPCEndpoint overrides the RPC endpoint for one call.
func WithRPCEndpoint(url string) Option {
	return func(o *callOptions) { o.rpcURL = url }
}

// resolveEndpoint resolution order: explicit option, SOLANA_RPC_URL, then
// the devnet default.
func resolveEndpoint(opts []Option) string {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	if u := strings.TrimSpace(co.rpcURL); u != "" {
		return u
	}
	if u := strings.TrimSpace(os.Getenv("SOLANA_RPC_URL")); u != "" {
		return u
	}
	return DefaultRPCEndpoint
}

// Client forwards operations to a Submitter and normalizes its payloads.
// The zero value is not usable; call New or NewWithSubmitter.
type Client struct {
	sub Submitter
}

// New returns a Client backed by the real transaction submitter.
func New() *Client {
	return &Client{sub: newRPCSubmitter()}
}

// NewWithSubmitter returns a Client backed by a custom Submitter.
func NewWithSubmitter(sub Submitter) *Client {
	return &Client{sub: sub}
}

// CreateTreeConfig allocates a new concurrent merkle tree sized for
// (tree.MaxDepth, tree.MaxBufferSize, canopyDepth) and initializes its
// Bubblegum tree config. payerKeypair is a base58-encoded secret key; it
// pays rent and fees and becomes the tree creator. The result carries
// "tree_pubkey" and "signature".
func (c *Client) CreateTreeConfig(ctx context.Context, payerKeypair string, tree TreeConfig, canopyDepth uint32, opts ...Option) (Result, error) {
	raw, err := c.sub.CreateTreeConfig(ctx, payerKeypair, tree.MaxDepth, tree.MaxBufferSize, canopyDepth, tree.Public, resolveEndpoint(opts))
	if err != nil {
		return nil, err
	}
	return normalize(raw)
}

// MintToCollection mints a compressed NFT with the given metadata into
// treePubkey under the collection at collectionPubkey. The payer must hold
// tree and collection authority. The result carries "signature".
func (c *Client) MintToCollection(ctx context.Context, payerKeypair, treePubkey, collectionPubkey string, meta MetadataArgs, opts ...Option) (Result, error) {
	raw, err := c.sub.MintToCollection(ctx, payerKeypair, treePubkey, collectionPubkey, meta, resolveEndpoint(opts))
	if err != nil {
		return nil, err
	}
	return normalize(raw)
}

// Transfer reassigns the leaf identified by assetID from leafOwner to
// newOwner. The result carries "signature".
func (c *Client) Transfer(ctx context.Context, payerKeypair, treePubkey, leafOwner, newOwner, assetID string, opts ...Option) (Result, error) {
	raw, err := c.sub.Transfer(ctx, payerKeypair, treePubkey, leafOwner, newOwner, assetID, resolveEndpoint(opts))
	if err != nil {
		return nil, err
	}
	return normalize(raw)
}

var defaultClient = New()

// CreateTreeConfig calls the default client.
func CreateTreeConfig(ctx context.Context, payerKeypair string, tree TreeConfig, canopyDepth uint32, opts ...Option) (Result, error) {
	return defaultClient.CreateTreeConfig(ctx, payerKeypair, tree, canopyDepth, opts...)
}

// MintToCollection calls the default client.
func MintToCollection(ctx context.Context, payerKeypair, treePubkey, collectionPubkey string, meta MetadataArgs, opts ...Option) (Result, error) {
	return defaultClient.MintToCollection(ctx, payerKeypair, treePubkey, collectionPubkey, meta, opts...)
}

// Transfer calls the default client.
func Transfer(ctx context.Context, payerKeypair, treePubkey, leafOwner, newOwner, assetID string, opts ...Option) (Result, error) {
	return defaultClient.Transfer(ctx, payerKeypair, treePubkey, leafOwner, newOwner, assetID, opts...)
}
