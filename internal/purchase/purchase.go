// Package purchase implements the client side of the product purchase
// workflow. The backend's only involvement is the terminal Finalize call;
// every earlier stage talks to the external wallet agent and fails
// without the backend ever hearing about it.
package purchase

import (
	"context"
	"errors"
	"time"
)

// State is a stage of the purchase workflow.
type State int

const (
	StateIdle State = iota
	StateConnectingWallet
	StateAwaitingSignature
	StateConfirming
	StateFinalizing
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnectingWallet:
		return "connecting_wallet"
	case StateAwaitingSignature:
		return "awaiting_signature"
	case StateConfirming:
		return "confirming"
	case StateFinalizing:
		return "finalizing"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var (
	// ErrNoWallet is surfaced when no wallet address is available; the
	// user must connect a wallet and start over.
	ErrNoWallet = errors.New("connect wallet first")
	// ErrRejected is surfaced when the wallet agent refuses or cancels
	// the transfer authorization.
	ErrRejected = errors.New("transfer rejected by wallet")
)

// Wallet is the external signing agent. Its cryptography is out of
// scope; the workflow only needs an address and a transfer hash.
type Wallet interface {
	Address(ctx context.Context) (string, error)
	// SendTransfer asks the agent to authorize a value transfer and
	// returns the transaction identifier it reports.
	SendTransfer(ctx context.Context, to string, amount float64) (string, error)
}

// FinalizeInput is the payload of the terminal backend call.
type FinalizeInput struct {
	MaterialID     string
	Name           string
	Description    string
	Image          string
	Price          float64
	Quantity       int
	ExternalTxHash string
}

// Finalizer is the backend's create-product endpoint.
type Finalizer interface {
	CreateProduct(ctx context.Context, in FinalizeInput) (productID string, err error)
}

// Flow runs one purchase attempt. A failed attempt is terminal; retrying
// means a fresh Flow, including a fresh signature request to the wallet.
type Flow struct {
	Wallet       Wallet
	Finalizer    Finalizer
	Counterparty string
	Amount       float64
	// SettleWait is the fixed interval after the wallet reports a
	// transaction id. No confirmation depth is polled.
	SettleWait time.Duration

	// OnState, when set, observes every transition.
	OnState func(State)

	state State
}

// NewFlow returns a flow in the idle state.
func NewFlow(w Wallet, f Finalizer, counterparty string, amount float64, settleWait time.Duration) *Flow {
	return &Flow{Wallet: w, Finalizer: f, Counterparty: counterparty, Amount: amount, SettleWait: settleWait, state: StateIdle}
}

// State returns the current stage.
func (f *Flow) State() State { return f.state }

func (f *Flow) transition(s State) {
	f.state = s
	if f.OnState != nil {
		f.OnState(s)
	}
}

// Run drives the workflow to a terminal state and returns the created
// product id. The backend is contacted exactly once, at Finalizing.
func (f *Flow) Run(ctx context.Context, in FinalizeInput) (string, error) {
	f.transition(StateConnectingWallet)
	addr, err := f.Wallet.Address(ctx)
	if err != nil || addr == "" {
		f.transition(StateFailed)
		return "", ErrNoWallet
	}

	f.transition(StateAwaitingSignature)
	txHash, err := f.Wallet.SendTransfer(ctx, f.Counterparty, f.Amount)
	if err != nil {
		f.transition(StateFailed)
		return "", ErrRejected
	}

	f.transition(StateConfirming)
	select {
	case <-time.After(f.SettleWait):
	case <-ctx.Done():
		// Nothing to compensate: no server state exists yet.
		f.transition(StateFailed)
		return "", ctx.Err()
	}

	f.transition(StateFinalizing)
	in.ExternalTxHash = txHash
	id, err := f.Finalizer.CreateProduct(ctx, in)
	if err != nil {
		f.transition(StateFailed)
		return "", err
	}

	f.transition(StateCompleted)
	return id, nil
}
