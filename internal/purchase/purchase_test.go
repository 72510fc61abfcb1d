package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeWallet struct {
	addr        string
	addrErr     error
	txHash      string
	transferErr error

	transferTo     string
	transferAmount float64
	transferCalls  int
}

func (w *fakeWallet) Address(context.Context) (string, error) { return w.addr, w.addrErr }

func (w *fakeWallet) SendTransfer(_ context.Context, to string, amount float64) (string, error) {
	w.transferCalls++
	w.transferTo = to
	w.transferAmount = amount
	return w.txHash, w.transferErr
}

type fakeFinalizer struct {
	productID string
	err       error

	calls int
	got   FinalizeInput
}

func (f *fakeFinalizer) CreateProduct(_ context.Context, in FinalizeInput) (string, error) {
	f.calls++
	f.got = in
	return f.productID, f.err
}

func recordStates(f *Flow) *[]State {
	seen := &[]State{}
	f.OnState = func(s State) { *seen = append(*seen, s) }
	return seen
}

func TestFlowHappyPath(t *testing.T) {
	t.Parallel()
	w := &fakeWallet{addr: "0xme", txHash: "0xtx1"}
	fin := &fakeFinalizer{productID: "prod-1"}
	flow := NewFlow(w, fin, "0xsupplier", 99.5, time.Millisecond)
	seen := recordStates(flow)

	id, err := flow.Run(context.Background(), FinalizeInput{MaterialID: "mat-1", Name: "coil"})
	require.NoError(t, err)
	require.Equal(t, "prod-1", id)
	require.Equal(t, StateCompleted, flow.State())

	require.Equal(t, []State{
		StateConnectingWallet,
		StateAwaitingSignature,
		StateConfirming,
		StateFinalizing,
		StateCompleted,
	}, *seen)

	require.Equal(t, 1, w.transferCalls)
	require.Equal(t, "0xsupplier", w.transferTo)
	require.Equal(t, 99.5, w.transferAmount)

	require.Equal(t, 1, fin.calls)
	require.Equal(t, "0xtx1", fin.got.ExternalTxHash)
	require.Equal(t, "mat-1", fin.got.MaterialID)
}

func TestFlowNoWalletFailsBeforeTransfer(t *testing.T) {
	t.Parallel()
	w := &fakeWallet{addr: ""}
	fin := &fakeFinalizer{}
	flow := NewFlow(w, fin, "0xsupplier", 10, time.Millisecond)
	seen := recordStates(flow)

	_, err := flow.Run(context.Background(), FinalizeInput{MaterialID: "mat-1"})
	require.ErrorIs(t, err, ErrNoWallet)
	require.Equal(t, StateFailed, flow.State())
	require.Equal(t, []State{StateConnectingWallet, StateFailed}, *seen)
	require.Zero(t, w.transferCalls)
	require.Zero(t, fin.calls)
}

func TestFlowWalletRejectionSkipsFinalize(t *testing.T) {
	t.Parallel()
	w := &fakeWallet{addr: "0xme", transferErr: errors.New("user cancelled")}
	fin := &fakeFinalizer{}
	flow := NewFlow(w, fin, "0xsupplier", 10, time.Millisecond)
	seen := recordStates(flow)

	_, err := flow.Run(context.Background(), FinalizeInput{MaterialID: "mat-1"})
	require.ErrorIs(t, err, ErrRejected)
	require.Equal(t, []State{StateConnectingWallet, StateAwaitingSignature, StateFailed}, *seen)
	require.Zero(t, fin.calls)
}

func TestFlowFinalizeErrorIsTerminal(t *testing.T) {
	t.Parallel()
	w := &fakeWallet{addr: "0xme", txHash: "0xtx1"}
	fin := &fakeFinalizer{err: errors.New("backend down")}
	flow := NewFlow(w, fin, "0xsupplier", 10, time.Millisecond)

	_, err := flow.Run(context.Background(), FinalizeInput{MaterialID: "mat-1"})
	require.Error(t, err)
	require.Equal(t, StateFailed, flow.State())
	require.Equal(t, 1, fin.calls)
}

func TestFlowCancelDuringSettleWait(t *testing.T) {
	t.Parallel()
	w := &fakeWallet{addr: "0xme", txHash: "0xtx1"}
	fin := &fakeFinalizer{}
	flow := NewFlow(w, fin, "0xsupplier", 10, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := flow.Run(ctx, FinalizeInput{MaterialID: "mat-1"})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StateFailed, flow.State())
	require.Zero(t, fin.calls)
}

func TestStateString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "completed", StateCompleted.String())
	require.Equal(t, "unknown", State(99).String())
}
