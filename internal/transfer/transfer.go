// Package transfer implements the details -> confirm -> success transfer flow
// as a state machine that a UI only renders.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ecopay/ecopay/internal/api"
	"github.com/ecopay/ecopay/internal/carbon"
	"github.com/ecopay/ecopay/internal/domain"
	"github.com/ecopay/ecopay/internal/dto"
	"go.uber.org/zap"
)

type State string

const (
	Idle    State = "idle"
	Details State = "details"
	Confirm State = "confirm"
	Success State = "success"
)

const (
	DefaultEstimateDelay = 500 * time.Millisecond
	DefaultSuccessDelay  = 3 * time.Second
)

const (
	HintRecipient   = "enter a recipient"
	HintAmount      = "enter an amount greater than zero"
	HintCalculating = "carbon estimate is still being calculated"
)

var (
	ErrInvalidState   = errors.New("action not allowed in the current transfer state")
	ErrBusy           = errors.New("transfer is already being processed")
	ErrTransferFailed = errors.New("transfer failed")
)

//go:generate mockgen -source=transfer.go -destination=mock_transfer.go -package=transfer

// Gateway creates transactions. *api.Service satisfies it.
type Gateway interface {
	MakeTransaction(ctx context.Context, req dto.TransactionRequestDTO) api.Result[domain.Transaction]
}

// Input is what the user typed on the details step.
type Input struct {
	Recipient   string
	Amount      string
	Category    string
	Description string
}

// Snapshot is the transfer shown on the confirm step. It does not change
// while the flow is in Confirm.
type Snapshot struct {
	Recipient   string
	Amount      float64
	Category    string
	Description string
	Estimate    carbon.Estimate
}

type Option func(*Workflow)

func WithEstimateDelay(d time.Duration) Option {
	return func(w *Workflow) {
		w.estimateDelay = d
	}
}

func WithSuccessDelay(d time.Duration) Option {
	return func(w *Workflow) {
		w.successDelay = d
	}
}

// OnComplete registers the callback run once when a successful flow closes.
func OnComplete(fn func()) Option {
	return func(w *Workflow) {
		w.onComplete = fn
	}
}

type Workflow struct {
	mu sync.Mutex

	gateway       Gateway
	estimateDelay time.Duration
	successDelay  time.Duration
	onComplete    func()

	state       State
	input       Input
	estimate    *carbon.Estimate
	snapshot    *Snapshot
	transaction *domain.Transaction
	lastErr     string
	hint        string
	submitting  bool

	// generation orders estimate computations; results from an older
	// generation are dropped.
	generation     uint64
	cancelEstimate context.CancelFunc
	ready          chan struct{}

	// flow identifies the current open..close cycle.
	flow       uint64
	closeTimer *time.Timer
}

func New(gateway Gateway, opts ...Option) *Workflow {
	w := &Workflow{
		gateway:       gateway,
		estimateDelay: DefaultEstimateDelay,
		successDelay:  DefaultSuccessDelay,
		state:         Idle,
		ready:         closedChan(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.input.Category = carbon.Default
	return w
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) Input() Input {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// Estimate returns the estimate for the current amount and category.
func (w *Workflow) Estimate() (carbon.Estimate, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.estimate == nil {
		return carbon.Estimate{}, false
	}
	return *w.estimate, true
}

func (w *Workflow) Snapshot() (Snapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.snapshot == nil {
		return Snapshot{}, false
	}
	return *w.snapshot, true
}

func (w *Workflow) Transaction() (domain.Transaction, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.transaction == nil {
		return domain.Transaction{}, false
	}
	return *w.transaction, true
}

// LastError is the message of the last failed submission, empty otherwise.
func (w *Workflow) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Hint explains why the last Proceed did nothing.
func (w *Workflow) Hint() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hint
}

func (w *Workflow) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

func (w *Workflow) Open() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle {
		return ErrInvalidState
	}
	w.state = Details
	return nil
}

func (w *Workflow) SetRecipient(recipient string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Details {
		return ErrInvalidState
	}
	w.input.Recipient = recipient
	return nil
}

func (w *Workflow) SetDescription(description string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Details {
		return ErrInvalidState
	}
	w.input.Description = description
	return nil
}

func (w *Workflow) SetAmount(amount string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Details {
		return ErrInvalidState
	}
	w.input.Amount = amount
	w.recompute()
	return nil
}

func (w *Workflow) SetCategory(category string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Details {
		return ErrInvalidState
	}
	w.input.Category = category
	w.recompute()
	return nil
}

// recompute replaces any pending estimate with one for the current input.
// Callers hold w.mu.
func (w *Workflow) recompute() {
	w.generation++
	if w.cancelEstimate != nil {
		w.cancelEstimate()
		w.cancelEstimate = nil
	}
	w.estimate = nil

	amount, ok := carbon.ParseAmount(w.input.Amount)
	if !ok {
		w.ready = closedChan()
		return
	}
	category := w.input.Category

	if w.estimateDelay <= 0 {
		if estimate, ok := carbon.Compute(amount, category); ok {
			w.estimate = &estimate
		}
		w.ready = closedChan()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	w.cancelEstimate = cancel
	w.ready = ready

	go w.estimateLater(ctx, w.generation, amount, category, ready)
}

func (w *Workflow) estimateLater(ctx context.Context, generation uint64, amount float64, category string, ready chan struct{}) {
	defer close(ready)

	timer := time.NewTimer(w.estimateDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	estimate, ok := carbon.Compute(amount, category)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != generation || !ok {
		return
	}
	w.estimate = &estimate
	w.cancelEstimate = nil
}

// WaitEstimate blocks until the estimate for the latest input is settled.
func (w *Workflow) WaitEstimate(ctx context.Context) error {
	for {
		w.mu.Lock()
		ready := w.ready
		w.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		w.mu.Lock()
		current := w.ready == ready
		w.mu.Unlock()
		if current {
			return nil
		}
	}
}

// Proceed moves from Details to Confirm. It does nothing and returns false
// when the recipient, the amount or the estimate is missing; Hint then says
// which one.
func (w *Workflow) Proceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Details {
		return false
	}

	recipient := strings.TrimSpace(w.input.Recipient)
	amount, ok := carbon.ParseAmount(w.input.Amount)
	switch {
	case recipient == "":
		w.hint = HintRecipient
		return false
	case !ok:
		w.hint = HintAmount
		return false
	case w.estimate == nil:
		w.hint = HintCalculating
		return false
	}

	description := strings.TrimSpace(w.input.Description)
	if description == "" {
		description = "Transfer - " + w.estimate.Category
	}

	w.snapshot = &Snapshot{
		Recipient:   recipient,
		Amount:      amount,
		Category:    carbon.Lookup(w.input.Category).Value,
		Description: description,
		Estimate:    *w.estimate,
	}
	w.hint = ""
	w.lastErr = ""
	w.state = Confirm
	return true
}

// Back returns from Confirm to Details keeping the input.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Confirm {
		return ErrInvalidState
	}
	if w.submitting {
		return ErrBusy
	}
	w.snapshot = nil
	w.lastErr = ""
	w.state = Details
	return nil
}

// Submit creates the transaction for the confirmed snapshot. Only one
// submission runs at a time; a failure keeps the flow in Confirm so the user
// can retry by calling Submit again.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.state != Confirm {
		w.mu.Unlock()
		return ErrInvalidState
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrBusy
	}
	w.submitting = true
	snap := *w.snapshot
	flow := w.flow
	w.mu.Unlock()

	footprint := snap.Estimate.CO2Emission
	result := w.gateway.MakeTransaction(ctx, dto.TransactionRequestDTO{
		RecipientID:     snap.Recipient,
		Amount:          snap.Amount,
		Description:     snap.Description,
		CarbonFootprint: &footprint,
		Category:        snap.Category,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if !result.Success {
		w.lastErr = result.Error
		zap.L().Warn("transfer failed", zap.String("recipient", snap.Recipient), zap.String("error", result.Error))
		return fmt.Errorf("%w: %s", ErrTransferFailed, result.Error)
	}

	tx := result.Data
	w.transaction = &tx
	w.lastErr = ""
	w.state = Success
	w.closeTimer = time.AfterFunc(w.successDelay, func() {
		w.finish(flow)
	})
	zap.L().Info("transfer completed",
		zap.String("recipient", snap.Recipient),
		zap.Float64("amount", snap.Amount),
		zap.Float64("co2", footprint),
	)
	return nil
}

// Cancel abandons the flow from Details or Confirm without side effects.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case Idle:
		return nil
	case Details, Confirm:
		if w.submitting {
			return ErrBusy
		}
		w.reset()
		return nil
	default:
		return ErrInvalidState
	}
}

// Close ends the flow. From Success it runs the completion callback; from
// Details or Confirm it behaves like Cancel.
func (w *Workflow) Close() error {
	w.mu.Lock()
	state, flow := w.state, w.flow
	w.mu.Unlock()

	if state == Success {
		w.finish(flow)
		return nil
	}
	return w.Cancel()
}

func (w *Workflow) finish(flow uint64) {
	w.mu.Lock()
	if w.flow != flow || w.state != Success {
		w.mu.Unlock()
		return
	}
	w.reset()
	callback := w.onComplete
	w.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// reset returns to Idle with empty input. Callers hold w.mu.
func (w *Workflow) reset() {
	if w.cancelEstimate != nil {
		w.cancelEstimate()
		w.cancelEstimate = nil
	}
	if w.closeTimer != nil {
		w.closeTimer.Stop()
		w.closeTimer = nil
	}
	w.generation++
	w.flow++
	w.state = Idle
	w.input = Input{Category: carbon.Default}
	w.estimate = nil
	w.snapshot = nil
	w.transaction = nil
	w.lastErr = ""
	w.hint = ""
	w.ready = closedChan()
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}
