package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

// EligibilityInput is one checkout attempt to evaluate. Now must be supplied
// by the caller at the moment of decision, never cached, so a quote computed
// at 11:59 and one at 12:01 correctly differ.
type EligibilityInput struct {
	DeliveryType model.DeliveryType
	PostalCode   string
	Items        []model.CartLineItem
	Selection    model.DeliveryWindowSelection
	Now          time.Time
}

// EligibilityDecision is the combined go/no-go result for one attempt.
// On failure the returned error identifies the blocking condition.
type EligibilityDecision struct {
	Quote        *model.FulfillmentQuote  `json:"quote,omitempty"`
	MinimumOrder *model.MinimumOrderCheck `json:"minimum_order,omitempty"`
	EarliestDate string                   `json:"earliest_date"`
	Eligible     bool                     `json:"eligible"`
}

// EligibilityService combines zone, minimum-order, preparation-window, and
// slot checks into a single decision consumed by checkout.
type EligibilityService interface {
	Decide(input EligibilityInput) (EligibilityDecision, error)
}

// EligibilityServiceImpl implements EligibilityService.
type EligibilityServiceImpl struct {
	quotes    QuoteService
	scheduler Scheduler
}

// NewEligibilityService creates the eligibility orchestrator.
func NewEligibilityService(quotes QuoteService, scheduler Scheduler) *EligibilityServiceImpl {
	return &EligibilityServiceImpl{quotes: quotes, scheduler: scheduler}
}

// Decide evaluates one checkout attempt. Pickup skips the zone, fee, and
// minimum checks; the preparation-window and slot checks always run.
func (s *EligibilityServiceImpl) Decide(input EligibilityInput) (EligibilityDecision, error) {
	decision := EligibilityDecision{}

	if input.DeliveryType == model.DeliveryTypeDelivery {
		quote := s.quotes.Quote(input.PostalCode)
		decision.Quote = &quote
		if !quote.IsServiceable {
			return decision, ErrZoneNotServiceable
		}

		check := s.quotes.CheckMinimumOrder(input.PostalCode, model.CartSubtotal(input.Items))
		decision.MinimumOrder = &check
		if !check.IsSatisfied {
			return decision, &MinimumOrderError{
				MinimumOrderAmount: check.MinimumOrderAmount,
				Shortfall:          check.Shortfall,
			}
		}
	}

	earliest := s.scheduler.EarliestDate(input.Items, input.Now)
	decision.EarliestDate = earliest.Format(DateLayout)

	date, err := time.ParseInLocation(DateLayout, input.Selection.Date, input.Now.Location())
	if err != nil {
		return decision, fmt.Errorf("%w: %q", ErrInvalidDate, input.Selection.Date)
	}
	if date.Before(earliest) {
		return decision, &DateTooEarlyError{EarliestDate: earliest, ItemNames: s.scheduler.SlowestItems(input.Items)}
	}

	if !slices.Contains(s.scheduler.StartTimes(date), input.Selection.StartTime) {
		return decision, &InvalidTimeSlotError{
			StartTime: input.Selection.StartTime,
			EndTime:   input.Selection.EndTime,
			Reason:    "start time is not offered on this date",
		}
	}
	if !slices.Contains(s.scheduler.EndTimes(date, input.Selection.StartTime), input.Selection.EndTime) {
		return decision, &InvalidTimeSlotError{
			StartTime: input.Selection.StartTime,
			EndTime:   input.Selection.EndTime,
			Reason:    "end time is not offered for this start time",
		}
	}
	if err := s.scheduler.ValidateSlot(input.Selection.StartTime, input.Selection.EndTime); err != nil {
		return decision, err
	}

	decision.Eligible = true
	return decision, nil
}

// Clock supplies the current instant. Injected so handlers and the checkout
// workflow stay deterministic under test.
type Clock func() time.Time

// CheckoutService drives the linear checkout workflow. Session state is
// transient and owned by one customer session; the store exists only so the
// stateless HTTP layer can find the session again between steps. Session
// values returned by the methods are copies, safe to read and serialize
// after the call returns.
type CheckoutService interface {
	StartSession(items []model.CartLineItem) (*model.CheckoutSession, error)
	GetSession(id string) (*model.CheckoutSession, error)
	SubmitContact(id string, contact model.ContactInfo, deliveryType model.DeliveryType, postalCode string) (*model.CheckoutSession, error)
	SubmitWindow(id string, selection model.DeliveryWindowSelection) (*model.CheckoutSession, error)
	Back(id string) (*model.CheckoutSession, error)
	Submit(ctx context.Context, id string) (*model.Order, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	quotes      QuoteService
	eligibility EligibilityService
	orders      OrderService
	clock       Clock

	mu       sync.RWMutex
	sessions map[string]*model.CheckoutSession
}

// CheckoutOption configures a CheckoutServiceImpl.
type CheckoutOption func(*CheckoutServiceImpl)

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(clock Clock) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		s.clock = clock
	}
}

// NewCheckoutService creates the checkout workflow service. orders may be
// nil when persistence is disabled; Submit then returns the composed order
// without storing it.
func NewCheckoutService(quotes QuoteService, eligibility EligibilityService, orders OrderService, opts ...CheckoutOption) *CheckoutServiceImpl {
	s := &CheckoutServiceImpl{
		quotes:      quotes,
		eligibility: eligibility,
		orders:      orders,
		clock:       time.Now,
		sessions:    make(map[string]*model.CheckoutSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cloneSession returns a copy safe to hand to callers after the session lock
// is released. Pointer fields are duplicated; Items is fixed at session
// creation and shared as-is.
func cloneSession(s *model.CheckoutSession) *model.CheckoutSession {
	out := *s
	if s.Contact != nil {
		contact := *s.Contact
		out.Contact = &contact
	}
	if s.Quote != nil {
		quote := *s.Quote
		out.Quote = &quote
	}
	if s.Window != nil {
		window := *s.Window
		out.Window = &window
	}
	return &out
}

// StartSession opens a new checkout session for the given cart snapshot.
func (s *CheckoutServiceImpl) StartSession(items []model.CartLineItem) (*model.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidTransition)
	}

	now := s.clock()
	session := &model.CheckoutSession{
		ID:        uuid.New().String(),
		State:     model.StateCollectingContact,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return cloneSession(session), nil
}

// GetSession returns the session by ID.
func (s *CheckoutServiceImpl) GetSession(id string) (*model.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// SubmitContact validates the contact step and advances the session to
// collecting the delivery window. For delivery orders the postal code must
// be serviceable and the subtotal must meet the zone minimum.
func (s *CheckoutServiceImpl) SubmitContact(id string, contact model.ContactInfo, deliveryType model.DeliveryType, postalCode string) (*model.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State != model.StateCollectingContact {
		return nil, fmt.Errorf("%w: contact step from state %s", ErrInvalidTransition, session.State)
	}
	if contact.Name == "" || contact.Email == "" || contact.Phone == "" {
		return nil, fmt.Errorf("%w: contact name, email, and phone are required", ErrInvalidTransition)
	}
	if !deliveryType.Valid() {
		return nil, fmt.Errorf("%w: unknown delivery type %q", ErrInvalidTransition, deliveryType)
	}

	if deliveryType == model.DeliveryTypeDelivery {
		quote := s.quotes.Quote(postalCode)
		if !quote.IsServiceable {
			return nil, ErrZoneNotServiceable
		}
		check := s.quotes.CheckMinimumOrder(postalCode, model.CartSubtotal(session.Items))
		if !check.IsSatisfied {
			return nil, &MinimumOrderError{
				MinimumOrderAmount: check.MinimumOrderAmount,
				Shortfall:          check.Shortfall,
			}
		}
		session.Quote = &quote
		session.PostalCode = NormalizePostalCode(postalCode)
	} else {
		session.Quote = nil
		session.PostalCode = ""
	}

	session.Contact = &contact
	session.DeliveryType = deliveryType
	session.State = model.StateCollectingDeliveryWindow
	session.UpdatedAt = s.clock()
	return cloneSession(session), nil
}

// SubmitWindow validates the delivery window step against the full
// eligibility decision and advances the session to payment collection.
func (s *CheckoutServiceImpl) SubmitWindow(id string, selection model.DeliveryWindowSelection) (*model.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State != model.StateCollectingDeliveryWindow {
		return nil, fmt.Errorf("%w: window step from state %s", ErrInvalidTransition, session.State)
	}

	_, err := s.eligibility.Decide(EligibilityInput{
		DeliveryType: session.DeliveryType,
		PostalCode:   session.PostalCode,
		Items:        session.Items,
		Selection:    selection,
		Now:          s.clock(),
	})
	if err != nil {
		return nil, err
	}

	session.Window = &selection
	session.State = model.StateCollectingPayment
	session.UpdatedAt = s.clock()
	return cloneSession(session), nil
}

// Back re-enters the prior step without losing previously entered data.
// The first step has nowhere to go back to, and a submitted session is
// terminal.
func (s *CheckoutServiceImpl) Back(id string) (*model.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	switch session.State {
	case model.StateCollectingDeliveryWindow:
		session.State = model.StateCollectingContact
	case model.StateCollectingPayment:
		session.State = model.StateCollectingDeliveryWindow
	default:
		return nil, fmt.Errorf("%w: cannot go back from state %s", ErrInvalidTransition, session.State)
	}

	session.UpdatedAt = s.clock()
	return cloneSession(session), nil
}

// Submit finalizes the session: the confirmed postal code, fee, and window
// are snapshotted onto an order record and handed to the persistence
// collaborator. Payment capture itself is external; the order starts in
// pending_payment.
func (s *CheckoutServiceImpl) Submit(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.State != model.StateCollectingPayment {
		return nil, fmt.Errorf("%w: submit from state %s", ErrInvalidTransition, session.State)
	}

	now := s.clock()
	order := &model.Order{
		Number:       uuid.New().String(),
		Contact:      *session.Contact,
		Items:        session.Items,
		Subtotal:     model.CartSubtotal(session.Items),
		DeliveryType: session.DeliveryType,
		PostalCode:   session.PostalCode,
		Window:       *session.Window,
		Status:       model.OrderStatusPendingPayment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if session.Quote != nil {
		order.ZoneName = session.Quote.ZoneName
		order.DeliveryFee = session.Quote.FeeAmount
	}

	if s.orders != nil {
		created, err := s.orders.Create(ctx, order)
		if err != nil {
			return nil, err
		}
		order = created
	}

	session.State = model.StatePaymentSubmitted
	session.UpdatedAt = now
	delete(s.sessions, id)

	return order, nil
}
