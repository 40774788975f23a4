package entity

// KindFilter restricts the catalog view to one item kind.
type KindFilter string

const (
	FilterAll     KindFilter = "all"
	FilterProduct KindFilter = "product"
	FilterService KindFilter = "service"
)

// IsValid checks if the KindFilter is a valid value.
func (f KindFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterProduct, FilterService:
		return true
	default:
		return false
	}
}

// Matches reports whether an item of kind k passes the filter.
func (f KindFilter) Matches(k ItemKind) bool {
	switch f {
	case FilterProduct:
		return k == KindProduct
	case FilterService:
		return k == KindService
	default:
		return true
	}
}

// DefaultPageSize is the catalog page size when none is set.
const DefaultPageSize = 12

// UIState holds the catalog browsing controls.
type UIState struct {
	Filter     KindFilter `json:"filter"`
	SearchTerm string     `json:"searchTerm"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

// DefaultUIState shows every item from the first page.
func DefaultUIState() UIState {
	return UIState{Filter: FilterAll, Page: 1, PageSize: DefaultPageSize}
}

// CheckoutPhase is the position of the checkout state machine.
// Finalized is transient: a confirmed payment returns the machine to idle.
type CheckoutPhase string

const (
	PhaseIdle           CheckoutPhase = "idle"
	PhaseMethodSelected CheckoutPhase = "method_selected"
)

// CheckoutState tracks the payment method being collected for the cart.
type CheckoutState struct {
	Phase          CheckoutPhase `json:"phase"`
	Method         PaymentMethod `json:"method,omitempty"`
	AmountReceived int64         `json:"amountReceived"`
}

// IdleCheckout is the initial checkout state.
func IdleCheckout() CheckoutState {
	return CheckoutState{Phase: PhaseIdle}
}

// AppState is the aggregate root owned by the state store.
type AppState struct {
	Catalog  Catalog       `json:"catalog"`
	Cart     Cart          `json:"cart"`
	Orders   Orders        `json:"orders"`
	Settings Settings      `json:"settings"`
	UI       UIState       `json:"ui"`
	Checkout CheckoutState `json:"checkout"`
}

// Clone deep-copies every slice in the state.
func (s AppState) Clone() AppState {
	s.Catalog = s.Catalog.Clone()
	s.Cart = s.Cart.Clone()
	s.Orders = s.Orders.Clone()

	return s
}
