package exchange

// Routing identifies a destination venue an order may be routed to. The
// special value Smart delegates venue selection to the broker.
type Routing string

// Common routing destinations.
const (
	Smart    Routing = "SMART"
	Nyse     Routing = "NYSE"
	Nasdaq   Routing = "NASDAQ"
	Arca     Routing = "ARCA"
	Amex     Routing = "AMEX"
	Cboe     Routing = "CBOE"
	Ise      Routing = "ISE"
	Globex   Routing = "GLOBEX"
	Eurex    Routing = "EUREX"
	Idealpro Routing = "IDEALPRO" // forex
	Paxos    Routing = "PAXOS"    // crypto
)

// String returns the venue code.
func (r Routing) String() string { return string(r) }

// Primary identifies the primary listing exchange of a security. Unlike
// Routing it never takes the value SMART; it names a real venue.
type Primary string

// String returns the venue code.
func (p Primary) String() string { return string(p) }

// Currency is an ISO 4217 currency code.
type Currency string

// Common trading currencies.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CHF Currency = "CHF"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	HKD Currency = "HKD"
)

// String returns the currency code.
func (c Currency) String() string { return string(c) }
