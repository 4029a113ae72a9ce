package model

import "fmt"

// Status is the outcome of an authorization attempt.
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// DeclineCategory says whether a decline is retriable.
type DeclineCategory string

const (
	// CategorySoft declines are temporary and worth retrying.
	CategorySoft DeclineCategory = "soft"
	// CategoryHard declines are permanent and need customer action.
	CategoryHard DeclineCategory = "hard"
)

// DeclineCode is the issuer or network reason for a decline.
type DeclineCode string

const (
	InsufficientFunds DeclineCode = "insufficient_funds"
	DoNotHonor        DeclineCode = "do_not_honor"
	FraudSuspected    DeclineCode = "fraud_suspected"
	NetworkTimeout    DeclineCode = "network_timeout"
	ExpiredCard       DeclineCode = "expired_card"
	IssuerUnavailable DeclineCode = "issuer_unavailable"
	InvalidCVV        DeclineCode = "invalid_cvv"
	LostStolenCard    DeclineCode = "lost_stolen_card"
	CardNotSupported  DeclineCode = "card_not_supported"
	InvalidCardNumber DeclineCode = "invalid_card_number"
)

// DeclineCodes lists every decline code in catalog order.
var DeclineCodes = []DeclineCode{
	InsufficientFunds,
	DoNotHonor,
	FraudSuspected,
	NetworkTimeout,
	ExpiredCard,
	IssuerUnavailable,
	InvalidCVV,
	LostStolenCard,
	CardNotSupported,
	InvalidCardNumber,
}

var declineCodeLabels = map[DeclineCode]string{
	InsufficientFunds: "Insufficient Funds",
	DoNotHonor:        "Do Not Honor",
	FraudSuspected:    "Fraud Suspected",
	NetworkTimeout:    "Network Timeout",
	ExpiredCard:       "Expired Card",
	IssuerUnavailable: "Issuer Unavailable",
	InvalidCVV:        "Invalid CVV",
	LostStolenCard:    "Lost / Stolen Card",
	CardNotSupported:  "Card Not Supported",
	InvalidCardNumber: "Invalid Card Number",
}

// Label returns the display label. Unknown codes panic: the enumeration is
// closed, so a miss means the data and the code table have drifted.
func (c DeclineCode) Label() string {
	label, ok := declineCodeLabels[c]
	if !ok {
		panic(fmt.Sprintf("model: unknown decline code %q", c))
	}
	return label
}

// Valid reports whether c is one of DeclineCodes.
func (c DeclineCode) Valid() bool {
	_, ok := declineCodeLabels[c]
	return ok
}

// PaymentMethod is the instrument used for the attempt.
type PaymentMethod string

const (
	CreditCard    PaymentMethod = "credit_card"
	DigitalWallet PaymentMethod = "digital_wallet"
	BankTransfer  PaymentMethod = "bank_transfer"
)

// PaymentMethods lists every payment method in display order.
var PaymentMethods = []PaymentMethod{CreditCard, DigitalWallet, BankTransfer}

var paymentMethodLabels = map[PaymentMethod]string{
	CreditCard:    "Credit Card",
	DigitalWallet: "Digital Wallet",
	BankTransfer:  "Bank Transfer",
}

// Label returns the display label.
func (m PaymentMethod) Label() string {
	label, ok := paymentMethodLabels[m]
	if !ok {
		panic(fmt.Sprintf("model: unknown payment method %q", m))
	}
	return label
}

// Country is the region the payer is billed in.
type Country string

const (
	Thailand    Country = "TH"
	Vietnam     Country = "VN"
	Indonesia   Country = "ID"
	Philippines Country = "PH"
)

// Countries lists every country in display order.
var Countries = []Country{Thailand, Vietnam, Indonesia, Philippines}

var countryLabels = map[Country]string{
	Thailand:    "Thailand",
	Vietnam:     "Vietnam",
	Indonesia:   "Indonesia",
	Philippines: "Philippines",
}

// Label returns the display label.
func (c Country) Label() string {
	label, ok := countryLabels[c]
	if !ok {
		panic(fmt.Sprintf("model: unknown country %q", c))
	}
	return label
}
