package catalog

import (
	"fmt"

	"github.com/carson-networks/decline-insights/internal/model"
)

// DeclineCodeInfo describes one decline code. Exactly one of RecoveryPath
// (soft codes) or EscalationPath (hard codes) is set.
type DeclineCodeInfo struct {
	Code           model.DeclineCode     `json:"code"`
	Label          string                `json:"label"`
	Category       model.DeclineCategory `json:"category"`
	Weight         float64               `json:"weight"`
	Description    string                `json:"description"`
	RecoveryPath   string                `json:"recoveryPath,omitempty"`
	EscalationPath string                `json:"escalationPath,omitempty"`
}

// Guidance returns the recovery or escalation text, whichever applies.
func (i DeclineCodeInfo) Guidance() string {
	if i.Category == model.CategorySoft {
		return i.RecoveryPath
	}
	return i.EscalationPath
}

var declineCodes = map[model.DeclineCode]DeclineCodeInfo{
	model.InsufficientFunds: {
		Category:     model.CategorySoft,
		Weight:       28,
		Description:  "The customer's bank account balance is temporarily too low to cover the charge.",
		RecoveryPath: "Send a payment retry link via email. Success rates are highest when retried after month-end payroll (1st-5th). Consider splitting into installments for amounts over $500.",
	},
	model.DoNotHonor: {
		Category:     model.CategorySoft,
		Weight:       20,
		Description:  "The issuing bank declined without a specific reason, commonly a temporary fraud prevention hold.",
		RecoveryPath: "Ask the customer to contact their bank to authorize the transaction, then retry within 24 hours. Success rate: ~65% on first retry.",
	},
	model.FraudSuspected: {
		Category:       model.CategoryHard,
		Weight:         12,
		Description:    "The issuing bank has flagged this card for suspected fraudulent activity.",
		EscalationPath: "Do not retry. Additional attempts will be declined and may trigger further security flags. Direct customer to use a different payment method immediately.",
	},
	model.NetworkTimeout: {
		Category:     model.CategorySoft,
		Weight:       10,
		Description:  "The payment network did not respond in time. This is a transient technical issue, not a problem with the card.",
		RecoveryPath: "Retry immediately. 85% of network timeouts succeed on the first retry. No customer action required.",
	},
	model.ExpiredCard: {
		Category:       model.CategoryHard,
		Weight:         10,
		Description:    "The card's expiry date has passed. Expired cards cannot be charged under any circumstances.",
		EscalationPath: "Ask the customer to update their saved payment method with a new, valid card. Offer a payment link with a 48-hour expiry.",
	},
	model.IssuerUnavailable: {
		Category:     model.CategorySoft,
		Weight:       7,
		Description:  "The customer's bank authorization system is temporarily unreachable due to a bank-side outage.",
		RecoveryPath: "Retry automatically after 30 minutes. If the issue persists beyond 2 hours, ask the customer to try a different card or payment method.",
	},
	model.InvalidCVV: {
		Category:       model.CategoryHard,
		Weight:         5,
		Description:    "The security code entered does not match what the bank has on file.",
		EscalationPath: "Ask the customer to carefully re-enter their card details. If the CVV error repeats, flag the session for security review as it could indicate a compromised card.",
	},
	model.LostStolenCard: {
		Category:       model.CategoryHard,
		Weight:         4,
		Description:    "The cardholder has reported this card as lost or stolen. It has been cancelled by the bank.",
		EscalationPath: "Do not retry. Contact the customer via an alternative channel (email/phone). Flag this transaction for your security team.",
	},
	model.CardNotSupported: {
		Category:       model.CategoryHard,
		Weight:         3,
		Description:    "This card network or card type is not accepted by the payment processor in this region.",
		EscalationPath: "Ask the customer to use a different card type (e.g., Visa or Mastercard instead of Amex or UnionPay).",
	},
	model.InvalidCardNumber: {
		Category:       model.CategoryHard,
		Weight:         1,
		Description:    "The card number fails the Luhn algorithm check, so it is not a valid card number.",
		EscalationPath: "Ask the customer to re-enter their card details carefully. This is almost always a data entry error.",
	},
}

// Lookup returns the catalog entry for code.
func Lookup(code model.DeclineCode) (DeclineCodeInfo, bool) {
	info, ok := declineCodes[code]
	if !ok {
		return DeclineCodeInfo{}, false
	}
	info.Code = code
	info.Label = code.Label()
	return info, true
}

// MustLookup is Lookup for codes that come from generated data. A miss means
// the catalog and the data have drifted and panics.
func MustLookup(code model.DeclineCode) DeclineCodeInfo {
	info, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("catalog: no entry for decline code %q", code))
	}
	return info
}

// CategoryOf classifies a decline code as soft or hard.
func CategoryOf(code model.DeclineCode) model.DeclineCategory {
	return MustLookup(code).Category
}

// All returns every entry in model.DeclineCodes order.
func All() []DeclineCodeInfo {
	infos := make([]DeclineCodeInfo, len(model.DeclineCodes))
	for i, code := range model.DeclineCodes {
		infos[i] = MustLookup(code)
	}
	return infos
}

// Weights returns the relative draw weights in model.DeclineCodes order.
// The slice is a fresh copy and may be modified by the caller.
func Weights() []float64 {
	weights := make([]float64, len(model.DeclineCodes))
	for i, code := range model.DeclineCodes {
		weights[i] = MustLookup(code).Weight
	}
	return weights
}
