package generator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/random"
)

const (
	// Seed and Size define the population every process works on.
	Seed = 42
	Size = 450

	Currency = "USD"

	customerCount = 2000

	// monthEndDay is the first day of month on which insufficient funds
	// declines become three times as likely.
	monthEndDay         = 28
	monthEndFundsFactor = 3
)

var (
	windowStart = time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, time.February, 24, 23, 59, 59, 0, time.UTC)

	methodWeights = []float64{55, 30, 15}

	methodDeclineRates = map[model.PaymentMethod]float64{
		model.CreditCard:    0.26,
		model.DigitalWallet: 0.18,
		model.BankTransfer:  0.45,
	}

	countryWeights = []float64{35, 25, 25, 15}

	firstNames = []string{
		"James", "Sarah", "Michael", "Emma", "David", "Lisa", "John", "Anna",
		"Robert", "Maria", "Wei", "Yuki", "Chen", "Priya", "Ahmad", "Siti",
		"Tom", "Nina", "Carlos", "Aisha", "Lucas", "Mei", "Omar", "Sophie",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Martinez",
		"Davis", "Wilson", "Taylor", "Nguyen", "Park", "Kim", "Santos", "Cruz",
		"Reyes", "Lee", "Tanaka", "Patel", "Hassan", "Tran", "Bautista", "Rizal", "Chai",
	}
)

// amountSegment is one component of the amount mixture: a draw below
// cumulative lands uniformly in [low, low+width).
type amountSegment struct {
	cumulative float64
	low        float64
	width      float64
}

var amountSegments = []amountSegment{
	{cumulative: 0.38, low: 50, width: 250},
	{cumulative: 0.62, low: 300, width: 200},
	{cumulative: 0.83, low: 500, width: 500},
	{cumulative: 1, low: 1000, width: 1000},
}

// GeneratePopulation builds the fixed population. Call it once at startup
// and share the result through storage.Storage.
func GeneratePopulation() []model.Transaction {
	return Generate(Seed, Size)
}

// Generate builds size transactions from seed, sorted by timestamp. Every
// value is drawn from one sequence in a fixed order, so the output is a pure
// function of its arguments.
func Generate(seed uint32, size int) []model.Transaction {
	src := random.NewSource(seed)
	txns := make([]model.Transaction, 0, size)

	for i := 0; i < size; i++ {
		timestamp := drawTimestamp(src)
		method := random.Weighted(src, model.PaymentMethods, methodWeights)
		declined := src.Float64() < methodDeclineRates[method]
		amount := drawAmount(src)
		country := random.Weighted(src, model.Countries, countryWeights)

		tx := model.Transaction{
			ID:            fmt.Sprintf("TXN-%05d", i+1),
			Amount:        amount,
			Currency:      Currency,
			Status:        model.StatusApproved,
			PaymentMethod: method,
			Country:       country,
			Timestamp:     timestamp,
			IsHighValue:   model.IsHighValueAmount(amount),
		}
		if declined {
			tx.Status = model.StatusDeclined
			tx.DeclineCode = PickDeclineCode(src, timestamp.Day())
			tx.DeclineCategory = catalog.CategoryOf(tx.DeclineCode)
		}
		tx.CustomerID = fmt.Sprintf("CUST-%04d", src.Intn(customerCount)+1)
		tx.CustomerName = drawName(src)

		txns = append(txns, tx)
	}

	sort.SliceStable(txns, func(a, b int) bool {
		return txns[a].Timestamp.Before(txns[b].Timestamp)
	})
	return txns
}

// PickDeclineCode draws a decline code from the catalog weights. From day
// 28 of the month on, insufficient funds is weighted three times higher.
func PickDeclineCode(u random.Uniform, dayOfMonth int) model.DeclineCode {
	weights := DeclineWeights(dayOfMonth)
	return random.Weighted(u, model.DeclineCodes, weights)
}

// DeclineWeights returns the decline code weights in effect on dayOfMonth.
func DeclineWeights(dayOfMonth int) []float64 {
	weights := catalog.Weights()
	if dayOfMonth >= monthEndDay {
		for i, code := range model.DeclineCodes {
			if code == model.InsufficientFunds {
				weights[i] *= monthEndFundsFactor
			}
		}
	}
	return weights
}

// drawTimestamp lands uniformly in the window, truncated to milliseconds.
// The explicit float64 conversions stop the compiler from fusing the
// multiply and add, which would change results on some architectures.
func drawTimestamp(src *random.Source) time.Time {
	span := float64(windowEnd.UnixMilli() - windowStart.UnixMilli())
	offset := float64(src.Float64() * span)
	ms := float64(windowStart.UnixMilli()) + offset
	return time.UnixMilli(int64(ms)).UTC()
}

func drawAmount(src *random.Source) decimal.Decimal {
	r := src.Float64()
	segment := amountSegments[len(amountSegments)-1]
	for _, s := range amountSegments {
		if r < s.cumulative {
			segment = s
			break
		}
	}
	value := segment.low + float64(src.Float64()*segment.width)
	return decimal.NewFromFloat(roundCents(value))
}

// roundCents rounds half up to two decimal places.
func roundCents(v float64) float64 {
	scaled := float64(v * 100)
	return math.Floor(scaled+0.5) / 100
}

func drawName(src *random.Source) string {
	first := firstNames[src.Intn(len(firstNames))]
	last := lastNames[src.Intn(len(lastNames))]
	return first + " " + last
}
