package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/decline-insights/internal/model"
)

func TestAll_CoversEveryCodeInOrder(t *testing.T) {
	infos := All()

	require.Len(t, infos, len(model.DeclineCodes))
	for i, info := range infos {
		assert.Equal(t, model.DeclineCodes[i], info.Code)
		assert.Equal(t, info.Code.Label(), info.Label)
		assert.NotEmpty(t, info.Description)
		assert.Positive(t, info.Weight)
	}
}

func TestAll_ExactlyOneGuidancePath(t *testing.T) {
	for _, info := range All() {
		switch info.Category {
		case model.CategorySoft:
			assert.NotEmpty(t, info.RecoveryPath, info.Code)
			assert.Empty(t, info.EscalationPath, info.Code)
		case model.CategoryHard:
			assert.Empty(t, info.RecoveryPath, info.Code)
			assert.NotEmpty(t, info.EscalationPath, info.Code)
		default:
			t.Fatalf("unexpected category %q for %s", info.Category, info.Code)
		}
		assert.NotEmpty(t, info.Guidance())
	}
}

func TestCategoryOf(t *testing.T) {
	soft := []model.DeclineCode{model.InsufficientFunds, model.DoNotHonor, model.NetworkTimeout, model.IssuerUnavailable}
	hard := []model.DeclineCode{model.ExpiredCard, model.FraudSuspected, model.LostStolenCard, model.InvalidCardNumber, model.CardNotSupported, model.InvalidCVV}

	for _, code := range soft {
		assert.Equal(t, model.CategorySoft, CategoryOf(code), code)
	}
	for _, code := range hard {
		assert.Equal(t, model.CategoryHard, CategoryOf(code), code)
	}
}

func TestWeights(t *testing.T) {
	assert.Equal(t, []float64{28, 20, 12, 10, 10, 7, 5, 4, 3, 1}, Weights())
}

func TestWeights_ReturnsCopy(t *testing.T) {
	w := Weights()
	w[0] *= 3

	assert.Equal(t, 28.0, Weights()[0])
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("made_up")
	assert.False(t, ok)
	assert.Panics(t, func() { MustLookup("made_up") })
}
