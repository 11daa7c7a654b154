package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceForm struct {
	Price    decimal.Decimal  `json:"price" validate:"price2dp"`
	Discount *decimal.Decimal `json:"discountPrice" validate:"omitempty,price2dp"`
	Code     string           `json:"uniqueCode" validate:"omitempty,uniquecode"`
}

func newValidate(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, Setup(v))
	return v
}

func TestPrice2dp(t *testing.T) {
	v := newValidate(t)

	ok := []string{"10", "10.5", "10.50", "0.01", "10.500"}
	for _, raw := range ok {
		form := priceForm{Price: decimal.RequireFromString(raw)}
		assert.NoError(t, v.Struct(form), raw)
	}

	form := priceForm{Price: decimal.RequireFromString("10.555")}
	err := v.Struct(form)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"price": "price2dp"}, Details(err))
}

func TestPrice2dpPointer(t *testing.T) {
	v := newValidate(t)

	d := decimal.RequireFromString("1.001")
	err := v.Struct(priceForm{Price: decimal.NewFromInt(5), Discount: &d})
	require.Error(t, err)
	assert.Contains(t, Details(err), "discountPrice")

	assert.NoError(t, v.Struct(priceForm{Price: decimal.NewFromInt(5)}))
}

func TestUniqueCode(t *testing.T) {
	v := newValidate(t)

	for _, code := range []string{"9780306406157", "0-306-40615-2", "PEN-BLUE-01"} {
		assert.NoError(t, v.Struct(priceForm{Code: code}), code)
	}
	for _, code := range []string{"ab", "pen blue", "978!"} {
		assert.Error(t, v.Struct(priceForm{Code: code}), code)
	}
}

func TestDetailsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Details(assert.AnError))
}
