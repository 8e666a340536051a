package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zeylcoffee/qrmenu/app/models"
)

func TestTL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5 TL"},
		{120, "120 TL"},
		{1500, "1.500 TL"},
		{96.5, "96,50 TL"},
	}
	for _, tc := range cases {
		if got := TL(decimal.NewFromFloat(tc.in)); got != tc.want {
			t.Errorf("TL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPriceTLNullShowsDash(t *testing.T) {
	if got := PriceTL(models.NullPrice()); got != "-" {
		t.Errorf("PriceTL(null) = %q", got)
	}
	if got := PriceTL(models.NewPrice(65)); got != "65 TL" {
		t.Errorf("PriceTL(65) = %q", got)
	}
}

func TestDiscount(t *testing.T) {
	got := Discount(models.NewPrice(200), models.NewPrice(150))
	if got == nil || *got != "200 TL -> 150 TL" {
		t.Errorf("Discount = %v", got)
	}

	if Discount(models.NullPrice(), models.NewPrice(150)) != nil {
		t.Error("Discount with null old price should be nil")
	}
	if Discount(models.NewPrice(200), models.NullPrice()) != nil {
		t.Error("Discount with null new price should be nil")
	}
}
