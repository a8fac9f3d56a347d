package economics

import (
	"testing"

	"github.com/shopspring/decimal"

	"orderdesk/src/model"
)

func TestEstimateLiquidationPrice_ReferenceScenario(t *testing.T) {
	// 20x long at 3325.60 with 0.5% maintenance margin:
	// 3325.60 * (1 - 0.05 + 0.005) = 3325.60 * 0.955 = 3176.948
	liq, ok := EstimateLiquidationPrice(d("3325.60"), d("2.5"), 20, model.SideLong, d("0.005"))
	if !ok {
		t.Fatal("expected a liquidation price for a non-zero position")
	}
	if !liq.Equal(d("3176.948")) {
		t.Fatalf("got %s, want 3176.948", liq)
	}
}

func TestEstimateLiquidationPrice_NoPosition(t *testing.T) {
	if _, ok := EstimateLiquidationPrice(d("3325.60"), decimal.Zero, 20, model.SideLong, d("0.005")); ok {
		t.Fatal("zero size must not produce a liquidation price")
	}
}

func TestEstimateLiquidationPrice_Direction(t *testing.T) {
	entry := d("3325.60")
	leverages := []int{2, 10, 20, 100}

	for _, leverage := range leverages {
		// any maintenance ratio in (0, 1/leverage)
		ratios := []decimal.Decimal{
			d("0.0001"),
			one.Div(decimal.NewFromInt(int64(leverage))).Div(d("2")),
		}

		for _, ratio := range ratios {
			longLiq, ok := EstimateLiquidationPrice(entry, d("1"), leverage, model.SideLong, ratio)
			if !ok {
				t.Fatalf("expected long liquidation price at leverage %d", leverage)
			}
			if !longLiq.LessThan(entry) {
				t.Fatalf("long liquidation %s must be below entry %s (leverage %d, mmr %s)",
					longLiq, entry, leverage, ratio)
			}

			shortLiq, ok := EstimateLiquidationPrice(entry, d("1"), leverage, model.SideShort, ratio)
			if !ok {
				t.Fatalf("expected short liquidation price at leverage %d", leverage)
			}
			if !shortLiq.GreaterThan(entry) {
				t.Fatalf("short liquidation %s must be above entry %s (leverage %d, mmr %s)",
					shortLiq, entry, leverage, ratio)
			}
		}
	}
}

func TestEstimateLiquidationPrice_DegenerateLeverage(t *testing.T) {
	// leverage <= 0 behaves as 1x: long liquidates at entry * mmr
	liq, ok := EstimateLiquidationPrice(d("100"), d("1"), 0, model.SideLong, d("0.005"))
	if !ok {
		t.Fatal("expected a liquidation price")
	}
	if !liq.Equal(d("0.5")) {
		t.Fatalf("got %s, want 0.5", liq)
	}
}
