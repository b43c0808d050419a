package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sipResult() domain.SIPResult {
	return domain.SIPResult{
		FutureValue:     decimal.NewFromInt(27243),
		TotalInvestment: decimal.NewFromInt(24000),
		TotalEarnings:   decimal.NewFromInt(3243),
		EffectiveReturn: decimal.RequireFromString("13.51"),
		Trajectory: []domain.PeriodSnapshot{
			{Period: 1, Balance: decimal.NewFromInt(12809)},
			{Period: 2, Balance: decimal.NewFromInt(27243)},
		},
	}
}

func TestFileName(t *testing.T) {
	date := time.Date(2024, 5, 9, 15, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"Compound Interest":    "compound-interest-2024-05-09.png",
		"  College   Fund\tA ": "college-fund-a-2024-05-09.png",
		"SIP":                  "sip-2024-05-09.png",
		"a/b":                  "a-b-2024-05-09.png",
		"":                     "calculation-2024-05-09.png",
	}
	for title, want := range tests {
		if got := FileName(title, date); got != want {
			t.Errorf("FileName(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestExport_WritesPNG(t *testing.T) {
	var buf bytes.Buffer
	err := NewPNGExporter("USD").Export(&buf, "College Fund", sipResult())
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 300)

	// background stays white in the corner
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)

	assert.True(t, hasColor(img, colorBar), "trajectory bars should be drawn")
	assert.True(t, hasColor(img, colorBrand), "branding footer should be drawn")
}

func TestExport_WithoutTrajectory(t *testing.T) {
	var withBars, without bytes.Buffer
	e := &PNGExporter{}
	require.NoError(t, e.Export(&withBars, "sip", sipResult()))
	require.NoError(t, e.Export(&without, "bond", domain.BasicFVResult{
		FutureValue: decimal.RequireFromString("16288.95"),
		Interest:    decimal.RequireFromString("6288.95"),
	}))

	a, err := png.Decode(&withBars)
	require.NoError(t, err)
	b, err := png.Decode(&without)
	require.NoError(t, err)
	assert.Less(t, b.Bounds().Dy(), a.Bounds().Dy())
	assert.False(t, hasColor(b, colorBar))

	assert.Error(t, e.Export(&bytes.Buffer{}, "nothing", nil))
}

func TestExportSaved(t *testing.T) {
	calcs := []output.Calculation{
		{Name: "college", Result: sipResult()},
		{Name: "bond", Result: domain.BasicFVResult{FutureValue: decimal.NewFromInt(100)}},
	}
	var buf bytes.Buffer
	require.NoError(t, NewPNGExporter("EUR").ExportSaved(&buf, calcs))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.True(t, hasColor(img, colorCard))
}

func hasColor(img image.Image, want color.Color) bool {
	wr, wg, wb, _ := want.RGBA()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == wr && g == wg && b == wb {
				return true
			}
		}
	}
	return false
}
