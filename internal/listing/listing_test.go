package listing

import (
	"math/big"
	"testing"

	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testInvestment() *model.InvestmentModel {
	return &model.InvestmentModel{
		Id:       7,
		Title:    "Harbour Loft",
		Category: "Real Estate",
		Location: "Lisbon",
		Country:  "Portugal",
		Keywords: datatypes.JSONSlice[string]{"loft", "harbour"},
		Content:  `Line one\nLine two`,
		Images:   datatypes.JSONSlice[string]{"cover.jpg", "a.jpg", "b.jpg"},
		Minimum:  "0.5",
		Maximum:  "100",
	}
}

func TestBuildUnapproved(t *testing.T) {
	d, err := Build(Input{Investment: testInvestment(), Decimals: 18})
	require.NoError(t, err)

	assert.Equal(t, "Line one\nLine two", d.Content)
	assert.Equal(t, "Lisbon, Portugal", d.Place)
	assert.Equal(t, "loft | harbour", d.Keywords)
	assert.Equal(t, "cover.jpg", d.Cover)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, d.Gallery)
	assert.Equal(t, "500000000000000000", d.Bounds.MinimumWei)
	assert.Equal(t, "100", d.Bounds.Maximum)
	assert.False(t, d.Approved)
	assert.Equal(t, ActionRegisterInterest, d.Dialog.Action)
	assert.Equal(t, "Register Interest", d.Dialog.Trigger)
}

func TestBuildApprovedBranch(t *testing.T) {
	pool := funding.NewView(funding.NewState().Snapshot(), 18, "tCORE2")

	d, err := Build(Input{Investment: testInvestment(), Approved: true, Pool: &pool, Decimals: 18})
	require.NoError(t, err)
	assert.Equal(t, ActionInvest, d.Dialog.Action)
	assert.Equal(t, "How much you want to invest?", d.Dialog.Title)
	assert.Equal(t, "Raised 0 of 0 (0% funded)", d.Pool.Summary)

	done := purchase.Succeeded("0xabc")
	d, err = Build(Input{Investment: testInvestment(), Approved: true, Purchase: &done, Decimals: 18})
	require.NoError(t, err)
	assert.Equal(t, "Transaction successful!", d.Dialog.Title)
	assert.Equal(t, "You can close this window now.", d.Dialog.Description)
}

func TestBuildRejectsBadBounds(t *testing.T) {
	inv := testInvestment()
	inv.Minimum = "lots"
	_, err := Build(Input{Investment: inv, Decimals: 18})
	assert.Error(t, err)
}

func TestBoundsCheck(t *testing.T) {
	b, err := ParseBounds("1", "", 0)
	require.NoError(t, err)
	assert.Nil(t, b.Maximum)

	assert.ErrorIs(t, b.Check(big.NewInt(0)), ErrOutOfBounds)
	assert.NoError(t, b.Check(big.NewInt(1)))
	assert.NoError(t, b.Check(big.NewInt(1_000_000)))

	b, err = ParseBounds("", "10", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Check(big.NewInt(11)), ErrOutOfBounds)
}

func TestPlace(t *testing.T) {
	assert.Equal(t, "Portugal", Place("", "Portugal"))
}
