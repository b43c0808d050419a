package scenes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fvgo/internal/domain"
)

func TestForm_RoundTripsDefaults(t *testing.T) {
	for _, kind := range domain.AllKinds() {
		t.Run(string(kind), func(t *testing.T) {
			in, err := domain.DefaultInput(kind)
			require.NoError(t, err)

			f, err := newForm(kind, in)
			require.NoError(t, err)
			require.NotEmpty(t, f.fields)

			got, err := f.Input()
			require.NoError(t, err)

			want, _ := json.Marshal(in)
			have, _ := json.Marshal(got)
			assert.JSONEq(t, string(want), string(have))
		})
	}
}

func TestForm_SelectorsWriteRawValues(t *testing.T) {
	in, _ := domain.DefaultInput(domain.KindCarValue)
	f, err := newForm(domain.KindCarValue, in)
	require.NoError(t, err)

	last := f.fields[len(f.fields)-1]
	require.Equal(t, "condition", last.slider.Field)
	assert.Equal(t, "Excellent", last.slider.Selected())
	last.slider.Increment()

	got, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, domain.ConditionGood, got.(domain.CarValueInput).Condition)
}

func TestForm_ChoiceFields(t *testing.T) {
	in := domain.CompoundInterestInput{Years: 10, CompoundingFrequency: 4}
	f, err := newForm(domain.KindCompoundInterest, in)
	require.NoError(t, err)

	freq := f.fields[3].slider
	assert.Equal(t, "4", freq.Selected())
	freq.Increment()

	got, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, 12, got.(domain.CompoundInterestInput).CompoundingFrequency)
}

func TestForm_FractionalStepsRound(t *testing.T) {
	in, _ := domain.DefaultInput(domain.KindSIP)
	f, err := newForm(domain.KindSIP, in)
	require.NoError(t, err)

	rate := f.fields[1].slider
	for i := 0; i < 3; i++ {
		rate.Increment()
	}
	got, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, "12.3", got.(domain.SIPInput).AnnualRate.String())
}

func TestDecimalsFor(t *testing.T) {
	assert.Equal(t, 0, decimalsFor(1000))
	assert.Equal(t, 1, decimalsFor(0.1))
	assert.Equal(t, 2, decimalsFor(0.05))
	assert.Equal(t, 2, decimalsFor(0.25))
}
