package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ah", Card{Ace, Hearts}.String())
	assert.Equal(t, "2c", Card{Two, Clubs}.String())
	assert.Equal(t, "Td", Card{Ten, Diamonds}.String())
	assert.Equal(t, "9s", Card{Nine, Spades}.String())
	assert.Equal(t, "Xx", UnknownCard().String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Ah", "2c", "Td", "Ks", "Qh", "Jd", "7s", "Xx"} {
		card, err := ParseCard(s)
		require.NoError(t, err)
		assert.Equal(t, s, card.String())
	}

	for _, s := range []string{"", "A", "Ahh", "1h", "Az", "ah"} {
		_, err := ParseCard(s)
		assert.Error(t, err, "parsing %q", s)
	}
}

func TestCardJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Card{King, Diamonds})
	require.NoError(t, err)
	assert.Equal(t, `"Kd"`, string(data))

	var card Card
	require.NoError(t, json.Unmarshal([]byte(`"Qs"`), &card))
	assert.Equal(t, Card{Queen, Spades}, card)

	assert.Error(t, json.Unmarshal([]byte(`"zz"`), &card))
	assert.Error(t, json.Unmarshal([]byte(`7`), &card))
}
