package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishFallsBackToMessageID(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "You climb the stairs to floor 3.", c.Get(MsgClimb, 3))
	assert.Equal(t, "Floor 2 (HP: 90/100 | Weapon: Iron Sword (+15))",
		c.Get(MsgStatus, 2, 90, 100, "Iron Sword", 15))
	assert.Equal(t, "Iron Sword", c.Name("Iron Sword"))
}

func TestJapaneseCatalog(t *testing.T) {
	c, err := New("ja")
	require.NoError(t, err)
	assert.Equal(t, "ja", c.Language())
	assert.Equal(t, "階段を上り、3階に到達しました。", c.Get(MsgClimb, 3))
	assert.Equal(t, "鉄の剣", c.Name("Iron Sword"))
	assert.Equal(t, "MPが足りない！", c.Get(MsgNoMana))
}

func TestEveryMessageTranslated(t *testing.T) {
	c, err := New("ja")
	require.NoError(t, err)
	for _, id := range []string{
		MsgStatus, MsgLegend, MsgClimb, MsgReturn, MsgMonster, MsgPlayerHit, MsgPlayerCrit,
		MsgSpell, MsgNoMana, MsgMonsterHit, MsgMonsterCrit, MsgDefeated, MsgDrop, MsgEquip,
		MsgKeep, MsgTacticPrompt, MsgGameOver, MsgVictory, MsgQuit, MsgPressAnyKey, MsgSummary,
	} {
		assert.NotEqual(t, id, c.Get(id), "missing translation for %q", id)
	}
}

func TestUnknownLanguage(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)
}
