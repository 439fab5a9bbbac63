package npc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
	"github.com/cory-johannsen/fightsim/internal/game/npc"
)

const slimeYAML = `
id: slime
name: Slime
strength: 5
agility: 3
hp: {min: 3, max: 3}
resist: {sleep: 0, stopspell: 15, hurt: 0}
dodge: 1
flee_tier: 0
pattern:
  - {action: attack, weight: 100}
`

func TestLoadTemplateFromBytes_Valid(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(slimeYAML))
	require.NoError(t, err)
	assert.Equal(t, "slime", tmpl.ID)
	assert.Equal(t, 15, tmpl.Resist.Stopspell)
	assert.Equal(t, combat.ActionAttack, tmpl.Pattern[0].Action)
	assert.False(t, tmpl.BlocksCrits)
}

func TestLoadTemplateFromBytes_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing id":     "name: X\nhp: {min: 1, max: 1}\npattern: [{action: attack, weight: 100}]\n",
		"bad hp range":   "id: x\nname: X\nhp: {min: 5, max: 2}\npattern: [{action: attack, weight: 100}]\n",
		"bad flee tier":  "id: x\nname: X\nhp: {min: 1, max: 1}\nflee_tier: 4\npattern: [{action: attack, weight: 100}]\n",
		"empty pattern":  "id: x\nname: X\nhp: {min: 1, max: 1}\n",
		"unknown action": "id: x\nname: X\nhp: {min: 1, max: 1}\npattern: [{action: juggle, weight: 100}]\n",
		"zero weight":    "id: x\nname: X\nhp: {min: 1, max: 1}\npattern: [{action: attack, weight: 0}]\n",
	}
	for name, data := range cases {
		_, err := npc.LoadTemplateFromBytes([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestLoadTemplates_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slime.yaml"), []byte(slimeYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	templates, err := npc.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Slime", templates[0].Name)
}

func TestLoadTemplates_MissingDirectory(t *testing.T) {
	_, err := npc.LoadTemplates(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestDefaultTemplates_FullBestiary(t *testing.T) {
	templates, err := npc.DefaultTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 40)
	assert.Equal(t, "slime", templates[0].ID)
	assert.Equal(t, "dragonlord_second", templates[39].ID)

	b, err := npc.NewBestiary(templates)
	require.NoError(t, err)

	dl, ok := b.Get("dragonlord_second")
	require.True(t, ok)
	assert.True(t, dl.BlocksCrits)
	assert.Equal(t, npc.HPRange{Min: 130, Max: 130}, dl.HP)
	assert.Equal(t, combat.ActionStrongfire, dl.Pattern[0].Action)

	metal, ok := b.Get("metal_slime")
	require.True(t, ok)
	assert.Equal(t, 255, metal.Agility)
	assert.Equal(t, npc.Resistances{Sleep: 15, Stopspell: 15, Hurt: 15}, metal.Resist)
}

func TestBestiary_ByName(t *testing.T) {
	templates, err := npc.DefaultTemplates()
	require.NoError(t, err)
	b, err := npc.NewBestiary(templates)
	require.NoError(t, err)

	assert.Equal(t, "red_slime", b.ByName("red slime").ID)
	assert.Equal(t, "metal_scorpion", b.ByName("Metal S").ID)
	assert.Nil(t, b.ByName("slimer"))
	assert.Nil(t, b.ByName(""))
}

func TestNewBestiary_RejectsDuplicatesAndEmpty(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(slimeYAML))
	require.NoError(t, err)
	_, err = npc.NewBestiary([]*npc.Template{tmpl, tmpl})
	assert.Error(t, err)
	_, err = npc.NewBestiary(nil)
	assert.Error(t, err)
}

func TestBestiary_SpawnAssignsUniqueIDs(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(slimeYAML))
	require.NoError(t, err)
	b, err := npc.NewBestiary([]*npc.Template{tmpl})
	require.NoError(t, err)

	rng := dice.NewRandomizer(dice.NewSeededSource(7))
	first, err := b.Spawn("slime", rng)
	require.NoError(t, err)
	second, err := b.Spawn("Slime", rng)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "slime", second.TemplateID)

	_, err = b.Spawn("dragon", rng)
	assert.Error(t, err)

	assert.Equal(t, "slime", b.SpawnRandom(rng).TemplateID)
}

// TestSpawn_HPWithinTemplateRange verifies the rolled max HP always lies in the template range.
func TestSpawn_HPWithinTemplateRange(t *testing.T) {
	templates, err := npc.DefaultTemplates()
	require.NoError(t, err)
	rng := dice.NewRandomizer(dice.NewCryptoSource())
	rapid.Check(t, func(rt *rapid.T) {
		tmpl := rapid.SampledFrom(templates).Draw(rt, "template")
		e := npc.Spawn(tmpl, rng)
		assert.GreaterOrEqual(rt, e.MaxHP(), tmpl.HP.Min)
		assert.LessOrEqual(rt, e.MaxHP(), tmpl.HP.Max)
		assert.Equal(rt, e.MaxHP(), e.CurrentHP())
	})
}

func TestEnemy_DamageHealAndRestore(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(slimeYAML))
	require.NoError(t, err)
	e := npc.NewEnemy("slime-1", tmpl, 20)

	e.TakeDamage(15)
	assert.Equal(t, 5, e.CurrentHP())
	assert.Equal(t, 15, e.MissingHP())
	assert.Equal(t, "critically wounded", e.HealthDescription())

	e.Heal(100)
	assert.Equal(t, 20, e.CurrentHP())

	e.Status.Sleep.Set(2)
	e.Status.Seal.Apply()
	e.TakeDamage(50)
	assert.True(t, e.IsDefeated())
	assert.Equal(t, 0, e.CurrentHP())
	assert.Equal(t, "defeated", e.HealthDescription())

	e.Restore()
	assert.Equal(t, 20, e.CurrentHP())
	assert.False(t, e.Asleep())
	assert.False(t, e.Sealed())
	assert.Equal(t, "unharmed", e.HealthDescription())
}
