package manifest_test

import (
	"testing"

	"manifest-sync/feature/manifest"
	"manifest-sync/feature/manifest/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWeapon(t *testing.T) {
	named := &models.DisplayProperties{Name: "Gun"}
	tests := []struct {
		name string
		def  *models.ItemDefinition
		want bool
	}{
		{"Legendary", &models.ItemDefinition{ItemType: 3, DisplayProperties: named, Inventory: &models.Inventory{TierType: 5}}, true},
		{"Exotic", &models.ItemDefinition{ItemType: 3, DisplayProperties: named, Inventory: &models.Inventory{TierType: 6}}, true},
		{"Common", &models.ItemDefinition{ItemType: 3, DisplayProperties: named, Inventory: &models.Inventory{TierType: 2}}, false},
		{"Rare", &models.ItemDefinition{ItemType: 3, DisplayProperties: named, Inventory: &models.Inventory{TierType: 4}}, false},
		{"NotWeapon", &models.ItemDefinition{ItemType: 2, DisplayProperties: named, Inventory: &models.Inventory{TierType: 5}}, false},
		{"EmptyName", &models.ItemDefinition{ItemType: 3, DisplayProperties: &models.DisplayProperties{}, Inventory: &models.Inventory{TierType: 5}}, false},
		{"NoDisplayProperties", &models.ItemDefinition{ItemType: 3, Inventory: &models.Inventory{TierType: 5}}, false},
		{"NoInventory", &models.ItemDefinition{ItemType: 3, DisplayProperties: named}, false},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manifest.IsWeapon(tt.def))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("Fixture", func(t *testing.T) {
		weapons := manifest.Classify(mustTable(t, fixtureTable))
		require.Len(t, weapons, 1)

		want := models.WeaponRecord{
			Hash:                "1000",
			Name:                "Fatebringer",
			Description:         "Fate is sealed.",
			Icon:                "/fb.png",
			ItemTypeDisplayName: "Hand Cannon",
			TierType:            5,
			TierTypeName:        "Legendary",
			DamageType:          1,
			DamageTypeName:      "Kinetic",
			HasRandomRolls:      true,
			Sockets: []models.WeaponSocket{{
				SocketTypeHash:      5,
				ReusablePlugItems:   []uint32{},
				ReusablePlugSetHash: 2000,
			}},
		}
		if diff := cmp.Diff(want, weapons[0]); diff != "" {
			t.Errorf("weapon mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("TableOrder", func(t *testing.T) {
		table := mustTable(t, `{
			"9": {"itemType": 3, "displayProperties": {"name": "Z"}, "inventory": {"tierType": 6}},
			"1": {"itemType": 3, "displayProperties": {"name": "A"}, "inventory": {"tierType": 5}},
			"5": {"itemType": 3, "displayProperties": {"name": "M"}, "inventory": {"tierType": 5}}
		}`)

		var hashes []string
		for _, w := range manifest.Classify(table) {
			hashes = append(hashes, w.Hash)
		}
		assert.Equal(t, []string{"9", "1", "5"}, hashes)
	})

	t.Run("NormalizesMissingFields", func(t *testing.T) {
		table := mustTable(t, `{"7": {"itemType": 3, "displayProperties": {"name": "Bare"}, "inventory": {"tierType": 6}, "defaultDamageType": 99}}`)

		weapons := manifest.Classify(table)
		require.Len(t, weapons, 1)
		w := weapons[0]
		assert.Equal(t, "", w.Icon)
		assert.Equal(t, "", w.Description)
		assert.Equal(t, "Exotic", w.TierTypeName, "falls back to the lookup table")
		assert.Equal(t, models.UnknownName, w.DamageTypeName)
		assert.NotNil(t, w.Sockets)
		assert.Empty(t, w.Sockets)
		assert.False(t, w.HasRandomRolls)
	})

	t.Run("EmptyAndNilTables", func(t *testing.T) {
		assert.NotNil(t, manifest.Classify(nil))
		assert.Empty(t, manifest.Classify(models.NewTable()))
	})

	t.Run("Deterministic", func(t *testing.T) {
		table := mustTable(t, fixtureTable)
		if diff := cmp.Diff(manifest.Classify(table), manifest.Classify(table)); diff != "" {
			t.Errorf("classify is not deterministic:\n%s", diff)
		}
	})
}

func TestNormalizeWeapon_Flags(t *testing.T) {
	base := func() *models.ItemDefinition {
		return &models.ItemDefinition{
			ItemType:          3,
			DisplayProperties: &models.DisplayProperties{Name: "Gun"},
			Inventory:         &models.Inventory{TierType: 5},
		}
	}

	t.Run("AdeptFlag", func(t *testing.T) {
		def := base()
		def.IsAdept = true
		assert.True(t, manifest.NormalizeWeapon("1", def).IsAdept)
	})

	t.Run("AdeptSuffix", func(t *testing.T) {
		def := base()
		def.DisplayProperties.Name = "Midnight Coup (Adept)"
		assert.True(t, manifest.NormalizeWeapon("1", def).IsAdept)
	})

	t.Run("Holofoil", func(t *testing.T) {
		def := base()
		def.IsHolofoil = true
		w := manifest.NormalizeWeapon("1", def)
		assert.True(t, w.IsHolofoil)
		assert.False(t, w.IsAdept)
	})

	t.Run("EmbeddedTierName", func(t *testing.T) {
		def := base()
		def.Inventory.TierTypeName = "Superior"
		assert.Equal(t, "Superior", manifest.NormalizeWeapon("1", def).TierTypeName)
	})

	t.Run("ZeroPlugHashesDropped", func(t *testing.T) {
		def := base()
		def.Sockets = &models.Sockets{SocketEntries: []models.SocketEntry{{
			ReusablePlugItems: []models.PlugItem{{PlugItemHash: 0}, {PlugItemHash: 4}},
		}}}
		w := manifest.NormalizeWeapon("1", def)
		assert.Equal(t, []uint32{4}, w.Sockets[0].ReusablePlugItems)
	})
}

func TestHasRandomRolls(t *testing.T) {
	tests := []struct {
		name    string
		sockets []models.WeaponSocket
		want    bool
	}{
		{"None", nil, false},
		{"FixedOnly", []models.WeaponSocket{{SingleInitialItemHash: 1, ReusablePlugItems: []uint32{}}}, false},
		{"ReusableList", []models.WeaponSocket{{ReusablePlugItems: []uint32{1}}}, true},
		{"ReusableSet", []models.WeaponSocket{{ReusablePlugSetHash: 2}}, true},
		{"RandomizedSet", []models.WeaponSocket{{}, {RandomizedPlugSetHash: 3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manifest.HasRandomRolls(tt.sockets))
		})
	}
}
