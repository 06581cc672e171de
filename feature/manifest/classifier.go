package manifest

import (
	"strings"

	"manifest-sync/feature/manifest/models"
)

// adeptSuffixes mark adept variants in older definitions that predate the isAdept flag.
var adeptSuffixes = []string{"(Adept)", "(Harrowed)", "(Timelost)"}

// IsWeapon is the selection predicate: a named weapon of Legendary or Exotic rarity.
func IsWeapon(def *models.ItemDefinition) bool {
	if def == nil || def.Name() == "" {
		return false
	}
	if def.ItemType != models.ItemTypeWeapon {
		return false
	}
	switch def.TierType() {
	case models.TierLegendary, models.TierExotic:
		return true
	default:
		return false
	}
}

// Classify returns the weapon records of table in table order.
func Classify(table *models.Table) []models.WeaponRecord {
	weapons := make([]models.WeaponRecord, 0)
	if table == nil {
		return weapons
	}
	table.Each(func(hash string, def *models.ItemDefinition) {
		if IsWeapon(def) {
			weapons = append(weapons, NormalizeWeapon(hash, def))
		}
	})
	return weapons
}

// NormalizeWeapon turns a raw definition into a WeaponRecord with every field defined.
func NormalizeWeapon(hash string, def *models.ItemDefinition) models.WeaponRecord {
	record := models.WeaponRecord{
		Hash:                hash,
		Screenshot:          def.Screenshot,
		FlavorText:          def.FlavorText,
		ItemTypeDisplayName: def.ItemTypeDisplayName,
		TierType:            def.TierType(),
		TierTypeName:        tierName(def),
		DamageType:          def.DefaultDamageType,
		DamageTypeName:      models.DamageTypeName(def.DefaultDamageType),
		IsHolofoil:          def.IsHolofoil,
		Sockets:             normalizeSockets(def.SocketEntries()),
	}
	if dp := def.DisplayProperties; dp != nil {
		record.Name = dp.Name
		record.Description = dp.Description
		record.Icon = dp.Icon
	}
	record.IsAdept = def.IsAdept || hasAdeptSuffix(record.Name)
	record.HasRandomRolls = HasRandomRolls(record.Sockets)
	return record
}

// HasRandomRolls reports whether any socket offers a choice of plugs.
func HasRandomRolls(sockets []models.WeaponSocket) bool {
	for _, s := range sockets {
		if len(s.ReusablePlugItems) > 0 || s.ReusablePlugSetHash != 0 || s.RandomizedPlugSetHash != 0 {
			return true
		}
	}
	return false
}

func tierName(def *models.ItemDefinition) string {
	if def.Inventory != nil && def.Inventory.TierTypeName != "" {
		return def.Inventory.TierTypeName
	}
	return models.TierTypeName(def.TierType())
}

func hasAdeptSuffix(name string) bool {
	for _, suffix := range adeptSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func normalizeSockets(entries []models.SocketEntry) []models.WeaponSocket {
	sockets := make([]models.WeaponSocket, 0, len(entries))
	for _, e := range entries {
		plugs := make([]uint32, 0, len(e.ReusablePlugItems))
		for _, p := range e.ReusablePlugItems {
			if p.PlugItemHash != 0 {
				plugs = append(plugs, p.PlugItemHash)
			}
		}
		sockets = append(sockets, models.WeaponSocket{
			SocketTypeHash:        models.Hash(e.SocketTypeHash),
			SingleInitialItemHash: models.Hash(e.SingleInitialItemHash),
			ReusablePlugItems:     plugs,
			ReusablePlugSetHash:   models.Hash(e.ReusablePlugSetHash),
			RandomizedPlugSetHash: models.Hash(e.RandomizedPlugSetHash),
		})
	}
	return sockets
}
