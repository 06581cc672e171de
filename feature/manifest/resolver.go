package manifest

import (
	"manifest-sync/core/utils"
	"manifest-sync/feature/manifest/models"
)

// CandidatePlugs collects every plug hash referenced by the weapons' sockets, directly or
// through one plug-set lookup in table. Plug sets are not searched for further indirection,
// and plug-set hashes missing from table contribute nothing.
func CandidatePlugs(table *models.Table, weapons []models.WeaponRecord) map[uint32]struct{} {
	candidates := make(map[uint32]struct{})
	add := func(h uint32) {
		if h != 0 {
			candidates[h] = struct{}{}
		}
	}
	addPlugSet := func(setHash uint32) {
		if setHash == 0 || table == nil {
			return
		}
		set, ok := table.Lookup(setHash)
		if !ok || set == nil {
			return
		}
		for _, p := range set.ReusablePlugItems {
			add(p.PlugItemHash)
		}
	}

	for _, w := range weapons {
		for _, s := range w.Sockets {
			add(s.SingleInitialItemHash)
			for _, h := range s.ReusablePlugItems {
				add(h)
			}
			addPlugSet(s.ReusablePlugSetHash)
			addPlugSet(s.RandomizedPlugSetHash)
		}
	}
	return candidates
}

// ResolvePlugs returns the plug closure of weapons: every candidate plug that table
// defines with a display name. Candidates without display metadata are dropped.
func ResolvePlugs(table *models.Table, weapons []models.WeaponRecord) models.PlugClosure {
	closure := make(models.PlugClosure)
	if table == nil {
		return closure
	}
	for h := range CandidatePlugs(table, weapons) {
		def, ok := table.Lookup(h)
		if !ok || def.Name() == "" {
			continue
		}
		key := utils.HashKey(h)
		closure[key] = plugRecord(key, def)
	}
	return closure
}

func plugRecord(hash string, def *models.ItemDefinition) models.PlugRecord {
	record := models.PlugRecord{
		Hash:                hash,
		Name:                def.DisplayProperties.Name,
		Description:         def.DisplayProperties.Description,
		Icon:                def.DisplayProperties.Icon,
		ItemTypeDisplayName: def.ItemTypeDisplayName,
	}
	if def.Plug != nil {
		record.PlugCategoryIdentifier = def.Plug.PlugCategoryIdentifier
	}
	return record
}
