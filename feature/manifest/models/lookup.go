package models

// UnknownName is used for codes missing from the lookup tables.
const UnknownName = "Unknown"

var damageTypeNames = map[int]string{
	0: "None",
	1: "Kinetic",
	2: "Arc",
	3: "Solar",
	4: "Void",
	5: "Raid",
	6: "Stasis",
	7: "Strand",
}

var tierTypeNames = map[int]string{
	TierUnknown:   "Unknown",
	TierCurrency:  "Currency",
	TierBasic:     "Common",
	TierCommon:    "Uncommon",
	TierRare:      "Rare",
	TierLegendary: "Legendary",
	TierExotic:    "Exotic",
}

// DamageTypeName resolves a damage type code to its display name.
func DamageTypeName(code int) string {
	if name, ok := damageTypeNames[code]; ok {
		return name
	}
	return UnknownName
}

// TierTypeName resolves a rarity code to its display name.
func TierTypeName(code int) string {
	if name, ok := tierTypeNames[code]; ok {
		return name
	}
	return UnknownName
}
