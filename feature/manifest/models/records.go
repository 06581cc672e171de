package models

// WeaponRecord is the canonical, fully normalised weapon output.
type WeaponRecord struct {
	Hash                string         `json:"hash"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Icon                string         `json:"icon"`
	Screenshot          string         `json:"screenshot"`
	FlavorText          string         `json:"flavorText"`
	ItemTypeDisplayName string         `json:"itemTypeDisplayName"`
	TierType            int            `json:"tierType"`
	TierTypeName        string         `json:"tierTypeName"`
	DamageType          int            `json:"damageType"`
	DamageTypeName      string         `json:"damageTypeName"`
	IsHolofoil          bool           `json:"isHolofoil"`
	IsAdept             bool           `json:"isAdept"`
	HasRandomRolls      bool           `json:"hasRandomRolls"`
	Sockets             []WeaponSocket `json:"sockets"`
}

// WeaponSocket keeps only the socket fields plug resolution needs.
// Zero hashes mean the reference is absent.
type WeaponSocket struct {
	SocketTypeHash        uint32   `json:"socketTypeHash"`
	SingleInitialItemHash uint32   `json:"singleInitialItemHash"`
	ReusablePlugItems     []uint32 `json:"reusablePlugItems"`
	ReusablePlugSetHash   uint32   `json:"reusablePlugSetHash"`
	RandomizedPlugSetHash uint32   `json:"randomizedPlugSetHash"`
}

// PlugRecord is the minimal description of a plug reachable from a weapon.
type PlugRecord struct {
	Hash                   string `json:"hash"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	Icon                   string `json:"icon"`
	ItemTypeDisplayName    string `json:"itemTypeDisplayName"`
	PlugCategoryIdentifier string `json:"plugCategoryIdentifier"`
}

// PlugClosure maps plug hash keys to their records.
type PlugClosure map[string]PlugRecord
