package models

// ItemTypeWeapon is the itemType code of weapon definitions.
const ItemTypeWeapon = 3

// Rarity codes found in inventory.tierType.
const (
	TierUnknown   = 0
	TierCurrency  = 1
	TierBasic     = 2
	TierCommon    = 3
	TierRare      = 4
	TierLegendary = 5
	TierExotic    = 6
)

// ItemDefinition is one raw entry of the definition table.
// Every block the remote schema may omit is a pointer; Normalize-style helpers
// on the classifier side turn them into concrete values.
type ItemDefinition struct {
	ItemType            int                `json:"itemType"`
	ItemTypeDisplayName string             `json:"itemTypeDisplayName"`
	FlavorText          string             `json:"flavorText"`
	Screenshot          string             `json:"screenshot"`
	DefaultDamageType   int                `json:"defaultDamageType"`
	IsHolofoil          bool               `json:"isHolofoil"`
	IsAdept             bool               `json:"isAdept"`
	DisplayProperties   *DisplayProperties `json:"displayProperties"`
	Inventory           *Inventory         `json:"inventory"`
	Sockets             *Sockets           `json:"sockets"`
	Plug                *Plug              `json:"plug"`

	// ReusablePlugItems is populated on plug-set entries, the targets of
	// reusablePlugSetHash and randomizedPlugSetHash.
	ReusablePlugItems []PlugItem `json:"reusablePlugItems"`
}

// DisplayProperties carries the user-facing name, description and icon.
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Inventory carries the rarity classification.
type Inventory struct {
	TierType     int    `json:"tierType"`
	TierTypeName string `json:"tierTypeName"`
}

// Sockets wraps the socket entry list.
type Sockets struct {
	SocketEntries []SocketEntry `json:"socketEntries"`
}

// SocketEntry is one attachment point on an item.
type SocketEntry struct {
	SocketTypeHash        *uint32    `json:"socketTypeHash"`
	SingleInitialItemHash *uint32    `json:"singleInitialItemHash"`
	ReusablePlugItems     []PlugItem `json:"reusablePlugItems"`
	ReusablePlugSetHash   *uint32    `json:"reusablePlugSetHash"`
	RandomizedPlugSetHash *uint32    `json:"randomizedPlugSetHash"`
}

// PlugItem is a plug-hash-bearing entry of a reusable plug list.
type PlugItem struct {
	PlugItemHash uint32 `json:"plugItemHash"`
}

// Plug describes what kind of socket a plug item fits.
type Plug struct {
	PlugCategoryIdentifier string `json:"plugCategoryIdentifier"`
}

// Name returns the display name, or "" when displayProperties is absent.
func (d *ItemDefinition) Name() string {
	if d == nil || d.DisplayProperties == nil {
		return ""
	}
	return d.DisplayProperties.Name
}

// TierType returns inventory.tierType, or TierUnknown when inventory is absent.
func (d *ItemDefinition) TierType() int {
	if d == nil || d.Inventory == nil {
		return TierUnknown
	}
	return d.Inventory.TierType
}

// SocketEntries returns the socket entries, or nil when sockets are absent.
func (d *ItemDefinition) SocketEntries() []SocketEntry {
	if d == nil || d.Sockets == nil {
		return nil
	}
	return d.Sockets.SocketEntries
}

// Hash dereferences an optional hash; absent and zero both mean "no reference".
func Hash(h *uint32) uint32 {
	if h == nil {
		return 0
	}
	return *h
}
