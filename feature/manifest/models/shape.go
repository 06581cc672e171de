package models

import "fmt"

// Shape selects how much of a WeaponRecord is written to the weapon artifact.
type Shape string

const (
	// ShapeMinimal writes hash, name, icon, tier and type only, as an object keyed by hash.
	ShapeMinimal Shape = "minimal"
	// ShapeSlim adds classification names and the slim sockets.
	ShapeSlim Shape = "slim"
	// ShapeFull writes the whole WeaponRecord.
	ShapeFull Shape = "full"
)

// ParseShape validates a configured shape name. Empty means ShapeSlim.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case "":
		return ShapeSlim, nil
	case ShapeMinimal, ShapeSlim, ShapeFull:
		return Shape(s), nil
	default:
		return "", fmt.Errorf("unknown output shape %q (want minimal, slim or full)", s)
	}
}

// MinimalWeapon is the smallest weapon artifact entry.
type MinimalWeapon struct {
	Hash string `json:"hash"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Tier int    `json:"tier"`
	Type string `json:"type"`
}

// SlimWeapon carries what an offline consumer needs to render a weapon and its perks.
type SlimWeapon struct {
	Hash           string         `json:"hash"`
	Name           string         `json:"name"`
	Icon           string         `json:"icon"`
	TierType       int            `json:"tierType"`
	TierTypeName   string         `json:"tierTypeName"`
	DamageType     int            `json:"damageType"`
	DamageTypeName string         `json:"damageTypeName"`
	IsHolofoil     bool           `json:"isHolofoil"`
	IsAdept        bool           `json:"isAdept"`
	Sockets        []WeaponSocket `json:"sockets"`
}

// Project converts weapons into the artifact representation for s.
// Minimal output is a map keyed by hash; the other shapes keep table order in a slice.
func (s Shape) Project(weapons []WeaponRecord) any {
	switch s {
	case ShapeMinimal:
		out := make(map[string]MinimalWeapon, len(weapons))
		for _, w := range weapons {
			out[w.Hash] = MinimalWeapon{
				Hash: w.Hash,
				Name: w.Name,
				Icon: w.Icon,
				Tier: w.TierType,
				Type: w.ItemTypeDisplayName,
			}
		}
		return out
	case ShapeFull:
		if weapons == nil {
			return []WeaponRecord{}
		}
		return weapons
	default:
		out := make([]SlimWeapon, 0, len(weapons))
		for _, w := range weapons {
			out = append(out, SlimWeapon{
				Hash:           w.Hash,
				Name:           w.Name,
				Icon:           w.Icon,
				TierType:       w.TierType,
				TierTypeName:   w.TierTypeName,
				DamageType:     w.DamageType,
				DamageTypeName: w.DamageTypeName,
				IsHolofoil:     w.IsHolofoil,
				IsAdept:        w.IsAdept,
				Sockets:        w.Sockets,
			})
		}
		return out
	}
}
