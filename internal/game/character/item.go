package character

// ItemKind discriminates the rune/customization payload carried by an item.
type ItemKind string

const (
	// KindWeapon marks an item carrying WeaponRunes.
	KindWeapon ItemKind = "weapon"
	// KindArmor marks an item carrying ArmorRunes.
	KindArmor ItemKind = "armor"
	// KindShield marks an item carrying ShieldCustomization.
	KindShield ItemKind = "shield"
	// KindGear marks plain equipment with no payload.
	KindGear ItemKind = "gear"
	// KindCoin marks currency items whose bulk derives from quantity.
	KindCoin ItemKind = "coin"
)

// PropertyRune is a property rune on a weapon, adding typed bonus dice.
type PropertyRune struct {
	ID         string `json:"id"`
	DamageDice string `json:"damageDice"`
	DamageType string `json:"damageType"`
	// Active marks whether the rune's conditional damage currently applies.
	// Only meaningful for alignment-typed runes; others are always on.
	Active bool `json:"active"`
}

// WeaponRunes is the fundamental + property rune set on a weapon.
type WeaponRunes struct {
	// Potency is the fundamental potency rune tier (0-3), an item bonus
	// to attack rolls.
	Potency int `json:"potency"`
	// Striking is the striking rune tier (0-3): extra weapon damage dice.
	Striking int            `json:"striking"`
	Property []PropertyRune `json:"property,omitempty"`
}

// ArmorRunes is the fundamental rune set on armor.
type ArmorRunes struct {
	Potency   int `json:"potency"`
	Resilient int `json:"resilient"`
}

// ShieldCustomization holds shield-specific fittings.
type ShieldCustomization struct {
	Hardness   int  `json:"hardness"`
	Reinforced bool `json:"reinforced"`
}

// EquippedItem is one entry in a character's inventory. Exactly the payload
// matching Kind is set; the others are nil. Container fields describe the
// bulk graph: ContainerID points at the holding item, and the IsContainer
// block is set when this item can hold others.
type EquippedItem struct {
	ID          string   `json:"id"`
	EquipmentID string   `json:"equipmentId"`
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	Quantity    int      `json:"quantity"`
	// Bulk is the per-unit bulk. Values under 0.1 are negligible.
	Bulk float64 `json:"bulk"`
	// WieldedTwoHanded marks a one-handed weapon currently gripped in both
	// hands, enabling its two-hand damage die.
	WieldedTwoHanded bool `json:"wieldedTwoHanded,omitempty"`

	ContainerID   string  `json:"containerId,omitempty"`
	IsContainer   bool    `json:"isContainer,omitempty"`
	Capacity      float64 `json:"capacity,omitempty"`
	BulkReduction float64 `json:"bulkReduction,omitempty"`

	Weapon *WeaponRunes         `json:"weapon,omitempty"`
	Armor  *ArmorRunes          `json:"armor,omitempty"`
	Shield *ShieldCustomization `json:"shield,omitempty"`
}
