package character

// PetKind discriminates the pet payload.
type PetKind string

const (
	// PetFamiliar is a spellcaster's familiar.
	PetFamiliar PetKind = "familiar"
	// PetAnimalCompanion is a druid/ranger style companion.
	PetAnimalCompanion PetKind = "animalCompanion"
	// PetEidolon is a summoner's eidolon.
	PetEidolon PetKind = "eidolon"
)

// FamiliarData carries familiar-specific state. Familiars have no stored
// numbers; everything derives from the master.
type FamiliarData struct {
	Abilities []string `json:"abilities,omitempty"`
}

// AnimalCompanionData carries companion-specific state.
type AnimalCompanionData struct {
	// CompanionType keys the size/stat template (e.g. "wolf", "bear").
	CompanionType string `json:"companionType"`
	Mature        bool   `json:"mature"`
	CurrentHP     int    `json:"currentHp"`
}

// EidolonData carries eidolon-specific state.
type EidolonData struct {
	// EidolonType keys the stat template (e.g. "dragon", "angel").
	EidolonType string `json:"eidolonType"`
	// SharesHP removes the eidolon's own pool in favor of the master's.
	SharesHP        bool `json:"sharesHp"`
	EvolutionPoints int  `json:"evolutionPoints"`
	CurrentHP       int  `json:"currentHp"`
}

// Pet is a tagged union over the three pet variants. Exactly the payload
// matching Kind is non-nil.
type Pet struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind PetKind `json:"kind"`

	Familiar        *FamiliarData        `json:"familiar,omitempty"`
	AnimalCompanion *AnimalCompanionData `json:"animalCompanion,omitempty"`
	Eidolon         *EidolonData         `json:"eidolon,omitempty"`
}
