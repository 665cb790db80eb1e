package catalog

import (
	"fmt"
	"path/filepath"
)

// Registry is the in-memory catalog built once at startup and injected into
// every deriver. There is deliberately no package-level instance: tests and
// reloads construct their own and Clear rebuilds in place.
type Registry struct {
	ancestries map[string]*Ancestry
	classes    map[string]*ClassDef
	feats      map[string]*Feat
	weapons    map[string]*WeaponDef
	armor      map[string]*ArmorDef
	shields    map[string]*ShieldDef
}

// NewRegistry returns an empty Registry ready to accept registrations.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Clear()
	return r
}

// Clear resets the registry to empty. Intended for tests and content reloads.
//
// Postcondition: every lookup returns (nil, false).
func (r *Registry) Clear() {
	r.ancestries = make(map[string]*Ancestry)
	r.classes = make(map[string]*ClassDef)
	r.feats = make(map[string]*Feat)
	r.weapons = make(map[string]*WeaponDef)
	r.armor = make(map[string]*ArmorDef)
	r.shields = make(map[string]*ShieldDef)
}

// RegisterAncestry adds a to the registry; the last call with an ID wins.
//
// Precondition: a must be non-nil with a non-empty ID.
func (r *Registry) RegisterAncestry(a *Ancestry) {
	if a == nil || a.ID == "" {
		panic("Registry.RegisterAncestry: precondition violated: non-nil ancestry with ID required")
	}
	r.ancestries[a.ID] = a
}

// RegisterClass adds c to the registry; the last call with an ID wins.
//
// Precondition: c must be non-nil with a non-empty ID.
func (r *Registry) RegisterClass(c *ClassDef) {
	if c == nil || c.ID == "" {
		panic("Registry.RegisterClass: precondition violated: non-nil class with ID required")
	}
	r.classes[c.ID] = c
}

// RegisterFeat adds f to the registry under both its ID and, when present,
// its slug alias. Both keys resolve to the same def.
//
// Precondition: f must be non-nil with a non-empty ID.
func (r *Registry) RegisterFeat(f *Feat) {
	if f == nil || f.ID == "" {
		panic("Registry.RegisterFeat: precondition violated: non-nil feat with ID required")
	}
	r.feats[f.ID] = f
	if f.Slug != "" {
		r.feats[f.Slug] = f
	}
}

// RegisterWeapon adds w to the registry; the last call with an ID wins.
func (r *Registry) RegisterWeapon(w *WeaponDef) {
	if w == nil || w.ID == "" {
		panic("Registry.RegisterWeapon: precondition violated: non-nil weapon with ID required")
	}
	r.weapons[w.ID] = w
}

// RegisterArmor adds a to the registry; the last call with an ID wins.
func (r *Registry) RegisterArmor(a *ArmorDef) {
	if a == nil || a.ID == "" {
		panic("Registry.RegisterArmor: precondition violated: non-nil armor with ID required")
	}
	r.armor[a.ID] = a
}

// RegisterShield adds s to the registry; the last call with an ID wins.
func (r *Registry) RegisterShield(s *ShieldDef) {
	if s == nil || s.ID == "" {
		panic("Registry.RegisterShield: precondition violated: non-nil shield with ID required")
	}
	r.shields[s.ID] = s
}

// Ancestry returns the Ancestry for id, or (nil, false) if not found.
func (r *Registry) Ancestry(id string) (*Ancestry, bool) {
	a, ok := r.ancestries[id]
	return a, ok
}

// Class returns the ClassDef for id, or (nil, false) if not found.
func (r *Registry) Class(id string) (*ClassDef, bool) {
	c, ok := r.classes[id]
	return c, ok
}

// Feat returns the Feat for an ID or slug alias, or (nil, false) if not found.
func (r *Registry) Feat(idOrSlug string) (*Feat, bool) {
	f, ok := r.feats[idOrSlug]
	return f, ok
}

// Weapon returns the WeaponDef for id, or (nil, false) if not found.
func (r *Registry) Weapon(id string) (*WeaponDef, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// Armor returns the ArmorDef for id, or (nil, false) if not found.
func (r *Registry) Armor(id string) (*ArmorDef, bool) {
	a, ok := r.armor[id]
	return a, ok
}

// Shield returns the ShieldDef for id, or (nil, false) if not found.
func (r *Registry) Shield(id string) (*ShieldDef, bool) {
	s, ok := r.shields[id]
	return s, ok
}

// Classes returns a snapshot slice of all registered classes.
func (r *Registry) Classes() []*ClassDef {
	out := make([]*ClassDef, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	return out
}

// Feats returns a snapshot slice of all registered feats, deduplicated
// across slug aliases.
func (r *Registry) Feats() []*Feat {
	seen := make(map[*Feat]bool, len(r.feats))
	out := make([]*Feat, 0, len(r.feats))
	for _, f := range r.feats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Ancestries returns a snapshot slice of all registered ancestries.
func (r *Registry) Ancestries() []*Ancestry {
	out := make([]*Ancestry, 0, len(r.ancestries))
	for _, a := range r.ancestries {
		out = append(out, a)
	}
	return out
}

// Load populates a fresh Registry from the standard content layout under
// root: ancestries/, classes/, feats/, weapons/, armor/, shields/.
// Missing subdirectories are errors; empty ones are not.
//
// Postcondition: Returns a fully populated Registry or a non-nil error.
func Load(root string) (*Registry, error) {
	reg := NewRegistry()

	ancestries, err := LoadAncestries(filepath.Join(root, "ancestries"))
	if err != nil {
		return nil, fmt.Errorf("loading ancestries: %w", err)
	}
	for _, a := range ancestries {
		reg.RegisterAncestry(a)
	}

	classes, err := LoadClasses(filepath.Join(root, "classes"))
	if err != nil {
		return nil, fmt.Errorf("loading classes: %w", err)
	}
	for _, c := range classes {
		reg.RegisterClass(c)
	}

	feats, err := LoadFeats(filepath.Join(root, "feats"))
	if err != nil {
		return nil, fmt.Errorf("loading feats: %w", err)
	}
	for _, f := range feats {
		reg.RegisterFeat(f)
	}

	weapons, err := LoadWeapons(filepath.Join(root, "weapons"))
	if err != nil {
		return nil, fmt.Errorf("loading weapons: %w", err)
	}
	for _, w := range weapons {
		reg.RegisterWeapon(w)
	}

	armor, err := LoadArmor(filepath.Join(root, "armor"))
	if err != nil {
		return nil, fmt.Errorf("loading armor: %w", err)
	}
	for _, a := range armor {
		reg.RegisterArmor(a)
	}

	shields, err := LoadShields(filepath.Join(root, "shields"))
	if err != nil {
		return nil, fmt.Errorf("loading shields: %w", err)
	}
	for _, s := range shields {
		reg.RegisterShield(s)
	}

	return reg, nil
}
