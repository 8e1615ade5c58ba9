// Package permission derives grantable keys from the content catalog and
// aggregates a role's grant set over them. Everything here is a pure
// function over a catalog snapshot; the package holds no state of its own.
package permission

import (
	"sort"
	"strings"

	"github.com/helpdeskhq/portal-core/internal"
	"github.com/helpdeskhq/portal-core/internal/catalog"
)

// Wildcard is the all-access sentinel carried only by the built-in
// administrator role.
const Wildcard = "*"

const keyPrefix = "view:"

func ModuleKey(moduleID string) string {
	return keyPrefix + moduleID
}

func GuideKey(moduleID, guideID string) string {
	return keyPrefix + moduleID + ":" + guideID
}

// KeySet is every key derivable from one module: its own key plus one key
// per guide it currently contains.
type KeySet struct {
	ModuleKey string
	GuideKeys []string
}

// All returns the module key followed by the guide keys.
func (k KeySet) All() []string {
	out := make([]string, 0, 1+len(k.GuideKeys))
	out = append(out, k.ModuleKey)
	out = append(out, k.GuideKeys...)
	return out
}

// DeriveKeys computes the key set for a module snapshot. A guide-level key
// exists only while the module contains that guide; keys referencing deleted
// content are never derived again but stay inert wherever a role stored them.
func DeriveKeys(m catalog.Module) KeySet {
	ks := KeySet{ModuleKey: ModuleKey(m.ID)}
	for _, g := range m.Guides {
		ks.GuideKeys = append(ks.GuideKeys, GuideKey(m.ID, g.ID))
	}
	return ks
}

// GrantSet is a role's granted keys as a tagged variant: either the
// all-access wildcard or an explicit key set. Collapsing the sentinel check
// into the type keeps "*" comparisons out of the rest of the codebase.
type GrantSet struct {
	all  bool
	keys map[string]struct{}
}

// GrantsOf builds a GrantSet from a role's stored permission list. The
// wildcard anywhere in the list means all access.
func GrantsOf(permissions []string) GrantSet {
	g := GrantSet{keys: make(map[string]struct{}, len(permissions))}
	for _, p := range permissions {
		if p == Wildcard {
			return GrantSet{all: true}
		}
		g.keys[p] = struct{}{}
	}
	return g
}

func NewGrantSet(keys ...string) GrantSet {
	return GrantsOf(keys)
}

func (g GrantSet) AllAccess() bool {
	return g.all
}

func (g GrantSet) Has(key string) bool {
	if g.all {
		return true
	}
	_, ok := g.keys[key]
	return ok
}

func (g GrantSet) Len() int {
	return len(g.keys)
}

// Keys returns the explicit keys in sorted order, or the wildcard alone for
// an all-access set. The result is what a role persists.
func (g GrantSet) Keys() []string {
	if g.all {
		return []string{Wildcard}
	}
	out := make([]string, 0, len(g.keys))
	for k := range g.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (g GrantSet) clone() GrantSet {
	if g.all {
		return GrantSet{all: true}
	}
	out := GrantSet{keys: make(map[string]struct{}, len(g.keys))}
	for k := range g.keys {
		out.keys[k] = struct{}{}
	}
	return out
}

// Selection is the tri-state summary of how much of a module's key set a
// grant set covers.
type Selection int

const (
	SelectionNone Selection = iota
	SelectionPartial
	SelectionAll
)

func (s Selection) String() string {
	switch s {
	case SelectionAll:
		return "all"
	case SelectionPartial:
		return "partial"
	default:
		return "none"
	}
}

// Aggregate reports the selection state of a module's keys within grants.
// A guide-less module is either ALL (module key granted) or NONE; partial
// is unreachable for it. Stale keys in grants are ignored, never penalized.
func Aggregate(m catalog.Module, grants GrantSet) Selection {
	allKeys := DeriveKeys(m).All()
	selected := 0
	for _, k := range allKeys {
		if grants.Has(k) {
			selected++
		}
	}
	switch {
	case selected == 0:
		return SelectionNone
	case selected == len(allKeys):
		return SelectionAll
	default:
		return SelectionPartial
	}
}

// ToggleModule implements the authoring UI's select-all checkbox: from ALL
// it clears every key the module derives; from NONE or PARTIAL it selects
// all of them. Partial resolving to select-all rather than clear is the
// confirmed product behavior, not a strict toggle. The input is unchanged;
// an all-access set passes through as-is since the wildcard has no
// per-module keys to flip.
func ToggleModule(grants GrantSet, m catalog.Module) GrantSet {
	if grants.AllAccess() {
		return grants
	}

	next := grants.clone()
	allKeys := DeriveKeys(m).All()
	if Aggregate(m, grants) == SelectionAll {
		for _, k := range allKeys {
			delete(next.keys, k)
		}
		return next
	}
	for _, k := range allKeys {
		next.keys[k] = struct{}{}
	}
	return next
}

// ToggleKey flips a single key: present keys are removed, absent keys
// added. Applying it twice always restores the original set.
func ToggleKey(grants GrantSet, key string) GrantSet {
	if grants.AllAccess() {
		return grants
	}

	next := grants.clone()
	if _, ok := next.keys[key]; ok {
		delete(next.keys, key)
	} else {
		next.keys[key] = struct{}{}
	}
	return next
}

// Effective expands a role's stored permission list against a catalog
// snapshot: the wildcard grants every derivable key; anything else is taken
// verbatim, stale keys included.
func Effective(permissions []string, modules []catalog.Module) GrantSet {
	grants := GrantsOf(permissions)
	if !grants.AllAccess() {
		return grants
	}

	expanded := GrantSet{keys: make(map[string]struct{})}
	for _, m := range modules {
		for _, k := range DeriveKeys(m).All() {
			expanded.keys[k] = struct{}{}
		}
	}
	return expanded
}

// ValidateRole enforces the invariants checked before any role is
// persisted: a non-empty name and a non-empty permission set.
func ValidateRole(name string, permissions []string) error {
	var details internal.ValidationErrors

	if strings.TrimSpace(name) == "" {
		details.Errors = append(details.Errors, internal.ValidationError{
			Field:   "name",
			Message: internal.ErrRoleNameRequired.Message,
			Code:    string(internal.ErrRoleNameRequired.Code),
		})
	}
	if len(permissions) == 0 {
		details.Errors = append(details.Errors, internal.ValidationError{
			Field:   "permissions",
			Message: internal.ErrRolePermissionsRequired.Message,
			Code:    string(internal.ErrRolePermissionsRequired.Code),
		})
	}

	if len(details.Errors) > 0 {
		return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(details)
	}
	return nil
}
