package state

import (
	"fmt"
	"strings"
)

// Item is a single owned thing: a unique name and a short description.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Inventory is an ordered list of items.
//
// Names are expected to be unique, but Add does not enforce it: callers
// that may see the same item twice must check Has first (or use AddOnce).
type Inventory struct {
	Items []Item `json:"items,omitempty"`
}

// Add appends the item without checking for an existing entry of the same name.
func (inv *Inventory) Add(name, description string) {
	inv.Items = append(inv.Items, Item{Name: name, Description: description})
}

// AddOnce appends the item only if no entry with that name exists.
// It reports whether the item was added.
func (inv *Inventory) AddOnce(name, description string) bool {
	if inv.Has(name) {
		return false
	}
	inv.Add(name, description)
	return true
}

// Remove deletes every entry with the given name. Removing a name that
// is not present is a no-op.
func (inv *Inventory) Remove(name string) {
	if !inv.Has(name) {
		return
	}
	kept := inv.Items[:0]
	for _, item := range inv.Items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	clear(inv.Items[len(kept):])
	if len(kept) == 0 {
		kept = nil
	}
	inv.Items = kept
}

// Find returns the index of the first entry with the given name.
func (inv *Inventory) Find(name string) (int, bool) {
	for i, item := range inv.Items {
		if item.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Has reports whether an entry with the given name is present.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.Find(name)
	return ok
}

func (inv *Inventory) Len() int {
	return len(inv.Items)
}

// Names returns item names in inventory order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		names = append(names, item.Name)
	}
	return names
}

// String renders a plain-text listing. Terminal output uses display.InventoryTable.
func (inv *Inventory) String() string {
	var b strings.Builder
	b.WriteString("--- INVENTORY ---\n")
	for _, item := range inv.Items {
		fmt.Fprintf(&b, "%-10s | %-10s\n", item.Name, item.Description)
	}
	b.WriteString("------------------\n")
	return b.String()
}
