// Package diet defines the diet catalog value objects: the Base consistency
// category a clinician prescribes, the optional therapeutic Modifier applied
// on top of it, and the label composition rule used when an order snapshots
// the prescribed diet for display.
package diet
