package seeders

import (
	"testing"

	"github.com/pup-picks/pawmatch_api/shared"
)

func TestToyCatalogValid(t *testing.T) {
	validSizes := map[string]bool{"small": true, "medium": true, "large": true, "giant": true}
	validStyles := map[string]bool{"fetch": true, "tug": true, "cuddle": true, "puzzle": true}

	toys := (&ToySeeder{}).getToys()
	if len(toys) == 0 {
		t.Fatal("empty toy catalog")
	}

	seen := make(map[string]bool)
	for _, toy := range toys {
		if seen[toy.name] {
			t.Errorf("duplicate toy name %q", toy.name)
		}
		seen[toy.name] = true

		if toy.price <= 0 {
			t.Errorf("toy %q has non-positive price", toy.name)
		}
		if toy.rating < 0 || toy.rating > 5 {
			t.Errorf("toy %q rating out of range: %v", toy.name, toy.rating)
		}
		if shared.DurabilityRank(toy.durability) < 0 {
			t.Errorf("toy %q has unknown durability %q", toy.name, toy.durability)
		}
		if len(toy.sizes) == 0 {
			t.Errorf("toy %q fits no sizes", toy.name)
		}
		for _, size := range toy.sizes {
			if !validSizes[size] {
				t.Errorf("toy %q has unknown size %q", toy.name, size)
			}
		}
		for _, style := range toy.playStyles {
			if !validStyles[style] {
				t.Errorf("toy %q has unknown play style %q", toy.name, style)
			}
		}
	}
}
