package texture

import (
	"testing"
)

func TestSelectFamily_GasGiantThreshold(t *testing.T) {
	cases := []struct {
		tempK float64
		want  Family
	}{
		{600, FamilyGasHot},
		{501, FamilyGasHot},
		{500, FamilyGasCool}, // threshold itself is cool
		{165, FamilyGasCool},
		{0, FamilyGasCool},
	}
	for _, tc := range cases {
		if got := SelectFamily("Gas Giant", tc.tempK); got != tc.want {
			t.Errorf("SelectFamily(Gas Giant, %v) = %v, want %v", tc.tempK, got, tc.want)
		}
	}
}

func TestSelectFamily_RockyThreshold(t *testing.T) {
	cases := []struct {
		tempK float64
		want  Family
	}{
		{440, FamilyRockyHot},
		{301, FamilyRockyHot},
		{300, FamilyRockyCool},
		{44, FamilyRockyCool},
	}
	for _, tc := range cases {
		if got := SelectFamily("Rocky", tc.tempK); got != tc.want {
			t.Errorf("SelectFamily(Rocky, %v) = %v, want %v", tc.tempK, got, tc.want)
		}
	}
}

func TestSelectFamily_UnknownTypes(t *testing.T) {
	for _, bodyType := range []string{"Dwarf Planet", "Moon", "Star", "Asteroid", ""} {
		if got := SelectFamily(bodyType, 1000); got != FamilyDefault {
			t.Errorf("SelectFamily(%q) = %v, want default", bodyType, got)
		}
	}
}

func TestAssetPath_MissingFamilyFallsBack(t *testing.T) {
	if got := AssetPath(Family("comet")); got != AssetPath(FamilyDefault) {
		t.Errorf("unknown family resolved to %q, want the fallback path", got)
	}
}

// Every family in the table must decode from the embedded FS; the fallback
// in particular must always be resolvable.
func TestEmbeddedAssets_AllResolvable(t *testing.T) {
	loader := embeddedLoader{}

	for family := range AssetFiles {
		img, err := loader.Load(AssetPath(family))
		if err != nil {
			t.Errorf("family %v failed to load: %v", family, err)
			continue
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			t.Errorf("family %v decoded to an empty image", family)
		}
	}

	if _, err := loader.Load(AssetPath(FamilyDefault)); err != nil {
		t.Fatalf("fallback asset must always load: %v", err)
	}
}
