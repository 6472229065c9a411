package pricing

// MaterialSpec is one row of the material table.
type MaterialSpec struct {
	BaseCostPerCm3      float64
	MachinabilityFactor float64
}

// ToleranceSpec is a cost multiplier for a tolerance class, always >= 1.0.
type ToleranceSpec struct {
	Multiplier float64
}

// FinishSpec is a flat per-unit surcharge for a surface finish.
type FinishSpec struct {
	Surcharge float64
}

// Static pricing tables. Initialized once, read-only for the process lifetime.
var (
	materials = map[string]MaterialSpec{
		"AL6061": {BaseCostPerCm3: 0.05, MachinabilityFactor: 1.0},
		"SS304":  {BaseCostPerCm3: 0.15, MachinabilityFactor: 2.5},
		"DELRIN": {BaseCostPerCm3: 0.08, MachinabilityFactor: 0.8},
	}

	tolerances = map[string]ToleranceSpec{
		"ISO-2768-c": {Multiplier: 1.0},
		"ISO-2768-m": {Multiplier: 1.1},
		"ISO-2768-f": {Multiplier: 1.5},
	}

	finishes = map[string]FinishSpec{
		"As-Machined":     {Surcharge: 0},
		"Bead Blast":      {Surcharge: 25},
		"Anodize Type II": {Surcharge: 50},
	}
)

// MaterialFor looks up a material by key.
func MaterialFor(key string) (MaterialSpec, bool) {
	spec, ok := materials[key]
	return spec, ok
}

// ToleranceFor looks up a tolerance class by key.
func ToleranceFor(key string) (ToleranceSpec, bool) {
	spec, ok := tolerances[key]
	return spec, ok
}

// FinishFor looks up a finish by key.
func FinishFor(key string) (FinishSpec, bool) {
	spec, ok := finishes[key]
	return spec, ok
}

// Materials returns the known material keys.
func Materials() []string {
	return keys(materials)
}

// Tolerances returns the known tolerance-class keys.
func Tolerances() []string {
	return keys(tolerances)
}

// Finishes returns the known finish keys.
func Finishes() []string {
	return keys(finishes)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
