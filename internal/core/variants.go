package core

import "strings"

// variantTransforms is the fixed derivation list applied to a base username.
// Order matters: it is the stable enumeration order for the probing cap.
var variantTransforms = []func(string) string{
	func(s string) string { return s + "1" },
	func(s string) string { return s + "2" },
	func(s string) string { return s + "_" },
	func(s string) string { return s + "." },
	func(s string) string { return s + "-" },
	func(s string) string { return s + "123" },
	func(s string) string { return strings.ReplaceAll(s, "_", "") },
	func(s string) string { return strings.ReplaceAll(s, "_", ".") },
	func(s string) string { return strings.ReplaceAll(s, "_", "-") },
}

// GenerateVariants derives alternate spellings of a base username. The base
// itself is always first; duplicates collapse while preserving the order in
// which transforms produced them.
func GenerateVariants(base string) []string {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil
	}

	seen := map[string]struct{}{base: {}}
	variants := []string{base}

	for _, transform := range variantTransforms {
		variant := transform(base)
		if _, ok := seen[variant]; ok {
			continue
		}
		seen[variant] = struct{}{}
		variants = append(variants, variant)
	}

	return variants
}

// VariantSubset returns up to max distinct variants excluding the base
// username itself. This is the cost-control cap applied before probing.
func VariantSubset(base string, max int) []string {
	if max <= 0 {
		return nil
	}

	subset := make([]string, 0, max)
	for _, variant := range GenerateVariants(base) {
		if variant == base {
			continue
		}
		subset = append(subset, variant)
		if len(subset) == max {
			break
		}
	}
	return subset
}
