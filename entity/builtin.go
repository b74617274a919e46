package entity

const (
	oldImport = "import { searchConfig } from './search-config.js';"
	newImport = "import { getSearchConfig } from './search-config.js';"

	// Matched byte-for-byte, comments included; if the target's comments have
	// drifted this replacement silently becomes a no-op.
	oldUsage = `    // Build the Autotrader search URL with parameters
    // Based on actual Autotrader URL format from user's search
    const searchParams = new URLSearchParams(searchConfig);`
	newUsage = `    // Build the Autotrader search URL with parameters
    // Based on actual Autotrader URL format from user's search
    const searchConfig = getSearchConfig();
    const searchParams = new URLSearchParams(searchConfig);`
)

// BuiltinPatches is the patch set applied when no spec file exists: point
// extract.js at the getSearchConfig getter instead of the searchConfig export.
func BuiltinPatches() []Patch {
	return []Patch{
		{
			Name:    "use-get-search-config",
			File:    "src/extract.js",
			Message: "Updated extract.js to use getSearchConfig()",
			Replace: []Replacement{
				{Old: oldImport, New: newImport},
				{Old: oldUsage, New: newUsage},
			},
		},
	}
}
