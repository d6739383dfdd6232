package models

// APISettings holds the stored credentials. On input a nil field means "leave unchanged".
type APISettings struct {
	NanoBananaKey   *string `json:"nano_banana_key"`
	AssetStorageKey *string `json:"asset_storage_key"`
}

// MergeSettings overlays the non-nil fields of patch onto current and
// reports the JSON names of the fields it overwrote.
func MergeSettings(current, patch APISettings) (APISettings, []string) {
	merged := current
	var changed []string
	if patch.NanoBananaKey != nil {
		v := *patch.NanoBananaKey
		merged.NanoBananaKey = &v
		changed = append(changed, "nano_banana_key")
	}
	if patch.AssetStorageKey != nil {
		v := *patch.AssetStorageKey
		merged.AssetStorageKey = &v
		changed = append(changed, "asset_storage_key")
	}
	return merged, changed
}
