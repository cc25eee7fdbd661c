package azure

import "strings"

// UnknownResourceGroup is used when an ARM ID is too short to carry a
// resource group segment.
const UnknownResourceGroup = "Unknown"

// ResourceGroupFromID extracts the resource group from an ARM ID of the
// form /subscriptions/<id>/resourceGroups/<name>/providers/... The group
// name is segment index 4 after splitting on "/".
func ResourceGroupFromID(id string) string {
	segments := strings.Split(id, "/")
	if len(segments) < 5 {
		return UnknownResourceGroup
	}
	return segments[4]
}
