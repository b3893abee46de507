package treetext

import "strings"

// IsBanner reports whether line is one of the header lines `tree`
// prints before the listing proper: the "Folder PATH listing" banner or
// the volume serial number line. Banners precede the root line and are
// skipped before root detection.
func IsBanner(line string) bool {
	if strings.Contains(line, "PATH") && strings.Contains(line, "listing") {
		return true
	}
	return strings.Contains(line, "Volume serial number")
}
