package svg

// attr formats an XML attribute, svgo passes strings containing '=' through unchanged.
func attr(name, val string) string {
	return name + `="` + val + `"`
}
