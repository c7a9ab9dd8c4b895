package version

// Name for this
const Name string = "favicongen"

// Version for this
var Version = "dev"

// Revision for this, set with ldflags.
var Revision = "HEAD"
