// internal/version/version.go
package version

// Version is stamped at release; dev builds carry the next planned tag.
const Version = "0.2.0"
