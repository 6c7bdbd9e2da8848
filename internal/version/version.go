// internal/version/version.go
package version

// Version is the release string baked into usage output and -version.
const Version = "0.3.1"
