// Package version holds the fabricctl release version.
// All versions follow semantic versioning (semver) conventions.
package version

// FabricctlVersion holds the current fabricctl CLI version. It is reported
// by --version and sent in the User-Agent header of gateway requests.
// Format: major.minor.patch[-prerelease][+build]
const FabricctlVersion = "0.1.0-dev"
