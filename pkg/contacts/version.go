// Package contacts holds build information for the contacts module.
package contacts

// Version is the release version reported by "contacts version".
const Version = "0.1.0"
