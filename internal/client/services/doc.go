// Package services holds the persistence-aware collaborators of the
// controller: device registration and the versioned image cache protocol.
package services
