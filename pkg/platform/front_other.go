//go:build !darwin

package platform

// BringToFront is a no-op outside macOS; Window.RequestFocus is enough there
func BringToFront() {}
