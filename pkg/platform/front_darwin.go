//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

void bringToFront() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// BringToFront activates the application so a reopened window is not left
// behind other apps
func BringToFront() {
	C.bringToFront()
}
