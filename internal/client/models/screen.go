// Package models defines the client-side data model: identity, menus,
// orders, profile and the closed screen and order-error enums.
package models

import "fmt"

// Screen is the closed set of navigation states driven by the controller.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenHome
	ScreenAlertPermission
	ScreenProfile
	ScreenAlertProfile
	ScreenMenuList
	ScreenMenuDetail
	ScreenMyOrder
	ScreenAlertOrder
	ScreenError
)

var screenNames = [...]string{
	ScreenLoading:         "Loading",
	ScreenHome:            "Home",
	ScreenAlertPermission: "AlertPermission",
	ScreenProfile:         "Profile",
	ScreenAlertProfile:    "AlertProfile",
	ScreenMenuList:        "MenuList",
	ScreenMenuDetail:      "MenuDetail",
	ScreenMyOrder:         "MyOrder",
	ScreenAlertOrder:      "AlertOrder",
	ScreenError:           "Error",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return fmt.Sprintf("Screen(%d)", int(s))
	}
	return screenNames[s]
}

// ParseScreen maps a persisted screen name back to its Screen.
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), nil
		}
	}
	return ScreenLoading, fmt.Errorf("unknown screen %q", name)
}

// IsAlert reports whether s is a modal alert over another screen.
func (s Screen) IsAlert() bool {
	return s == ScreenAlertPermission || s == ScreenAlertProfile || s == ScreenAlertOrder
}
