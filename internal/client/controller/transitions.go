package controller

import (
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/models"
)

// transitions lists the outgoing edges of every screen. Home and Error are
// reachable from anywhere and are not repeated here.
var transitions = map[models.Screen][]models.Screen{
	models.ScreenLoading:         {},
	models.ScreenHome:            {models.ScreenMenuList, models.ScreenAlertPermission, models.ScreenProfile, models.ScreenMyOrder},
	models.ScreenMenuList:        {models.ScreenMenuDetail, models.ScreenMenuList},
	models.ScreenMenuDetail:      {models.ScreenAlertOrder, models.ScreenMenuList},
	models.ScreenProfile:         {models.ScreenAlertProfile, models.ScreenMyOrder, models.ScreenAlertPermission, models.ScreenProfile},
	models.ScreenAlertProfile:    {models.ScreenProfile},
	models.ScreenAlertPermission: {},
	models.ScreenAlertOrder:      {models.ScreenMyOrder, models.ScreenProfile, models.ScreenMenuList, models.ScreenAlertPermission},
	models.ScreenMyOrder:         {models.ScreenAlertPermission, models.ScreenProfile},
	models.ScreenError:           {},
}

// CanTransition reports whether the state machine has an edge from -> to.
func CanTransition(from, to models.Screen) bool {
	if to == models.ScreenHome || to == models.ScreenError {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// checkTransition fails with ErrInvalidTransition unless the current screen
// may move to `to`.
func (c *Controller) checkTransition(to models.Screen) error {
	from := c.screen.Get()
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// transition moves to `to` if the edge exists.
func (c *Controller) transition(to models.Screen) error {
	c.mu.Lock()
	from := c.screen.Get()
	if !CanTransition(from, to) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	c.screen.Set(to)
	c.mu.Unlock()

	c.leaving(from, to)
	return nil
}

// forceScreen sets the screen without consulting the table. Used by the
// lifecycle restore and by escalation to Error.
func (c *Controller) forceScreen(to models.Screen) {
	c.mu.Lock()
	from := c.screen.Get()
	c.screen.Set(to)
	c.mu.Unlock()

	c.leaving(from, to)
}

func (c *Controller) leaving(from, to models.Screen) {
	if from == models.ScreenMyOrder && to != models.ScreenMyOrder {
		c.stopTracking()
	}
}
