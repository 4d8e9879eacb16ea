package surface

// handleInteraction is the handler registered with the adapter on Init.
// The return value tells the host whether to suppress the event's default
// behavior.
func (c *Controller) handleInteraction(evt Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return false
	}

	switch evt.Kind {
	case EventKeyUp:
		if evt.Key == "Escape" {
			c.closeLocked(nil)
		}
		return false
	case EventKeyDown:
		return c.handleKeyDownLocked(evt)
	default:
		// Clicks on items belong to the hosting component.
		return false
	}
}

func (c *Controller) handleKeyDownLocked(evt Event) bool {
	last := c.adapter.NumFocusableElements() - 1
	idx := c.adapter.GetFocusedItemIndex()

	switch evt.Key {
	case "Tab":
		// Ctrl+Tab is browser tab switching; never intercept it.
		if evt.Ctrl || last < 0 {
			return false
		}
		if evt.Shift {
			if idx == 0 {
				c.scheduleFocusLocked(last)
				return true
			}
			return false
		}
		if idx == last {
			c.scheduleFocusLocked(0)
			return true
		}
		return false

	case "ArrowDown":
		if last < 0 {
			return true
		}
		next := 0
		if idx >= 0 && idx < last {
			next = idx + 1
		}
		c.scheduleFocusLocked(next)
		return true

	case "ArrowUp":
		if last < 0 {
			return true
		}
		prev := last
		if idx > 0 {
			prev = idx - 1
		}
		c.scheduleFocusLocked(prev)
		return true

	case "ArrowLeft", "ArrowRight", "Space":
		// Consumed so the host doesn't scroll or select; submenu and
		// selection behavior belongs to a collaborator.
		return true

	default:
		return false
	}
}

// scheduleFocusLocked moves focus after a short delay so the host's
// native focus order settles first.
func (c *Controller) scheduleFocusLocked(index int) {
	c.timerLocked(c.generation, FocusAdjustDelay, func() {
		c.adapter.FocusItemAtIndex(index)
	})
}

// handleBodyClick is registered while the surface is open; a click landing
// outside the surface's container closes it.
func (c *Controller) handleBodyClick(target any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	if c.adapter.IsElementInContainer(target) {
		return
	}
	c.closeLocked(&Event{Kind: EventClick, Target: target})
}
