package config

// InitControls fills the navigation sets from the disable flags.
// It should be called after loading the config.
func (c *InputConfig) InitControls() {
	c.NavUp = []string{"up"}
	c.NavDown = []string{"down"}
	c.NavLeft = []string{"left"}
	c.NavRight = []string{"right"}

	if !c.DisableWasd {
		c.NavUp = append(c.NavUp, "w")
		c.NavDown = append(c.NavDown, "s")
		c.NavLeft = append(c.NavLeft, "a")
		c.NavRight = append(c.NavRight, "d")
	}

	if !c.DisableVim {
		c.NavUp = append(c.NavUp, "k")
		c.NavDown = append(c.NavDown, "j")
		c.NavLeft = append(c.NavLeft, "h")
		c.NavRight = append(c.NavRight, "l")
	}
}
