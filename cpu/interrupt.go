package cpu

// Interrupt raises a software or hardware interrupt with the given message.
// It implements the dispatch/enqueue rule directly: if IA is zero the
// interrupt is dropped; if no handler is currently active it is dispatched
// immediately (pushing PC then A, jumping to IA, loading A with message);
// otherwise it is appended to the bounded interrupt queue, and a 257th
// pending entry sets the machine ON_FIRE.
//
// Unlike Step, Interrupt is not safe to call from a goroutine other than
// the one driving Step: it takes no lock of its own. This matches its one
// legitimate reentrant use, calling it from within a device's Tick or
// Interrupt callback, which already runs on the goroutine holding Step's
// lock — an explicit Lock here would deadlock that call. An interrupt
// raised from a device's Interrupt callback (run by HWI during Step N) is
// observed starting at Step N+1, since Step N's instruction fetch has
// already happened. One raised from a Tick callback during Step N is
// handled before Step N's fetch, because devices are ticked first.
func (c *DCPU16) Interrupt(message uint16) {
	c.dispatchInterrupt(message)
}

// dispatchInterrupt implements the rule in full; see Interrupt.
func (c *DCPU16) dispatchInterrupt(message uint16) {
	if c.ia == 0 {
		return
	}
	if !c.iaqEnabled {
		c.iaqEnabled = true
		c.pushValue(c.pc)
		c.pushValue(c.register[A])
		c.pc = c.ia
		c.register[A] = message
		return
	}
	if c.iaqIndex >= MAX_INTQUEUE {
		c.state = ON_FIRE
		return
	}
	c.iaq[c.iaqIndex] = message
	c.iaqIndex++
}
