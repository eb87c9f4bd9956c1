package cpu

// Device describes one attached peripheral on the device bus. The core
// defines only the attachment contract here; concrete peripherals (a
// screen, a keyboard, a clock, ...) are external collaborators that supply
// their own callbacks and Data.
//
// Devices are addressed by their attachment index, which is stable for the
// CPU's lifetime. Callbacks run synchronously on the calling goroutine:
// Init from AttachDevice, Tick and Interrupt from Step, Deinit from
// DetachAll; a device must not touch CPU state outside of them.
type Device struct {
	ID           uint32
	Version      uint16
	Manufacturer uint32
	Enabled      bool

	// Init is called once, synchronously, when the device is attached.
	Init func(c *DCPU16, d *Device)
	// Tick is called once per Step, before interrupt delivery and
	// instruction fetch, for every enabled device that defines it.
	Tick func(c *DCPU16, d *Device)
	// Interrupt is called by HWI when this device is addressed, enabled,
	// and defines it.
	Interrupt func(c *DCPU16, d *Device)
	// Deinit is called by DetachAll to release device resources; the core
	// never calls it on its own, since it has no destroy operation.
	Deinit func(c *DCPU16, d *Device)

	// Data is an opaque handle for device-private state.
	Data any
}

// AttachDevice registers a new device on the bus, constructed and filled in
// by init, and returns false without changing any state if the CPU already
// has the maximum of 65535 attached devices. The device's attachment index
// (its stable address on the bus) is len(devices) at the time of the call.
func (c *DCPU16) AttachDevice(init func(c *DCPU16, d *Device)) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.devices) >= MAX_DEVICES {
		return false
	}
	d := &Device{Enabled: true}
	c.devices = append(c.devices, d)
	if init != nil {
		init(c, d)
	}
	if d.Init != nil {
		d.Init(c, d)
	}
	return true
}

// DeviceCount returns the number of attached devices.
func (c *DCPU16) DeviceCount() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.devices)
}

// DetachAll calls Deinit on every attached device, in attachment order, and
// clears the bus. It is the embedder's responsibility to call this before
// discarding a CPU with attached devices; the core has no implicit
// lifecycle beyond Step/Interrupt.
func (c *DCPU16) DetachAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, d := range c.devices {
		if d.Deinit != nil {
			d.Deinit(c, d)
		}
	}
	c.devices = nil
}

// tickDevices ticks every enabled device that defines Tick, in attachment
// order. Called once per Step, before interrupt delivery.
func (c *DCPU16) tickDevices() {
	for _, d := range c.devices {
		if d.Enabled && d.Tick != nil {
			d.Tick(c, d)
		}
	}
}

// hardwareQuery implements HWQ: populate A/B/C/X/Y with the addressed
// device's identity, or zero them if the index is out of range or the
// device is disabled.
func (c *DCPU16) hardwareQuery(index uint16) {
	if int(index) < len(c.devices) && c.devices[index].Enabled {
		d := c.devices[index]
		c.register[A] = uint16(d.ID)
		c.register[B] = uint16(d.ID >> 16)
		c.register[C] = d.Version
		c.register[X] = uint16(d.Manufacturer)
		c.register[Y] = uint16(d.Manufacturer >> 16)
		return
	}
	c.register[A] = 0
	c.register[B] = 0
	c.register[C] = 0
	c.register[X] = 0
	c.register[Y] = 0
}

// hardwareInterrupt implements HWI: invoke the addressed device's Interrupt
// callback if it exists, is enabled, and defines one.
func (c *DCPU16) hardwareInterrupt(index uint16) {
	if int(index) >= len(c.devices) {
		return
	}
	d := c.devices[index]
	if d.Enabled && d.Interrupt != nil {
		d.Interrupt(c, d)
	}
}
