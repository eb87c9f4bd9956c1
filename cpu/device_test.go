package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachDevice(t *testing.T) {
	c := NewDCPU16()
	initCalled := false
	ok := c.AttachDevice(func(c *DCPU16, d *Device) {
		d.ID = 0x12345678
		d.Version = 2
		d.Manufacturer = 0xaabbccdd
		d.Init = func(c *DCPU16, d *Device) { initCalled = true }
	})
	require.True(t, ok)
	assert.True(t, initCalled)
	assert.Equal(t, 1, c.DeviceCount())
}

func TestAttachDeviceRejectsOverflow(t *testing.T) {
	c := NewDCPU16()
	c.devices = make([]*Device, MAX_DEVICES)
	ok := c.AttachDevice(nil)
	assert.False(t, ok)
	assert.Equal(t, MAX_DEVICES, c.DeviceCount())
}

func TestHWQReturnsIdentity(t *testing.T) {
	c := NewDCPU16()
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.ID = 0x00020003
		d.Version = 0x0007
		d.Manufacturer = 0x00050006
	})
	c.Write(0, []uint16{makeOpcode(SPC, HWQ, 0x21)}) // HWQ 0
	require.NoError(t, c.Step())
	r := c.Registers()
	assert.EqualValues(t, 0x0003, r[A])
	assert.EqualValues(t, 0x0002, r[B])
	assert.EqualValues(t, 0x0007, r[C])
	assert.EqualValues(t, 0x0006, r[X])
	assert.EqualValues(t, 0x0005, r[Y])
}

func TestHWQOutOfRangeZeroesRegisters(t *testing.T) {
	c := NewDCPU16()
	c.register[A] = 0xffff
	c.Write(0, []uint16{makeOpcode(SPC, HWQ, 0x21)}) // HWQ 0, no devices attached
	require.NoError(t, c.Step())
	r := c.Registers()
	assert.EqualValues(t, 0, r[A])
	assert.EqualValues(t, 0, r[B])
}

func TestHWIInvokesDeviceCallback(t *testing.T) {
	c := NewDCPU16()
	var fired bool
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.Interrupt = func(c *DCPU16, d *Device) { fired = true }
	})
	c.Write(0, []uint16{makeOpcode(SPC, HWI, 0x21)}) // HWI 0
	require.NoError(t, c.Step())
	assert.True(t, fired)
}

func TestHWIIgnoresDisabledDevice(t *testing.T) {
	c := NewDCPU16()
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.Enabled = false
		d.Interrupt = func(c *DCPU16, d *Device) { t.Fatal("disabled device must not fire") }
	})
	c.Write(0, []uint16{makeOpcode(SPC, HWI, 0x21)})
	require.NoError(t, c.Step())
}

func TestHWNReportsDeviceCount(t *testing.T) {
	c := NewDCPU16()
	c.AttachDevice(nil)
	c.AttachDevice(nil)
	c.Write(0, []uint16{makeOpcode(SPC, HWN, A)})
	require.NoError(t, c.Step())
	assert.EqualValues(t, 2, c.Registers()[A])
}

func TestTickDevicesRunsOncePerStep(t *testing.T) {
	c := NewDCPU16()
	ticks := 0
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.Tick = func(c *DCPU16, d *Device) { ticks++ }
	})
	c.Write(0, []uint16{makeOpcode(SET, A, A), makeOpcode(SET, A, A)})
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, 2, ticks)
}

func TestDetachAllCallsDeinit(t *testing.T) {
	c := NewDCPU16()
	deinited := 0
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.Deinit = func(c *DCPU16, d *Device) { deinited++ }
	})
	c.AttachDevice(func(c *DCPU16, d *Device) {
		d.Deinit = func(c *DCPU16, d *Device) { deinited++ }
	})
	c.DetachAll()
	assert.Equal(t, 2, deinited)
	assert.Equal(t, 0, c.DeviceCount())
}
