package geom

import (
	"math"
	"testing"
)

func TestMapperOrigin(t *testing.T) {
	m := NewMapper(960, 720, 2)

	d := m.ToDevice(WorldPoint{})
	if d.X != 480 || d.Y != 360 {
		t.Errorf("Expected world origin at (480, 360), got (%d, %d)", d.X, d.Y)
	}

	d = m.ToDevice(WorldPoint{X: 10, Y: 10})
	if d.X != 500 || d.Y != 340 {
		t.Errorf("Expected (10, 10) at (500, 340), got (%d, %d)", d.X, d.Y)
	}
}

func TestMapperRoundTrip(t *testing.T) {
	m := NewMapper(960, 720, 2)
	tolerance := 0.5 / m.Scale()

	for x := -250.0; x <= 250; x += 3.7 {
		for y := -190.0; y <= 190; y += 4.3 {
			p := WorldPoint{X: x, Y: y}
			back := m.ToWorld(m.ToDevice(p))
			if math.Abs(back.X-p.X) > tolerance || math.Abs(back.Y-p.Y) > tolerance {
				t.Fatalf("Round trip of %v gave %v, outside tolerance %v", p, back, tolerance)
			}
		}
	}
}

func TestMapperDeviceRoundTripIsExact(t *testing.T) {
	m := NewMapper(960, 720, 2)
	for _, d := range []DevicePoint{{0, 0}, {959, 719}, {480, 360}, {17, 603}} {
		if got := m.ToDevice(m.ToWorld(d)); got != d {
			t.Errorf("Expected %v to survive a round trip, got %v", d, got)
		}
	}
}

func TestMapperThickness(t *testing.T) {
	m := NewMapper(960, 720, 2)
	if got := m.Thickness(5); got != 10 {
		t.Errorf("Expected thickness 10, got %d", got)
	}
	if got := m.Thickness(1.25); got != 3 {
		t.Errorf("Expected thickness 3, got %d", got)
	}
}

func TestNewMapperRejectsBadScale(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewMapper to panic on zero scale")
		}
	}()
	NewMapper(10, 10, 0)
}
