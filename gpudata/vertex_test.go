package gpudata

import "testing"

func TestCalculateMaskUVFirstSlot(t *testing.T) {
	u, v := CalculateMaskUV(0, 0, 0)
	if u != 0 || v != 0 {
		t.Errorf("CalculateMaskUV(0, 0, 0) = (%d, %d), want (0, 0)", u, v)
	}
}

func TestCalculateMaskUVWrapsAcrossRow(t *testing.T) {
	_, v0 := CalculateMaskUV(MaskTilesAcross-1, 0, 0)
	_, v1 := CalculateMaskUV(MaskTilesAcross, 0, 0)
	if v1 <= v0 {
		t.Errorf("v did not advance across a row boundary: v0=%d v1=%d", v0, v1)
	}
	u1, _ := CalculateMaskUV(MaskTilesAcross, 0, 0)
	if u1 != 0 {
		t.Errorf("u at the start of a new row = %d, want 0", u1)
	}
}

func TestCalculateMaskUVMonotonicWithinRow(t *testing.T) {
	u0, _ := CalculateMaskUV(5, 0, 0)
	u1, _ := CalculateMaskUV(6, 0, 0)
	if u1 <= u0 {
		t.Errorf("u did not advance within a row: u0=%d u1=%d", u0, u1)
	}
}
