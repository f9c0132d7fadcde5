package gpudata

import "testing"

func TestPackFillBatchPrimitiveRoundTrip(t *testing.T) {
	p := PackFillBatchPrimitive(3<<8|200, 7<<8|50, 10<<8|12, 2<<8|99, 0x1234)

	x, y := p.FromPixel()
	if x != 3 || y != 7 {
		t.Errorf("FromPixel() = (%d, %d), want (3, 7)", x, y)
	}
	x, y = p.ToPixel()
	if x != 10 || y != 2 {
		t.Errorf("ToPixel() = (%d, %d), want (10, 2)", x, y)
	}
	if p.AlphaTileIndex() != 0x1234 {
		t.Errorf("AlphaTileIndex() = %#x, want 0x1234", p.AlphaTileIndex())
	}
}

func TestPackFillBatchPrimitiveSubpixelBytes(t *testing.T) {
	p := PackFillBatchPrimitive(200, 50, 12, 99, 0)
	if p[2] != 200 {
		t.Errorf("p[2] = %d, want 200", p[2])
	}
	if p[3] != 50 {
		t.Errorf("p[3] = %d, want 50", p[3])
	}
	if p[4] != 12 {
		t.Errorf("p[4] = %d, want 12", p[4])
	}
	if p[5] != 99 {
		t.Errorf("p[5] = %d, want 99", p[5])
	}
}
