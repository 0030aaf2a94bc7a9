package mapdata

import (
	"testing"

	"VoxelMesh/shared/atlas"
	"VoxelMesh/shared/util"
)

func TestParseKindRoundTrip(t *testing.T) {
	for k := KindEmpty; k < kindCount; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("pyramid"); err == nil {
		t.Error("ParseKind(pyramid) should fail")
	}
	if got := Kind(200).String(); got != "kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
}

func TestChunkModelEmptyTracking(t *testing.T) {
	c := NewChunkModel()
	if !c.IsEmpty() {
		t.Fatal("new chunk should be empty")
	}

	c.Set(1, 2, 3, NewBlock(KindTop, atlas.FullTexture))
	if c.IsEmpty() || c.Count() != 1 {
		t.Fatalf("after Set: IsEmpty=%v Count=%d", c.IsEmpty(), c.Count())
	}

	// Sobrescrever com outro bloco não altera a contagem
	c.Set(1, 2, 3, NonCube)
	if c.Count() != 1 {
		t.Errorf("overwrite changed Count to %d", c.Count())
	}

	c.Set(1, 2, 3, Empty)
	if !c.IsEmpty() {
		t.Error("chunk should be empty after clearing the only block")
	}
}

func TestChunkModelBounds(t *testing.T) {
	c := NewChunkModel()
	c.Set(16, 0, 0, NonCube)
	c.Set(0, -1, 0, NonCube)
	if !c.IsEmpty() {
		t.Error("out-of-range Set should be ignored")
	}
	if got := c.Get(0, 0, 99); got != Empty {
		t.Errorf("out-of-range Get = %v, want Empty", got)
	}
}

func TestChunkModelFill(t *testing.T) {
	c := NewChunkModel()
	block := NewBlock(KindPx, atlas.NewUvTexture(0, 0, 0.5, 0.5))
	c.Fill(util.NewBlockPos(15, 1, 3), util.NewBlockPos(0, 0, 2), block)

	if want := 16 * 2 * 2; c.Count() != want {
		t.Errorf("Count() = %d, want %d", c.Count(), want)
	}
	if got := c.Get(7, 1, 3); got != block {
		t.Errorf("Get(7,1,3) = %v, want %v", got, block)
	}
	if got := c.Get(7, 2, 3); got != Empty {
		t.Errorf("Get(7,2,3) = %v, want Empty", got)
	}

	clone := c.Clone()
	clone.Set(7, 1, 3, Empty)
	if c.Get(7, 1, 3) != block {
		t.Error("Clone should not share storage with the original")
	}
}

func TestChunkModelFillClipsToGrid(t *testing.T) {
	block := NewBlock(KindTop, atlas.NewUvTexture(0, 0, 0.5, 0.5))
	tests := []struct {
		name     string
		from, to util.BlockPos
		want     int
	}{
		{"row past both ends", util.NewBlockPos(-5, 0, 0), util.NewBlockPos(20, 0, 0), 16},
		{"huge z extent", util.NewBlockPos(0, 0, 0), util.NewBlockPos(0, 0, 200000000), 16},
		{"fully outside", util.NewBlockPos(16, 0, 0), util.NewBlockPos(40, 3, 3), 0},
		{"negative box", util.NewBlockPos(-9, -9, -9), util.NewBlockPos(-1, -1, -1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunkModel()
			c.Fill(tt.from, tt.to, block)
			if c.Count() != tt.want {
				t.Errorf("Count() = %d, want %d", c.Count(), tt.want)
			}
		})
	}
}
