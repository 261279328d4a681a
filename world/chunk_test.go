package world

import (
	"testing"
)

func flat(h int) HeightFunc {
	return func(int, int) int { return h }
}

func ramp(x, z int) int {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(x)%64 + abs(z)%64
}

func TestBlockIndexLayout(t *testing.T) {
	cases := []struct {
		x, y, z int
		want    int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 0, 1, ChunkSize},
		{0, 1, 0, ChunkSize * ChunkSize},
		{ChunkSize - 1, ChunkHeight - 1, ChunkSize - 1, chunkVolume - 1},
	}
	for _, tc := range cases {
		if got := blockIndex(tc.x, tc.y, tc.z); got != tc.want {
			t.Errorf("blockIndex(%d,%d,%d) = %d, want %d", tc.x, tc.y, tc.z, got, tc.want)
		}
	}

	c := NewChunk(0, 0, nil)
	*c.BlockAtLocal(3, 7, 9) = Solid
	if c.blockMap[3+9*ChunkSize+7*ChunkSize*ChunkSize] != Solid {
		t.Error("BlockAtLocal did not write the documented cell")
	}
}

func TestNewChunkIsAir(t *testing.T) {
	c := NewChunk(4, -2, nil)
	if len(c.blockMap) != ChunkSize*ChunkSize*ChunkHeight {
		t.Fatalf("blockMap length = %d, want %d", len(c.blockMap), chunkVolume)
	}
	for i, b := range c.blockMap {
		if b != Air {
			t.Fatalf("cell %d = %d, want air", i, b)
		}
	}
	if got := c.Position(); got != (ChunkPos{4, -2}) {
		t.Errorf("Position() = %v, want (4,-2)", got)
	}
}

func TestBlockAtLocalBounds(t *testing.T) {
	c := NewChunk(0, 0, nil)
	for _, p := range [][3]int{
		{-1, 0, 0}, {ChunkSize, 0, 0},
		{0, -1, 0}, {0, ChunkHeight, 0},
		{0, 0, -1}, {0, 0, ChunkSize},
	} {
		if c.BlockAtLocal(p[0], p[1], p[2]) != nil {
			t.Errorf("BlockAtLocal%v should be absent", p)
		}
	}
}

func TestGenerateBoundaryInclusive(t *testing.T) {
	c := NewChunk(0, 0, nil)
	c.Generate(flat(5))

	for y := 0; y < ChunkHeight; y++ {
		got := *c.BlockAtLocal(2, y, 11)
		if y <= 5 && got != Solid {
			t.Errorf("y=%d is %d, want solid", y, got)
		}
		if y > 5 && got != Air {
			t.Errorf("y=%d is %d, want air", y, got)
		}
	}
}

func TestGenerateHeightOutsideGrid(t *testing.T) {
	c := NewChunk(0, 0, nil)
	c.Generate(flat(-3))
	for i, b := range c.blockMap {
		if b != Air {
			t.Fatalf("negative height: cell %d is solid", i)
		}
	}

	c.Generate(flat(ChunkHeight + 10))
	for i, b := range c.blockMap {
		if b != Solid {
			t.Fatalf("tall height: cell %d is air", i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewChunk(3, -7, nil)
	b := NewChunk(3, -7, nil)
	a.Generate(ramp)
	b.Generate(ramp)
	a.Generate(ramp)

	for i := range a.blockMap {
		if a.blockMap[i] != b.blockMap[i] {
			t.Fatalf("cell %d differs between generations", i)
		}
	}
}

func TestGenerateUsesWorldColumns(t *testing.T) {
	c := NewChunk(2, -1, nil)
	c.Generate(ramp)

	// local (4, 6) is world (36, -10): |36|%64 + |-10|%64 = 46
	if *c.BlockAtLocal(4, 46, 6) != Solid {
		t.Error("cell at column height should be solid")
	}
	if *c.BlockAtLocal(4, 47, 6) != Air {
		t.Error("cell above column height should be air")
	}
}

func TestBlockAtVerticalRangeNeverDelegates(t *testing.T) {
	a := NewChunk(0, 0, nil)
	b := NewChunk(1, 0, nil)
	Link(a, b)

	for _, y := range []int{-1, ChunkHeight} {
		if a.BlockAt(3, y, 3) != nil {
			t.Errorf("BlockAt(3,%d,3) should be absent", y)
		}
		if a.BlockAt(ChunkSize, y, 3) != nil {
			t.Errorf("BlockAt(%d,%d,3) should be absent", ChunkSize, y)
		}
	}
}

func TestBlockAtWorldToLocal(t *testing.T) {
	c := NewChunk(-2, 3, nil)
	want := c.BlockAtLocal(5, 9, 1)
	got := c.BlockAt(-2*ChunkSize+5, 9, 3*ChunkSize+1)
	if got != want {
		t.Error("BlockAt did not resolve to the local cell")
	}
}

func TestBlockAtDelegatesToNeighbor(t *testing.T) {
	a := NewChunk(0, 0, nil)
	b := NewChunk(1, 0, nil)
	c := NewChunk(0, -1, nil)

	if a.BlockAt(ChunkSize, 4, 3) != nil {
		t.Fatal("unlinked +X query should be absent")
	}
	if a.BlockAt(3, 4, -1) != nil {
		t.Fatal("unlinked -Z query should be absent")
	}

	Link(a, b)
	Link(a, c)

	if got, want := a.BlockAt(ChunkSize, 4, 3), b.BlockAtLocal(0, 4, 3); got != want {
		t.Error("+X query did not land in the +X neighbor")
	}
	if got, want := a.BlockAt(3, 4, -1), c.BlockAtLocal(3, 4, ChunkSize-1); got != want {
		t.Error("-Z query did not land in the -Z neighbor")
	}
	if got, want := b.BlockAt(ChunkSize-1, 4, 0), a.BlockAtLocal(ChunkSize-1, 4, 0); got != want {
		t.Error("-X query from the neighbor did not land back in the origin chunk")
	}
	if a.BlockAt(-1, 4, 3) != nil {
		t.Error("-X query with no -X neighbor should be absent")
	}
}

func TestBlockAtRecursesPastOneHop(t *testing.T) {
	a := NewChunk(0, 0, nil)
	b := NewChunk(1, 0, nil)
	c := NewChunk(2, 0, nil)
	Link(a, b)
	Link(b, c)

	got := a.BlockAt(2*ChunkSize+8, 10, 2)
	if want := c.BlockAtLocal(8, 10, 2); got != want {
		t.Error("two-hop query did not resolve through the middle chunk")
	}

	d := NewChunk(1, 1, nil)
	Link(b, d)
	// x is delegated first, then z from inside the +X neighbor
	got = a.BlockAt(ChunkSize+1, 0, ChunkSize+1)
	if want := d.BlockAtLocal(1, 0, 1); got != want {
		t.Error("diagonal query did not resolve x first then z")
	}
}

func TestSetNeighborOverwrites(t *testing.T) {
	a := NewChunk(0, 0, nil)
	first := NewChunk(1, 0, nil)
	second := NewChunk(1, 0, nil)

	a.SetNeighbor(PosX, first)
	a.SetNeighbor(PosX, second)
	if a.Neighbor(PosX) != second {
		t.Error("SetNeighbor should overwrite the slot")
	}
	a.SetNeighbor(PosX, nil)
	if a.Neighbor(PosX) != nil {
		t.Error("SetNeighbor(nil) should clear the slot")
	}
	if a.Neighbor(Direction(9)) != nil {
		t.Error("out of range direction should report no neighbor")
	}
}

func TestDirectionOf(t *testing.T) {
	cases := []struct {
		dx, dz int
		want   Direction
		ok     bool
	}{
		{1, 0, PosX, true},
		{-1, 0, NegX, true},
		{0, 1, PosZ, true},
		{0, -1, NegZ, true},
		{0, 0, 0, false},
		{1, 1, 0, false},
		{-1, 1, 0, false},
		{2, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := DirectionOf(tc.dx, tc.dz)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("DirectionOf(%d,%d) = %v,%v, want %v,%v", tc.dx, tc.dz, got, ok, tc.want, tc.ok)
		}
	}

	for d := Direction(0); d < numDirections; d++ {
		dx, dz := d.Offset()
		if back, ok := DirectionOf(dx, dz); !ok || back != d {
			t.Errorf("Offset of %v does not round trip", d)
		}
		ox, oz := d.Opposite().Offset()
		if ox != -dx || oz != -dz {
			t.Errorf("Opposite of %v = %v", d, d.Opposite())
		}
	}
}

func TestRemoveBlockRoundTrip(t *testing.T) {
	c := NewChunk(0, 0, &MeshData{})
	c.Generate(flat(5))
	c.BuildMesh()
	*c.BlockAtLocal(4, 2, 4) = BlockType(7)

	prev, ok := c.RemoveBlock(4, 2, 4)
	if !ok || prev != BlockType(7) {
		t.Fatalf("first removal = %d,%v, want 7,true", prev, ok)
	}
	if *c.BlockAtLocal(4, 2, 4) != Air {
		t.Fatal("removed cell is not air")
	}

	rebuilds := c.Rebuilds()
	prev, ok = c.RemoveBlock(4, 2, 4)
	if ok || prev != Air {
		t.Errorf("second removal = %d,%v, want not found", prev, ok)
	}
	if c.Rebuilds() != rebuilds {
		t.Error("not-found removal should not rebuild")
	}
}

func TestRemoveAirCellRebuildsNothing(t *testing.T) {
	a := NewChunk(0, 0, &MeshData{})
	b := NewChunk(1, 0, &MeshData{})
	a.Generate(flat(5))
	b.Generate(flat(5))
	Link(a, b)

	if _, ok := a.RemoveBlock(ChunkSize-1, 40, 3); ok {
		t.Fatal("removing an air cell should report not found")
	}
	if a.Rebuilds() != 0 || b.Rebuilds() != 0 {
		t.Errorf("rebuilds = %d,%d, want 0,0", a.Rebuilds(), b.Rebuilds())
	}
}

func TestRemoveBlockAbsent(t *testing.T) {
	c := NewChunk(0, 0, &MeshData{})
	c.Generate(flat(5))

	for _, p := range [][3]int{{3, -1, 3}, {3, ChunkHeight, 3}, {ChunkSize, 2, 3}, {3, 2, -1}} {
		if _, ok := c.RemoveBlock(p[0], p[1], p[2]); ok {
			t.Errorf("RemoveBlock%v should report not found", p)
		}
	}
	if c.Rebuilds() != 0 {
		t.Errorf("rebuilds = %d, want 0", c.Rebuilds())
	}
}

func TestRemoveBlockRebuildsAllNeighbors(t *testing.T) {
	center := NewChunk(0, 0, &MeshData{})
	center.Generate(flat(5))
	var around []*Chunk
	for d := Direction(0); d < numDirections; d++ {
		dx, dz := d.Offset()
		n := NewChunk(dx, dz, &MeshData{})
		n.Generate(flat(5))
		Link(center, n)
		around = append(around, n)
	}

	// interior block, not on any shared boundary
	if _, ok := center.RemoveBlock(8, 3, 8); !ok {
		t.Fatal("removal failed")
	}
	if center.Rebuilds() != 1 {
		t.Errorf("center rebuilds = %d, want 1", center.Rebuilds())
	}
	for _, n := range around {
		if n.Rebuilds() != 1 {
			t.Errorf("neighbor %v rebuilds = %d, want 1", n.Position(), n.Rebuilds())
		}
	}
}
