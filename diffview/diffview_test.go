package diffview

import (
	"errors"
	"math/rand"
	"testing"
)

func makeDataset(channels, samples int) [][]float64 {
	ds := make([][]float64, channels)
	for c := range ds {
		ds[c] = make([]float64, samples)
		for s := range ds[c] {
			ds[c][s] = float64(c*samples + s)
		}
	}
	return ds
}

func TestPaddingToNextMultiple(t *testing.T) {
	cases := []struct {
		samples int
		width   int
		want    int
	}{
		{12000, 2500, 12500},
		{10000, 2500, 10000},
		{1, 2500, 2500},
		{2501, 2500, 5000},
		{50, 50, 50},
	}
	for _, tc := range cases {
		f, err := New(
			[][][]float64{makeDataset(5, tc.samples), makeDataset(5, tc.samples)},
			WithWindowWidth(tc.width),
			WithWindowHeight(5),
		)
		if err != nil {
			t.Fatalf("New(%d samples, width %d): %v", tc.samples, tc.width, err)
		}
		if f.Samples() != tc.want {
			t.Errorf("padded samples for T=%d W=%d: got %d, want %d",
				tc.samples, tc.width, f.Samples(), tc.want)
		}
	}
}

func TestNoPaddingOnExactMultiple(t *testing.T) {
	ds := makeDataset(3, 500)
	f, err := New([][][]float64{ds}, WithWindowWidth(100), WithWindowHeight(3))
	if err != nil {
		t.Fatal(err)
	}
	if f.Samples() != 500 {
		t.Fatalf("padded samples: got %d, want 500", f.Samples())
	}
	rows := f.Window(ViewState{})
	for s, v := range rows[0].Traces[0] {
		if v != ds[0][s] {
			t.Fatalf("sample %d changed by padding: got %v, want %v", s, v, ds[0][s])
		}
	}
}

func TestShapeMismatch(t *testing.T) {
	cases := [][][]float64{
		makeDataset(5, 1000),
		makeDataset(5, 999),
	}
	_, err := New([][][]float64{cases[0], cases[1]}, WithWindowWidth(100))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("differing sample counts: got %v, want ErrShapeMismatch", err)
	}

	_, err = New([][][]float64{makeDataset(4, 1000), makeDataset(5, 1000)})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("differing channel counts: got %v, want ErrShapeMismatch", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	ds := [][][]float64{makeDataset(3, 100)}

	cases := []struct {
		name string
		do   func() (*Frame, error)
	}{
		{"empty collection", func() (*Frame, error) { return New(nil) }},
		{"zero width", func() (*Frame, error) { return New(ds, WithWindowWidth(0)) }},
		{"negative height", func() (*Frame, error) { return New(ds, WithWindowHeight(-1)) }},
		{"short names", func() (*Frame, error) { return New(ds, WithChannelNames([]string{"a"})) }},
		{"long x range", func() (*Frame, error) { return New(ds, WithXRange(make([]float64, 101))) }},
	}
	for _, tc := range cases {
		if _, err := tc.do(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestWindowStartAlwaysInRange(t *testing.T) {
	f, err := New([][][]float64{makeDataset(4, 950)}, WithWindowWidth(100), WithWindowHeight(2))
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			st.Move(KeyLeft)
		} else {
			st.Move(KeyRight)
		}
		rows := f.Window(st)
		for _, row := range rows {
			if row.Start < 0 || row.Start+f.WindowWidth() > f.Samples() {
				t.Fatalf("x=%d: window [%d, %d) outside [0, %d)",
					st.X, row.Start, row.Start+f.WindowWidth(), f.Samples())
			}
		}
	}
}

func TestChannelAlwaysInRange(t *testing.T) {
	f, err := New([][][]float64{makeDataset(5, 200)}, WithWindowWidth(200), WithWindowHeight(3))
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			st.Move(KeyUp)
		} else {
			st.Move(KeyDown)
		}
		for _, row := range f.Window(st) {
			if row.Channel < 0 || row.Channel >= f.Channels() {
				t.Fatalf("y=%d: channel %d outside [0, %d)", st.Y, row.Channel, f.Channels())
			}
		}
	}
}

func TestWindowStartScenario(t *testing.T) {
	// T padded = 1000, width = 100: after 11 rights the start wraps to 100.
	f, err := New([][][]float64{makeDataset(1, 1000)}, WithWindowWidth(100), WithWindowHeight(1))
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{}
	if got := f.Window(st)[0].Start; got != 0 {
		t.Fatalf("initial start: got %d, want 0", got)
	}
	for i := 0; i < 11; i++ {
		st.Move(KeyRight)
	}
	if st.X != 11 {
		t.Fatalf("x after 11 rights: got %d, want 11", st.X)
	}
	if got := f.Window(st)[0].Start; got != 100 {
		t.Fatalf("start after 11 rights: got %d, want 100", got)
	}
}

func TestVisibleChannelsScenario(t *testing.T) {
	// C=5, height=3: after 7 downs the visible channels are 2, 3, 4.
	f, err := New([][][]float64{makeDataset(5, 100)}, WithWindowWidth(100), WithWindowHeight(3))
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{}
	for i := 0; i < 7; i++ {
		st.Move(KeyDown)
	}
	rows := f.Window(st)
	want := []int{2, 3, 4}
	for r, row := range rows {
		if row.Channel != want[r] {
			t.Errorf("row %d: channel %d, want %d", r, row.Channel, want[r])
		}
	}
}

func TestNegativeOffsetsWrap(t *testing.T) {
	f, err := New([][][]float64{makeDataset(5, 1000)}, WithWindowWidth(100), WithWindowHeight(2))
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{}
	st.Move(KeyLeft)
	st.Move(KeyUp)
	rows := f.Window(st)
	if rows[0].Start != 900 {
		t.Errorf("start at x=-1: got %d, want 900", rows[0].Start)
	}
	if rows[0].Channel != 4 {
		t.Errorf("channel at y=-1: got %d, want 4", rows[0].Channel)
	}
	if rows[1].Channel != 0 {
		t.Errorf("second row at y=-1: got %d, want 0", rows[1].Channel)
	}
}

func TestCoordinateInterpolation(t *testing.T) {
	coords := make([]float64, 950)
	for i := range coords {
		coords[i] = 0.5 * float64(i) // strictly increasing
	}
	f, err := New(
		[][][]float64{makeDataset(1, 950)},
		WithWindowWidth(100),
		WithWindowHeight(1),
		WithXRange(coords),
	)
	if err != nil {
		t.Fatal(err)
	}
	if f.Samples() != 1000 {
		t.Fatalf("padded samples: got %d, want 1000", f.Samples())
	}

	// Walk every window and check the coordinate sequence never
	// decreases and keeps the original endpoints.
	var all []float64
	st := ViewState{}
	for w := 0; w < f.Samples()/f.WindowWidth(); w++ {
		all = append(all, f.Window(st)[0].Coords...)
		st.Move(KeyRight)
	}
	if len(all) != f.Samples() {
		t.Fatalf("collected %d coords, want %d", len(all), f.Samples())
	}
	if all[0] != coords[0] {
		t.Errorf("first coord: got %v, want %v", all[0], coords[0])
	}
	if all[len(all)-1] != coords[len(coords)-1] {
		t.Errorf("last coord: got %v, want %v", all[len(all)-1], coords[len(coords)-1])
	}
	for i := 1; i < len(all); i++ {
		if all[i] < all[i-1] {
			t.Fatalf("coords decrease at %d: %v < %v", i, all[i], all[i-1])
		}
	}
}

func TestChannelNamesOnRows(t *testing.T) {
	names := []string{"MEG 0111", "MEG 0112", "MEG 0113"}
	f, err := New(
		[][][]float64{makeDataset(3, 100)},
		WithWindowWidth(100),
		WithWindowHeight(2),
		WithChannelNames(names),
	)
	if err != nil {
		t.Fatal(err)
	}

	st := ViewState{Y: 2}
	rows := f.Window(st)
	if rows[0].Name != "MEG 0113" {
		t.Errorf("row 0 name: got %q, want %q", rows[0].Name, "MEG 0113")
	}
	if rows[1].Name != "MEG 0111" {
		t.Errorf("row 1 name: got %q, want %q", rows[1].Name, "MEG 0111")
	}
}

func TestMoveIgnoresUnknownKey(t *testing.T) {
	st := ViewState{X: 3, Y: 4}
	if st.Move(Key(99)) {
		t.Fatal("unknown key reported as handled")
	}
	if st.X != 3 || st.Y != 4 {
		t.Fatalf("state changed by unknown key: %+v", st)
	}
}
