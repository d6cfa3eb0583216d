package conv2d

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-conv2d/dsp/core"
	"github.com/cwbudde/algo-conv2d/internal/testutil"
)

func TestPad(t *testing.T) {
	image, err := core.FromMatrix([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}

	padded, err := Pad(image, 1)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	want, _ := core.FromMatrix([][]float64{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	})
	testutil.RequireArrayEqual(t, padded, want)
}

func TestPadColor(t *testing.T) {
	image := testutil.Ramp(2, 2, 2)
	for i := range image.Data {
		image.Data[i]++
	}

	padded, err := Pad(image, 2)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	testutil.RequireShape(t, padded, 6, 6, 2)

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			for ch := 0; ch < 2; ch++ {
				want := 0.0
				if r >= 2 && r < 4 && c >= 2 && c < 4 {
					want = image.At(r-2, c-2, ch)
				}
				if got := padded.At(r, c, ch); got != want {
					t.Fatalf("padded[%d,%d,%d] = %v, want %v", r, c, ch, got, want)
				}
			}
		}
	}
}

func TestPadZeroReturnsInput(t *testing.T) {
	image := testutil.Ones(3, 3)
	padded, err := Pad(image, 0)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	if padded != image {
		t.Fatal("Pad(image, 0) should return image itself")
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	image := testutil.Ones(3, 3)
	padded, err := Pad(image, 1)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}

	padded.Set(42, 1, 1)
	if image.At(0, 0) != 1 {
		t.Fatal("modifying the padded image changed the input")
	}
}

func TestPadErrors(t *testing.T) {
	tests := []struct {
		name    string
		image   *core.Array
		padding int
		want    error
	}{
		{name: "negative", image: testutil.Ones(3, 3), padding: -2, want: ErrNegativePadding},
		{name: "4-D", image: testutil.Ones(1, 1, 1, 1), padding: 1, want: ErrTooManyDims},
		{name: "channels", image: testutil.Ones(2, 2, 5), padding: 1, want: ErrTooManyChannels},
		{name: "not square", image: testutil.Ones(2, 3), padding: 1, want: ErrNotSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pad(tt.image, tt.padding)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
