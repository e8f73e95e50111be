package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/achilleasa/scexport/types"
)

const expMainBlock = `image {
	resolution 1280 959
	aa 1 2
	samples 4
	filter gaussian
}

trace-depths {
	diff 1
	refl 4
	refr 4
}

gi {
	type ambocc
	bright { "sRGB nonlinear" 1 1 1 }
	dark { "sRGB nonlinear" 0 0 0 }
	samples 32
	maxdist 200.0
}

background {
	color 1.0 1.0 1.0
}
`

func TestDefaultMainBlock(t *testing.T) {
	out, err := NewImage().MainBlock()
	if err != nil {
		t.Fatal(err)
	}

	if out != expMainBlock {
		t.Fatalf("expected main block to be:\n%q\ngot:\n%q", expMainBlock, out)
	}
}

func TestMainBlockUsesSettings(t *testing.T) {
	img := NewImage()
	img.Resolution = "640 480"
	img.Filter = "mitchell"
	img.TraceRefr = "2"
	img.GIMaxDist = "50.0"

	out, err := img.MainBlock()
	if err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{"\tresolution 640 480\n", "\tfilter mitchell\n", "\trefr 2\n", "\tmaxdist 50.0\n"} {
		if !strings.Contains(out, exp) {
			t.Errorf("expected main block to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestMainBlockMissingSetting(t *testing.T) {
	img := NewImage()
	img.GISamples = ""

	_, err := img.MainBlock()
	if !errors.Is(err, ErrMissingSetting) {
		t.Fatalf("expected to get ErrMissingSetting; got %v", err)
	}

	expError := `scene: missing image setting "gi samples"`
	if err.Error() != expError {
		t.Fatalf("expected error %q; got %q", expError, err.Error())
	}
}

func TestBlockBuilders(t *testing.T) {
	img := NewImage()

	specs := []struct {
		out string
		exp string
	}{
		{ImageBlock(img), "image {\n\tresolution 1280 959\n\taa 1 2\n\tsamples 4\n\tfilter gaussian\n}\n"},
		{TraceDepthsBlock(img), "trace-depths {\n\tdiff 1\n\trefl 4\n\trefr 4\n}\n"},
		{GIBlock(img), "gi {\n\ttype ambocc\n\tbright { \"sRGB nonlinear\" 1 1 1 }\n\tdark { \"sRGB nonlinear\" 0 0 0 }\n\tsamples 32\n\tmaxdist 200.0\n}\n"},
		{BackgroundBlock(img), "background {\n\tcolor 1.0 1.0 1.0\n}"},
		{PlaneBlock(FloorPlane{Position: types.Vec3{0, -2, 0}, Normal: types.Vec3{0, 1, 0}}), "object {\n\tshader floor\n\ttype plane\n\tp 0 -2 0\n\tn 0 1 0\n}\n"},
	}

	for index, spec := range specs {
		if spec.out != spec.exp {
			t.Errorf("[spec %d] expected %q; got %q", index, spec.exp, spec.out)
		}
	}
}

func TestSetters(t *testing.T) {
	img := NewImage()
	img.SetFloorAngle(12.5)
	img.SetOutputWidth(640)
	img.SetFloorShadow(false)
	img.SetGlobalShader("glass")
	img.SetFloorColor("0.5 0.5 0.5")

	if img.FloorAngle() != 12.5 {
		t.Errorf("expected floor angle 12.5; got %v", img.FloorAngle())
	}
	if img.OutputWidth() != 640 {
		t.Errorf("expected output width 640; got %d", img.OutputWidth())
	}
	if img.FloorShadow() {
		t.Error("expected floor shadow to be disabled")
	}
	if img.GlobalShader != "glass" {
		t.Errorf("expected global shader glass; got %q", img.GlobalShader)
	}
	if img.FloorColor() != "0.5 0.5 0.5" {
		t.Errorf("expected floor color 0.5 0.5 0.5; got %q", img.FloorColor())
	}
}

func TestDefaults(t *testing.T) {
	img := NewImage()

	if img.FloorAngle() != 90 {
		t.Errorf("expected default floor angle 90; got %v", img.FloorAngle())
	}
	if !img.FloorShadow() {
		t.Error("expected floor shadow to be enabled by default")
	}
	if img.OutputWidth() != 1280 {
		t.Errorf("expected default output width 1280; got %d", img.OutputWidth())
	}
	if img.DOF {
		t.Error("expected dof to be disabled by default")
	}
	if !math.IsInf(img.FloorHeight(), 1) {
		t.Errorf("expected default floor height to be +Inf; got %v", img.FloorHeight())
	}
	if img.LowestPoint() != (types.Vec3{}) {
		t.Errorf("expected default lowest point to be the origin; got %v", img.LowestPoint())
	}
}
