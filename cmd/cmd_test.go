package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/scexport/scene"
	"github.com/achilleasa/scexport/types"
	"github.com/urfave/cli"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Name = "scexport"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
	}
	app.Commands = []cli.Command{
		{Name: "image", Flags: ImageFlags, Action: PrintImage},
		{Name: "floor", Flags: ImageFlags, Action: PrintFloor},
		{
			Name:   "scene",
			Flags:  append([]cli.Flag{cli.StringFlag{Name: "out, o"}}, ImageFlags...),
			Action: ExportScene,
		},
	}
	return app
}

func writeObj(t *testing.T, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "scene.obj")
	if err := os.WriteFile(file, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestImageCommandDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestApp(&buf).Run([]string{"scexport", "image"}); err != nil {
		t.Fatal(err)
	}

	exp, _ := scene.NewImage().MainBlock()
	if buf.String() != exp {
		t.Fatalf("expected default main block:\n%s\ngot:\n%s", exp, buf.String())
	}
}

func TestImageCommandFlags(t *testing.T) {
	t.Setenv("SCEXPORT_SAMPLES", "8")

	var buf bytes.Buffer
	args := []string{"scexport", "image", "--resolution", "640 480", "--filter", "mitchell"}
	if err := newTestApp(&buf).Run(args); err != nil {
		t.Fatal(err)
	}

	for _, exp := range []string{"\tresolution 640 480\n", "\tfilter mitchell\n", "\tsamples 8\n"} {
		if !strings.Contains(buf.String(), exp) {
			t.Errorf("expected output to contain %q; got:\n%s", exp, buf.String())
		}
	}
}

func TestFloorCommand(t *testing.T) {
	objFile := writeObj(t, "v 0 5 0\nv 0 2 0\nv 0 8 0\n")

	var buf bytes.Buffer
	args := []string{"scexport", "floor", "--floor-angle", "0", "--floor-shader", "glass", objFile}
	if err := newTestApp(&buf).Run(args); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, exp := range []string{"type glass", "eta 1.33", "\tp 0 0 0\n", "\tn 0 1 0\n"} {
		if !strings.Contains(out, exp) {
			t.Errorf("expected output to contain %q; got:\n%s", exp, out)
		}
	}
}

func TestFloorCommandColor(t *testing.T) {
	objFile := writeObj(t, "v 0 0 0\n")

	var buf bytes.Buffer
	args := []string{"scexport", "floor", "--floor-color", "0.2 0.2 0.2", objFile}
	if err := newTestApp(&buf).Run(args); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "\ttype diffuse\n\tdiff 0.2 0.2 0.2\n") {
		t.Fatalf("expected diffuse shader using the new color; got:\n%s", buf.String())
	}
}

func TestFloorCommandDisabled(t *testing.T) {
	objFile := writeObj(t, "v 0 0 0\n")

	var buf bytes.Buffer
	if err := newTestApp(&buf).Run([]string{"scexport", "floor", "--no-floor", objFile}); err != nil {
		t.Fatal(err)
	}

	if buf.Len() != 0 {
		t.Fatalf("expected no output; got %q", buf.String())
	}
}

func TestFloorCommandUnknownShader(t *testing.T) {
	objFile := writeObj(t, "v 0 0 0\n")

	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{"scexport", "floor", "--floor-shader", "velvet", objFile})
	if !errors.Is(err, scene.ErrUnknownShader) {
		t.Fatalf("expected to get ErrUnknownShader; got %v", err)
	}
}

func TestSceneCommand(t *testing.T) {
	objFile := writeObj(t, "v 0 -3 0\nv 0 1 0\n")
	sceneFile := filepath.Join(t.TempDir(), "image.sc")

	var buf bytes.Buffer
	args := []string{"scexport", "scene", "-o", sceneFile, "--floor-angle", "0", objFile}
	if err := newTestApp(&buf).Run(args); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(sceneFile)
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "image {\n") || !strings.HasSuffix(out, "\tp 0 -5 0\n\tn 0 1 0\n}\n") {
		t.Fatalf("unexpected scene file contents:\n%s", out)
	}
}

func TestFloorStatsTable(t *testing.T) {
	img := scene.NewImage()
	img.SetFloorAngle(0)
	img.CheckLowestPoint(types.Vec3{0, 2, 0})

	var buf bytes.Buffer
	renderFloorStats(&buf, img)

	for _, exp := range []string{"Lowest point", "0 2 0", "Plane position", "0 0 0", "Z range"} {
		if !strings.Contains(buf.String(), exp) {
			t.Errorf("expected stats table to contain %q; got:\n%s", exp, buf.String())
		}
	}
}
