package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/netisu/astra"
)

const (
	movementSpeed = 0.5
	rotationSpeed = math.Pi / 50
	bankAngle     = 0.35
)

type game struct {
	scene    *astra.Scene
	shotPath string
	shots    int
}

// warpKeys maps digit keys to bodies in scene order.
var warpKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i, key := range warpKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(g.scene.Bodies) {
			g.scene.WarpTo(g.scene.Bodies[i])
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		path := fmt.Sprintf("%s-%03d.png", g.shotPath, g.shots)
		g.shots++
		if err := g.scene.Framebuffer.SavePNG(path, 0); err != nil {
			log.Printf("astra: snapshot failed: %v", err)
		} else {
			log.Printf("astra: saved %s", path)
		}
	}

	g.scene.Step(g.applyInput)
	return nil
}

// applyInput polls the per-frame key states and drives the camera, testing
// each translation against the collision predicate before committing it.
func (g *game) applyInput(c *astra.Camera) {
	move := func(dir astra.Vector, amount float64) {
		if !g.scene.Blocked(c.Eye.Add(dir.MulScalar(amount))) {
			c.Eye = c.Eye.Add(dir.MulScalar(amount))
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		c.RotatePitch(-rotationSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		c.RotatePitch(rotationSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		c.RotateYaw(-rotationSpeed)
		c.SetRoll(-bankAngle)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		c.RotateYaw(rotationSpeed)
		c.SetRoll(bankAngle)
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move(c.Forward(), movementSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move(c.Forward(), -movementSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move(c.Right(), -movementSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move(c.Right(), movementSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		move(c.Up, movementSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		move(c.Up, -movementSpeed)
	}

	// Keep the camera center consistent after direct eye moves.
	c.RotateYaw(0)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.scene.Framebuffer.Bytes())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Framebuffer.Width, g.scene.Framebuffer.Height
}

func main() {
	var (
		width    = flag.Int("width", 800, "Framebuffer width in pixels.")
		height   = flag.Int("height", 600, "Framebuffer height in pixels.")
		seed     = flag.Int64("seed", 1337, "Noise and starfield seed.")
		stars    = flag.Int("stars", 1000, "Number of backdrop stars.")
		meshPath = flag.String("mesh", "", "Optional OBJ or glTF sphere mesh; procedural sphere when empty.")
		decimate = flag.Float64("simplify", 0, "Decimate the loaded mesh to this fraction of triangles (0 = off).")
		shotPath = flag.String("shots", "astra", "Snapshot filename prefix for F12.")
	)
	flag.Parse()

	scene := astra.NewScene(*width, *height, *seed)
	scene.Starfield = astra.NewStarfield(*stars, *seed)

	if *meshPath != "" {
		mesh, err := loadMesh(*meshPath)
		if err != nil {
			log.Fatalf("astra: loading %s: %v", *meshPath, err)
		}
		if *decimate > 0 && *decimate < 1 {
			before := mesh.TriangleCount()
			mesh = mesh.Simplify(*decimate)
			log.Printf("astra: simplified mesh %d -> %d triangles", before, mesh.TriangleCount())
		}
		scene.Mesh = mesh
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("astra")

	if err := ebiten.RunGame(&game{scene: scene, shotPath: *shotPath}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadMesh(path string) (*astra.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return astra.LoadGLTF(path)
	default:
		return astra.LoadOBJ(path)
	}
}
