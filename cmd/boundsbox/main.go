// Command boundsbox loads a target, wraps it in a bounding-box gizmo and
// plays one grab / drag / release on a chosen handle, printing the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/gekko3d/boundsbox"
	"github.com/gekko3d/boundsbox/cage"
	"github.com/gekko3d/boundsbox/config"
	"github.com/gekko3d/boundsbox/input"
	"github.com/gekko3d/boundsbox/logging"
	"github.com/gekko3d/boundsbox/mesh"
	"github.com/gekko3d/boundsbox/scene"
)

var (
	configPath = flag.String("config", "", "path to a .yaml or .toml config file")
	gltfPath   = flag.String("gltf", "", "load the target from a glTF file")
	sdfSphere  = flag.Float64("sdf-sphere", 0, "use an SDF sphere of this radius as the target")
	handleFlag = flag.String("handle", "corner:7", "handle to drag: corner:N or edge:N")
	factor     = flag.Float64("factor", 1.5, "corner drag: distance multiplier from the cage center")
	angle      = flag.Float64("angle", 45, "edge drag: rotation in degrees")
	flatten    = flag.String("flatten", "", "override flatten axis: none, x, y, z, auto")
	locked     = flag.Bool("locked", false, "keep the opposite corner fixed while scaling")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "boundsbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *flatten != "" {
		cfg.Gizmo.FlattenAxis = *flatten
	}
	if *locked {
		cfg.Gizmo.UseLockedCorners = true
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Gizmo.ActivateOnStart = true

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	if s, ok := log.(interface{ Sync() }); ok {
		defer s.Sync()
	}

	target, err := loadTarget()
	if err != nil {
		return err
	}
	id, err := parseHandle(*handleFlag)
	if err != nil {
		return err
	}

	gizmo, err := boundsbox.New(target, cfg.Gizmo, log)
	if err != nil {
		return err
	}
	rig := gizmo.Rig()
	if !rig.Visible() {
		return errors.Errorf("target %q has no geometry", target.Name)
	}
	log.Infof("bounds from %s: center %v extents %v", gizmo.LastMethod(), rig.Volume.Center, rig.Volume.Extents)

	h := rig.Handles.Handle(id)
	if h == nil || !h.Enabled {
		return errors.Errorf("handle %s is not available", id)
	}
	const src input.SourceID = 1
	start := h.Position
	boundsbox.Dispatch(gizmo, input.Event{Kind: input.EventGrab, Source: src, Modality: input.ModalityPoint, Point: start})
	session := gizmo.Session()
	if session == nil {
		return errors.Errorf("grab on %s was not honoured", id)
	}

	center := session.InitialCenter
	var to mgl32.Vec3
	if session.Role == cage.RoleScale {
		to = center.Add(start.Sub(center).Mul(float32(*factor)))
	} else {
		q := mgl32.QuatRotate(mgl32.DegToRad(float32(*angle)), session.RotationAxis)
		to = center.Add(q.Rotate(start.Sub(center)))
	}

	boundsbox.Dispatch(gizmo, input.Event{Kind: input.EventPoseUpdate, Source: src, Point: to})
	res := gizmo.Tick()
	boundsbox.Dispatch(gizmo, input.Event{Kind: input.EventRelease, Source: src, Modality: input.ModalityPoint, Point: to})
	gizmo.Tick()

	w := target.World()
	fmt.Printf("handle:   %s (%s)\n", id, session.Role)
	fmt.Printf("applied:  %v clamped: %v\n", res.Applied, res.Clamped)
	fmt.Printf("scale:    %v\n", target.LocalScale())
	fmt.Printf("position: %v\n", w.Position)
	fmt.Printf("rotation: %v\n", w.Rotation)
	fmt.Printf("bounds:   center %v extents %v\n", rig.Volume.Center, rig.Volume.Extents)
	fmt.Printf("draw:     %d shapes\n", len(gizmo.Gizmos()))
	return nil
}

func loadTarget() (*scene.Node, error) {
	switch {
	case *gltfPath != "":
		doc, err := mesh.OpenGLTF(*gltfPath)
		if err != nil {
			return nil, err
		}
		return scene.ImportGLTF(filepath.Base(*gltfPath), doc)
	case *sdfSphere > 0:
		s, err := mesh.NewSDFSphere(float32(*sdfSphere))
		if err != nil {
			return nil, err
		}
		n := scene.NewNode("sphere")
		n.Mesh = s
		n.Renderer = true
		return n, nil
	}
	return scene.NewCube("cube", mgl32.Vec3{1, 1, 1}), nil
}

func parseHandle(s string) (cage.HandleID, error) {
	kind, idx, ok := strings.Cut(strings.ToLower(s), ":")
	if !ok {
		return cage.NoHandle, errors.Errorf("handle %q: want corner:N or edge:N", s)
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return cage.NoHandle, errors.Wrapf(err, "handle %q", s)
	}
	switch kind {
	case "corner":
		if n < 0 || n >= cage.NumCorners {
			return cage.NoHandle, errors.Errorf("corner %d out of range", n)
		}
		return cage.CornerHandle(n), nil
	case "edge":
		if n < 0 || n >= cage.NumEdges {
			return cage.NoHandle, errors.Errorf("edge %d out of range", n)
		}
		return cage.EdgeHandle(n), nil
	}
	return cage.NoHandle, errors.Errorf("handle %q: unknown kind %q", s, kind)
}
