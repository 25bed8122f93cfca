package memory

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/BigRoy/nodex/internal/debug"
	"github.com/BigRoy/nodex/internal/nodex"
)

// sceneFile is the YAML layout of a scene description:
//
//	nodes:
//	  pSphere1:
//	    translate: {shape: vector3, kind: float, value: [0, 1, 0]}
//	    visibility: {shape: scalar, kind: bool}
type sceneFile struct {
	Nodes map[string]map[string]sceneAttr `yaml:"nodes"`
}

type sceneAttr struct {
	Shape string    `yaml:"shape"`
	Kind  string    `yaml:"kind"`
	Value []float64 `yaml:"value"`
}

// LoadScene reads a YAML scene description into a fresh backend.
func LoadScene(path string) (*Backend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return LoadSceneBytes(data)
}

// LoadSceneBytes parses a YAML scene description into a fresh backend.
func LoadSceneBytes(data []byte) (*Backend, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	b := New()
	for node, attrs := range file.Nodes {
		for name, attr := range attrs {
			shape, err := parseShape(attr.Shape)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", node, name, err)
			}
			kind, err := parseKind(attr.Kind)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", node, name, err)
			}
			if err := b.DeclareAttribute(node, name, shape, kind, attr.Value); err != nil {
				return nil, err
			}
			if debug.Scene() {
				debug.Logf("scene attr %s.%s %s/%s\n", node, name, shape, kind)
			}
		}
	}
	return b, nil
}

func parseShape(s string) (nodex.Shape, error) {
	switch s {
	case "scalar", "":
		return nodex.Scalar, nil
	case "vector2":
		return nodex.Vector2, nil
	case "vector3":
		return nodex.Vector3, nil
	case "matrix":
		return nodex.Matrix, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

func parseKind(s string) (nodex.ValueKind, error) {
	switch s {
	case "bool":
		return nodex.Bool, nil
	case "int":
		return nodex.Int, nil
	case "float", "":
		return nodex.Float, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}
