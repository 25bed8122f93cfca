package memory

import "github.com/BigRoy/nodex/internal/nodex"

// attrSchema declares one well-known attribute of a node kind.
type attrSchema struct {
	name  string
	shape nodex.Shape
	kind  nodex.ValueKind
	comps []string // component attribute names for compounds
}

// kindSchema declares the attributes a node kind exposes. Input ports not
// listed here are created lazily on first assignment or connection; outputs
// must be declared so metadata queries resolve.
type kindSchema struct {
	attrs []attrSchema
}

func vec3(name string, comps ...string) attrSchema {
	if comps == nil {
		comps = []string{name + "X", name + "Y", name + "Z"}
	}
	return attrSchema{name: name, shape: nodex.Vector3, kind: nodex.Float, comps: comps}
}

func rgb(name string) attrSchema {
	return attrSchema{
		name:  name,
		shape: nodex.Vector3,
		kind:  nodex.Float,
		comps: []string{name + "R", name + "G", name + "B"},
	}
}

func scalar(name string) attrSchema {
	return attrSchema{name: name, shape: nodex.Scalar, kind: nodex.Float}
}

func intAttr(name string) attrSchema {
	return attrSchema{name: name, shape: nodex.Scalar, kind: nodex.Int}
}

func matrix(name string) attrSchema {
	return attrSchema{name: name, shape: nodex.Matrix, kind: nodex.Float}
}

// kindSchemas is the node vocabulary the math patterns target.
var kindSchemas = map[string]kindSchema{
	"plusMinusAverage": {attrs: []attrSchema{
		intAttr("operation"),
		scalar("output1D"),
		{name: "output2D", shape: nodex.Vector2, kind: nodex.Float,
			comps: []string{"output2Dx", "output2Dy"}},
		{name: "output3D", shape: nodex.Vector3, kind: nodex.Float,
			comps: []string{"output3Dx", "output3Dy", "output3Dz"}},
	}},
	"multiplyDivide": {attrs: []attrSchema{
		intAttr("operation"),
		vec3("input1"), vec3("input2"), vec3("output"),
	}},
	"condition": {attrs: []attrSchema{
		intAttr("operation"),
		scalar("firstTerm"), scalar("secondTerm"),
		rgb("colorIfTrue"), rgb("colorIfFalse"), rgb("outColor"),
	}},
	"clamp": {attrs: []attrSchema{
		rgb("input"), rgb("min"), rgb("max"), rgb("output"),
	}},
	"blendColors": {attrs: []attrSchema{
		rgb("color1"), rgb("color2"), scalar("blender"), rgb("output"),
	}},
	"vectorProduct": {attrs: []attrSchema{
		intAttr("operation"),
		{name: "normalizeOutput", shape: nodex.Scalar, kind: nodex.Bool},
		vec3("input1"), vec3("input2"), matrix("matrix"), vec3("output"),
	}},
	"distanceBetween": {attrs: []attrSchema{
		vec3("point1"), vec3("point2"), scalar("distance"),
	}},
	"angleBetween": {attrs: []attrSchema{
		vec3("vector1"), vec3("vector2"), scalar("angle"),
	}},
	"multMatrix": {attrs: []attrSchema{
		matrix("matrixSum"),
	}},
	"inverseMatrix": {attrs: []attrSchema{
		matrix("inputMatrix"), matrix("outputMatrix"),
	}},
	"decomposeMatrix": {attrs: []attrSchema{
		matrix("inputMatrix"),
		vec3("outputTranslate"), vec3("outputRotate"), vec3("outputScale"),
	}},
}
