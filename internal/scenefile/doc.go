package scenefile

type fileDoc struct {
	Global globalDoc `yaml:"global"`
	Camera cameraDoc `yaml:"camera"`
	Root   *nodeDoc  `yaml:"root"`
}

type globalDoc struct {
	Ka float32 `yaml:"ka"`
	Kd float32 `yaml:"kd"`
	Ks float32 `yaml:"ks"`
	Kt float32 `yaml:"kt"`
}

type cameraDoc struct {
	Position    []float32 `yaml:"position"`
	Look        []float32 `yaml:"look"`
	Focus       []float32 `yaml:"focus"` // alternative to look
	Up          []float32 `yaml:"up"`
	HeightAngle float32   `yaml:"height_angle"`
	Aperture    float32   `yaml:"aperture"`
	FocalLength float32   `yaml:"focal_length"`
}

type nodeDoc struct {
	Name       string         `yaml:"name"`
	Transforms []transformDoc `yaml:"transforms"`
	Primitives []primitiveDoc `yaml:"primitives"`
	Lights     []lightDoc     `yaml:"lights"`
	Children   []*nodeDoc     `yaml:"children"`
}

type transformDoc struct {
	Translate []float32  `yaml:"translate"`
	Scale     []float32  `yaml:"scale"`
	Rotate    *rotateDoc `yaml:"rotate"`
	Matrix    []float32  `yaml:"matrix"` // 16 values, row-major
}

type rotateDoc struct {
	Axis  []float32 `yaml:"axis"`
	Angle float32   `yaml:"angle"`
}

type primitiveDoc struct {
	Type     string      `yaml:"type"`
	File     string      `yaml:"file"`
	Material materialDoc `yaml:"material"`
}

type materialDoc struct {
	Ambient     []float32   `yaml:"ambient"`
	Diffuse     []float32   `yaml:"diffuse"`
	Specular    []float32   `yaml:"specular"`
	Reflective  []float32   `yaml:"reflective"`
	Transparent []float32   `yaml:"transparent"`
	Shininess   float32     `yaml:"shininess"`
	IOR         float32     `yaml:"ior"`
	Texture     *textureDoc `yaml:"texture"`
	Blend       float32     `yaml:"blend"`
}

type textureDoc struct {
	File    string  `yaml:"file"`
	RepeatU float32 `yaml:"repeat_u"`
	RepeatV float32 `yaml:"repeat_v"`
}

type lightDoc struct {
	ID        *int      `yaml:"id"`
	Type      string    `yaml:"type"`
	Color     []float32 `yaml:"color"`
	Function  []float32 `yaml:"function"`
	Direction []float32 `yaml:"direction"`
	Penumbra  float32   `yaml:"penumbra"` // degrees
	Angle     float32   `yaml:"angle"`    // degrees
	Width     float32   `yaml:"width"`
	Height    float32   `yaml:"height"`

	// sun lights only
	Longitude float32 `yaml:"longitude"`
	Latitude  float32 `yaml:"latitude"`
}
