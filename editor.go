package meshgen

// Editor drives a generator the way an editor host does: parameters are
// edited between calls to Update, which validates and redraws into Node.
type Editor struct {
	Generator Generator
	Node      *MeshNode
	Config    *Config
	Policy    *Policy
	Logger    Logger

	levelCount int
}

func NewEditor(g Generator, cfg *Config, logger Logger) *Editor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Editor{
		Generator: g,
		Node:      NewMeshNode(),
		Config:    cfg,
		Policy:    NewPolicy(cfg.Bounds, logger),
		Logger:    logger,
	}
}

// Update runs one edit tick. Parameters are clamped first when configured
// to, a lofted cone whose level count changed is always redrawn, and the
// mesh is redrawn on auto update.
func (e *Editor) Update() error {
	if e.Config.RestrictUnsafeValues {
		e.Policy.Apply(e.Generator)
	}
	if l, ok := e.Generator.(*LoftedCone); ok && len(l.Levels) != e.levelCount {
		e.levelCount = len(l.Levels)
		if err := e.Draw(); err != nil {
			return err
		}
	}
	if e.Config.AutoUpdate {
		return e.Draw()
	}
	return nil
}

func (e *Editor) Draw() error {
	if err := Draw(e.Generator, e.Node); err != nil {
		e.Logger.Errorf("draw failed: %v", err)
		return err
	}
	e.Logger.Debugf("drew %d vertices, %d triangles", len(e.Node.Vertices), len(e.Node.Triangles())/3)
	return nil
}

// Save persists the current mesh. An empty path is a cancelled save and does
// nothing. Failures are logged, never returned.
func (e *Editor) Save(path string) bool {
	if e.Node == nil {
		e.Logger.Errorf("Mesh is null!")
		return false
	}
	if path == "" {
		return false
	}
	saved, err := SaveMesh(path, e.Node, e.Generator.Properties())
	if err != nil {
		e.Logger.Errorf("save mesh to %s failed: %v", path, err)
		return false
	}
	e.Logger.Infof("Mesh saved successfully to %s", saved)
	return true
}
