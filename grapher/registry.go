package grapher

// Registry is the append-only history of every frame and user closure
// created during a run, in creation order. It exists so the diagram
// and snapshot exporters can reconstruct the full frame tree after the
// fact, including frames no longer reachable from any live closure.
// Evaluation never reads from it.
type Registry struct {
	Frames   []*Frame
	Closures []*SexpFunction
}

func NewRegistry() *Registry {
	return &Registry{
		Frames:   make([]*Frame, 0, 16),
		Closures: make([]*SexpFunction, 0, 8),
	}
}

func (r *Registry) RegisterFrame(f *Frame) {
	r.Frames = append(r.Frames, f)
}

func (r *Registry) RegisterClosure(c *SexpFunction) {
	r.Closures = append(r.Closures, c)
}

// FrameRecord is one frame flattened for export. ParentID is -1 for
// the root; every other ParentID refers to a frame that appears
// earlier in the snapshot.
type FrameRecord struct {
	ID       int               `codec:"id"`
	Name     string            `codec:"name"`
	ParentID int               `codec:"parent_id"`
	Global   bool              `codec:"global"`
	Bindings map[string]string `codec:"bindings"`
}

// ClosureRecord is one user closure flattened for export.
type ClosureRecord struct {
	ID         int      `codec:"id"`
	Name       string   `codec:"name"`
	Params     []string `codec:"params"`
	Body       string   `codec:"body"`
	DefFrameID int      `codec:"def_frame_id"`
}

type Snapshot struct {
	Frames   []FrameRecord   `codec:"frames"`
	Closures []ClosureRecord `codec:"closures"`
}

// Snapshot renders the registry into plain records with sorted,
// stringified bindings. The result is self-contained: mutating frames
// afterwards does not alter an existing snapshot.
func (r *Registry) Snapshot() *Snapshot {
	snap := &Snapshot{
		Frames:   make([]FrameRecord, 0, len(r.Frames)),
		Closures: make([]ClosureRecord, 0, len(r.Closures)),
	}
	for _, f := range r.Frames {
		parent := -1
		if f.Parent != nil {
			parent = f.Parent.ID
		}
		bindings := make(map[string]string, len(f.Bindings))
		for _, name := range f.SortedNames() {
			bindings[name] = f.Bindings[name].SexpString()
		}
		snap.Frames = append(snap.Frames, FrameRecord{
			ID:       f.ID,
			Name:     f.Name,
			ParentID: parent,
			Global:   f.IsGlobal,
			Bindings: bindings,
		})
	}
	for _, c := range r.Closures {
		params := make([]string, len(c.params))
		copy(params, c.params)
		snap.Closures = append(snap.Closures, ClosureRecord{
			ID:         c.id,
			Name:       c.name,
			Params:     params,
			Body:       c.body.SexpString(),
			DefFrameID: c.defFrame.ID,
		})
	}
	return snap
}
