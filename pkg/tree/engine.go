package tree

import (
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/rng"
	"github.com/matzehuels/arbor/pkg/shape"
)

// Settings configure one growth run. They are read once at initialization and
// never change during the run.
type Settings struct {
	AttractionPoints int
	Crown            shape.Sampler

	// InfluenceRadius and KillDistance are multiples of NodeSize.
	InfluenceRadius float64
	KillDistance    float64

	NodeSize      float64 // absolute length of each growth increment
	MaxIterations int
}

// State is the lifecycle phase of an Engine.
type State int

const (
	Initializing State = iota
	Growing
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Growing:
		return "growing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// StepStats summarizes one growth step.
type StepStats struct {
	Iteration  int
	Associated int // points that pulled a node
	Grown      int // children spawned
	Skipped    int // pulled nodes whose pulls cancelled out
	Pruned     int // points reached this step
	Remaining  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-step debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns the node arena and the attraction points of one run.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	settings        Settings
	origin          r3.Vec
	killDist        float64
	influenceRadius float64

	src      rng.Source
	fixed    []r3.Vec // explicit points for engines built by NewWithPoints
	explicit bool

	nodes      []Node
	points     []AttractionPoint
	iterations int
	state      State

	logger *log.Logger
}

// New initializes an engine: it samples s.AttractionPoints points from
// s.Crown using src and places the root at origin.
func New(s Settings, origin r3.Vec, src rng.Source, opts ...Option) *Engine {
	e := newEngine(s, origin, opts)
	e.src = src
	e.init()
	return e
}

// NewWithPoints initializes an engine from an explicit point cloud instead of
// sampling one. s.AttractionPoints and s.Crown are ignored.
func NewWithPoints(s Settings, origin r3.Vec, points []r3.Vec, opts ...Option) *Engine {
	e := newEngine(s, origin, opts)
	e.fixed = slices.Clone(points)
	e.explicit = true
	e.init()
	return e
}

func newEngine(s Settings, origin r3.Vec, opts []Option) *Engine {
	e := &Engine{
		settings: s,
		origin:   origin,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// init discards any previous state and reinitializes from scratch.
func (e *Engine) init() {
	e.state = Initializing
	e.killDist = e.settings.KillDistance * e.settings.NodeSize
	e.influenceRadius = e.settings.InfluenceRadius * e.settings.NodeSize

	var cloud []r3.Vec
	switch {
	case e.explicit:
		cloud = e.fixed
	case e.settings.Crown != nil && e.src != nil:
		cloud = shape.Points(e.settings.Crown, e.src, e.settings.AttractionPoints)
	}

	e.points = make([]AttractionPoint, len(cloud))
	for i, p := range cloud {
		e.points[i] = AttractionPoint{Position: p, closest: -1}
	}

	e.nodes = []Node{newNode(NoParent, e.origin, rootDirection)}
	e.iterations = 0
	e.state = Growing
}

// Run executes growth steps until the engine terminates and returns the
// number of steps taken. The first step runs unconditionally.
func (e *Engine) Run() int {
	for e.state == Growing {
		e.Step()
	}
	return e.iterations
}

// Step executes one association/growth/pruning step. It is a no-op once the
// engine has terminated.
func (e *Engine) Step() StepStats {
	if e.state != Growing {
		return StepStats{Iteration: e.iterations, Remaining: len(e.points)}
	}

	e.iterations++
	stats := StepStats{Iteration: e.iterations}
	stats.Associated = e.associate()
	stats.Grown, stats.Skipped = e.grow()
	stats.Pruned = e.prune()
	stats.Remaining = len(e.points)

	if len(e.points) == 0 || e.iterations >= e.settings.MaxIterations {
		e.state = Terminated
	}

	e.logger.Debug("growth step",
		"iteration", stats.Iteration,
		"associated", stats.Associated,
		"grown", stats.Grown,
		"pruned", stats.Pruned,
		"remaining", stats.Remaining,
		"nodes", len(e.nodes))
	return stats
}

// associate pulls each point's closest eligible node toward the point.
func (e *Engine) associate() int {
	associated := 0
	for i := range e.points {
		p := &e.points[i]
		p.closest = -1
		best := math.Inf(1)

		for j := range e.nodes {
			d := dist(p.Position, e.nodes[j].Position)
			if d > e.killDist && d < e.influenceRadius && d < best {
				best = d
				p.closest = j
			}
		}
		if p.closest < 0 {
			continue
		}

		n := &e.nodes[p.closest]
		pull, ok := unit(r3.Sub(p.Position, n.Position))
		if !ok {
			continue
		}
		n.influence = r3.Add(n.influence, pull)
		n.influenceCount++
		associated++
	}
	return associated
}

// grow spawns one child for every pulled node that existed before the phase
// began. Children appended here are not candidates until the next step.
func (e *Engine) grow() (grown, skipped int) {
	existing := len(e.nodes)
	for i := 0; i < existing; i++ {
		n := e.nodes[i]
		if n.influenceCount == 0 {
			continue
		}
		e.nodes[i].resetInfluence()

		heading, ok := unit(r3.Scale(1/float64(n.influenceCount), n.influence))
		if !ok {
			skipped++
			continue
		}
		pos := r3.Add(n.Position, r3.Scale(e.settings.NodeSize, heading))
		e.nodes = append(e.nodes, newNode(i, pos, heading))
		grown++
	}
	return grown, skipped
}

// prune removes every point within the kill distance of any node, including
// the nodes spawned this step.
func (e *Engine) prune() int {
	before := len(e.points)
	e.points = slices.DeleteFunc(e.points, func(p AttractionPoint) bool {
		return e.reached(p.Position)
	})
	return before - len(e.points)
}

func (e *Engine) reached(p r3.Vec) bool {
	for j := range e.nodes {
		if dist(p, e.nodes[j].Position) <= e.killDist {
			return true
		}
	}
	return false
}

// reseeder is implemented by sources that can rewind to their initial seed.
type reseeder interface {
	Reseed()
}

// Regenerate discards the current nodes and points, rewinds the random source
// when it supports it, and grows a fresh tree from scratch.
func (e *Engine) Regenerate() *Tree {
	if r, ok := e.src.(reseeder); ok {
		r.Reseed()
	}
	e.init()
	e.Run()
	return e.Tree()
}

// State returns the engine's lifecycle phase.
func (e *Engine) State() State { return e.state }

// Iterations returns the number of steps executed so far.
func (e *Engine) Iterations() int { return e.iterations }

// KillDistance returns the absolute kill distance.
func (e *Engine) KillDistance() float64 { return e.killDist }

// InfluenceRadius returns the absolute influence radius.
func (e *Engine) InfluenceRadius() float64 { return e.influenceRadius }

// Nodes returns a copy of the current node set.
func (e *Engine) Nodes() []Node {
	return slices.Clone(e.nodes)
}

// Points returns the positions of the surviving attraction points.
func (e *Engine) Points() []r3.Vec {
	pts := make([]r3.Vec, len(e.points))
	for i, p := range e.points {
		pts[i] = p.Position
	}
	return pts
}

// Tree returns a snapshot of the current node set.
func (e *Engine) Tree() *Tree {
	nodes := make([]Node, len(e.nodes))
	for i, n := range e.nodes {
		nodes[i] = Node{Position: n.Position, Direction: n.Direction, Parent: n.Parent}
	}
	return &Tree{
		Nodes:      nodes,
		Iterations: e.iterations,
		Unreached:  len(e.points),
	}
}

// Generate runs a complete growth and returns the finished tree. It performs
// no rendering side effects.
func Generate(s Settings, origin r3.Vec, src rng.Source, opts ...Option) *Tree {
	e := New(s, origin, src, opts...)
	e.Run()
	return e.Tree()
}
