package sim

import "math"

type ParticleKind uint8

const (
	KindTrail ParticleKind = iota // ember shed by an ascending rocket
	KindSpark                     // primary burst particle
	KindPop                       // glitter shed by a decaying spark
)

func (k ParticleKind) String() string {
	switch k {
	case KindTrail:
		return "trail"
	case KindSpark:
		return "spark"
	case KindPop:
		return "pop"
	}
	return "unknown"
}

// Particle is implemented by *Ember, *Spark and *Glitter. Kind-specific state
// lives on the concrete type; shared physics lives on the embedded Body.
type Particle interface {
	Kind() ParticleKind
	Base() *Body
	Update()
	Expired() bool
	Render(s Surface)
}

// Body is the state every particle kind shares.
type Body struct {
	X, Y   float64
	VX, VY float64

	Col     RGB
	InitCol RGB
	Radius  float64

	Life    int // remaining ticks
	MaxLife int
}

func (b *Body) Base() *Body { return b }

// Update applies gravity, air resistance and one tick of ageing.
func (b *Body) Update() {
	b.VY += Gravity
	b.VX *= AirResistance
	b.VY *= AirResistance
	b.X += b.VX
	b.Y += b.VY
	b.Life--
}

func (b *Body) Expired() bool { return b.Life <= 0 }

// SetLifetime resets both the total and remaining lifetime.
func (b *Body) SetLifetime(ticks int) {
	b.MaxLife = ticks
	b.Life = ticks
}

// Alpha is 255 scaled by the remaining fraction of life.
func (b *Body) Alpha() uint8 {
	if b.MaxLife <= 0 {
		return 0
	}
	return clampU8(int(255 * float64(b.Life) / float64(b.MaxLife)))
}

// DrawRadius is the whole-pixel radius used for drawing, never below 1.
func (b *Body) DrawRadius() float64 {
	return math.Max(1, math.Floor(b.Radius))
}

func (b *Body) Render(s Surface) {
	if b.Life <= 0 {
		return
	}
	s.Circle(b.X, b.Y, b.DrawRadius(), b.Col, b.Alpha())
}

func (b *Body) launch(r *Rand, minSpeed, maxSpeed float64) {
	ang := r.Angle()
	spd := r.RangeF(minSpeed, maxSpeed)
	b.VX = spd * math.Cos(ang)
	b.VY = spd * math.Sin(ang)
}

func newBody(x, y float64, col RGB) Body {
	return Body{X: x, Y: y, Col: col, InitCol: col}
}

// Ember is a short-lived particle falling away from an ascending rocket.
type Ember struct {
	Body
}

func NewEmber(r *Rand, x, y float64, col RGB) *Ember {
	e := &Ember{Body: newBody(x, y, col)}
	e.VX = r.RangeF(-0.5, 0.5)
	e.VY = r.RangeF(1, 2)
	e.Radius = r.RangeF(1, 2)
	e.SetLifetime(r.Range(5, 15))
	return e
}

func (e *Ember) Kind() ParticleKind { return KindTrail }

func (e *Ember) Update() {
	e.Body.Update()
	e.Radius = math.Max(0, e.Radius-EmberShrink)
}

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// History keeps the last HistoryLen positions, oldest first.
type History struct {
	pts [HistoryLen]Point
	n   int
}

func (h *History) Push(p Point) {
	if h.n < HistoryLen {
		h.pts[h.n] = p
		h.n++
		return
	}
	copy(h.pts[:], h.pts[1:])
	h.pts[HistoryLen-1] = p
}

func (h *History) Len() int { return h.n }

// Points returns the stored positions, oldest first. The slice aliases the
// history and is only valid until the next Push.
func (h *History) Points() []Point { return h.pts[:h.n] }

// Spark is a burst particle: it fades towards a warmer tint and leaves a
// short trail of its recent positions.
type Spark struct {
	Body
	History History
}

func NewSpark(r *Rand, x, y float64, col RGB) *Spark {
	s := &Spark{Body: newBody(x, y, col)}
	s.launch(r, 2, 6)
	s.Radius = r.RangeF(1.5, 3.5)
	s.SetLifetime(r.Range(100, 180))
	return s
}

func (s *Spark) Kind() ParticleKind { return KindSpark }

func (s *Spark) Update() {
	s.Body.Update()
	ratio := float64(s.Life) / float64(s.MaxLife)
	// Blue fades twice as fast, pulling aged sparks towards orange.
	s.Col = s.InitCol.Scale(ratio, ratio, ratio*0.5)
	s.History.Push(Point{X: s.X, Y: s.Y})
}

func (s *Spark) Render(surf Surface) {
	if s.Life <= 0 {
		return
	}
	alpha := float64(s.Alpha())
	trailR := math.Max(1, s.DrawRadius()-1)
	n := float64(s.History.Len())
	for i, p := range s.History.Points() {
		a := clampU8(int(alpha * (float64(i) / n) * 0.5))
		surf.Circle(p.X, p.Y, trailR, s.InitCol, a)
	}
	s.Body.Render(surf)
}

// Glitter is a tiny short-lived particle shed by a decaying spark.
type Glitter struct {
	Body
}

func NewGlitter(r *Rand, x, y float64, col RGB) *Glitter {
	g := &Glitter{Body: newBody(x, y, col)}
	g.launch(r, 0.5, 2)
	g.Radius = r.RangeF(0.5, 1.5)
	g.SetLifetime(r.Range(15, 30))
	return g
}

func (g *Glitter) Kind() ParticleKind { return KindPop }
