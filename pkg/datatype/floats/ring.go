package floats

// Ring is a fixed capacity buffer of float64 values.
// Once full, every Push overwrites the oldest value.
type Ring struct {
	values []float64
	start  int
	size   int
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}

	return &Ring{
		values: make([]float64, capacity),
	}
}

func (r *Ring) Push(v float64) {
	c := len(r.values)
	if r.size < c {
		r.values[(r.start+r.size)%c] = v
		r.size++
		return
	}

	r.values[r.start] = v
	r.start = (r.start + 1) % c
}

func (r *Ring) Length() int {
	return r.size
}

func (r *Ring) Cap() int {
	return len(r.values)
}

func (r *Ring) IsFull() bool {
	return r.size == len(r.values)
}

// Slice returns a snapshot of the values, oldest first.
func (r *Ring) Slice() Slice {
	out := make(Slice, r.size)
	c := len(r.values)
	for i := 0; i < r.size; i++ {
		out[i] = r.values[(r.start+i)%c]
	}
	return out
}
