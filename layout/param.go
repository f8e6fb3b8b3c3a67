package layout

// Param is implemented by every extent or stride parameter.
type Param interface {
	// Value returns the parameter value.
	Value() int
}

// Static is implemented by parameters whose value is fixed by their type.
type Static interface {
	Param
	static()
}

// Fixed marks a parameter type as static. Embed it in an empty struct
// that also defines Value.
type Fixed struct{}

func (Fixed) static() {}

// Dynamic is the parameter kind whose value is stored at runtime.
type Dynamic struct {
	v int
}

// Value returns the stored value.
func (d Dynamic) Value() int {
	return d.v
}

// IsDynamic reports whether P stores its value at runtime.
func IsDynamic[P Param]() bool {
	var p P
	_, ok := any(p).(Dynamic)

	return ok
}

// Narrows reports whether a parameter of kind From may be assigned to a
// parameter of kind To: either To is dynamic, or both are static and agree.
func Narrows[To, From Param]() bool {
	if IsDynamic[To]() {
		return true
	}
	if IsDynamic[From]() {
		return false
	}

	var to To
	var from From

	return to.Value() == from.Value()
}

// Predefined static values.
type (
	N0  struct{ Fixed }
	N1  struct{ Fixed }
	N2  struct{ Fixed }
	N3  struct{ Fixed }
	N4  struct{ Fixed }
	N5  struct{ Fixed }
	N6  struct{ Fixed }
	N7  struct{ Fixed }
	N8  struct{ Fixed }
	N9  struct{ Fixed }
	N10 struct{ Fixed }
	N11 struct{ Fixed }
	N12 struct{ Fixed }
	N13 struct{ Fixed }
	N14 struct{ Fixed }
	N15 struct{ Fixed }
	N16 struct{ Fixed }
	N32 struct{ Fixed }
	N64 struct{ Fixed }

	Neg1 struct{ Fixed }
	Neg2 struct{ Fixed }
	Neg3 struct{ Fixed }
	Neg4 struct{ Fixed }
)

func (N0) Value() int  { return 0 }
func (N1) Value() int  { return 1 }
func (N2) Value() int  { return 2 }
func (N3) Value() int  { return 3 }
func (N4) Value() int  { return 4 }
func (N5) Value() int  { return 5 }
func (N6) Value() int  { return 6 }
func (N7) Value() int  { return 7 }
func (N8) Value() int  { return 8 }
func (N9) Value() int  { return 9 }
func (N10) Value() int { return 10 }
func (N11) Value() int { return 11 }
func (N12) Value() int { return 12 }
func (N13) Value() int { return 13 }
func (N14) Value() int { return 14 }
func (N15) Value() int { return 15 }
func (N16) Value() int { return 16 }
func (N32) Value() int { return 32 }
func (N64) Value() int { return 64 }

func (Neg1) Value() int { return -1 }
func (Neg2) Value() int { return -2 }
func (Neg3) Value() int { return -3 }
func (Neg4) Value() int { return -4 }
