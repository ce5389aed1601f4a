// Package sentiment maps the five-point mood scale between numeric values
// and display labels. Value 0 / unknown values resolve to LabelUnknown.
package sentiment

const (
	Min = 1
	Max = 5
)

const LabelUnknown = "unknown"

var labels = map[int]string{
	1: "very bad",
	2: "bad",
	3: "neutral",
	4: "good",
	5: "very good",
}

// Valid reports whether v is an assignable sentiment value.
func Valid(v int) bool {
	return v >= Min && v <= Max
}

// Label returns the display label for v, or LabelUnknown for any value
// outside the scale.
func Label(v int) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return LabelUnknown
}
