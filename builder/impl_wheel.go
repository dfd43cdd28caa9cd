// Package: builder
//
// impl_wheel.go - Wheel(n): Cycle(n-1) plus spokes from "Center".

package builder

// Wheel returns a Constructor for W_n (n ≥ 4): a directed rim of n-1
// vertices and a hub with an edge to every rim vertex.
func Wheel(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}

		return Star(n)(g, cfg)
	}
}
