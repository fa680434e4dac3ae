package sizing

// BedType is one catalog entry: a fixed honeycomb bed geometry with a
// rated maximum volumetric flow. Selection logic operates over the
// table, ordered by increasing capacity.
type BedType struct {
	Name      string
	Length    float64 // unit bed length, m
	Cylinders int
	MaxFlow   float64 // rated volumetric flow, m³/s
}

// DefaultCatalog is the reference three-size bed catalog.
func DefaultCatalog() []BedType {
	return []BedType{
		{Name: "Small", Length: 2.2, Cylinders: 418, MaxFlow: 0.168},
		{Name: "Medium", Length: 4.411, Cylinders: 838, MaxFlow: 0.3365},
		{Name: "Large", Length: 6.397, Cylinders: 1216, MaxFlow: 0.4885},
	}
}
