package layout

// Descriptor holds the extent and stride of a view, storing only the
// parameters that are dynamic.
//
// The stride field precedes the extent field so that the common shape of a
// dynamic extent with a static stride ends in a non-zero-size field and
// needs no padding.
type Descriptor[E, S Param] struct {
	stride S
	extent E
}

// NewDescriptor returns a descriptor whose dynamic parameters are set to
// extent and stride. Values for static parameters are ignored.
func NewDescriptor[E, S Param](extent, stride int) Descriptor[E, S] {
	var d Descriptor[E, S]
	d.SetExtentIfDynamic(extent).SetStrideIfDynamic(stride)

	return d
}

// Extent returns the number of logical elements.
func (d Descriptor[E, S]) Extent() int {
	return d.extent.Value()
}

// Stride returns the distance, in elements, between logical elements.
func (d Descriptor[E, S]) Stride() int {
	return d.stride.Value()
}

// ExtentIsDynamic reports whether the extent is stored at runtime.
func (d Descriptor[E, S]) ExtentIsDynamic() bool {
	return IsDynamic[E]()
}

// StrideIsDynamic reports whether the stride is stored at runtime.
func (d Descriptor[E, S]) StrideIsDynamic() bool {
	return IsDynamic[S]()
}

// SetExtentIfDynamic stores n when the extent is dynamic and does nothing
// otherwise. It returns d so calls can be chained.
func (d *Descriptor[E, S]) SetExtentIfDynamic(n int) *Descriptor[E, S] {
	if p, ok := any(&d.extent).(*Dynamic); ok {
		p.v = n
	}

	return d
}

// SetStrideIfDynamic stores s when the stride is dynamic and does nothing
// otherwise. It returns d so calls can be chained.
func (d *Descriptor[E, S]) SetStrideIfDynamic(s int) *Descriptor[E, S] {
	if p, ok := any(&d.stride).(*Dynamic); ok {
		p.v = s
	}

	return d
}

// SetExtent stores n as the extent. It only accepts descriptors with a
// dynamic extent, so forcing a static extent does not compile.
func SetExtent[S Param](d *Descriptor[Dynamic, S], n int) *Descriptor[Dynamic, S] {
	d.extent.v = n
	return d
}

// SetStride stores s as the stride. It only accepts descriptors with a
// dynamic stride.
func SetStride[E Param](d *Descriptor[E, Dynamic], s int) *Descriptor[E, Dynamic] {
	d.stride.v = s
	return d
}
