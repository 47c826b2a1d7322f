package firstorder

// The nine metric facades. Each embeds the shared dispatcher with its kernel
// bound at construction. Always build facades through their constructors; a
// zero-value facade has no kernel and reports ErrNotFitted on every query.

// CommonNeighbors scores a candidate link by the raw number of shared
// neighbors: s(i,j) = |Γi ∩ Γj|. Unbounded above; s(i,i) equals deg i.
type CommonNeighbors struct{ predictor }

// NewCommonNeighbors returns an unfitted CommonNeighbors predictor.
func NewCommonNeighbors() *CommonNeighbors {
	p := &CommonNeighbors{}
	p.kern = kernelCommonNeighbors

	return p
}

// Jaccard normalizes the shared-neighbor count by the union size:
// s(i,j) = |Γi ∩ Γj| / |Γi ∪ Γj|, in [0,1].
type Jaccard struct{ predictor }

// NewJaccard returns an unfitted Jaccard predictor.
func NewJaccard() *Jaccard {
	p := &Jaccard{}
	p.kern = kernelJaccard

	return p
}

// Salton is the cosine similarity of neighborhoods:
// s(i,j) = |Γi ∩ Γj| / √(deg i · deg j), in [0,1].
type Salton struct{ predictor }

// NewSalton returns an unfitted Salton predictor.
func NewSalton() *Salton {
	p := &Salton{}
	p.kern = kernelSalton

	return p
}

// Sorensen is the dice coefficient of neighborhoods:
// s(i,j) = 2|Γi ∩ Γj| / (deg i + deg j), in [0,1].
type Sorensen struct{ predictor }

// NewSorensen returns an unfitted Sorensen predictor.
func NewSorensen() *Sorensen {
	p := &Sorensen{}
	p.kern = kernelSorensen

	return p
}

// HubPromoted divides by the smaller degree, so links near hubs keep high
// scores: s(i,j) = |Γi ∩ Γj| / min(deg i, deg j), in [0,1].
type HubPromoted struct{ predictor }

// NewHubPromoted returns an unfitted HubPromoted predictor.
func NewHubPromoted() *HubPromoted {
	p := &HubPromoted{}
	p.kern = kernelHubPromoted

	return p
}

// HubDepressed divides by the larger degree, penalizing hub endpoints:
// s(i,j) = |Γi ∩ Γj| / max(deg i, deg j), in [0,1].
type HubDepressed struct{ predictor }

// NewHubDepressed returns an unfitted HubDepressed predictor.
func NewHubDepressed() *HubDepressed {
	p := &HubDepressed{}
	p.kern = kernelHubDepressed

	return p
}

// AdamicAdar weighs each shared neighbor by the inverse log of its degree,
// favoring rare intermediaries: s(i,j) = Σ_{z∈Γi∩Γj} 1/ln(deg z).
type AdamicAdar struct{ predictor }

// NewAdamicAdar returns an unfitted AdamicAdar predictor.
func NewAdamicAdar() *AdamicAdar {
	p := &AdamicAdar{}
	p.kern = kernelAdamicAdar

	return p
}

// ResourceAllocation weighs each shared neighbor by its inverse degree,
// a harsher version of AdamicAdar: s(i,j) = Σ_{z∈Γi∩Γj} 1/deg z.
type ResourceAllocation struct{ predictor }

// NewResourceAllocation returns an unfitted ResourceAllocation predictor.
func NewResourceAllocation() *ResourceAllocation {
	p := &ResourceAllocation{}
	p.kern = kernelResourceAllocation

	return p
}

// PreferentialAttachment scores by the degree product alone:
// s(i,j) = deg i · deg j. The only metric that skips the intersection.
type PreferentialAttachment struct{ predictor }

// NewPreferentialAttachment returns an unfitted PreferentialAttachment
// predictor.
func NewPreferentialAttachment() *PreferentialAttachment {
	p := &PreferentialAttachment{}
	p.kern = kernelPreferentialAttachment

	return p
}

// Compile-time interface checks.
var (
	_ Predictor = (*CommonNeighbors)(nil)
	_ Predictor = (*Jaccard)(nil)
	_ Predictor = (*Salton)(nil)
	_ Predictor = (*Sorensen)(nil)
	_ Predictor = (*HubPromoted)(nil)
	_ Predictor = (*HubDepressed)(nil)
	_ Predictor = (*AdamicAdar)(nil)
	_ Predictor = (*ResourceAllocation)(nil)
	_ Predictor = (*PreferentialAttachment)(nil)
)
